package model

import "time"

// ParticipantID identifies one human- or AI-controlled slot in a match.
// Slot 1 and 2 are the human-ally side; higher ids belong to map-controlled
// forces, some of which form the opposing force.
type ParticipantID int

// UnitTag is the stable identifier of a unit instance. It is unique among
// currently-live units and may be reused after death.
type UnitTag int64

// MakeUnitTag combines the tracker's tag index and recycle counter into a
// single identifier, the same packing the game uses internally.
func MakeUnitTag(index, recycle int64) UnitTag {
	return UnitTag(index<<18 | recycle)
}

// ---- Event stream ----

// Event is one typed telemetry event from the tracker stream. The six
// concrete variants below are the complete set; the engine dispatches on
// them with a type switch so a new event kind is a visible gap, not a
// silently dropped string.
type Event interface {
	// EventSecond returns the match-clock second the event occurred at.
	// Seconds are non-negative and non-decreasing across the stream.
	EventSecond() int
}

// UnitBorn reports a unit entering the map fully constructed.
type UnitBorn struct {
	Second   int
	Tag      UnitTag
	UnitType string
	Owner    ParticipantID
}

// UnitInit reports a unit starting construction or warp-in. For the engine
// it behaves like UnitBorn, except that Archon initialization also arms the
// merge-death suppression counter.
type UnitInit struct {
	Second   int
	Tag      UnitTag
	UnitType string
	Owner    ParticipantID
}

// UnitOwnerChange reports a live unit switching to a new owning participant.
type UnitOwnerChange struct {
	Second int
	Tag    UnitTag
	Owner  ParticipantID
}

// UnitTypeChange reports a live unit morphing into a new raw type.
type UnitTypeChange struct {
	Second   int
	Tag      UnitTag
	UnitType string
}

// UnitDied reports a unit leaving the map. KillerPID is zero when no killing
// participant was recorded at all; KillerTag is zero when no killing unit
// was recorded (the two are independent: delayed-damage effects often carry
// a participant but no unit).
type UnitDied struct {
	Second    int
	Tag       UnitTag
	KillerPID ParticipantID
	KillerTag UnitTag
}

// UpgradeComplete reports a research or progression upgrade finishing.
type UpgradeComplete struct {
	Second  int
	Player  ParticipantID
	Upgrade string
}

func (e UnitBorn) EventSecond() int        { return e.Second }
func (e UnitInit) EventSecond() int        { return e.Second }
func (e UnitOwnerChange) EventSecond() int { return e.Second }
func (e UnitTypeChange) EventSecond() int  { return e.Second }
func (e UnitDied) EventSecond() int        { return e.Second }
func (e UpgradeComplete) EventSecond() int { return e.Second }

// ---- Replay input bundle (supplied by the ingestion collaborator) ----

// Participant is one roster entry.
type Participant struct {
	ID        ParticipantID
	Name      string
	SlotIndex int
	IsHuman   bool
}

// LobbySlot carries the per-slot lobby choices for a human participant.
type LobbySlot struct {
	Commander      string
	CommanderLevel int
	Masteries      []int64
	BrutalPlus     int
}

// MatchInfo is the match-level metadata decoded alongside the event stream.
type MatchInfo struct {
	MapName         string
	PlayedAt        time.Time
	DurationSeconds int
	APM             map[ParticipantID]int
	Won             map[ParticipantID]bool
	ExtensionMod    bool
	IntegrityOK     bool
}

// ReplayData is the complete, fully materialized input of one analysis run.
// The engine walks Events exactly once and never looks backward.
type ReplayData struct {
	Events []Event
	Roster []Participant
	Lobby  map[ParticipantID]LobbySlot
	Match  MatchInfo
}

// HumanCount returns the number of human participants on the roster.
func (rd *ReplayData) HumanCount() int {
	n := 0
	for _, p := range rd.Roster {
		if p.IsHuman {
			n++
		}
	}
	return n
}

// IdentifiedWave is a burst of opposing-force spawns within one second of
// match time that exceeded the wave threshold. UnitTypes keeps spawn order
// and is not deduplicated.
type IdentifiedWave struct {
	Second    int
	UnitTypes []string
}
