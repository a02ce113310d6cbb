// Package replay decodes SC2Replay archives into the event stream and
// metadata bundle the analyzer consumes.
package replay

import (
	"fmt"

	"github.com/icza/s2prot"
	"github.com/icza/s2prot/rep"
	log "github.com/sirupsen/logrus"

	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/model"
)

// loopsPerSecond converts game loops to match-clock seconds at the Faster
// game speed every ladder and co-op match runs on.
const loopsPerSecond = 16

// Load decodes the replay archive at path.
func Load(path string) (*model.ReplayData, error) {
	r, err := rep.NewFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer r.Close()

	rd := &model.ReplayData{
		Lobby: make(map[model.ParticipantID]model.LobbySlot),
		Match: model.MatchInfo{
			MapName:         r.Details.Title(),
			PlayedAt:        r.Details.TimeUTC(),
			DurationSeconds: int(r.Metadata.DurationSec()),
			APM:             make(map[model.ParticipantID]int),
			Won:             make(map[model.ParticipantID]bool),
			ExtensionMod:    r.InitData.GameDescription.Bool("hasExtensionMod"),
			IntegrityOK:     true,
		},
	}

	decodeRoster(r, rd)
	decodeLobby(r, rd)
	decodeMetadata(r, rd)
	decodeEvents(r, rd)

	log.WithFields(log.Fields{
		"map":     rd.Match.MapName,
		"events":  len(rd.Events),
		"players": len(rd.Roster),
	}).Debug("decoded replay")
	return rd, nil
}

// decodeRoster builds the participant list from the details player array.
// Participant ids are 1-based positions in that array, matching the ids the
// tracker stream uses.
func decodeRoster(r *rep.Rep, rd *model.ReplayData) {
	humans := humanSlotCount(r)
	for i, p := range r.Details.Players() {
		rd.Roster = append(rd.Roster, model.Participant{
			ID:        model.ParticipantID(i + 1),
			Name:      p.Name,
			SlotIndex: i,
			IsHuman:   i < humans,
		})
	}
}

// decodeLobby extracts the co-op lobby choices of the human slots. Human
// slots appear first in lobby order and map to participants 1 and 2.
func decodeLobby(r *rep.Rep, rd *model.ReplayData) {
	pid := model.ParticipantID(1)
	for _, slot := range r.InitData.LobbyState.Slots {
		if slot.Int("control") != slotControlHuman {
			continue
		}
		rd.Lobby[pid] = model.LobbySlot{
			Commander:      slot.Stringv("commander"),
			CommanderLevel: int(slot.Int("commanderLevel")),
			Masteries:      int64Array(slot.Struct, "commanderMasteryTalents"),
			BrutalPlus:     int(slot.Int("brutalPlusDifficulty")),
		}
		pid++
	}
}

const slotControlHuman = 2

func humanSlotCount(r *rep.Rep) int {
	n := 0
	for _, slot := range r.InitData.LobbyState.Slots {
		if slot.Int("control") == slotControlHuman {
			n++
		}
	}
	return n
}

func decodeMetadata(r *rep.Rep, rd *model.ReplayData) {
	for _, p := range r.Metadata.Players() {
		pid := model.ParticipantID(p.PlayerID())
		rd.Match.APM[pid] = int(p.APM())
		rd.Match.Won[pid] = p.Result() == "Win"
	}
}

// decodeEvents translates the tracker stream into typed events. Event kinds
// outside the six the analyzer dispatches on (player stats samples, unit
// position samples, setup records) are dropped here.
func decodeEvents(r *rep.Rep, rd *model.ReplayData) {
	if r.TrackerEvts == nil {
		return
	}
	for _, e := range r.TrackerEvts.Evts {
		second := int(e.Loop()) / loopsPerSecond

		switch e.EvtType.Name {
		case "UnitBorn":
			rd.Events = append(rd.Events, model.UnitBorn{
				Second:   second,
				Tag:      unitTag(e.Struct, "unitTagIndex", "unitTagRecycle"),
				UnitType: e.Stringv("unitTypeName"),
				Owner:    model.ParticipantID(e.Int("controlPlayerId")),
			})
		case "UnitInit":
			rd.Events = append(rd.Events, model.UnitInit{
				Second:   second,
				Tag:      unitTag(e.Struct, "unitTagIndex", "unitTagRecycle"),
				UnitType: e.Stringv("unitTypeName"),
				Owner:    model.ParticipantID(e.Int("controlPlayerId")),
			})
		case "UnitOwnerChange":
			rd.Events = append(rd.Events, model.UnitOwnerChange{
				Second: second,
				Tag:    unitTag(e.Struct, "unitTagIndex", "unitTagRecycle"),
				Owner:  model.ParticipantID(e.Int("controlPlayerId")),
			})
		case "UnitTypeChange":
			rd.Events = append(rd.Events, model.UnitTypeChange{
				Second:   second,
				Tag:      unitTag(e.Struct, "unitTagIndex", "unitTagRecycle"),
				UnitType: e.Stringv("unitTypeName"),
			})
		case "UnitDied":
			died := model.UnitDied{
				Second: second,
				Tag:    unitTag(e.Struct, "unitTagIndex", "unitTagRecycle"),
			}
			// Both killer fields are nullable and independent of each other.
			if e.Value("killerPlayerId") != nil {
				died.KillerPID = model.ParticipantID(e.Int("killerPlayerId"))
			}
			if e.Value("killerUnitTagIndex") != nil {
				died.KillerTag = unitTag(e.Struct, "killerUnitTagIndex", "killerUnitTagRecycle")
			}
			rd.Events = append(rd.Events, died)
		case "Upgrade":
			rd.Events = append(rd.Events, model.UpgradeComplete{
				Second:  second,
				Player:  model.ParticipantID(e.Int("playerId")),
				Upgrade: e.Stringv("upgradeTypeName"),
			})
		}
	}
}

func unitTag(s s2prot.Struct, indexField, recycleField string) model.UnitTag {
	return model.MakeUnitTag(s.Int(indexField), s.Int(recycleField))
}

func int64Array(s s2prot.Struct, field string) []int64 {
	vals := s.Array(field)
	out := make([]int64, 0, len(vals))
	for _, v := range vals {
		if n, ok := v.(int64); ok {
			out = append(out, n)
		}
	}
	return out
}
