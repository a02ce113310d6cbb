package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnitStats is one tally line of a stats bucket. KillFraction is derived at
// report-build time: kills / max(1, bucket total kills), rounded to two
// decimals. LifecycleUnknown marks narrative units whose created/lost counts
// are not meaningfully trackable; they serialize as the literal "?".
type UnitStats struct {
	Created          int
	Lost             int
	Kills            int
	KillFraction     float64
	LifecycleUnknown bool
}

// MarshalJSON serializes the line as [created, lost, kills, killFraction],
// with created/lost replaced by "?" for lifecycle-unknown units.
func (u UnitStats) MarshalJSON() ([]byte, error) {
	if u.LifecycleUnknown {
		return json.Marshal([]any{"?", "?", u.Kills, u.KillFraction})
	}
	return json.Marshal([]any{u.Created, u.Lost, u.Kills, u.KillFraction})
}

// BucketEntry pairs a canonical unit-type name with its tally line.
type BucketEntry struct {
	Name  string
	Stats UnitStats
}

// StatsBucket is an ordered sequence of bucket entries, sorted by kill count
// descending at report-build time. It serializes as a JSON object whose key
// order matches the slice order.
type StatsBucket []BucketEntry

// MarshalJSON writes the bucket as an ordered JSON object.
func (b StatsBucket) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Stats)
		if err != nil {
			return nil, fmt.Errorf("marshal bucket entry %q: %w", e.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the stats for a canonical name, for callers that need lookups
// rather than iteration.
func (b StatsBucket) Get(name string) (UnitStats, bool) {
	for _, e := range b {
		if e.Name == name {
			return e.Stats, true
		}
	}
	return UnitStats{}, false
}

// PlayerSection is the per-participant slice of the report. Icons values are
// either created counts (int) or, for the "outlaws" key, an ordered list of
// unit names.
type PlayerSection struct {
	Name           string         `json:"name"`
	APM            int            `json:"apm"`
	Kills          int            `json:"kills"`
	Commander      string         `json:"commander"`
	CommanderLevel int            `json:"commanderLevel"`
	Prestige       string         `json:"prestige,omitempty"`
	Masteries      []int64        `json:"masteries"`
	Units          StatsBucket    `json:"units"`
	Icons          map[string]any `json:"icons"`
}

// ForceSection is the opposing-force slice of the report.
type ForceSection struct {
	Units StatsBucket `json:"units"`
}

// Report is the final document of one analysis run.
type Report struct {
	Result                string         `json:"result"`
	Map                   string         `json:"map"`
	Date                  string         `json:"date"`
	LengthSeconds         int            `json:"lengthSeconds"`
	CompositionGuess      string         `json:"compositionGuess"`
	CompositionConfidence float64        `json:"compositionConfidence"`
	Primary               PlayerSection  `json:"primary"`
	Partner               *PlayerSection `json:"-"`
	OpposingForce         ForceSection   `json:"opposingForce"`
	DifficultyModifier    int            `json:"difficultyModifier"`
	HasExtensionContent   bool           `json:"hasExtensionContent"`
}

// NoPartnerMarker is serialized in place of the partner section when the
// match had a single human participant.
const NoPartnerMarker = "no partner present"

// MarshalJSON emits the partner section, or the explicit no-partner marker
// when it is absent.
func (r Report) MarshalJSON() ([]byte, error) {
	type alias Report
	out := struct {
		alias
		Partner any `json:"partner"`
	}{alias: alias(r)}
	if r.Partner != nil {
		out.Partner = r.Partner
	} else {
		out.Partner = NoPartnerMarker
	}
	return json.Marshal(out)
}
