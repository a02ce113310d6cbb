package analyzer

import (
	"math"
	"sort"
	"time"

	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/gamedata"
	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/model"
)

// buildReport turns the accumulated run state into the final report
// document.
func (r *run) buildReport(rd *model.ReplayData, library []gamedata.Composition) *model.Report {
	comp, confidence := matchComposition(r.waves.waves(), library)

	result := "Defeat"
	if rd.Match.Won[r.primary] || (r.partnerPresent && rd.Match.Won[r.partner]) {
		result = "Victory"
	}

	amonKills := 0
	for pid := range r.opponents {
		amonKills += r.killCounts[pid]
	}

	rep := &model.Report{
		Result:                result,
		Map:                   rd.Match.MapName,
		Date:                  rd.Match.PlayedAt.Format(time.RFC3339),
		LengthSeconds:         rd.Match.DurationSeconds,
		CompositionGuess:      comp,
		CompositionConfidence: round2(confidence),
		Primary:               r.playerSection(rd, r.primary, r.primaryName, r.bucketPrimary),
		OpposingForce:         model.ForceSection{Units: r.opposingBucket(amonKills)},
		DifficultyModifier:    rd.Lobby[1].BrutalPlus,
		HasExtensionContent:   rd.Match.ExtensionMod,
	}
	if r.partnerPresent {
		s := r.playerSection(rd, r.partner, r.partnerName, r.bucketPartner)
		rep.Partner = &s
	}
	return rep
}

// playerSection assembles one human participant's slice of the report.
func (r *run) playerSection(rd *model.ReplayData, pid model.ParticipantID, name string, raw bucket) model.PlayerSection {
	slot := rd.Lobby[pid]
	commander := slot.Commander
	if commander == "" {
		// Old replay versions carry no lobby commander; the first commander
		// upgrade seen for the participant stands in.
		commander = r.commanderFallback[pid]
	}

	icons := make(map[string]any)
	if shades := raw.shadeProjections(); shades > 0 {
		icons["ShadeProjection"] = shades
	}
	if commander == "Tychus" && len(r.outlawOrder) > 0 {
		outlaws := make([]string, len(r.outlawOrder))
		for i, o := range r.outlawOrder {
			outlaws[i] = gamedata.CanonicalName(o)
		}
		icons["outlaws"] = outlaws
	}

	killCount := r.killCounts[pid]
	units := make(model.StatsBucket, 0)

	for idx, e := range sortedEntries(normalizeBucket(raw)) {
		if gamedata.IconUnits[e.name] {
			icons[e.name] = e.t.created
		}
		fraction := float64(e.t.kills) / float64(max(1, killCount))
		if idx >= r.cfg.MaxBucketRows || !(fraction > r.cfg.MinKillFraction) {
			continue
		}
		units = append(units, model.BucketEntry{
			Name: e.name,
			Stats: model.UnitStats{
				Created:          e.t.created,
				Lost:             e.t.lost,
				Kills:            e.t.kills,
				KillFraction:     round2(fraction),
				LifecycleUnknown: gamedata.HiddenLifecycleUnits[e.name],
			},
		})
	}

	return model.PlayerSection{
		Name:           name,
		APM:            rd.Match.APM[pid],
		Kills:          killCount,
		Commander:      commander,
		CommanderLevel: slot.CommanderLevel,
		Prestige:       r.prestige[pid],
		Masteries:      slot.Masteries,
		Units:          units,
		Icons:          icons,
	}
}

// opposingBucket assembles the opposing-force rows: only unit types with
// kills make the cut, and the generic spawner/structure names are skipped.
func (r *run) opposingBucket(amonKills int) model.StatsBucket {
	units := make(model.StatsBucket, 0)
	for idx, e := range sortedEntries(normalizeBucket(r.bucketOpposing)) {
		if idx >= r.cfg.MaxBucketRows || e.t.kills == 0 || gamedata.IsSkippable(e.name) {
			continue
		}
		units = append(units, model.BucketEntry{
			Name: e.name,
			Stats: model.UnitStats{
				Created:      e.t.created,
				Lost:         e.t.lost,
				Kills:        e.t.kills,
				KillFraction: round2(float64(e.t.kills) / float64(max(1, amonKills))),
			},
		})
	}
	return units
}

// shadeProjections sums the created counts of the shade projection raw
// types, which are displayed as a single icon rather than a unit row.
func (b bucket) shadeProjections() int {
	n := 0
	for _, raw := range gamedata.ShadeProjectionTypes {
		if t, ok := b[raw]; ok {
			n += t.created
		}
	}
	return n
}

type namedTally struct {
	name string
	t    *tally
}

// sortedEntries orders a bucket for presentation: kills descending, then
// created descending, then name. The full key makes report output
// independent of map iteration order.
func sortedEntries(b bucket) []namedTally {
	entries := make([]namedTally, 0, len(b))
	for name, t := range b {
		entries = append(entries, namedTally{name: name, t: t})
	}
	sort.Slice(entries, func(i, j int) bool {
		x, y := entries[i], entries[j]
		if x.t.kills != y.t.kills {
			return x.t.kills > y.t.kills
		}
		if x.t.created != y.t.created {
			return x.t.created > y.t.created
		}
		return x.name < y.name
	})
	return entries
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
