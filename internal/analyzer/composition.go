package analyzer

import (
	log "github.com/sirupsen/logrus"

	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/gamedata"
	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/model"
)

// UnidentifiedComposition is returned when no template scored any points, or
// no waves were identified at all.
const UnidentifiedComposition = "unidentified AI"

// matchComposition scores every identified wave against the template
// library and returns the best-matching archetype name together with its
// share of all awarded points. An exact match with a reference wave-set is
// worth the set's size; a one-element-short strict subset is worth a
// quarter of that (tolerates a single substituted or unnoticed unit).
// Equal totals resolve to the template registered earlier in the library.
func matchComposition(waves []model.IdentifiedWave, library []gamedata.Composition) (string, float64) {
	if len(waves) == 0 {
		return UnidentifiedComposition, 0
	}

	scores := make([]float64, len(library))

	for _, wave := range waves {
		types := reducedSet(wave.UnitTypes)
		if len(types) == 0 {
			continue
		}

		for i, comp := range library {
			for _, ref := range comp.Waves {
				refSet := reducedSet(ref)
				if len(refSet) == 0 {
					continue
				}
				if setsEqual(types, refSet) {
					scores[i] += float64(len(refSet))
					continue
				}
				if isSubset(types, refSet) && len(refSet)-len(types) == 1 {
					scores[i] += 0.25 * float64(len(refSet))
				}
			}
		}
	}

	var total float64
	best := -1
	for i, s := range scores {
		total += s
		// Strictly greater: earlier library entries win ties.
		if s > 0 && (best < 0 || s > scores[best]) {
			best = i
		}
	}
	if best < 0 {
		return UnidentifiedComposition, 0
	}

	confidence := scores[best] / total
	log.WithFields(log.Fields{
		"composition": library[best].Name,
		"score":       scores[best],
		"confidence":  confidence,
	}).Debug("matched opposing composition")
	return library[best].Name, confidence
}

// reducedSet turns a unit-type sequence into a set with the non-wave unit
// types removed.
func reducedSet(unitTypes []string) map[string]bool {
	set := make(map[string]bool, len(unitTypes))
	for _, u := range unitTypes {
		if !gamedata.NonWaveUnits[u] {
			set[u] = true
		}
	}
	return set
}

func setsEqual(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	return isSubset(a, b)
}

func isSubset(sub, super map[string]bool) bool {
	for u := range sub {
		if !super[u] {
			return false
		}
	}
	return true
}
