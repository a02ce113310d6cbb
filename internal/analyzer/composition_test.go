package analyzer

import (
	"testing"

	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/gamedata"
	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/model"
)

var testLibrary = []gamedata.Composition{
	{Name: "Swarm", Waves: [][]string{
		{"Zergling", "Hydralisk"},
		{"Zergling", "Hydralisk", "Ultralisk", "Infestor"},
	}},
	{Name: "Sky", Waves: [][]string{
		{"Mutalisk", "Corruptor"},
		{"Mutalisk", "Corruptor", "BroodLord", "Viper"},
	}},
}

func wave(second int, types ...string) model.IdentifiedWave {
	return model.IdentifiedWave{Second: second, UnitTypes: types}
}

func TestMatchCompositionExact(t *testing.T) {
	name, confidence := matchComposition([]model.IdentifiedWave{
		wave(90, "Zergling", "Hydralisk", "Zergling"),
	}, testLibrary)

	if name != "Swarm" {
		t.Fatalf("matched %q, want Swarm", name)
	}
	if confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0 for a single exact match", confidence)
	}
}

// TestMatchCompositionSubset: a wave one unit short of a reference set still
// scores, at a quarter of the exact value.
func TestMatchCompositionSubset(t *testing.T) {
	name, _ := matchComposition([]model.IdentifiedWave{
		wave(300, "Mutalisk", "Corruptor", "BroodLord"),
	}, testLibrary)

	if name != "Sky" {
		t.Fatalf("matched %q, want Sky from a one-short subset", name)
	}
}

func TestMatchCompositionTwoShortScoresNothing(t *testing.T) {
	name, _ := matchComposition([]model.IdentifiedWave{
		wave(300, "Mutalisk", "Corruptor"),
	}, []gamedata.Composition{
		{Name: "Sky", Waves: [][]string{{"Mutalisk", "Corruptor", "BroodLord", "Viper"}}},
	})

	if name != UnidentifiedComposition {
		t.Errorf("matched %q, want %q for a two-short subset", name, UnidentifiedComposition)
	}
}

func TestMatchCompositionTieBreak(t *testing.T) {
	// Both templates contain the same wave; the earlier entry must win.
	library := []gamedata.Composition{
		{Name: "First", Waves: [][]string{{"Zergling", "Hydralisk"}}},
		{Name: "Second", Waves: [][]string{{"Zergling", "Hydralisk"}}},
	}
	name, confidence := matchComposition([]model.IdentifiedWave{
		wave(90, "Zergling", "Hydralisk"),
	}, library)

	if name != "First" {
		t.Fatalf("matched %q, want First on a tie", name)
	}
	if confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5 when points split evenly", confidence)
	}
}

func TestMatchCompositionNoWaves(t *testing.T) {
	name, confidence := matchComposition(nil, testLibrary)

	if name != UnidentifiedComposition || confidence != 0 {
		t.Errorf("got %q/%v, want %q/0", name, confidence, UnidentifiedComposition)
	}
}

func TestMatchCompositionIgnoresNonWaveUnits(t *testing.T) {
	// Drop-pod noise inside the wave must not break an exact match.
	name, _ := matchComposition([]model.IdentifiedWave{
		wave(90, "Zergling", "Hydralisk", "TerranDropPod", "Overlord"),
	}, testLibrary)

	if name != "Swarm" {
		t.Errorf("matched %q, want Swarm with non-wave noise removed", name)
	}
}
