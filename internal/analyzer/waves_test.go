package analyzer

import "testing"

func feed(w *waveDetector, second, n int, unitType string) {
	for i := 0; i < n; i++ {
		w.observe(second, unitType)
	}
}

func TestWaveThresholdBoundary(t *testing.T) {
	w := newWaveDetector(6)

	feed(w, 90, 6, "Zergling")
	if len(w.waves()) != 0 {
		t.Fatalf("wave identified at exactly the threshold, want none")
	}

	w.observe(90, "Zergling")
	waves := w.waves()
	if len(waves) != 1 {
		t.Fatalf("identified %d waves, want 1 past the threshold", len(waves))
	}
	if waves[0].Second != 90 || len(waves[0].UnitTypes) != 7 {
		t.Errorf("wave = second %d with %d spawns, want second 90 with 7",
			waves[0].Second, len(waves[0].UnitTypes))
	}
}

func TestWaveBufferResetsOnNewSecond(t *testing.T) {
	w := newWaveDetector(6)

	feed(w, 90, 5, "Zergling")
	feed(w, 91, 5, "Hydralisk")
	if len(w.waves()) != 0 {
		t.Errorf("activity split across seconds identified as a wave")
	}

	feed(w, 92, 7, "Roach")
	waves := w.waves()
	if len(waves) != 1 || waves[0].Second != 92 {
		t.Fatalf("waves = %+v, want a single wave at second 92", waves)
	}
}

func TestWaveRecordDoesNotAliasBuffer(t *testing.T) {
	w := newWaveDetector(6)

	feed(w, 90, 7, "Zergling")
	feed(w, 120, 7, "Mutalisk")

	waves := w.waves()
	if len(waves) != 2 {
		t.Fatalf("identified %d waves, want 2", len(waves))
	}
	for _, u := range waves[0].UnitTypes {
		if u != "Zergling" {
			t.Fatalf("first wave corrupted by later buffer activity: %v", waves[0].UnitTypes)
		}
	}
}

func TestWaveKeepsGrowingWithinSecond(t *testing.T) {
	w := newWaveDetector(6)

	feed(w, 90, 9, "Zergling")
	waves := w.waves()
	if len(waves) != 1 || len(waves[0].UnitTypes) != 9 {
		t.Fatalf("waves = %+v, want one 9-spawn wave", waves)
	}
}

func TestWavesSortedBySecond(t *testing.T) {
	w := newWaveDetector(2)

	feed(w, 300, 3, "Ultralisk")
	feed(w, 100, 3, "Zergling")
	feed(w, 200, 3, "Hydralisk")

	waves := w.waves()
	if len(waves) != 3 {
		t.Fatalf("identified %d waves, want 3", len(waves))
	}
	for i := 1; i < len(waves); i++ {
		if waves[i-1].Second >= waves[i].Second {
			t.Fatalf("waves out of order: %+v", waves)
		}
	}
}
