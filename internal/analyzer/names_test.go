package analyzer

import "testing"

func TestNormalizeFoldsChildKills(t *testing.T) {
	b := bucket{
		"SwarmHostMP": &tally{created: 4, lost: 1, kills: 2},
		"LocustMP":    &tally{created: 80, lost: 80, kills: 31},
	}

	out := normalizeBucket(b)

	host, ok := out["Swarm Host"]
	if !ok {
		t.Fatalf("Swarm Host row missing: %v", out)
	}
	if host.kills != 33 {
		t.Errorf("Swarm Host kills = %d, want 33 (own 2 + locust 31)", host.kills)
	}
	if host.created != 4 || host.lost != 1 {
		t.Errorf("Swarm Host created/lost = %d/%d, want 4/1 (locust lifecycle dropped)",
			host.created, host.lost)
	}
	if _, ok := out["LocustMP"]; ok {
		t.Errorf("locust row survived normalization")
	}
}

func TestNormalizeSumsCanonicalPairs(t *testing.T) {
	b := bucket{
		"SiegeTank":       &tally{created: 5, lost: 1, kills: 10},
		"SiegeTankSieged": &tally{created: 2, lost: 1, kills: 40},
	}

	out := normalizeBucket(b)

	tank, ok := out["Siege Tank"]
	if !ok {
		t.Fatalf("Siege Tank row missing: %v", out)
	}
	if tank.created != 7 || tank.lost != 2 || tank.kills != 50 {
		t.Errorf("Siege Tank = %d/%d/%d, want 7/2/50", tank.created, tank.lost, tank.kills)
	}
}

func TestNormalizeKeepsUnknownNames(t *testing.T) {
	b := bucket{"Marine": &tally{created: 12, lost: 3, kills: 25}}

	out := normalizeBucket(b)

	m, ok := out["Marine"]
	if !ok || m.created != 12 || m.lost != 3 || m.kills != 25 {
		t.Errorf("Marine row = %+v, want passthrough 12/3/25", m)
	}
}

// TestNormalizeConservesKills: folding and renaming moves kills around but
// the bucket total never changes.
func TestNormalizeConservesKills(t *testing.T) {
	b := bucket{
		"SwarmHostMP":     &tally{kills: 2},
		"LocustMP":        &tally{kills: 31},
		"Broodling":       &tally{kills: 7},
		"BroodLord":       &tally{kills: 3},
		"SiegeTank":       &tally{kills: 10},
		"SiegeTankSieged": &tally{kills: 40},
		"Marine":          &tally{kills: 5},
	}
	want := 0
	for _, tal := range b {
		want += tal.kills
	}

	got := 0
	for _, tal := range normalizeBucket(b) {
		got += tal.kills
	}
	if got != want {
		t.Errorf("normalized kill total = %d, want %d", got, want)
	}
}
