package analyzer

// tally is one mutable per-unit-type accumulator. A named struct rather than
// a positional tuple, so bucket entries can never alias each other.
type tally struct {
	created int
	lost    int
	kills   int
}

// bucket accumulates per-unit-type tallies for one side of the match
// (primary participant, partner participant, or the opposing force). Keys
// are raw unit-type names; canonical renaming happens at report-build time.
type bucket map[string]*tally

func (b bucket) get(unitType string) *tally {
	t, ok := b[unitType]
	if !ok {
		t = &tally{}
		b[unitType] = t
	}
	return t
}

// ensure initializes a zeroed tally for a first-seen unit type without
// recording anything (used for same-name cosmetic morphs).
func (b bucket) ensure(unitType string) {
	b.get(unitType)
}

func (b bucket) recordCreated(unitType string) {
	b.get(unitType).created++
}

func (b bucket) recordLost(unitType string) {
	b.get(unitType).lost++
}

func (b bucket) recordKill(unitType string) {
	b.get(unitType).kills++
}

// undoCreated reverses one creation; used by the self-kill and
// duplicate-morph corrections.
func (b bucket) undoCreated(unitType string) {
	b.get(unitType).created--
}
