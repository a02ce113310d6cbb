package analyzer

import "testing"

func TestRegistryLookupReturnsCopy(t *testing.T) {
	r := make(unitRegistry)
	r.put(1, "Marine", 1)

	rec, ok := r.lookup(1)
	if !ok {
		t.Fatalf("lookup missed a stored tag")
	}
	rec.UnitType = "Marauder"

	again, _ := r.lookup(1)
	if again.UnitType != "Marine" {
		t.Errorf("registry record mutated through a lookup copy")
	}
}

func TestRegistryUnknownTagOperations(t *testing.T) {
	r := make(unitRegistry)

	if _, ok := r.lookup(42); ok {
		t.Errorf("lookup hit an unknown tag")
	}
	r.setOwner(42, 1)
	if _, _, ok := r.setType(42, "Marine"); ok {
		t.Errorf("setType succeeded for an unknown tag")
	}
	if len(r) != 0 {
		t.Errorf("operations on unknown tags created records")
	}
}

func TestRegistrySetTypeReturnsPrevious(t *testing.T) {
	r := make(unitRegistry)
	r.put(7, "Hellion", 2)

	old, owner, ok := r.setType(7, "HellionTank")
	if !ok || old != "Hellion" || owner != 2 {
		t.Fatalf("setType = (%q, %d, %v), want (Hellion, 2, true)", old, owner, ok)
	}
	rec, _ := r.lookup(7)
	if rec.UnitType != "HellionTank" {
		t.Errorf("type not updated: %q", rec.UnitType)
	}
}

func TestRegistryTagReuseOverwrites(t *testing.T) {
	r := make(unitRegistry)
	r.put(9, "Zergling", 3)
	r.put(9, "Baneling", 4)

	rec, _ := r.lookup(9)
	if rec.UnitType != "Baneling" || rec.Owner != 4 {
		t.Errorf("reused tag = %+v, want the newer record", rec)
	}
}
