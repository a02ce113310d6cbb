package analyzer

import "github.com/nanpuhaha/SC2-Coop-Overlay/internal/model"

// unitRecord is the live-unit state tracked per tag: the unit's current raw
// type and owning participant.
type unitRecord struct {
	UnitType string
	Owner    model.ParticipantID
}

// unitRegistry maps live-unit tags to their current record. Unknown tags are
// a normal occurrence (partial loads, telemetry gaps) and every operation
// tolerates them silently. Records are kept after death so that same-tick
// events following a death can still resolve the tag.
type unitRegistry map[model.UnitTag]*unitRecord

// put inserts or overwrites the record for a tag.
func (r unitRegistry) put(tag model.UnitTag, unitType string, owner model.ParticipantID) {
	r[tag] = &unitRecord{UnitType: unitType, Owner: owner}
}

// lookup returns the current record for a tag.
func (r unitRegistry) lookup(tag model.UnitTag) (unitRecord, bool) {
	rec, ok := r[tag]
	if !ok {
		return unitRecord{}, false
	}
	return *rec, true
}

// setOwner rewrites only the owner of an existing record; no-op for unknown
// tags.
func (r unitRegistry) setOwner(tag model.UnitTag, owner model.ParticipantID) {
	if rec, ok := r[tag]; ok {
		rec.Owner = owner
	}
}

// setType rewrites only the type of an existing record and returns the
// previous raw type. ok is false for unknown tags.
func (r unitRegistry) setType(tag model.UnitTag, unitType string) (old string, owner model.ParticipantID, ok bool) {
	rec, exists := r[tag]
	if !exists {
		return "", 0, false
	}
	old = rec.UnitType
	rec.UnitType = unitType
	return old, rec.Owner, true
}
