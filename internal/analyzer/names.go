package analyzer

import "github.com/nanpuhaha/SC2-Coop-Overlay/internal/gamedata"

// normalizeBucket rewrites a raw-keyed bucket into a canonical-keyed one.
// Credit-only aliases (locusts, broodlings, interceptors, ...) fold their
// kills into the parent type without contributing created/lost counts;
// every other raw key is renamed to its canonical display name, and raw
// keys sharing a canonical name are summed. The total kill count of the
// bucket is unchanged by construction.
func normalizeBucket(b bucket) bucket {
	out := make(bucket, len(b))
	for raw, t := range b {
		if parent, ok := gamedata.AddKillsTo[raw]; ok {
			out.get(parent).kills += t.kills
			continue
		}
		dst := out.get(gamedata.CanonicalName(raw))
		dst.created += t.created
		dst.lost += t.lost
		dst.kills += t.kills
	}
	return out
}
