package analyzer

import (
	"sort"

	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/model"
)

// waveDetector buffers opposing-force spawn activity per second of match
// time. A buffer that grows past the threshold is promoted to an identified
// wave; a spawn on a later second supersedes the buffer.
type waveDetector struct {
	threshold int

	bufSecond int
	buf       []string

	identified map[int][]string
}

func newWaveDetector(threshold int) *waveDetector {
	return &waveDetector{
		threshold:  threshold,
		bufSecond:  -1,
		identified: make(map[int][]string),
	}
}

// observe appends a spawn to the current second's buffer, resetting it when
// a new second of activity begins. Once the buffer length exceeds the
// threshold, the entire buffer (spawn order kept, not deduplicated) is
// recorded as the identified wave for that second, replacing any earlier
// record for it.
func (w *waveDetector) observe(second int, unitType string) {
	if second == w.bufSecond {
		w.buf = append(w.buf, unitType)
	} else {
		w.bufSecond = second
		w.buf = w.buf[:0]
		w.buf = append(w.buf, unitType)
	}

	if len(w.buf) > w.threshold {
		// Promote a copy: the buffer keeps growing and must not alias the
		// recorded wave.
		w.identified[second] = append([]string(nil), w.buf...)
	}
}

// waves returns the identified waves ordered by second.
func (w *waveDetector) waves() []model.IdentifiedWave {
	seconds := make([]int, 0, len(w.identified))
	for s := range w.identified {
		seconds = append(seconds, s)
	}
	sort.Ints(seconds)

	out := make([]model.IdentifiedWave, 0, len(seconds))
	for _, s := range seconds {
		out = append(out, model.IdentifiedWave{Second: s, UnitTypes: w.identified[s]})
	}
	return out
}
