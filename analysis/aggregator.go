package analysis

import (
	"sort"
	"time"

	"github.com/sleeplessghost/en-croissant/uci"
)

// aggregator buffers one SearchInfo per multipv index and decides when a
// coherent snapshot exists. Engines report intermediate per-depth results
// continuously; only a full batch where every requested line has converged
// on the same depth is worth surfacing, and the debounce bounds the update
// rate for an incrementally rendering consumer.
//
// A batch that reaches full size is always cleared, whether or not it
// passed the gate: a failed batch is discarded, never merged forward.
type aggregator struct {
	lines    int
	minDepth int
	debounce time.Duration
	now      func() time.Time

	batch    map[int]uci.SearchInfo
	lastEmit time.Time
}

func newAggregator(lines, minDepth int, debounce time.Duration, now func() time.Time) *aggregator {
	return &aggregator{
		lines:    lines,
		minDepth: minDepth,
		debounce: debounce,
		now:      now,
		batch:    make(map[int]uci.SearchInfo, lines),
	}
}

// add inserts info keyed by its multipv index, overwriting any stale entry
// at that index. When the batch reaches the requested line count it is
// consumed: on a gate pass the entries are returned ordered by multipv
// index with ok=true; otherwise (nil, false). Either way the batch is
// empty afterwards. The caller reports delivery via emitted; a batch that
// passes the gate but is never delivered does not delay the next one.
func (a *aggregator) add(info uci.SearchInfo) ([]uci.SearchInfo, bool) {
	a.batch[info.MultiPV] = info
	if len(a.batch) < a.lines {
		return nil, false
	}

	batch := make([]uci.SearchInfo, 0, len(a.batch))
	for _, entry := range a.batch {
		batch = append(batch, entry)
	}
	clear(a.batch)

	sort.Slice(batch, func(i, j int) bool {
		return batch[i].MultiPV < batch[j].MultiPV
	})

	depth := batch[0].Depth
	for _, entry := range batch[1:] {
		if entry.Depth != depth {
			return nil, false
		}
	}
	if depth < a.minDepth {
		return nil, false
	}
	if a.now().Sub(a.lastEmit) <= a.debounce {
		return nil, false
	}
	return batch, true
}

// emitted records a successful delivery. The debounce gate measures from
// the last delivered batch, not the last gate pass.
func (a *aggregator) emitted() {
	a.lastEmit = a.now()
}
