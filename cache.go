package ctl

import (
	"cmp"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// markingCache memoizes markings for one structure revision. Concurrent
// requests for the same formula are collapsed into a single computation.
type markingCache[S cmp.Ordered] struct {
	mu       sync.Mutex
	revision uint64
	entries  map[string]Marking[S]
	group    singleflight.Group
}

func newMarkingCache[S cmp.Ordered]() *markingCache[S] {
	return &markingCache[S]{entries: make(map[string]Marking[S])}
}

func (mc *markingCache[S]) lookup(revision uint64, f Formula, compute func(Formula) Marking[S]) Marking[S] {
	key := f.String()

	mc.mu.Lock()
	if mc.revision != revision {
		mc.revision = revision
		mc.entries = make(map[string]Marking[S])
	}
	if m, ok := mc.entries[key]; ok {
		mc.mu.Unlock()
		return m
	}
	mc.mu.Unlock()

	// A subformula always prints shorter than its parent, so a computation
	// never waits on its own key.
	v, _, _ := mc.group.Do(strconv.FormatUint(revision, 10)+"/"+key, func() (any, error) {
		m := compute(f)
		mc.mu.Lock()
		if mc.revision == revision {
			mc.entries[key] = m
		}
		mc.mu.Unlock()
		return m, nil
	})
	return v.(Marking[S])
}

func (mc *markingCache[S]) len() int {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return len(mc.entries)
}
