package blocks

import (
	"fmt"
	"sync"
)

// Run scopes instance counters to a single page render. Suffixes are unique
// within the run and reset naturally when a new run is created, so repeated
// renders of the same page produce identical class names.
type Run struct {
	mu     sync.Mutex
	counts map[Kind]int
}

// NewRun returns a fresh counter scope.
func NewRun() *Run {
	return &Run{counts: map[Kind]int{}}
}

// Suffix mints the next per-kind suffix, e.g. "hero-1", "features-2".
func (r *Run) Suffix(kind Kind) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[kind]++
	return fmt.Sprintf("%s-%d", kind, r.counts[kind])
}
