// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Resize telemetry. ResizeStats implements api.ResizeObserver and keeps
// counters in a thread-safe registry with a snapshot view.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-deque/api"
)

// Ensure compile-time interface compliance.
var _ api.ResizeObserver = (*ResizeStats)(nil)

// ResizeStats accumulates grow/shrink counters.
type ResizeStats struct {
	mu      sync.RWMutex
	grows   uint64
	shrinks uint64
	moved   uint64 // elements relocated across all resizes
	peakCap int
	lastCap int
	updated time.Time
}

// NewResizeStats creates an empty collector.
func NewResizeStats() *ResizeStats {
	return &ResizeStats{}
}

// ObserveResize records one resize event.
func (s *ResizeStats) ObserveResize(ev api.ResizeEvent) {
	s.mu.Lock()
	switch ev.Kind {
	case api.ResizeGrow:
		s.grows++
	case api.ResizeShrink:
		s.shrinks++
	}
	s.moved += uint64(ev.Len)
	if ev.NewCap > s.peakCap {
		s.peakCap = ev.NewCap
	}
	s.lastCap = ev.NewCap
	s.updated = time.Now()
	s.mu.Unlock()
}

// Grows returns the number of growth events.
func (s *ResizeStats) Grows() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grows
}

// Shrinks returns the number of shrink events.
func (s *ResizeStats) Shrinks() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shrinks
}

// GetSnapshot returns the latest metrics.
func (s *ResizeStats) GetSnapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]any{
		"resize.grow":     s.grows,
		"resize.shrink":   s.shrinks,
		"resize.moved":    s.moved,
		"resize.peak_cap": s.peakCap,
		"resize.last_cap": s.lastCap,
		"updated":         s.updated,
	}
}

// Reset zeroes every counter.
func (s *ResizeStats) Reset() {
	s.mu.Lock()
	s.grows, s.shrinks, s.moved = 0, 0, 0
	s.peakCap, s.lastCap = 0, 0
	s.updated = time.Time{}
	s.mu.Unlock()
}
