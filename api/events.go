// File: api/events.go
// Package api defines core event types for hioload-deque.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// ResizeKind tells grow and shrink apart.
type ResizeKind int

const (
	ResizeGrow ResizeKind = iota
	ResizeShrink
)

// String returns a lowercase name for the kind.
func (k ResizeKind) String() string {
	switch k {
	case ResizeGrow:
		return "grow"
	case ResizeShrink:
		return "shrink"
	}
	return "unknown"
}

// ResizeEvent is emitted after storage has been relocated.
type ResizeEvent struct {
	Kind   ResizeKind
	OldCap int
	NewCap int
	Len    int // live elements moved
}

// ResizeObserver receives resize notifications synchronously.
type ResizeObserver interface {
	ObserveResize(ev ResizeEvent)
}

// ResizeObserverFunc adapts a plain function to ResizeObserver.
type ResizeObserverFunc func(ev ResizeEvent)

// ObserveResize calls f(ev).
func (f ResizeObserverFunc) ObserveResize(ev ResizeEvent) { f(ev) }
