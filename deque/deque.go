// File: deque/deque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Deque container over circular storage. Grows one slot before the ring
// would fill and shrinks at quarter occupancy.

package deque

import (
	"fmt"

	"github.com/momentics/hioload-deque/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.Deque[any]  = (*Deque[any])(nil)
	_ api.StateDumper = (*Deque[any])(nil)
)

// Deque is a double-ended queue with O(1) amortized pushes and pops at both
// ends and O(1) indexed access. Not safe for concurrent use.
type Deque[T any] struct {
	cfg  Config
	ring *ring[T]
}

// New allocates an empty deque. It panics when the options produce an
// invalid Config.
func New[T any](opts ...Option) *Deque[T] {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	r, err := newRing[T](cfg.InitialCapacity)
	if err != nil {
		panic(err)
	}
	return &Deque[T]{cfg: *cfg, ring: r}
}

// Clone returns a deep copy. Iterators of d are never valid on the copy.
func (d *Deque[T]) Clone() (*Deque[T], error) {
	r, err := d.ring.clone()
	if err != nil {
		return nil, err
	}
	return &Deque[T]{cfg: d.cfg, ring: r}, nil
}

// Len returns the number of live elements.
func (d *Deque[T]) Len() int { return d.ring.size }

// Cap returns the number of allocated slots. Len() < Cap() always holds.
func (d *Deque[T]) Cap() int { return d.ring.capacity() }

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool { return d.ring.size == 0 }

// PushBack appends v. It fails only when storage cannot grow.
func (d *Deque[T]) PushBack(v T) error {
	if err := d.reserve(); err != nil {
		return err
	}
	d.ring.pushBack(v)
	return nil
}

// PushFront prepends v. It fails only when storage cannot grow.
func (d *Deque[T]) PushFront(v T) error {
	if err := d.reserve(); err != nil {
		return err
	}
	d.ring.pushFront(v)
	return nil
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() (T, error) {
	if d.ring.size == 0 {
		var zero T
		return zero, api.CodeError(api.ErrCodeEmptyContainer).WithContext("op", "PopBack")
	}
	v := d.ring.popBack()
	d.release()
	return v, nil
}

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() (T, error) {
	if d.ring.size == 0 {
		var zero T
		return zero, api.CodeError(api.ErrCodeEmptyContainer).WithContext("op", "PopFront")
	}
	v := d.ring.popFront()
	d.release()
	return v, nil
}

// Front returns the first element.
func (d *Deque[T]) Front() (T, error) {
	if d.ring.size == 0 {
		var zero T
		return zero, api.CodeError(api.ErrCodeEmptyContainer).WithContext("op", "Front")
	}
	return d.ring.buf[d.ring.head], nil
}

// Back returns the last element.
func (d *Deque[T]) Back() (T, error) {
	if d.ring.size == 0 {
		var zero T
		return zero, api.CodeError(api.ErrCodeEmptyContainer).WithContext("op", "Back")
	}
	return d.ring.buf[d.ring.slot(d.ring.size-1)], nil
}

// At returns the element at logical index i.
func (d *Deque[T]) At(i int) (T, error) {
	if err := d.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return d.ring.buf[d.ring.slot(i)], nil
}

// Set replaces the element at logical index i. Iterators stay valid.
func (d *Deque[T]) Set(i int, v T) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.ring.buf[d.ring.slot(i)] = v
	return nil
}

// Clear drops every element and returns storage to the initial capacity.
func (d *Deque[T]) Clear() {
	d.ring.reset(d.cfg.InitialCapacity)
}

// DumpState returns a diagnostic snapshot of the storage layout.
func (d *Deque[T]) DumpState() map[string]any {
	return map[string]any{
		"len":        d.ring.size,
		"cap":        d.ring.capacity(),
		"head":       d.ring.head,
		"tail":       d.ring.tail,
		"wrapped":    d.ring.wrapped(),
		"generation": d.ring.gen,
	}
}

// String renders the live elements front to back.
func (d *Deque[T]) String() string {
	return fmt.Sprint(d.Collect())
}

func (d *Deque[T]) checkIndex(i int) error {
	if i < 0 || i >= d.ring.size {
		return api.CodeError(api.ErrCodeIndexOutOfRange).
			WithContext("index", i).
			WithContext("len", d.ring.size)
	}
	return nil
}

// reserve grows storage when one more element would fill the ring.
func (d *Deque[T]) reserve() error {
	if d.ring.size+1 < d.ring.capacity() {
		return nil
	}
	old := d.ring.capacity()
	if err := d.ring.grow(d.cfg.MaxCapacity); err != nil {
		return err
	}
	d.notify(api.ResizeGrow, old)
	return nil
}

// release shrinks storage at quarter occupancy. Shrinking is an
// optimisation: an allocation failure leaves the larger block in place.
func (d *Deque[T]) release() {
	if d.cfg.ShrinkDisabled {
		return
	}
	old := d.ring.capacity()
	if d.ring.size*shrinkRatio > old {
		return
	}
	moved, err := d.ring.shrink(d.cfg.MinCapacity)
	if err != nil || !moved {
		return
	}
	d.notify(api.ResizeShrink, old)
}

func (d *Deque[T]) notify(kind api.ResizeKind, old int) {
	if d.cfg.Observer == nil {
		return
	}
	d.cfg.Observer.ObserveResize(api.ResizeEvent{
		Kind:   kind,
		OldCap: old,
		NewCap: d.ring.capacity(),
		Len:    d.ring.size,
	})
}
