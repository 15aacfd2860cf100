// File: deque/cursor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Wrap-aware cursor arithmetic shared by every iterator flavour.

package deque

import "github.com/momentics/hioload-deque/api"

// cursor is a snapshot of the storage layout at issue time. first/last are
// the logical window, capacity is the physical ring bound [0, capacity).
// Movement is computed from the snapshot only; the live ring is consulted
// just to detect staleness and to reach elements.
type cursor[T any] struct {
	r        *ring[T]
	gen      uint64
	pos      int
	first    int
	last     int
	capacity int
}

func newCursor[T any](r *ring[T], pos int) cursor[T] {
	return cursor[T]{
		r:        r,
		gen:      r.gen,
		pos:      pos,
		first:    r.head,
		last:     r.tail,
		capacity: r.capacity(),
	}
}

func (c cursor[T]) check() error {
	if c.r == nil {
		return api.ErrInvalidIterator
	}
	if c.gen != c.r.gen {
		return api.CodeError(api.ErrCodeStaleIterator).
			WithContext("issued", c.gen).
			WithContext("current", c.r.gen)
	}
	return nil
}

// offset maps a physical position to its logical distance from first.
func (c cursor[T]) offset(p int) int {
	if p >= c.first {
		return p - c.first
	}
	return p + (c.capacity - c.first)
}

// span is the window length seen by this snapshot.
func (c cursor[T]) span() int { return c.offset(c.last) }

// step moves p by n slots with wraparound at the ring bounds.
func (c cursor[T]) step(p, n int) int {
	return ((p+n)%c.capacity + c.capacity) % c.capacity
}

func (c cursor[T]) ptr() (*T, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if c.pos == c.last {
		return nil, api.ErrNotDereferenceable
	}
	return &c.r.buf[c.pos], nil
}

func (c *cursor[T]) next() error {
	if err := c.check(); err != nil {
		return err
	}
	if c.pos == c.last {
		return api.ErrNotIncrementable
	}
	c.pos = c.step(c.pos, 1)
	return nil
}

func (c *cursor[T]) prev() error {
	if err := c.check(); err != nil {
		return err
	}
	if c.pos == c.first {
		return api.ErrNotDecrementable
	}
	c.pos = c.step(c.pos, -1)
	return nil
}

func (c *cursor[T]) advance(n int) error {
	if err := c.check(); err != nil {
		return err
	}
	off := c.offset(c.pos)
	fwd := c.span() - off
	// off and fwd are non-negative, so neither bound needs -n.
	if n > fwd || n < -off {
		return api.CodeError(api.ErrCodeOutOfRange).
			WithContext("offset", n).
			WithContext("forward", fwd).
			WithContext("backward", off)
	}
	if n != 0 {
		c.pos = c.step(c.pos, n)
	}
	return nil
}

func (c cursor[T]) add(n int) (cursor[T], error) {
	if err := c.advance(n); err != nil {
		return cursor[T]{}, err
	}
	return c, nil
}

func (c cursor[T]) sameWindow(o cursor[T]) bool {
	return c.r == o.r && c.gen == o.gen && c.first == o.first && c.capacity == o.capacity
}

func (c cursor[T]) diff(o cursor[T]) (int, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	if err := o.check(); err != nil {
		return 0, err
	}
	if !c.sameWindow(o) {
		return 0, api.ErrIncompatibleIterators
	}
	return c.offset(c.pos) - c.offset(o.pos), nil
}

func (c cursor[T]) compare(o cursor[T]) (int, error) {
	d, err := c.diff(o)
	if err != nil {
		return 0, err
	}
	switch {
	case d < 0:
		return -1, nil
	case d > 0:
		return 1, nil
	}
	return 0, nil
}

// cmpOK runs compare and reports ok=false on any error, so the boolean
// predicates are false for unrelated iterators.
func (c cursor[T]) cmpOK(o cursor[T]) (int, bool) {
	r, err := c.compare(o)
	return r, err == nil
}
