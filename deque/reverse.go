// File: deque/reverse.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reverse adaptors. A reverse position wraps a forward base and
// dereferences the element one step before it, so RBegin() wraps End()
// and REnd() wraps Begin().

package deque

import (
	"errors"

	"github.com/momentics/hioload-deque/api"
)

type rcursor[T any] struct {
	base cursor[T]
}

func (c rcursor[T]) ptr() (*T, error) {
	if err := c.base.check(); err != nil {
		return nil, err
	}
	if c.base.pos == c.base.first {
		return nil, api.ErrNotDereferenceable
	}
	return &c.base.r.buf[c.base.step(c.base.pos, -1)], nil
}

func (c *rcursor[T]) next() error {
	if err := c.base.prev(); err != nil {
		if errors.Is(err, api.ErrNotDecrementable) {
			return api.ErrNotIncrementable
		}
		return err
	}
	return nil
}

func (c *rcursor[T]) prev() error {
	if err := c.base.next(); err != nil {
		if errors.Is(err, api.ErrNotIncrementable) {
			return api.ErrNotDecrementable
		}
		return err
	}
	return nil
}

func (c *rcursor[T]) advance(n int) error { return c.base.advance(-n) }

func (c rcursor[T]) add(n int) (rcursor[T], error) {
	b, err := c.base.add(-n)
	return rcursor[T]{b}, err
}

func (c rcursor[T]) diff(o rcursor[T]) (int, error) { return o.base.diff(c.base) }

func (c rcursor[T]) compare(o rcursor[T]) (int, error) { return o.base.compare(c.base) }

func (c rcursor[T]) cmpOK(o rcursor[T]) (int, bool) { return o.base.cmpOK(c.base) }

// offset is the reverse logical index: RBegin() is 0.
func (c rcursor[T]) offset() int { return c.base.span() - c.base.offset(c.base.pos) }

// ReverseIterator walks a Deque from back to front with write access.
type ReverseIterator[T any] struct {
	c rcursor[T]
}

// Get returns the element just before the base position.
func (it ReverseIterator[T]) Get() (T, error) {
	p, err := it.c.ptr()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ptr returns the address of the element just before the base position.
func (it ReverseIterator[T]) Ptr() (*T, error) { return it.c.ptr() }

// Set overwrites the element just before the base position.
func (it ReverseIterator[T]) Set(v T) error {
	p, err := it.c.ptr()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Next moves one element towards the front.
func (it *ReverseIterator[T]) Next() error { return it.c.next() }

// Prev moves one element towards the back.
func (it *ReverseIterator[T]) Prev() error { return it.c.prev() }

// Advance moves n elements towards the front.
func (it *ReverseIterator[T]) Advance(n int) error { return it.c.advance(n) }

// Add returns a copy moved n elements.
func (it ReverseIterator[T]) Add(n int) (ReverseIterator[T], error) {
	c, err := it.c.add(n)
	return ReverseIterator[T]{c}, err
}

// Sub returns a copy moved -n elements.
func (it ReverseIterator[T]) Sub(n int) (ReverseIterator[T], error) {
	c, err := it.c.add(-n)
	return ReverseIterator[T]{c}, err
}

// Diff returns it - o in elements.
func (it ReverseIterator[T]) Diff(o ReverseIterator[T]) (int, error) { return it.c.diff(o.c) }

// Compare returns -1, 0 or +1 as it is before, at or after o.
func (it ReverseIterator[T]) Compare(o ReverseIterator[T]) (int, error) {
	return it.c.compare(o.c)
}

// Offset returns the distance from RBegin().
func (it ReverseIterator[T]) Offset() int { return it.c.offset() }

// Base returns the underlying forward iterator.
func (it ReverseIterator[T]) Base() Iterator[T] { return Iterator[T]{it.c.base} }

// Const converts to a read-only reverse iterator.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] { return ConstReverseIterator[T]{it.c} }

// Equal reports whether both iterators denote the same position.
func (it ReverseIterator[T]) Equal(o ReverseIterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r == 0
}

// NotEqual is the negation of Equal.
func (it ReverseIterator[T]) NotEqual(o ReverseIterator[T]) bool { return !it.Equal(o) }

// Less reports it < o. Unrelated or stale iterators are never ordered.
func (it ReverseIterator[T]) Less(o ReverseIterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r < 0
}

// LessOrEqual reports it <= o.
func (it ReverseIterator[T]) LessOrEqual(o ReverseIterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r <= 0
}

// Greater reports it > o.
func (it ReverseIterator[T]) Greater(o ReverseIterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r > 0
}

// GreaterOrEqual reports it >= o.
func (it ReverseIterator[T]) GreaterOrEqual(o ReverseIterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r >= 0
}

// ConstReverseIterator walks a Deque from back to front, read-only.
type ConstReverseIterator[T any] struct {
	c rcursor[T]
}

// Get returns the element just before the base position.
func (it ConstReverseIterator[T]) Get() (T, error) {
	p, err := it.c.ptr()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Next moves one element towards the front.
func (it *ConstReverseIterator[T]) Next() error { return it.c.next() }

// Prev moves one element towards the back.
func (it *ConstReverseIterator[T]) Prev() error { return it.c.prev() }

// Advance moves n elements towards the front.
func (it *ConstReverseIterator[T]) Advance(n int) error { return it.c.advance(n) }

// Add returns a copy moved n elements.
func (it ConstReverseIterator[T]) Add(n int) (ConstReverseIterator[T], error) {
	c, err := it.c.add(n)
	return ConstReverseIterator[T]{c}, err
}

// Sub returns a copy moved -n elements.
func (it ConstReverseIterator[T]) Sub(n int) (ConstReverseIterator[T], error) {
	c, err := it.c.add(-n)
	return ConstReverseIterator[T]{c}, err
}

// Diff returns it - o in elements.
func (it ConstReverseIterator[T]) Diff(o ConstReverseIterator[T]) (int, error) {
	return it.c.diff(o.c)
}

// Compare returns -1, 0 or +1 as it is before, at or after o.
func (it ConstReverseIterator[T]) Compare(o ConstReverseIterator[T]) (int, error) {
	return it.c.compare(o.c)
}

// Offset returns the distance from RBegin().
func (it ConstReverseIterator[T]) Offset() int { return it.c.offset() }

// Base returns the underlying read-only forward iterator.
func (it ConstReverseIterator[T]) Base() ConstIterator[T] { return ConstIterator[T]{it.c.base} }

// Equal reports whether both iterators denote the same position.
func (it ConstReverseIterator[T]) Equal(o ConstReverseIterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r == 0
}

// NotEqual is the negation of Equal.
func (it ConstReverseIterator[T]) NotEqual(o ConstReverseIterator[T]) bool { return !it.Equal(o) }

// Less reports it < o. Unrelated or stale iterators are never ordered.
func (it ConstReverseIterator[T]) Less(o ConstReverseIterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r < 0
}

// LessOrEqual reports it <= o.
func (it ConstReverseIterator[T]) LessOrEqual(o ConstReverseIterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r <= 0
}

// Greater reports it > o.
func (it ConstReverseIterator[T]) Greater(o ConstReverseIterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r > 0
}

// GreaterOrEqual reports it >= o.
func (it ConstReverseIterator[T]) GreaterOrEqual(o ConstReverseIterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r >= 0
}
