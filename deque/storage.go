// File: deque/storage.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Circular storage: one contiguous block treated as a ring, with a logical
// window [head, tail) that may wrap past the physical end.

package deque

import (
	"fmt"
	"math"

	"github.com/momentics/hioload-deque/api"
)

// ring owns the element block. size < len(buf) always holds, so
// head == tail means empty and never full.
type ring[T any] struct {
	buf  []T
	head int // windowStart: physical index of the front element
	tail int // windowEnd: physical index one past the back element
	size int
	gen  uint64 // bumped by every structural mutation
}

// allocate returns a block of n slots. makeslice failures surface as
// api.ErrResourceExhausted instead of crashing the caller.
func allocate[T any](n int) (buf []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = api.CodeError(api.ErrCodeResourceExhausted).
				WithContext("slots", n).
				WithContext("cause", fmt.Sprint(r))
		}
	}()
	return make([]T, n), nil
}

func newRing[T any](capacity int) (*ring[T], error) {
	buf, err := allocate[T](capacity)
	if err != nil {
		return nil, err
	}
	return &ring[T]{buf: buf}, nil
}

func (r *ring[T]) capacity() int { return len(r.buf) }

func (r *ring[T]) wrapped() bool { return r.size > 0 && r.head >= r.tail }

// forward returns the physical index n steps after p.
func (r *ring[T]) forward(p, n int) int {
	c := len(r.buf)
	return ((p+n)%c + c) % c
}

// slot maps a logical index onto the block.
func (r *ring[T]) slot(i int) int { return r.forward(r.head, i) }

func (r *ring[T]) pushBack(v T) {
	r.buf[r.tail] = v
	r.tail = r.forward(r.tail, 1)
	r.size++
	r.gen++
}

func (r *ring[T]) pushFront(v T) {
	r.head = r.forward(r.head, -1)
	r.buf[r.head] = v
	r.size++
	r.gen++
}

func (r *ring[T]) popBack() T {
	var zero T
	r.tail = r.forward(r.tail, -1)
	v := r.buf[r.tail]
	r.buf[r.tail] = zero
	r.size--
	r.gen++
	return v
}

func (r *ring[T]) popFront() T {
	var zero T
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = r.forward(r.head, 1)
	r.size--
	r.gen++
	return v
}

// linearize copies the live window, in order, to the start of dst.
func (r *ring[T]) linearize(dst []T) {
	if !r.wrapped() {
		copy(dst, r.buf[r.head:r.head+r.size])
		return
	}
	n := copy(dst, r.buf[r.head:])
	copy(dst[n:], r.buf[:r.tail])
}

// relocate moves the window into a fresh block of n slots starting at
// offset 0. The old block is released only after the copy succeeded.
func (r *ring[T]) relocate(n int) error {
	buf, err := allocate[T](n)
	if err != nil {
		return err
	}
	r.linearize(buf)
	r.buf = buf
	r.head = 0
	r.tail = r.size % n
	r.gen++
	return nil
}

// grow doubles the block. limit bounds the slot count, 0 means unbounded.
func (r *ring[T]) grow(limit int) error {
	c := r.capacity()
	if c > math.MaxInt/2 {
		return api.CodeError(api.ErrCodeResourceExhausted).WithContext("capacity", c)
	}
	n := c * 2
	if n < 1 {
		n = 1
	}
	if limit > 0 && n > limit {
		if c >= limit {
			return api.CodeError(api.ErrCodeResourceExhausted).
				WithContext("capacity", c).
				WithContext("max", limit)
		}
		n = limit
	}
	return r.relocate(n)
}

// shrink halves the block, stopping at floor. It reports whether storage
// actually moved.
func (r *ring[T]) shrink(floor int) (bool, error) {
	c := r.capacity()
	if c <= floor {
		return false, nil
	}
	n := c / 2
	if n < floor {
		n = floor
	}
	if r.size >= n {
		return false, nil
	}
	if err := r.relocate(n); err != nil {
		return false, err
	}
	return true, nil
}

// reset drops the window and swaps in a zeroed block of n slots. n must
// already have been allocated once, so failure is not expected.
func (r *ring[T]) reset(n int) {
	if len(r.buf) == n {
		clear(r.buf)
	} else {
		r.buf = make([]T, n)
	}
	r.head, r.tail, r.size = 0, 0, 0
	r.gen++
}

// clone deep-copies the window into a block of the same capacity.
func (r *ring[T]) clone() (*ring[T], error) {
	buf, err := allocate[T](r.capacity())
	if err != nil {
		return nil, err
	}
	r.linearize(buf)
	return &ring[T]{buf: buf, tail: r.size % len(buf), size: r.size}, nil
}
