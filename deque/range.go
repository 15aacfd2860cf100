// File: deque/range.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Iterator factories and Go range-over-func sequences.

package deque

import "iter"

// Begin returns a mutable iterator at the front element.
func (d *Deque[T]) Begin() Iterator[T] {
	return Iterator[T]{newCursor(d.ring, d.ring.head)}
}

// End returns the past-the-end mutable iterator.
func (d *Deque[T]) End() Iterator[T] {
	return Iterator[T]{newCursor(d.ring, d.ring.tail)}
}

// CBegin returns a read-only iterator at the front element.
func (d *Deque[T]) CBegin() ConstIterator[T] { return d.Begin().Const() }

// CEnd returns the past-the-end read-only iterator.
func (d *Deque[T]) CEnd() ConstIterator[T] { return d.End().Const() }

// RBegin returns a mutable reverse iterator at the back element.
func (d *Deque[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{rcursor[T]{newCursor(d.ring, d.ring.tail)}}
}

// REnd returns the reverse past-the-end iterator.
func (d *Deque[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{rcursor[T]{newCursor(d.ring, d.ring.head)}}
}

// CRBegin returns a read-only reverse iterator at the back element.
func (d *Deque[T]) CRBegin() ConstReverseIterator[T] { return d.RBegin().Const() }

// CREnd returns the read-only reverse past-the-end iterator.
func (d *Deque[T]) CREnd() ConstReverseIterator[T] { return d.REnd().Const() }

// All yields (index, value) pairs front to back. Mutating the deque
// structurally during iteration stops the sequence.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		r, gen := d.ring, d.ring.gen
		for i := 0; i < r.size && r.gen == gen; i++ {
			if !yield(i, r.buf[r.slot(i)]) {
				return
			}
		}
	}
}

// Values yields elements front to back.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range d.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields (index, value) pairs back to front.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		r, gen := d.ring, d.ring.gen
		for i := r.size - 1; i >= 0 && r.gen == gen; i-- {
			if !yield(i, r.buf[r.slot(i)]) {
				return
			}
		}
	}
}

// Collect copies the live elements into a new slice, front to back.
func (d *Deque[T]) Collect() []T {
	out := make([]T, d.ring.size)
	d.ring.linearize(out)
	return out
}

// FromSlice builds a deque holding vs in order.
func FromSlice[T any](vs []T, opts ...Option) (*Deque[T], error) {
	d := New[T](opts...)
	for _, v := range vs {
		if err := d.PushBack(v); err != nil {
			return nil, err
		}
	}
	return d, nil
}
