// File: deque/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FIFO view so a Deque can stand in wherever an api.Ring is consumed.

package deque

import "github.com/momentics/hioload-deque/api"

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Deque[any])(nil)

// Enqueue appends item; returns false only if storage cannot grow.
func (d *Deque[T]) Enqueue(item T) bool {
	return d.PushBack(item) == nil
}

// Dequeue removes the oldest item; ok false if empty.
func (d *Deque[T]) Dequeue() (T, bool) {
	v, err := d.PopFront()
	return v, err == nil
}
