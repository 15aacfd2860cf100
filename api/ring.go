// Package api
// Author: momentics@gmail.com
//
// FIFO ring contract shared by bounded and growable ring buffers.

package api

// Ring is a FIFO ring buffer contract.
type Ring[T any] interface {
    // Enqueue adds an item, returns false if it cannot be stored.
    Enqueue(item T) bool
    // Dequeue removes oldest item, returns false if empty.
    Dequeue() (T, bool)
    // Len returns current number of items.
    Len() int
    // Cap returns buffer capacity.
    Cap() int
}
