// File: api/deque.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Double-ended queue contract. Implementations are single-owner: no method
// is safe for concurrent use without external locking.

package api

// Deque is a double-ended queue with O(1) indexed access.
type Deque[T any] interface {
    // PushBack appends v after the last element.
    PushBack(v T) error
    // PushFront inserts v before the first element.
    PushFront(v T) error
    // PopBack removes and returns the last element.
    PopBack() (T, error)
    // PopFront removes and returns the first element.
    PopFront() (T, error)
    // Front returns the first element.
    Front() (T, error)
    // Back returns the last element.
    Back() (T, error)
    // At returns the element at logical index i.
    At(i int) (T, error)
    // Set replaces the element at logical index i.
    Set(i int, v T) error
    // Len returns the number of live elements.
    Len() int
    // Cap returns the allocated slot count.
    Cap() int
    // Empty reports whether Len() == 0.
    Empty() bool
}
