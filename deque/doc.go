// File: deque/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package deque implements a growable double-ended queue over a single
// contiguous circular buffer, with random-access iterators that treat a
// wrapped window as a linear range.
//
// A Deque is owned by one goroutine at a time; it does no internal locking.
// Every push, pop, resize or Clear invalidates all iterators issued before
// it. Stale iterators are detected through a storage generation counter and
// fail with api.ErrStaleIterator instead of reading relocated slots.
// Writing through Iterator.Set or Deque.Set does not invalidate iterators.
package deque
