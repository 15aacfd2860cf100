// File: deque/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Forward random-access iterators. Iterator grants read/write access,
// ConstIterator read-only access; both share cursor arithmetic.

package deque

// Iterator is a mutable random-access position inside a Deque window.
// The zero value is not bound to any deque. Iterators are values: copying
// one and moving the copy leaves the original in place.
type Iterator[T any] struct {
	c cursor[T]
}

// Get returns the element at the iterator position.
func (it Iterator[T]) Get() (T, error) {
	p, err := it.c.ptr()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ptr returns the address of the element at the iterator position. The
// pointer is valid until the next structural mutation of the deque.
func (it Iterator[T]) Ptr() (*T, error) {
	return it.c.ptr()
}

// Set overwrites the element at the iterator position.
func (it Iterator[T]) Set(v T) error {
	p, err := it.c.ptr()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Next moves one element towards the back.
func (it *Iterator[T]) Next() error { return it.c.next() }

// Prev moves one element towards the front.
func (it *Iterator[T]) Prev() error { return it.c.prev() }

// Advance moves n elements, backwards when n < 0.
func (it *Iterator[T]) Advance(n int) error { return it.c.advance(n) }

// Add returns a copy moved n elements.
func (it Iterator[T]) Add(n int) (Iterator[T], error) {
	c, err := it.c.add(n)
	return Iterator[T]{c}, err
}

// Sub returns a copy moved -n elements.
func (it Iterator[T]) Sub(n int) (Iterator[T], error) {
	c, err := it.c.add(-n)
	return Iterator[T]{c}, err
}

// Diff returns it - o in elements.
func (it Iterator[T]) Diff(o Iterator[T]) (int, error) { return it.c.diff(o.c) }

// Compare returns -1, 0 or +1 as it is before, at or after o.
func (it Iterator[T]) Compare(o Iterator[T]) (int, error) { return it.c.compare(o.c) }

// Offset returns the logical index of the position; End() yields Len().
func (it Iterator[T]) Offset() int { return it.c.offset(it.c.pos) }

// Const converts to a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it.c} }

// Equal reports whether both iterators denote the same position.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r == 0
}

// NotEqual is the negation of Equal.
func (it Iterator[T]) NotEqual(o Iterator[T]) bool { return !it.Equal(o) }

// Less reports it < o. Unrelated or stale iterators are never ordered.
func (it Iterator[T]) Less(o Iterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r < 0
}

// LessOrEqual reports it <= o.
func (it Iterator[T]) LessOrEqual(o Iterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r <= 0
}

// Greater reports it > o.
func (it Iterator[T]) Greater(o Iterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r > 0
}

// GreaterOrEqual reports it >= o.
func (it Iterator[T]) GreaterOrEqual(o Iterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r >= 0
}

// ConstIterator is a read-only random-access position inside a Deque window.
type ConstIterator[T any] struct {
	c cursor[T]
}

// Get returns the element at the iterator position.
func (it ConstIterator[T]) Get() (T, error) {
	p, err := it.c.ptr()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Next moves one element towards the back.
func (it *ConstIterator[T]) Next() error { return it.c.next() }

// Prev moves one element towards the front.
func (it *ConstIterator[T]) Prev() error { return it.c.prev() }

// Advance moves n elements, backwards when n < 0.
func (it *ConstIterator[T]) Advance(n int) error { return it.c.advance(n) }

// Add returns a copy moved n elements.
func (it ConstIterator[T]) Add(n int) (ConstIterator[T], error) {
	c, err := it.c.add(n)
	return ConstIterator[T]{c}, err
}

// Sub returns a copy moved -n elements.
func (it ConstIterator[T]) Sub(n int) (ConstIterator[T], error) {
	c, err := it.c.add(-n)
	return ConstIterator[T]{c}, err
}

// Diff returns it - o in elements.
func (it ConstIterator[T]) Diff(o ConstIterator[T]) (int, error) { return it.c.diff(o.c) }

// Compare returns -1, 0 or +1 as it is before, at or after o.
func (it ConstIterator[T]) Compare(o ConstIterator[T]) (int, error) { return it.c.compare(o.c) }

// Offset returns the logical index of the position; End() yields Len().
func (it ConstIterator[T]) Offset() int { return it.c.offset(it.c.pos) }

// Equal reports whether both iterators denote the same position.
func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r == 0
}

// NotEqual is the negation of Equal.
func (it ConstIterator[T]) NotEqual(o ConstIterator[T]) bool { return !it.Equal(o) }

// Less reports it < o. Unrelated or stale iterators are never ordered.
func (it ConstIterator[T]) Less(o ConstIterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r < 0
}

// LessOrEqual reports it <= o.
func (it ConstIterator[T]) LessOrEqual(o ConstIterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r <= 0
}

// Greater reports it > o.
func (it ConstIterator[T]) Greater(o ConstIterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r > 0
}

// GreaterOrEqual reports it >= o.
func (it ConstIterator[T]) GreaterOrEqual(o ConstIterator[T]) bool {
	r, ok := it.c.cmpOK(o.c)
	return ok && r >= 0
}
