// File: algo/algo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package algo

import "sort"

// Reader is a random-access iterator with read access.
type Reader[T any, I any] interface {
	Get() (T, error)
	Add(n int) (I, error)
	Diff(o I) (int, error)
}

// ReadWriter is a random-access iterator with read/write access.
type ReadWriter[T any, I any] interface {
	Reader[T, I]
	Set(v T) error
}

// Distance returns last - first.
func Distance[I interface{ Diff(o I) (int, error) }](first, last I) (int, error) {
	return last.Diff(first)
}

// at dereferences first + i.
func at[T any, I Reader[T, I]](first I, i int) (T, error) {
	it, err := first.Add(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return it.Get()
}

func put[T any, I ReadWriter[T, I]](first I, i int, v T) error {
	it, err := first.Add(i)
	if err != nil {
		return err
	}
	return it.Set(v)
}

// Find returns the first iterator in [first, last) whose element equals v,
// or last when there is none.
func Find[T comparable, I Reader[T, I]](first, last I, v T) (I, error) {
	return FindFunc(first, last, func(x T) bool { return x == v })
}

// FindFunc returns the first iterator in [first, last) satisfying pred.
func FindFunc[T any, I Reader[T, I]](first, last I, pred func(T) bool) (I, error) {
	n, err := last.Diff(first)
	if err != nil {
		return last, err
	}
	for i := 0; i < n; i++ {
		x, err := at[T](first, i)
		if err != nil {
			return last, err
		}
		if pred(x) {
			return first.Add(i)
		}
	}
	return last, nil
}

// Count returns how many elements in [first, last) satisfy pred.
func Count[T any, I Reader[T, I]](first, last I, pred func(T) bool) (int, error) {
	n, err := last.Diff(first)
	if err != nil {
		return 0, err
	}
	count := 0
	for i := 0; i < n; i++ {
		x, err := at[T](first, i)
		if err != nil {
			return 0, err
		}
		if pred(x) {
			count++
		}
	}
	return count, nil
}

// LowerBound returns the first position in the sorted range whose element
// is not less than v, per cmp.
func LowerBound[T any, I Reader[T, I]](first, last I, v T, cmp func(a, b T) int) (I, error) {
	return bound(first, last, func(x T) bool { return cmp(x, v) >= 0 })
}

// UpperBound returns the first position in the sorted range whose element
// is greater than v, per cmp.
func UpperBound[T any, I Reader[T, I]](first, last I, v T, cmp func(a, b T) int) (I, error) {
	return bound(first, last, func(x T) bool { return cmp(x, v) > 0 })
}

// bound binary-searches the first position where pred turns true.
func bound[T any, I Reader[T, I]](first, last I, pred func(T) bool) (I, error) {
	n, err := last.Diff(first)
	if err != nil {
		return last, err
	}
	var failed error
	i := sort.Search(n, func(i int) bool {
		if failed != nil {
			return true
		}
		x, err := at[T](first, i)
		if err != nil {
			failed = err
			return true
		}
		return pred(x)
	})
	if failed != nil {
		return last, failed
	}
	return first.Add(i)
}

// IsSorted reports whether [first, last) is ordered by less.
func IsSorted[T any, I Reader[T, I]](first, last I, less func(a, b T) bool) (bool, error) {
	n, err := last.Diff(first)
	if err != nil {
		return false, err
	}
	if n < 2 {
		return true, nil
	}
	prev, err := at[T](first, 0)
	if err != nil {
		return false, err
	}
	for i := 1; i < n; i++ {
		x, err := at[T](first, i)
		if err != nil {
			return false, err
		}
		if less(x, prev) {
			return false, nil
		}
		prev = x
	}
	return true, nil
}

// rangeSorter adapts an iterator range to sort.Interface. The first
// iterator error sticks and turns the rest of the sort into no-ops.
type rangeSorter[T any, I ReadWriter[T, I]] struct {
	first I
	n     int
	less  func(a, b T) bool
	err   error
}

func (s *rangeSorter[T, I]) Len() int { return s.n }

func (s *rangeSorter[T, I]) Less(i, j int) bool {
	if s.err != nil {
		return false
	}
	a, err := at[T](s.first, i)
	if err != nil {
		s.err = err
		return false
	}
	b, err := at[T](s.first, j)
	if err != nil {
		s.err = err
		return false
	}
	return s.less(a, b)
}

func (s *rangeSorter[T, I]) Swap(i, j int) {
	if s.err != nil {
		return
	}
	a, err := at[T](s.first, i)
	if err != nil {
		s.err = err
		return
	}
	b, err := at[T](s.first, j)
	if err != nil {
		s.err = err
		return
	}
	if err := put(s.first, i, b); err != nil {
		s.err = err
		return
	}
	if err := put(s.first, j, a); err != nil {
		s.err = err
	}
}

// Sort orders [first, last) by less. Not stable.
func Sort[T any, I ReadWriter[T, I]](first, last I, less func(a, b T) bool) error {
	n, err := last.Diff(first)
	if err != nil {
		return err
	}
	s := &rangeSorter[T, I]{first: first, n: n, less: less}
	sort.Sort(s)
	return s.err
}

// SortStable orders [first, last) by less, keeping equal elements in place.
func SortStable[T any, I ReadWriter[T, I]](first, last I, less func(a, b T) bool) error {
	n, err := last.Diff(first)
	if err != nil {
		return err
	}
	s := &rangeSorter[T, I]{first: first, n: n, less: less}
	sort.Stable(s)
	return s.err
}

// Reverse reverses [first, last) in place. T cannot be inferred from the
// iterators, so callers write Reverse[int](b, e).
func Reverse[T any, I ReadWriter[T, I]](first, last I) error {
	n, err := last.Diff(first)
	if err != nil {
		return err
	}
	s := &rangeSorter[T, I]{first: first, n: n}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		s.Swap(i, j)
	}
	return s.err
}
