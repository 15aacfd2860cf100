// File: algo/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package algo provides generic range algorithms over random-access
// iterators. A range is the half-open pair [first, last); any iterator type
// with Get/Add/Diff (and Set for mutating algorithms) qualifies, including
// the forward and reverse iterators of package deque.
//
// Iterator errors (stale handles, out-of-range moves) are returned as-is.
package algo
