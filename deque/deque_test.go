// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// deque_test.go — Container behaviour: growth policy, element access, model-based checks.
package deque_test

import (
	"math/rand"
	"testing"

	"github.com/eapache/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-deque/api"
	"github.com/momentics/hioload-deque/deque"
)

// wrapped returns [2 3 4] laid out across the ring boundary at capacity 4.
func wrapped(t *testing.T) *deque.Deque[int] {
	t.Helper()
	d := deque.New[int]()
	for _, v := range []int{1, 2, 3} {
		require.NoError(t, d.PushBack(v))
	}
	_, err := d.PopFront()
	require.NoError(t, err)
	require.NoError(t, d.PushBack(4))
	require.Equal(t, 4, d.Cap())
	require.Equal(t, true, d.DumpState()["wrapped"])
	return d
}

func TestDeque_GrowShrinkScenario(t *testing.T) {
	d := deque.New[int]()
	assert.Equal(t, 4, d.Cap())
	assert.True(t, d.Empty())

	for _, v := range []int{1, 2, 3} {
		require.NoError(t, d.PushBack(v))
	}
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 4, d.Cap())
	front, _ := d.Front()
	back, _ := d.Back()
	assert.Equal(t, 1, front)
	assert.Equal(t, 3, back)

	require.NoError(t, d.PushBack(4))
	assert.Equal(t, 8, d.Cap())
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, []int{1, 2, 3, 4}, d.Collect())

	_, err := d.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 8, d.Cap())
	v, err := d.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 4, d.Cap())
	front, _ = d.Front()
	assert.Equal(t, 3, front)
	assert.Equal(t, []int{3, 4}, d.Collect())
}

func TestDeque_EmptyAccess(t *testing.T) {
	d := deque.New[string]()
	_, err := d.Front()
	assert.ErrorIs(t, err, api.ErrEmptyContainer)
	_, err = d.Back()
	assert.ErrorIs(t, err, api.ErrEmptyContainer)
	_, err = d.PopBack()
	assert.ErrorIs(t, err, api.ErrEmptyContainer)
	_, err = d.PopFront()
	assert.ErrorIs(t, err, api.ErrEmptyContainer)
	assert.True(t, api.IsContractViolation(err))
	assert.Equal(t, api.ErrCodeEmptyContainer, api.CodeOf(err))

	// A failed pop leaves the deque usable.
	require.NoError(t, d.PushFront("x"))
	v, err := d.PopBack()
	require.NoError(t, err)
	assert.Equal(t, "x", v)
	assert.Equal(t, 4, d.Cap())
}

func TestDeque_IndexedAccess(t *testing.T) {
	d, err := deque.FromSlice([]int{10, 11, 12, 13, 14, 15})
	require.NoError(t, err)
	for i := 0; i < d.Len(); i++ {
		v, err := d.At(i)
		require.NoError(t, err)
		assert.Equal(t, 10+i, v)
	}
	front, _ := d.Front()
	back, _ := d.Back()
	assert.Equal(t, 10, front)
	assert.Equal(t, 15, back)

	require.NoError(t, d.Set(2, 42))
	v, _ := d.At(2)
	assert.Equal(t, 42, v)

	_, err = d.At(-1)
	assert.ErrorIs(t, err, api.ErrIndexOutOfRange)
	_, err = d.At(d.Len())
	assert.ErrorIs(t, err, api.ErrIndexOutOfRange)
	assert.ErrorIs(t, d.Set(6, 0), api.ErrIndexOutOfRange)

	var e *api.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 6, e.Context["index"])
}

func TestDeque_IndexedAccessWrapped(t *testing.T) {
	d := wrapped(t)
	for i, want := range []int{2, 3, 4} {
		v, err := d.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	back, _ := d.Back()
	assert.Equal(t, 4, back)
}

func TestDeque_RoundTripCapacity(t *testing.T) {
	d := deque.New[int]()
	before := d.Cap()
	const n = 100
	for i := 0; i < n; i++ {
		require.NoError(t, d.PushBack(i))
	}
	assert.Equal(t, 128, d.Cap())
	for i := n - 1; i >= 0; i-- {
		v, err := d.PopBack()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	assert.True(t, d.Empty())
	assert.LessOrEqual(t, d.Cap(), before)

	for i := 0; i < n; i++ {
		require.NoError(t, d.PushFront(i))
		require.NoError(t, d.PushBack(i))
	}
	for i := 0; i < n; i++ {
		_, err := d.PopFront()
		require.NoError(t, err)
		_, err = d.PopBack()
		require.NoError(t, err)
	}
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, deque.DefaultMinCapacity, d.Cap())
}

func TestDeque_PushFrontWrap(t *testing.T) {
	d := deque.New[int]()
	for i := 0; i < 10; i++ {
		require.NoError(t, d.PushFront(i))
	}
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, d.Collect())

	n, err := d.End().Diff(d.Begin())
	require.NoError(t, err)
	assert.Equal(t, d.Len(), n)

	var got []int
	for it := d.Begin(); it.NotEqual(d.End()); require.NoError(t, it.Next()) {
		v, err := it.Get()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, d.Collect(), got)
}

// TestDeque_PropertyModel drives random pushes and pops against a slice model.
func TestDeque_PropertyModel(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		d := deque.New[int]()
		var model []int
		pushes, pops := 0, 0

		for i := 0; i < 3000; i++ {
			v := rng.Intn(100000)
			switch rng.Intn(4) {
			case 0:
				require.NoError(t, d.PushBack(v))
				model = append(model, v)
				pushes++
			case 1:
				require.NoError(t, d.PushFront(v))
				model = append([]int{v}, model...)
				pushes++
			case 2:
				got, err := d.PopBack()
				if len(model) == 0 {
					require.ErrorIs(t, err, api.ErrEmptyContainer)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, model[len(model)-1], got)
				model = model[:len(model)-1]
				pops++
			case 3:
				got, err := d.PopFront()
				if len(model) == 0 {
					require.ErrorIs(t, err, api.ErrEmptyContainer)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, model[0], got)
				model = model[1:]
				pops++
			}
			require.Equal(t, pushes-pops, d.Len())
			require.Less(t, d.Len(), d.Cap(), "ring must never fill")
			require.GreaterOrEqual(t, d.Cap(), deque.DefaultMinCapacity)
			if i%97 == 0 {
				require.Equal(t, len(model), len(d.Collect()))
				if len(model) > 0 {
					require.Equal(t, model, d.Collect())
				}
			}
		}
	}
}

// TestDeque_FIFOAgainstQueue checks the FIFO path against eapache/queue.
func TestDeque_FIFOAgainstQueue(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := deque.New[int]()
	q := queue.New()
	for i := 0; i < 5000; i++ {
		if rng.Intn(3) > 0 {
			v := rng.Int()
			require.NoError(t, d.PushBack(v))
			q.Add(v)
			continue
		}
		if q.Length() == 0 {
			_, err := d.PopFront()
			require.ErrorIs(t, err, api.ErrEmptyContainer)
			continue
		}
		front, err := d.Front()
		require.NoError(t, err)
		require.Equal(t, q.Peek(), front)
		got, err := d.PopFront()
		require.NoError(t, err)
		require.Equal(t, q.Remove(), got)
	}
	require.Equal(t, q.Length(), d.Len())
	for i := 0; i < q.Length(); i++ {
		v, err := d.At(i)
		require.NoError(t, err)
		require.Equal(t, q.Get(i), v)
	}
}

func TestDeque_RingAdapter(t *testing.T) {
	var r api.Ring[string] = deque.New[string]()
	assert.True(t, r.Enqueue("a"))
	assert.True(t, r.Enqueue("b"))
	assert.Equal(t, 2, r.Len())
	v, ok := r.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	v, ok = r.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	_, ok = r.Dequeue()
	assert.False(t, ok)

	bounded := deque.New[int](deque.WithMaxCapacity(4))
	for i := 0; i < 3; i++ {
		require.True(t, bounded.Enqueue(i))
	}
	assert.False(t, bounded.Enqueue(3))
}

func TestDeque_Clone(t *testing.T) {
	d := wrapped(t)
	c, err := d.Clone()
	require.NoError(t, err)
	assert.Equal(t, d.Collect(), c.Collect())
	assert.Equal(t, d.Cap(), c.Cap())
	assert.Equal(t, false, c.DumpState()["wrapped"])

	require.NoError(t, c.Set(0, 99))
	require.NoError(t, c.PushFront(1))
	assert.Equal(t, []int{2, 3, 4}, d.Collect())
	assert.Equal(t, []int{1, 99, 3, 4}, c.Collect())

	_, err = c.Begin().Diff(d.Begin())
	assert.ErrorIs(t, err, api.ErrIncompatibleIterators)
}

func TestDeque_Clear(t *testing.T) {
	d := deque.New[int]()
	for i := 0; i < 20; i++ {
		require.NoError(t, d.PushBack(i))
	}
	it := d.Begin()
	d.Clear()
	assert.True(t, d.Empty())
	assert.Equal(t, deque.DefaultInitialCapacity, d.Cap())
	_, err := it.Get()
	assert.ErrorIs(t, err, api.ErrStaleIterator)
	require.NoError(t, d.PushBack(7))
	assert.Equal(t, "[7]", d.String())
}

func TestDeque_MaxCapacity(t *testing.T) {
	d := deque.New[int](deque.WithMaxCapacity(6))
	for i := 0; i < 5; i++ {
		require.NoError(t, d.PushBack(i))
	}
	assert.Equal(t, 6, d.Cap())
	err := d.PushFront(-1)
	require.ErrorIs(t, err, api.ErrResourceExhausted)
	assert.False(t, api.IsContractViolation(err))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, d.Collect())
}

func TestDeque_ConfigValidation(t *testing.T) {
	cfg := deque.DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.MinCapacity = 0
	assert.ErrorIs(t, cfg.Validate(), api.ErrInvalidArgument)

	cfg = deque.DefaultConfig()
	cfg.InitialCapacity = 2
	assert.ErrorIs(t, cfg.Validate(), api.ErrInvalidArgument)

	cfg = deque.DefaultConfig()
	cfg.MaxCapacity = 2
	assert.ErrorIs(t, cfg.Validate(), api.ErrInvalidArgument)

	assert.Panics(t, func() { deque.New[int](deque.WithInitialCapacity(1)) })
	assert.NotPanics(t, func() {
		deque.New[int](deque.WithMinCapacity(1), deque.WithInitialCapacity(1))
	})
}

func TestDeque_SmallFloor(t *testing.T) {
	d := deque.New[int](deque.WithMinCapacity(1), deque.WithInitialCapacity(1))
	assert.Equal(t, 1, d.Cap())
	require.NoError(t, d.PushBack(1))
	assert.Equal(t, 2, d.Cap())
	require.NoError(t, d.PushFront(0))
	assert.Equal(t, 4, d.Cap())
	assert.Equal(t, []int{0, 1}, d.Collect())
	_, _ = d.PopBack()
	assert.Equal(t, 2, d.Cap())
	_, _ = d.PopBack()
	assert.Equal(t, 1, d.Cap())
}

func TestDeque_ShrinkDisabled(t *testing.T) {
	d := deque.New[int](deque.WithShrinkDisabled())
	for i := 0; i < 16; i++ {
		require.NoError(t, d.PushBack(i))
	}
	for !d.Empty() {
		_, err := d.PopFront()
		require.NoError(t, err)
	}
	assert.Equal(t, 32, d.Cap())
}

func TestDeque_ResizeObserver(t *testing.T) {
	var events []api.ResizeEvent
	d := deque.New[int](deque.WithResizeObserver(api.ResizeObserverFunc(func(ev api.ResizeEvent) {
		events = append(events, ev)
	})))
	for i := 0; i < 4; i++ {
		require.NoError(t, d.PushBack(i))
	}
	require.Len(t, events, 1)
	assert.Equal(t, api.ResizeEvent{Kind: api.ResizeGrow, OldCap: 4, NewCap: 8, Len: 3}, events[0])

	_, _ = d.PopFront()
	_, _ = d.PopFront()
	require.Len(t, events, 2)
	assert.Equal(t, api.ResizeShrink, events[1].Kind)
	assert.Equal(t, "shrink", events[1].Kind.String())
	assert.Equal(t, 8, events[1].OldCap)
	assert.Equal(t, 4, events[1].NewCap)
}

func TestDeque_Sequences(t *testing.T) {
	d := wrapped(t)
	var idx, vals []int
	for i, v := range d.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []int{2, 3, 4}, vals)

	vals = vals[:0]
	for v := range d.Values() {
		vals = append(vals, v)
		if v == 3 {
			break
		}
	}
	assert.Equal(t, []int{2, 3}, vals)

	vals = vals[:0]
	for _, v := range d.Backward() {
		vals = append(vals, v)
	}
	assert.Equal(t, []int{4, 3, 2}, vals)

	// Structural mutation stops the sequence.
	seen := 0
	for range d.All() {
		seen++
		require.NoError(t, d.PushBack(0))
	}
	assert.Equal(t, 1, seen)
}

func TestDeque_DumpState(t *testing.T) {
	d := wrapped(t)
	st := d.DumpState()
	assert.Equal(t, 3, st["len"])
	assert.Equal(t, 4, st["cap"])
	assert.Equal(t, 1, st["head"])
	assert.Equal(t, 0, st["tail"])
}
