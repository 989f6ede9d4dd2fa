// File: ring/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ordered view over the ring: logical position 0 is the oldest element,
// independent of where the physical cursors wrapped.

package ring

import (
	"iter"
	"slices"

	"github.com/momentics/cowring/api"
)

// slot maps a logical position to a physical slot index.
func (r *RingBuffer[T]) slot(pos int) int {
	return (r.start + pos) % r.size
}

// At returns the element at logical position pos. Panics with an
// *api.Error wrapping api.ErrIndexOutOfRange unless 0 <= pos < Len().
func (r *RingBuffer[T]) At(pos int) T {
	if n := r.Len(); pos < 0 || pos >= n {
		panic(api.Wrap(api.ErrCodeOutOfRange, api.ErrIndexOutOfRange).
			WithContext("position", pos).
			WithContext("len", n))
	}
	return r.storage().slots[r.slot(pos)]
}

// All yields (position, element) pairs from oldest to newest. Each range
// re-reads storage; mutating r while ranging is undefined.
func (r *RingBuffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := r.Len()
		slots := r.storage().slots
		for i := 0; i < n; i++ {
			if !yield(i, slots[r.slot(i)]) {
				return
			}
		}
	}
}

// Values yields elements from oldest to newest.
func (r *RingBuffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range r.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns a fresh slice of the logical contents.
func (r *RingBuffer[T]) Slice() []T {
	out := make([]T, 0, r.Len())
	for _, v := range r.All() {
		out = append(out, v)
	}
	return out
}

// EqualFunc reports whether r and seq hold the same number of elements and
// eq holds pairwise in order.
func EqualFunc[T, U any](r *RingBuffer[T], seq iter.Seq[U], eq func(T, U) bool) bool {
	n, i := r.Len(), 0
	for w := range seq {
		if i >= n || !eq(r.At(i), w) {
			return false
		}
		i++
	}
	return i == n
}

// Equal compares r element-wise against an ordered sequence.
func Equal[T comparable](r *RingBuffer[T], seq iter.Seq[T]) bool {
	return EqualFunc(r, seq, func(a, b T) bool { return a == b })
}

// EqualSlice compares r against s.
func EqualSlice[T comparable](r *RingBuffer[T], s []T) bool {
	return Equal(r, slices.Values(s))
}
