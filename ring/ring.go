// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a bounded circular buffer with overwrite-on-full semantics.
// start/end are physical slot cursors; the empty flag disambiguates
// start == end between the empty and full states.
// Implements api.Ring for cross-package consistency.

package ring

import (
	"runtime"

	"github.com/momentics/cowring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*RingBuffer[any])(nil)

// lease is the indirection the GC cleanup releases. It outlives storage
// swaps done by copy-on-write, so the cleanup always drops the current block.
type lease[T any] struct {
	s *Storage[T]
}

func (l *lease[T]) drop() {
	if l.s != nil {
		l.s.release()
		l.s = nil
	}
}

// RingBuffer is a fixed-capacity FIFO holding at most Cap() elements.
type RingBuffer[T any] struct {
	lease   *lease[T]
	cleanup runtime.Cleanup
	size    int
	start   int // oldest element
	end     int // next write position
	empty   bool
	copies  uint64
}

// New allocates an empty ring of the given capacity. Panics with an
// *api.Error wrapping api.ErrInvalidCapacity when capacity <= 0.
func New[T any](capacity int) *RingBuffer[T] {
	return wrap(newStorage[T](capacity), 0, 0, true)
}

// NewFilled allocates an empty ring whose physical slots are preset to
// initial. The ring is logically empty; initial only matters for element
// types whose zero value is unsuitable as a placeholder.
func NewFilled[T any](capacity int, initial T) *RingBuffer[T] {
	s := newStorage[T](capacity)
	for i := range s.slots {
		s.slots[i] = initial
	}
	return wrap(s, 0, 0, true)
}

func wrap[T any](s *Storage[T], start, end int, empty bool) *RingBuffer[T] {
	r := &RingBuffer[T]{
		lease: &lease[T]{s: s},
		size:  len(s.slots),
		start: start,
		end:   end,
		empty: empty,
	}
	r.cleanup = runtime.AddCleanup(r, (*lease[T]).drop, r.lease)
	return r
}

// Clone returns an independent value copy of r in O(1). The copy shares
// storage with r until either one writes.
func (r *RingBuffer[T]) Clone() *RingBuffer[T] {
	s := r.storage()
	s.retain()
	return wrap(s, r.start, r.end, r.empty)
}

// Release drops r's storage reference ahead of garbage collection, letting
// the remaining sharers write without copying. r must not be used afterwards.
func (r *RingBuffer[T]) Release() {
	r.cleanup.Stop()
	r.lease.drop()
}

func (r *RingBuffer[T]) storage() *Storage[T] {
	s := r.lease.s
	if s == nil {
		panic(api.NewError(api.ErrCodeInternal, "ring: use after Release"))
	}
	return s
}

// writable returns slots r may write to, duplicating shared storage first.
func (r *RingBuffer[T]) writable() []T {
	s := r.storage()
	if s.unique() {
		return s.slots
	}
	d := s.duplicate()
	r.lease.s = d
	s.release()
	r.copies++
	return d.slots
}

// next is the successor of physical slot i.
func (r *RingBuffer[T]) next(i int) int {
	return (i + 1) % r.size
}

// IsEmpty reports whether the ring holds no elements.
func (r *RingBuffer[T]) IsEmpty() bool {
	return r.empty
}

// IsFull reports whether the next Push will evict.
func (r *RingBuffer[T]) IsFull() bool {
	return r.start == r.end && !r.empty
}

// Len returns number of items currently in the ring.
func (r *RingBuffer[T]) Len() int {
	switch {
	case r.empty:
		return 0
	case r.start == r.end:
		return r.size
	default:
		return (r.end - r.start + r.size) % r.size
	}
}

// Cap returns fixed ring capacity.
func (r *RingBuffer[T]) Cap() int {
	return r.size
}

// First returns the oldest element without removing it; ok false if empty.
func (r *RingBuffer[T]) First() (v T, ok bool) {
	if r.empty {
		return v, false
	}
	return r.storage().slots[r.start], true
}

// Pop removes and returns the oldest element; ok false if empty.
// The vacated slot is zeroed only when r owns its storage exclusively.
func (r *RingBuffer[T]) Pop() (v T, ok bool) {
	if r.empty {
		return v, false
	}
	s := r.storage()
	v = s.slots[r.start]
	if s.unique() {
		var zero T
		s.slots[r.start] = zero
	}
	r.start = r.next(r.start)
	r.empty = r.start == r.end
	return v, true
}

// Push appends v. When the ring was full the oldest element is evicted
// first and returned with ok true.
func (r *RingBuffer[T]) Push(v T) (evicted T, ok bool) {
	if r.IsFull() {
		evicted, ok = r.Pop()
	}
	slots := r.writable()
	slots[r.end] = v
	r.end = r.next(r.end)
	r.empty = false
	return evicted, ok
}

// RemoveAll resets r to empty. Storage is kept as is.
func (r *RingBuffer[T]) RemoveAll() {
	r.start, r.end = 0, 0
	r.empty = true
}

// Shared reports whether r's storage is referenced by another buffer value.
func (r *RingBuffer[T]) Shared() bool {
	return !r.storage().unique()
}
