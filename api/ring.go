// Package api
// Author: momentics@gmail.com
//
// Fixed-capacity overwrite ring contract shared by ring implementations,
// probes and tooling.

package api

import "iter"

// Ring is a fixed-capacity FIFO that overwrites its oldest element when full.
type Ring[T any] interface {
	// Push appends v; when the ring was full the evicted oldest item is
	// returned with ok=true.
	Push(v T) (evicted T, ok bool)
	// Pop removes the oldest item, ok=false if empty.
	Pop() (T, bool)
	// First peeks at the oldest item, ok=false if empty.
	First() (T, bool)
	// At returns the item at logical position pos. Panics when out of range.
	At(pos int) T
	// All yields (position, item) pairs from oldest to newest.
	All() iter.Seq2[int, T]
	// RemoveAll empties the ring without releasing its storage.
	RemoveAll()
	// Len returns current number of items.
	Len() int
	// Cap returns ring capacity.
	Cap() int
	IsEmpty() bool
	IsFull() bool
}
