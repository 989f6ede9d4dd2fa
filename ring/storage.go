// File: ring/storage.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Storage is the fixed slot block behind one or more RingBuffer values.
// The reference count lives on its own cache line: clones on different
// goroutines hit it with atomics while the slots are read.

package ring

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/cowring/api"
)

// Storage owns one fixed-size slot block shared by reference count.
type Storage[T any] struct {
	slots []T
	_     cpu.CacheLinePad
	refs  atomic.Int32
	_     cpu.CacheLinePad
}

// newStorage allocates capacity slots held by a single reference.
func newStorage[T any](capacity int) *Storage[T] {
	if capacity <= 0 {
		panic(api.Wrap(api.ErrCodeInvalidArgument, api.ErrInvalidCapacity).
			WithContext("capacity", capacity))
	}
	s := &Storage[T]{slots: make([]T, capacity)}
	s.refs.Store(1)
	return s
}

// duplicate returns an exclusively held copy of s.
func (s *Storage[T]) duplicate() *Storage[T] {
	d := &Storage[T]{slots: make([]T, len(s.slots))}
	copy(d.slots, s.slots)
	d.refs.Store(1)
	return d
}

func (s *Storage[T]) retain() {
	s.refs.Add(1)
}

// release drops one reference. The block becomes garbage once the last
// holder lets go of its pointer.
func (s *Storage[T]) release() {
	if s.refs.Add(-1) < 0 {
		panic("ring: storage released more times than retained")
	}
}

func (s *Storage[T]) unique() bool {
	return s.refs.Load() == 1
}

// Refs reports how many buffer values currently reference s.
func (s *Storage[T]) Refs() int {
	return int(s.refs.Load())
}

// Len returns the fixed slot count.
func (s *Storage[T]) Len() int {
	return len(s.slots)
}
