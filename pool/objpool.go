// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

// Package pool provides typed object pools for reusable buffers.
package pool

import "sync"

// ObjectPool is a generic object pool.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

var _ ObjectPool[int] = (*SyncPool[int])(nil)

// SyncPool wraps sync.Pool for generic usage.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}

// NewBytePool pools zero-length byte slices with at least size capacity.
// Slices are passed by pointer to keep Put allocation free.
func NewBytePool(size int) *SyncPool[*[]byte] {
	return NewSyncPool(func() *[]byte {
		b := make([]byte, 0, size)
		return &b
	})
}
