// Package ring implements a fixed-capacity overwrite ring buffer with
// copy-on-write value semantics.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A RingBuffer holds at most Cap() elements; pushing into a full buffer
// evicts and returns the oldest one. Clone produces an independent value in
// O(1): both buffers share one Storage until either of them writes, at which
// point the writer duplicates the slots once and keeps writing into its own
// copy from then on.
//
// Reads (First, Pop, At, All, Values, Len) never duplicate storage. A single
// RingBuffer is not safe for concurrent mutation; clones sharing storage may
// live on different goroutines.
//
//	r := ring.New[int](2)
//	r.Push(1)
//	r.Push(2)
//	old, _ := r.Push(3) // old == 1, contents [2 3]
//	snap := r.Clone()   // shares storage with r
//	r.Push(4)           // r copies its slots, snap still reads [2 3]
package ring
