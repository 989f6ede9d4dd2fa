package ring

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_SharesUntilWrite(t *testing.T) {
	a := New[int](4)
	a.Push(1)
	a.Push(2)

	b := a.Clone()
	assert.Same(t, a.storage(), b.storage())
	assert.True(t, a.Shared())
	assert.True(t, b.Shared())
	assert.Equal(t, 2, a.Stats().Refs)

	b.Push(3)
	assert.NotSame(t, a.storage(), b.storage())
	assert.False(t, a.Shared())
	assert.False(t, b.Shared())
	assert.Equal(t, []int{1, 2}, a.Slice())
	assert.Equal(t, []int{1, 2, 3}, b.Slice())
	assert.Equal(t, uint64(1), b.Stats().Copies)
	assert.Equal(t, uint64(0), a.Stats().Copies)
}

func TestClone_CopiesOncePerLineage(t *testing.T) {
	a := New[int](3)
	a.Push(1)
	b := a.Clone()

	for i := 0; i < 10; i++ {
		b.Push(i)
	}
	assert.Equal(t, uint64(1), b.Stats().Copies)
	assert.Equal(t, []int{7, 8, 9}, b.Slice())

	// a is the sole owner of the original block now.
	a.Push(2)
	assert.Equal(t, uint64(0), a.Stats().Copies)
	assert.Equal(t, []int{1, 2}, a.Slice())
}

func TestClone_MutatingOriginalLeavesClone(t *testing.T) {
	a := New[string](2)
	a.Push("x")
	a.Push("y")
	b := a.Clone()

	ev, ok := a.Push("z")
	require.True(t, ok)
	assert.Equal(t, "x", ev)
	assert.Equal(t, []string{"y", "z"}, a.Slice())
	assert.Equal(t, []string{"x", "y"}, b.Slice())
	assert.True(t, b.IsFull())
}

func TestClone_ReadsAndCursorMovesDoNotCopy(t *testing.T) {
	a := New[int](4)
	for i := 0; i < 4; i++ {
		a.Push(i)
	}
	b := a.Clone()

	v, ok := b.Pop()
	require.True(t, ok)
	assert.Equal(t, 0, v)
	_, _ = b.First()
	_ = b.At(0)
	_ = b.Slice()
	b.RemoveAll()

	assert.Equal(t, uint64(0), b.Stats().Copies)
	assert.Same(t, a.storage(), b.storage())
	// popping a shared block must not zero the slot a still reads.
	assert.Equal(t, []int{0, 1, 2, 3}, a.Slice())
	assert.True(t, b.IsEmpty())
}

func TestClone_OfClone(t *testing.T) {
	a := New[int](3)
	a.Push(1)
	b := a.Clone()
	c := b.Clone()
	assert.Equal(t, 3, a.Stats().Refs)

	c.Push(2)
	assert.Equal(t, 2, a.Stats().Refs)
	assert.Equal(t, 1, c.Stats().Refs)

	b.Push(3)
	assert.Equal(t, 1, a.Stats().Refs)
	assert.Equal(t, []int{1}, a.Slice())
	assert.Equal(t, []int{1, 3}, b.Slice())
	assert.Equal(t, []int{1, 2}, c.Slice())
}

func TestRelease_LetsSharerWriteInPlace(t *testing.T) {
	a := New[int](2)
	a.Push(1)
	b := a.Clone()
	b.Release()
	b.Release() // idempotent

	a.Push(2)
	assert.Equal(t, uint64(0), a.Stats().Copies)
	assert.Equal(t, []int{1, 2}, a.Slice())

	assert.Panics(t, func() { b.Push(3) })
	assert.Panics(t, func() { b.Clone() })
}

func TestRelease_ByGarbageCollection(t *testing.T) {
	a := New[int](2)
	a.Push(1)
	func() {
		_ = a.Clone()
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return !a.Shared()
	}, 5*time.Second, 10*time.Millisecond)
}

// TestClone_AcrossGoroutines hands clones of one ring to several writers;
// each must copy out before writing and the source must stay intact.
func TestClone_AcrossGoroutines(t *testing.T) {
	const workers, pushes = 8, 1000
	base := New[int](64)
	for i := 0; i < 64; i++ {
		base.Push(i)
	}
	want := base.Slice()

	var wg sync.WaitGroup
	errs := make(chan string, workers)
	for w := 0; w < workers; w++ {
		c := base.Clone()
		wg.Add(1)
		go func(id int, r *RingBuffer[int]) {
			defer wg.Done()
			defer r.Release()
			for i := 0; i < pushes; i++ {
				r.Push(id*pushes + i)
			}
			if r.At(r.Len()-1) != id*pushes+pushes-1 || r.Stats().Copies != 1 {
				errs <- "clone diverged"
			}
		}(w, c)
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Error(e)
	}
	assert.Equal(t, want, base.Slice())
}
