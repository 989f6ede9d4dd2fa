package ring

import (
	"strconv"
	"testing"
)

// BenchmarkPushOverwrite measures steady-state pushes into a full ring.
func BenchmarkPushOverwrite(b *testing.B) {
	r := New[int](1024)
	for i := 0; i < r.Cap(); i++ {
		r.Push(i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Push(i)
	}
}

// BenchmarkPushPop measures alternating push/pop below capacity.
func BenchmarkPushPop(b *testing.B) {
	r := New[int](1024)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Push(i)
		r.Pop()
	}
}

// BenchmarkCloneThenWrite measures the copy-on-write cost: one O(capacity)
// duplication per clone that is written to.
func BenchmarkCloneThenWrite(b *testing.B) {
	for _, size := range []int{16, 1024, 65536} {
		b.Run(sizeName(size), func(b *testing.B) {
			r := New[int](size)
			for i := 0; i < size; i++ {
				r.Push(i)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c := r.Clone()
				c.Push(i)
				c.Release()
			}
		})
	}
}

// BenchmarkCloneReadOnly measures clones that are only read.
func BenchmarkCloneReadOnly(b *testing.B) {
	r := New[int](1024)
	for i := 0; i < r.Cap(); i++ {
		r.Push(i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := r.Clone()
		_, _ = c.First()
		c.Release()
	}
}

func sizeName(n int) string {
	if n >= 1<<10 {
		return strconv.Itoa(n>>10) + "Ki"
	}
	return strconv.Itoa(n)
}
