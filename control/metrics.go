// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for ring usage and process-level monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/cowring/ring"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Add increments an int64 counter, creating it on first use.
// A non-counter value under key is replaced.
func (mr *MetricsRegistry) Add(key string, delta int64) int64 {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	n, _ := mr.metrics[key].(int64)
	n += delta
	mr.metrics[key] = n
	mr.updated = time.Now()
	return n
}

// RecordRing publishes a ring snapshot under ring.<name>.*.
func (mr *MetricsRegistry) RecordRing(name string, st ring.Stats) {
	prefix := "ring." + name + "."
	mr.mu.Lock()
	mr.metrics[prefix+"capacity"] = st.Capacity
	mr.metrics[prefix+"len"] = st.Len
	mr.metrics[prefix+"refs"] = st.Refs
	mr.metrics[prefix+"copies"] = st.Copies
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated reports when the registry last changed.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
