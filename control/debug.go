// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug handler and probe reflector for internal inspection.

package control

import (
	"runtime"
	"sync"

	"github.com/momentics/cowring/api"
	"github.com/momentics/cowring/ring"
)

var _ api.Debug = (*DebugProbes)(nil)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// Unregister removes a probe. Returns api.ErrNotFound when absent.
func (dp *DebugProbes) Unregister(name string) error {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	if _, ok := dp.probes[name]; !ok {
		return api.NewError(api.ErrCodeNotFound, "probe not registered").WithContext("probe", name)
	}
	delete(dp.probes, name)
	return nil
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any)
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}

// StatsProvider is a ring able to snapshot itself.
type StatsProvider interface {
	Stats() ring.Stats
}

// RegisterRingProbe exposes r.Stats() as probe ring.<name>. Rings are not
// safe for concurrent use: dump from the goroutine that owns r.
func RegisterRingProbe(dp *DebugProbes, name string, r StatsProvider) {
	dp.RegisterProbe("ring."+name, func() any {
		return r.Stats()
	})
}

// RegisterPlatformProbes sets runtime-level debug metrics.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.goroutines", func() any {
		return runtime.NumGoroutine()
	})
	dp.RegisterProbe("platform.os", func() any {
		return runtime.GOOS + "/" + runtime.GOARCH
	})
}
