// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control interface using control package primitives.

package adapters

import (
	"github.com/momentics/cowring/api"
	"github.com/momentics/cowring/control"
)

var _ api.Control = (*ControlAdapter)(nil)

// ControlAdapter bundles config, metrics and debug probes behind api.Control.
type ControlAdapter struct {
	config  *control.ConfigStore
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

// NewControlAdapter creates an adapter with platform probes registered.
func NewControlAdapter() *ControlAdapter {
	adapter := &ControlAdapter{
		config:  control.NewConfigStore(),
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
	}
	control.RegisterPlatformProbes(adapter.debug)
	return adapter
}

func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}

func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	c.config.SetConfig(cfg)
	return nil
}

// Stats merges metrics with probe output; probes are prefixed with "debug.".
func (c *ControlAdapter) Stats() map[string]any {
	stats := c.metrics.GetSnapshot()
	debugStats := c.debug.DumpState()
	combined := make(map[string]any, len(stats)+len(debugStats))
	for k, v := range stats {
		combined[k] = v
	}
	for k, v := range debugStats {
		combined["debug."+k] = v
	}
	return combined
}

func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(fn)
	control.RegisterReloadHook(fn)
}

func (c *ControlAdapter) SetMetric(key string, value any) {
	c.metrics.Set(key, value)
}

func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}

// Metrics exposes the registry for counters and ring snapshots.
func (c *ControlAdapter) Metrics() *control.MetricsRegistry {
	return c.metrics
}

// Probes exposes the probe registry, e.g. for control.RegisterRingProbe.
func (c *ControlAdapter) Probes() *control.DebugProbes {
	return c.debug
}

// WatchConfig binds the config snapshot to a file.
func (c *ControlAdapter) WatchConfig(path string) error {
	return c.config.Watch(path)
}
