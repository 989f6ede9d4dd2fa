// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with dynamic update and hot-reload propagation.
// Watch binds the store to a config file through viper; file edits are merged
// into the snapshot and fan out to reload listeners.

package control

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// ConfigStore is a dynamic key/value map with atomic snapshot and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
}

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config:    make(map[string]any),
		listeners: make([]func(), 0),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}

// Get returns a single value.
func (cs *ConfigStore) Get(key string) (any, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	v, ok := cs.config[key]
	return v, ok
}

// SetConfig merges new values and notifies listeners once the merge is visible.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	listeners := append([]func(){}, cs.listeners...)
	cs.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// Watch loads path into the store and keeps merging it on every change.
// Keys are flattened viper keys ("tail.lines").
func (cs *ConfigStore) Watch(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cs.SetConfig(flatten(v))

	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info().Str("file", e.Name).Str("op", e.Op.String()).Msg("config reloaded")
		cs.SetConfig(flatten(v))
	})
	v.WatchConfig()
	return nil
}

func flatten(v *viper.Viper) map[string]any {
	out := make(map[string]any)
	for _, k := range v.AllKeys() {
		out[k] = v.Get(k)
	}
	return out
}
