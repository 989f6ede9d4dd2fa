// control/hotreload.go
// Manages global hot-reload hooks for config changes.
// TriggerHotReloadSync exists for deterministic test notification.

package control

import (
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	hooksMu     sync.Mutex
	reloadHooks []func()
)

// RegisterReloadHook adds a new component reload listener.
func RegisterReloadHook(fn func()) {
	hooksMu.Lock()
	reloadHooks = append(reloadHooks, fn)
	hooksMu.Unlock()
}

func hooks() []func() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	return append([]func(){}, reloadHooks...)
}

// TriggerHotReload dispatches all reload hooks asynchronously.
func TriggerHotReload() {
	hs := hooks()
	log.Debug().Int("hooks", len(hs)).Msg("hot reload dispatched")
	for _, fn := range hs {
		go fn()
	}
}

// TriggerHotReloadSync invokes all reload hooks synchronously.
func TriggerHotReloadSync() {
	for _, fn := range hooks() {
		fn()
	}
}
