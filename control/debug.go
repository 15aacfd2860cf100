// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Debug probe registry for internal inspection of live containers.

package control

import (
	"sync"

	"github.com/momentics/hioload-deque/api"
)

// Ensure compile-time interface compliance.
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

// RegisterDumper exposes a container's DumpState under name.
func (dp *DebugProbes) RegisterDumper(name string, d api.StateDumper) {
	dp.RegisterProbe(name, func() any { return d.DumpState() })
}

// Unregister removes a probe; unknown names are ignored.
func (dp *DebugProbes) Unregister(name string) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	delete(dp.probes, name)
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}
