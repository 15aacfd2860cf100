// Package api
// Author: momentics
//
// Live debug support for containers.

package api

// StateDumper is implemented by anything able to report a diagnostic snapshot.
type StateDumper interface {
    // DumpState emits a snapshot of internal state for diagnostics.
    DumpState() map[string]any
}

// Debug exposes runtime introspection over registered probes.
type Debug interface {
    StateDumper

    // RegisterProbe dynamically registers new debug probes.
    RegisterProbe(name string, fn func() any)
}
