// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for hioload-deque.
//
// Provides concurrent-safe state handling primitives including:
//   - Resize telemetry fed by deque observers
//   - Snapshot export of registered containers
//
// Deques themselves are single-owner; the registries here carry their own
// locks so several owners may report into one registry.
package control
