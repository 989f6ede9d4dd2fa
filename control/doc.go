// Package control
// Author: momentics <momentics@gmail.com>
//
// Hot-reload, runtime metrics, configuration control, and debug introspection
// layer for cowring consumers.
//
// Provides concurrent-safe state handling primitives including:
//   - Snapshot config reads, merges and file watching (viper)
//   - Runtime observers for hot-reload
//   - Metrics counters and ring snapshots
//   - Debug probes over rings and the Go runtime
package control
