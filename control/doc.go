// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, runtime metrics, and debug introspection for rings and the
// drivers that feed them.
//
// Provides concurrent-safe state handling primitives including:
//   - Typed configuration with YAML loading, validation and reload listeners
//   - Metrics counters
//   - Named debug probes, including platform probes
package control
