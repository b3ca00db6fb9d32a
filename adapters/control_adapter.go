// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control interface using control package
// primitives, plus ring probe registration.

package adapters

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/core/ring"
)

type ControlAdapter struct {
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

func NewControlAdapter() *ControlAdapter {
	adapter := &ControlAdapter{
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
	}
	control.RegisterPlatformProbes(adapter.debug)
	return adapter
}

func (c *ControlAdapter) Stats() map[string]any {
	stats := c.metrics.GetSnapshot()
	debugStats := c.debug.DumpState()
	combined := make(map[string]any)
	for k, v := range stats {
		combined[k] = v
	}
	for k, v := range debugStats {
		combined["debug."+k] = v
	}
	return combined
}
func (c *ControlAdapter) SetMetric(key string, value any) {
	c.metrics.Set(key, value)
}
func (c *ControlAdapter) AddMetric(key string, delta int64) {
	c.metrics.Add(key, delta)
}
func (c *ControlAdapter) Counter(key string) int64 {
	return c.metrics.Counter(key)
}
func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}

// StatsSource is anything reporting ring accounting; *ring.Ring and *Locked
// both qualify. Probes call it from the probing goroutine, so unlocked rings
// should only be watched from their owning goroutine.
type StatsSource interface {
	Stats() ring.Stats
}

// WatchRing registers occupancy probes for r under name.
func (c *ControlAdapter) WatchRing(name string, r StatsSource) {
	c.debug.RegisterProbe(name+".len", func() any { return r.Stats().Len })
	c.debug.RegisterProbe(name+".free", func() any { return r.Stats().Free })
	c.debug.RegisterProbe(name+".cap", func() any { return r.Stats().Cap })
	c.debug.RegisterProbe(name+".cursors", func() any {
		s := r.Stats()
		return [2]int{s.WriteCursor, s.ReadCursor}
	})
}

// Ensure compile-time compliance.
var _ api.Control = (*ControlAdapter)(nil)
