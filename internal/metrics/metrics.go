// Package metrics exposes driver cycle counters in Prometheus format.
// Grounded on newbpydev-bubblyui's monitoring/prometheus.go; see DESIGN.md.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Driver collects per-cycle counters for one ravel.Driver.
type Driver struct {
	Cycles   prometheus.Counter
	Panics   prometheus.Counter
	CycleDur prometheus.Histogram
}

// NewDriver registers a fresh set of collectors on reg.
func NewDriver(reg prometheus.Registerer) *Driver {
	f := promauto.With(reg)
	return &Driver{
		Cycles: f.NewCounter(prometheus.CounterOpts{
			Name: "ravel_driver_cycles_total",
			Help: "Update cycles run by this driver.",
		}),
		Panics: f.NewCounter(prometheus.CounterOpts{
			Name: "ravel_driver_panics_total",
			Help: "Cycles that panicked during Build/Rebuild.",
		}),
		CycleDur: f.NewHistogram(prometheus.HistogramOpts{
			Name: "ravel_driver_cycle_duration_seconds",
			Help: "Wall-clock duration of a single update cycle.",
		}),
	}
}
