// Package metrics collects and exposes directory metrics for Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the directory's Prometheus metrics.
type Collector struct {
	registrations prometheus.Counter
	updates       prometheus.Counter
	rejections    prometheus.Counter
	evictions     prometheus.Counter
	liveServices  prometheus.Gauge
}

// NewCollector creates the metric set and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "directory_registrations_total",
			Help: "Total number of new service registrations",
		}),
		updates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "directory_registration_updates_total",
			Help: "Total number of registration renewals for existing keys",
		}),
		rejections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "directory_registrations_rejected_total",
			Help: "Total number of registrations rejected by validation",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "directory_evictions_total",
			Help: "Total number of stale entries evicted by the reaper",
		}),
		liveServices: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "directory_registered_services",
			Help: "Current number of entries in the directory (staleness not applied)",
		}),
	}

	reg.MustRegister(c.registrations)
	reg.MustRegister(c.updates)
	reg.MustRegister(c.rejections)
	reg.MustRegister(c.evictions)
	reg.MustRegister(c.liveServices)

	return c
}

// RecordRegistration counts one successful Register call.
func (c *Collector) RecordRegistration(isNew bool) {
	if isNew {
		c.registrations.Inc()
	} else {
		c.updates.Inc()
	}
}

// RecordRejection counts one Register call rejected by validation.
func (c *Collector) RecordRejection() {
	c.rejections.Inc()
}

// RecordEvictions counts entries removed by one eviction pass.
func (c *Collector) RecordEvictions(n int) {
	c.evictions.Add(float64(n))
}

// SetRegisteredServices publishes the raw entry count.
func (c *Collector) SetRegisteredServices(n int) {
	c.liveServices.Set(float64(n))
}
