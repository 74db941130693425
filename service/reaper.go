package service

import (
	"time"

	"citydirectory/helpers"
	"citydirectory/interfaces"
	"citydirectory/metrics"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// DefaultReapInterval is how often the reaper scans the store for stale
// entries.
const DefaultReapInterval = 15 * time.Second

// Reaper periodically evicts stale entries from the store. Each tick is
// independent: a panic during one pass is logged and the next tick runs
// normally, and staleness is always evaluated against the current clock,
// so timer drift cannot double-evict or under-evict.
type Reaper struct {
	store     interfaces.Store
	interval  time.Duration
	now       func() time.Time
	collector *metrics.Collector
	logger    log.Logger

	stop chan struct{}
	done chan struct{}
}

// NewReaper creates a stopped reaper over store. Call Start to begin the
// eviction loop. Panics on nil store, now, collector or logger.
func NewReaper(store interfaces.Store, interval time.Duration, now func() time.Time, collector *metrics.Collector, logger log.Logger) *Reaper {
	if interval <= 0 {
		interval = DefaultReapInterval
	}
	return &Reaper{
		store:     helpers.NilPanic(store, "service.reaper.go: store is required"),
		interval:  interval,
		now:       helpers.NilPanic(now, "service.reaper.go: now is required"),
		collector: helpers.NilPanic(collector, "service.reaper.go: collector is required"),
		logger:    log.WithPrefix(helpers.NilPanic(logger, "service.reaper.go: logger is required"), "component", "reaper"),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the eviction loop in its own goroutine.
func (r *Reaper) Start() {
	go r.loop()
}

// Stop terminates the eviction loop and waits for the in-flight tick, if
// any, to finish. Safe to call once.
func (r *Reaper) Stop() {
	close(r.stop)
	<-r.done
}

func (r *Reaper) loop() {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.tick()
		case <-r.stop:
			return
		}
	}
}

// tick runs one eviction pass. Failures are isolated: the loop must
// survive a single bad pass.
func (r *Reaper) tick() {
	defer func() {
		if rec := recover(); rec != nil {
			level.Error(r.logger).Log("msg", "eviction pass failed", "panic", rec)
		}
	}()

	removed := r.store.RemoveStale(r.now())
	if removed > 0 {
		level.Warn(r.logger).Log("msg", "removed stale services", "count", removed)
		r.collector.RecordEvictions(removed)
	}
	r.collector.SetRegisteredServices(r.store.Size())
}
