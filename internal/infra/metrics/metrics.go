// Package metrics owns the prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "voucher_shop"

type Registry struct {
	cacheRequests    *prometheus.CounterVec
	cacheRebuilds    *prometheus.CounterVec
	poolRejected     prometheus.Counter
	poolPanics       prometheus.Counter
	poolQueued       prometheus.Gauge
	purchaseOutcomes *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Registry {
	f := promauto.With(reg)
	return &Registry{
		cacheRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "requests_total",
			Help:      "Cache lookups by strategy and result (hit, null_hit, miss, stale, corrupt, error).",
		}, []string{"strategy", "result"}),
		cacheRebuilds: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "rebuilds_total",
			Help:      "Cache rebuilds by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		poolRejected: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rebuild_pool",
			Name:      "rejected_total",
			Help:      "Tasks rejected because the rebuild queue was full or closed.",
		}),
		poolPanics: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rebuild_pool",
			Name:      "panics_total",
			Help:      "Tasks that panicked.",
		}),
		poolQueued: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rebuild_pool",
			Name:      "queued_tasks",
			Help:      "Tasks waiting for a worker.",
		}),
		purchaseOutcomes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "seckill",
			Name:      "purchase_outcomes_total",
			Help:      "Flash-sale purchase attempts by terminal outcome.",
		}, []string{"outcome"}),
	}
}

func (r *Registry) CacheResult(strategy, result string) {
	r.cacheRequests.WithLabelValues(strategy, result).Inc()
}

func (r *Registry) CacheRebuild(strategy, outcome string) {
	r.cacheRebuilds.WithLabelValues(strategy, outcome).Inc()
}

func (r *Registry) TaskRejected() { r.poolRejected.Inc() }
func (r *Registry) TaskPanicked() { r.poolPanics.Inc() }
func (r *Registry) QueueDepth(n int) {
	r.poolQueued.Set(float64(n))
}

func (r *Registry) PurchaseOutcome(outcome string) {
	r.purchaseOutcomes.WithLabelValues(outcome).Inc()
}

// CacheRequests is exposed for assertions in tests.
func (r *Registry) CacheRequests() *prometheus.CounterVec { return r.cacheRequests }

func (r *Registry) CacheRebuilds() *prometheus.CounterVec { return r.cacheRebuilds }

func (r *Registry) PurchaseOutcomes() *prometheus.CounterVec { return r.purchaseOutcomes }

func (r *Registry) PoolRejected() prometheus.Counter { return r.poolRejected }
