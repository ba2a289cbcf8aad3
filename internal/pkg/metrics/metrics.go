package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	reservations *prometheus.CounterVec
	expired      prometheus.Counter
	quoteLatency prometheus.Histogram
	quoteCache   *prometheus.CounterVec
	txRetries    prometheus.Counter
}

// New registers the engine's collectors on reg. Tests pass a fresh
// prometheus.NewRegistry() so registrations never collide.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		reservations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "checkout",
			Name:      "reservation_operations_total",
			Help:      "Reservation ledger operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		expired: f.NewCounter(prometheus.CounterOpts{
			Namespace: "checkout",
			Name:      "reservations_expired_total",
			Help:      "Held reservations moved to expired by the sweep.",
		}),
		quoteLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "checkout",
			Name:      "price_quote_duration_seconds",
			Help:      "Time spent resolving a price quote.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		quoteCache: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "checkout",
			Name:      "price_quote_cache_total",
			Help:      "Quote cache lookups by result.",
		}, []string{"result"}),
		txRetries: f.NewCounter(prometheus.CounterOpts{
			Namespace: "checkout",
			Name:      "tx_retries_total",
			Help:      "Transactions retried after a serialization failure or lost update.",
		}),
	}
}

// NewNop returns metrics bound to a private registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) ReservationOp(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.reservations.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) Expired(n int) {
	m.expired.Add(float64(n))
}

func (m *Metrics) ObserveQuote(start time.Time) {
	m.quoteLatency.Observe(time.Since(start).Seconds())
}

func (m *Metrics) QuoteCache(hit bool) {
	if hit {
		m.quoteCache.WithLabelValues("hit").Inc()
		return
	}
	m.quoteCache.WithLabelValues("miss").Inc()
}

func (m *Metrics) TxRetry() {
	m.txRetries.Inc()
}
