package metrics

import (
	"time"

	apperrors "flight-fare-ledger/pkg/app_errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fare_ledger"

// Metrics holds the ledger's prometheus collectors. A nil *Metrics is a no-op.
type Metrics struct {
	Operations        *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	SeatsMoved        *prometheus.CounterVec
	Notifications     *prometheus.CounterVec
}

// New registers the collectors on reg. Tests pass prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "The total number of ledger operations by result",
		}, []string{"operation", "result"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Time taken by ledger operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		SeatsMoved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seats_moved_total",
			Help:      "Seats added to or removed from available inventory",
		}, []string{"direction"}),
		Notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Booking notifications processed by result",
		}, []string{"result"}),
	}
}

// Observe records the outcome and latency of one operation.
func (m *Metrics) Observe(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(operation, apperrors.KindOf(err)).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) SeatsIn(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.SeatsMoved.WithLabelValues("in").Add(float64(n))
}

func (m *Metrics) SeatsOut(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.SeatsMoved.WithLabelValues("out").Add(float64(n))
}

func (m *Metrics) Notification(result string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(result).Inc()
}
