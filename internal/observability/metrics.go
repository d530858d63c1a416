package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "qenea_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// VoteToggles counts vote toggle outcomes by target kind and result.
	VoteToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qenea_vote_toggles_total",
		Help: "Total number of vote toggles by target kind and outcome",
	}, []string{"target_kind", "outcome"})

	// AcceptanceToggles counts answer acceptance toggles by outcome.
	AcceptanceToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qenea_acceptance_toggles_total",
		Help: "Total number of answer acceptance toggles by outcome",
	}, []string{"outcome"})

	// FollowToggles counts follow toggles by outcome.
	FollowToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qenea_follow_toggles_total",
		Help: "Total number of follow toggles by outcome",
	}, []string{"outcome"})

	// MailQueueDepth is the gauge of queued outbound emails.
	MailQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "qenea_mail_queue_depth",
		Help: "Number of emails waiting in the outbound mail queue",
	})

	// MailDeliveries counts outbound email attempts by result.
	MailDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qenea_mail_deliveries_total",
		Help: "Total number of outbound email deliveries by result",
	}, []string{"result"})

	// WebSocketConnectionsTotal is the gauge of active WebSocket connections.
	WebSocketConnectionsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "qenea_websocket_connections_total",
		Help: "Total number of active WebSocket connections",
	})

	// WebSocketBackpressureDrops counts messages dropped on slow or closed
	// client connections.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qenea_websocket_backpressure_drops_total",
		Help: "Total number of WebSocket messages dropped due to backpressure",
	}, []string{"reason"})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}
