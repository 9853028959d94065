package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	RoundsPlayed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoundsPlayed,
			Help: HelpTextRoundsPlayed,
		},
		[]string{LabelGame},
	)

	RoundsWon = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoundsWon,
			Help: HelpTextRoundsWon,
		},
		[]string{LabelGame},
	)

	BetAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBetAmount,
			Help: HelpTextBetAmount,
		},
		[]string{LabelGame},
	)

	PayoutAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePayoutAmount,
			Help: HelpTextPayoutAmount,
		},
		[]string{LabelGame},
	)

	CheatsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCheatsApplied,
			Help: HelpTextCheatsApplied,
		},
		[]string{LabelGame},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)

	SessionsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsExpired,
			Help: HelpTextSessionsExpired,
		},
	)
)
