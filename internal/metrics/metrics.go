// Package metrics holds the Prometheus instruments of the engine. Instruments
// are registered on the default registry and exposed by the HTTP adapter.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Click tracking
	ClicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promotrack_clicks_total",
			Help: "Click requests by outcome (accepted, rejected)",
		},
		[]string{"outcome"},
	)

	UniqueClicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "promotrack_unique_clicks_total",
			Help: "Accepted clicks that were the first of their fingerprint in the unique window",
		},
	)

	ConversionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "promotrack_conversions_total",
			Help: "Clicks flipped to converted",
		},
	)

	// Fraud detection
	FraudRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promotrack_fraud_rejections_total",
			Help: "Requests rejected by the fraud detector by reason",
		},
		[]string{"reason"},
	)

	FraudIndicatorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promotrack_fraud_indicators_total",
			Help: "Click-pattern indicators fired, including non-blocking single hits",
		},
		[]string{"indicator"},
	)

	FraudEscalationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "promotrack_fraud_escalations_total",
			Help: "IPs placed on the block list",
		},
	)

	GeoLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promotrack_geo_lookups_total",
			Help: "Geolocation lookups by result (success, failure, rejected, degraded)",
		},
		[]string{"result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "promotrack_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Rewards
	RewardsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promotrack_rewards_total",
			Help: "Rewards created by initial status",
		},
		[]string{"status"},
	)

	RewardSkipsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promotrack_reward_skips_total",
			Help: "Candidate settings skipped by reason",
		},
		[]string{"reason"},
	)

	RewardSettingEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promotrack_reward_setting_evaluations_total",
			Help: "Reward setting evaluations by result (success, error)",
		},
		[]string{"result"},
	)

	RewardTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promotrack_reward_transitions_total",
			Help: "Reward lifecycle transitions",
		},
		[]string{"from", "to"},
	)

	DistributionSignalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promotrack_distribution_signals_total",
			Help: "Distribution signals published by result",
		},
		[]string{"result"},
	)

	// Cache
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promotrack_cache_requests_total",
			Help: "Read-through cache requests by namespace and result (hit, miss, error)",
		},
		[]string{"namespace", "result"},
	)
)
