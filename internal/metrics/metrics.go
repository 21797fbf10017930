// Package metrics exposes prometheus counters for runs, rewards and items
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run metrics
var (
	RunsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRunsCompleted,
			Help: HelpTextRunsCompleted,
		},
		[]string{LabelLevel, LabelOutcome},
	)

	RewardPoints = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRewardPoints,
			Help:    HelpTextRewardPoints,
			Buckets: RewardPointBuckets,
		},
	)

	WeatherStatus = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWeatherStatus,
			Help: HelpTextWeatherStatus,
		},
		[]string{LabelStatus},
	)
)

// Item metrics
var (
	ItemsForged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsForged,
			Help: HelpTextItemsForged,
		},
		[]string{LabelSlot},
	)
)

// Event metrics
var (
	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
