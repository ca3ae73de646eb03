package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	NotifyProcessingDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "paygw",
			Subsystem: "notify",
			Name:      "item_processing_duration_seconds",
			Help:      "Notification item processing duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"topic", "consumer_group", "status"},
	)

	NotifyItemsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paygw",
			Subsystem: "notify",
			Name:      "items_processed_total",
			Help:      "Total number of notification items processed",
		},
		[]string{"topic", "consumer_group", "status"},
	)

	NotifyItemsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paygw",
			Subsystem: "notify",
			Name:      "items_dropped_total",
			Help:      "Notification items dropped after exhausting the retry ceiling",
		},
		[]string{"topic"},
	)
)

func init() {
	Registry.MustRegister(NotifyProcessingDuration, NotifyItemsProcessed, NotifyItemsDropped)
}
