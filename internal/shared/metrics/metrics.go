package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rss_notifier_checks_total",
		Help: "Feed checks by outcome status",
	}, []string{"status"})

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rss_notifier_notifications_total",
		Help: "Notification attempts by delivery status",
	}, []string{"status"})

	FeedFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rss_notifier_feed_fetch_duration_seconds",
		Help:    "Time spent downloading and parsing the feed",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms up to ~25s
	})

	LastCheckTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rss_notifier_last_check_timestamp_seconds",
		Help: "Unix time of the last completed check",
	})
)
