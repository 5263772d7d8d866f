package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nimbuswallet/walletdash-backend/internal/model"
)

var (
	feedFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletdash",
		Subsystem: "feed",
		Name:      "fetch_total",
		Help:      "Count of feed fetches by kind.",
	}, []string{"coin", "fetch", "status"})

	feedFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletdash",
		Subsystem: "feed",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of feed fetches by kind.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "fetch", "status"})
)

// Feed tracks metrics for one coin's transaction feed.
type Feed struct {
	coin model.Coin
}

// NewFeed constructs a metrics collector for one coin's feed.
func NewFeed(coin model.Coin) *Feed {
	if coin == "" {
		coin = "unknown"
	}
	return &Feed{coin: coin}
}

// ObserveFetch records one fetch outcome and duration.
func (m Feed) ObserveFetch(fetch string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	feedFetchTotal.WithLabelValues(string(m.coin), fetch, status).Inc()
	feedFetchDuration.WithLabelValues(string(m.coin), fetch, status).Observe(time.Since(started).Seconds())
}
