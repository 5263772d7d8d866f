package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bridgeInvokesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletdash",
		Subsystem: "bridge",
		Name:      "invokes_total",
		Help:      "Count of wallet bridge invokes.",
	}, []string{"action", "status"})
	bridgeInvokeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletdash",
		Subsystem: "bridge",
		Name:      "invoke_duration_seconds",
		Help:      "Duration of wallet bridge invokes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action", "status"})
)

// BridgeInvoker tracks metrics for calls through the wallet bridge.
type BridgeInvoker struct{}

// NewBridgeInvoker constructs a metrics collector for bridge invokes.
func NewBridgeInvoker() *BridgeInvoker {
	return &BridgeInvoker{}
}

// Observe records a single invoke outcome and duration.
func (m BridgeInvoker) Observe(action string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	bridgeInvokesTotal.WithLabelValues(action, status).Inc()
	bridgeInvokeDuration.WithLabelValues(action, status).Observe(time.Since(started).Seconds())
}
