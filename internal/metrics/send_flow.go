package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nimbuswallet/walletdash-backend/internal/model"
)

var (
	sendAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletdash",
		Subsystem: "send_flow",
		Name:      "attempts_total",
		Help:      "Count of send submissions.",
	}, []string{"coin", "status"})

	sendSubmitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletdash",
		Subsystem: "send_flow",
		Name:      "submit_duration_seconds",
		Help:      "Duration of the bridge send call.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "status"})

	sendReconcileTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletdash",
		Subsystem: "send_flow",
		Name:      "reconcile_total",
		Help:      "Count of post-send reconciliation refreshes.",
	}, []string{"coin", "branch"})
)

// SendFlow tracks metrics for the send controller.
type SendFlow struct {
	coin model.Coin
}

// NewSendFlow constructs a metrics collector for one coin's send flow.
func NewSendFlow(coin model.Coin) *SendFlow {
	if coin == "" {
		coin = "unknown"
	}
	return &SendFlow{coin: coin}
}

// ObserveSubmit records one submission outcome and duration.
func (m SendFlow) ObserveSubmit(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	sendAttemptsTotal.WithLabelValues(string(m.coin), status).Inc()
	sendSubmitDuration.WithLabelValues(string(m.coin), status).Observe(time.Since(started).Seconds())
}

// ObserveReconcile records that a reconciliation refresh ran on a branch.
func (m SendFlow) ObserveReconcile(branch string) {
	sendReconcileTotal.WithLabelValues(string(m.coin), branch).Inc()
}
