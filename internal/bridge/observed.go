package bridge

import (
	"context"
	"encoding/json"
	"time"
)

type (
	// InvokeMetrics records the outcome and duration of bridge invokes.
	InvokeMetrics interface {
		Observe(action string, err error, started time.Time)
	}
)

// ObservedInvoker decorates an Invoker with per-action metrics.
type ObservedInvoker struct {
	inv     Invoker
	metrics InvokeMetrics
}

// NewObservedInvoker wraps inv so every invoke is observed.
func NewObservedInvoker(inv Invoker, metrics InvokeMetrics) *ObservedInvoker {
	return &ObservedInvoker{
		inv:     inv,
		metrics: metrics,
	}
}

// Invoke implements Invoker.
func (o *ObservedInvoker) Invoke(ctx context.Context, action string, params any, timeout time.Duration) (data json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe(action, err, started)
	}()
	return o.inv.Invoke(ctx, action, params, timeout)
}
