// Package bridge talks to the external wallet bridge through its single
// request/response invoke primitive. The bridge owns keys, signing and
// broadcast; this client only ships actions and decodes envelopes.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Invoker is the abstract bridge primitive. A zero timeout means the call is
// unbounded and fails only on transport errors or caller cancellation.
type Invoker interface {
	Invoke(ctx context.Context, action string, params any, timeout time.Duration) (json.RawMessage, error)
}

// HTTPInvoker posts invoke envelopes to a wallet bridge endpoint as JSON.
type HTTPInvoker struct {
	endpoint string
	client   *http.Client
	rl       ratelimit.Limiter
	logger   *zap.Logger
}

// NewHTTPInvoker builds an invoker for the given endpoint, limiting outbound
// requests to rps per second.
func NewHTTPInvoker(endpoint string, rps int, logger *zap.Logger) *HTTPInvoker {
	if rps <= 0 {
		rps = 10
	}
	return &HTTPInvoker{
		endpoint: endpoint,
		client:   &http.Client{},
		rl:       ratelimit.New(rps),
		logger:   logger,
	}
}

type invokeEnvelope struct {
	Action string `json:"action"`
	Params any    `json:"params"`
}

type responseEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error *errorPayload   `json:"error"`
}

// Invoke implements Invoker.
func (i *HTTPInvoker) Invoke(ctx context.Context, action string, params any, timeout time.Duration) (json.RawMessage, error) {
	i.rl.Take()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	body, err := json.Marshal(invokeEnvelope{Action: action, Params: params})
	if err != nil {
		return nil, &TransportError{Action: action, Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Action: action, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, &TransportError{Action: action, Err: err}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Action: action, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var envelope responseEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &TransportError{Action: action, Err: fmt.Errorf("decode response: %w", err)}
	}
	if envelope.Error != nil {
		return nil, &ServiceError{Action: action, Code: envelope.Error.Code, Message: envelope.Error.Message}
	}

	i.logger.Debug("bridge invoke ok", zap.String("action", action))
	return envelope.Data, nil
}
