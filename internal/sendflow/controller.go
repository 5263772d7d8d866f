// Package sendflow coordinates composing and submitting an outbound
// transaction. The whole flow is one tagged state value, so impossible
// combinations (submitting while already showing a result) cannot be
// represented. A send attempt always ends in reconciliation: whatever the
// bridge answered, the feed is refreshed after a settle delay, because a
// failed response does not prove the transaction was not broadcast.
package sendflow

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nimbuswallet/walletdash-backend/internal/addrcheck"
	"github.com/nimbuswallet/walletdash-backend/internal/clock"
	"github.com/nimbuswallet/walletdash-backend/internal/fees"
	"github.com/nimbuswallet/walletdash-backend/internal/model"
	"github.com/nimbuswallet/walletdash-backend/internal/notify"
)

// Phase is the controller's position in the send flow.
type Phase string

const (
	PhaseIdle               Phase = "idle"
	PhaseComposing          Phase = "composing"
	PhaseSubmitting         Phase = "submitting"
	PhaseReconcilingSuccess Phase = "reconciling-success"
	PhaseReconcilingFailure Phase = "reconciling-failure"
)

// ErrNotSubmittable is returned when Submit is called while the eligibility
// gate is not satisfied.
var ErrNotSubmittable = errors.New("send request is not submittable")

// State is the controller's current tagged state with its payload.
type State struct {
	Phase            Phase
	Recipient        string
	RecipientOutcome addrcheck.Outcome
	Amount           decimal.Decimal
	Quote            fees.FeeQuote
}

// Config carries the controller's timing knobs.
type Config struct {
	// SettleDelay is the pause between a send outcome and the
	// reconciliation refresh, allowing network propagation.
	SettleDelay time.Duration
}

const defaultSettleDelay = 3 * time.Second

// Deps are the controller's collaborators.
type Deps struct {
	Checker    *addrcheck.Registry
	Calculator *fees.Calculator
	Sender     Sender
	Feed       Refresher
	Notifier   Notifier
	Metrics    SubmitMetrics
	Logger     *zap.Logger

	// Resolver, when set, resolves recipient edits as registered names in
	// the background. A resolved name substitutes its owning address at
	// submission time.
	Resolver *addrcheck.Resolver
}

// Controller owns the send flow for one coin.
type Controller struct {
	coin   model.Coin
	deps   Deps
	settle time.Duration

	mu    sync.Mutex
	state State
}

// New builds an idle controller for one coin.
func New(coin model.Coin, deps Deps, cfg Config) *Controller {
	settle := cfg.SettleDelay
	if settle <= 0 {
		settle = defaultSettleDelay
	}
	return &Controller{
		coin:   coin,
		deps:   deps,
		settle: settle,
		state:  State{Phase: PhaseIdle},
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Begin opens a fresh compose form.
func (c *Controller) Begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = State{Phase: PhaseComposing, Quote: c.state.Quote}
}

// SetRecipient records a recipient edit and revalidates it. Every edit
// re-enters the composing phase.
func (c *Controller) SetRecipient(raw string) addrcheck.Outcome {
	outcome := c.deps.Checker.Check(c.coin, raw)
	if c.deps.Resolver != nil && outcome.Valid {
		c.deps.Resolver.Submit(raw)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Phase = PhaseComposing
	c.state.Recipient = raw
	c.state.RecipientOutcome = outcome
	return outcome
}

// SetAmount records an amount edit.
func (c *Controller) SetAmount(amount decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Phase = PhaseComposing
	c.state.Amount = amount
}

// SetFeeRate recomputes the fee quote from a raw network fee-rate signal.
func (c *Controller) SetFeeRate(rawFeeRate int64) fees.FeeQuote {
	quote := c.deps.Calculator.Quote(rawFeeRate, c.coin)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Quote = quote
	return quote
}

// UseMaxAmount composes the largest sendable amount from the balance. A
// balance below the estimated fee composes zero, never a negative amount.
func (c *Controller) UseMaxAmount(balance decimal.Decimal) decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Phase = PhaseComposing
	c.state.Amount = c.state.Quote.MaxSendable(balance)
	return c.state.Amount
}

// CanSubmit reports whether the eligibility gate is satisfied: a positive
// amount, a recipient that passed validation, and a non-zero fee quote.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSubmitLocked()
}

func (c *Controller) canSubmitLocked() bool {
	if c.state.Amount.Sign() <= 0 {
		return false
	}
	if strings.TrimSpace(c.state.Recipient) == "" || !c.state.RecipientOutcome.Valid {
		return false
	}
	return !c.state.Quote.Zero()
}

// Submit sends the composed transaction and reconciles. Both outcome
// branches behave identically apart from the notification kind: the form is
// cleared, the balance is marked stale, and after the settle delay the feed
// is refreshed so the ledger's eventual truth overrides the client's
// uncertain local assessment. The request is never retried here.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if !c.canSubmitLocked() {
		c.mu.Unlock()
		return ErrNotSubmittable
	}
	req := model.SendRequest{
		Coin:      c.coin,
		Recipient: strings.TrimSpace(c.state.Recipient),
		Amount:    c.state.Amount,
		Fee:       c.state.Quote.EstimatedNetworkFee,
	}
	c.state.Phase = PhaseSubmitting
	c.mu.Unlock()

	if c.deps.Resolver != nil {
		if res, ok := c.deps.Resolver.Latest(); ok && res.Found && res.Name == req.Recipient {
			req.Recipient = res.Owner
		}
	}

	started := time.Now()
	ack, err := c.deps.Sender.SendCoin(ctx, req)
	c.deps.Metrics.ObserveSubmit(err, started)

	if err != nil {
		c.deps.Logger.Warn("send failed, reconciling anyway",
			zap.String("coin", string(c.coin)),
			zap.Error(err))
		c.reconcile(ctx, PhaseReconcilingFailure)
		return err
	}

	c.deps.Logger.Info("send accepted",
		zap.String("coin", string(c.coin)),
		zap.String("ack", ack))
	c.reconcile(ctx, PhaseReconcilingSuccess)
	return nil
}

func (c *Controller) reconcile(ctx context.Context, phase Phase) {
	c.mu.Lock()
	c.state = State{Phase: phase, Quote: c.state.Quote}
	c.mu.Unlock()

	branch := "failure"
	kind := notify.KindError
	message := "send failed"
	if phase == PhaseReconcilingSuccess {
		branch = "success"
		kind = notify.KindSuccess
		message = "send accepted"
	}

	c.deps.Notifier.Push(kind, message)
	c.deps.Feed.MarkStale()
	c.deps.Metrics.ObserveReconcile(branch)

	// Give the network time to propagate before asking for the truth.
	if err := clock.SleepWithContext(ctx, c.settle); err != nil {
		c.deps.Logger.Debug("settle delay interrupted", zap.Error(err))
	}
	c.deps.Feed.Refresh(ctx)

	c.mu.Lock()
	c.state = State{Phase: PhaseIdle, Quote: c.state.Quote}
	c.mu.Unlock()
}
