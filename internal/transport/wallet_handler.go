package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nimbuswallet/walletdash-backend/internal/addrcheck"
	"github.com/nimbuswallet/walletdash-backend/internal/bridge"
	"github.com/nimbuswallet/walletdash-backend/internal/feed"
	"github.com/nimbuswallet/walletdash-backend/internal/model"
	"github.com/nimbuswallet/walletdash-backend/internal/sendflow"
)

// WalletHandler handles per-coin wallet API requests
type WalletHandler struct {
	feeds   map[model.Coin]WalletFeed
	senders map[model.Coin]SendController
	checker *addrcheck.Registry
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(
	feeds map[model.Coin]WalletFeed,
	senders map[model.Coin]SendController,
	checker *addrcheck.Registry,
) *WalletHandler {
	return &WalletHandler{
		feeds:   feeds,
		senders: senders,
		checker: checker,
	}
}

// GetSummary returns the wallet snapshot for a coin
// GET /api/v1/wallet/:coin/summary
func (h *WalletHandler) GetSummary(c *gin.Context) {
	coin := coinFrom(c)
	wf, ok := h.feeds[coin]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "coin not enabled"})
		return
	}

	snap, stale := wf.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"coin":    snap.Coin,
		"address": snap.Address,
		"balance": snap.Balance,
		"stale":   stale,
	})
}

// GetTransactions returns one display page of the transaction table
// GET /api/v1/wallet/:coin/transactions?page=0&rows=10
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	coin := coinFrom(c)
	wf, ok := h.feeds[coin]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "coin not enabled"})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	rows, err := strconv.Atoi(c.DefaultQuery("rows", "10"))
	if err != nil || !validRows(rows) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rows, must be one of 0, 5, 10, 25"})
		return
	}

	c.JSON(http.StatusOK, wf.Page(page, rows))
}

func validRows(rows int) bool {
	for _, opt := range feed.RowsPerPageOptions {
		if rows == opt {
			return true
		}
	}
	return false
}

type validateRequest struct {
	Address string `json:"address"`
}

// Validate checks an address against the coin's accepted forms
// POST /api/v1/wallet/:coin/validate
func (h *WalletHandler) Validate(c *gin.Context) {
	coin := coinFrom(c)

	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	outcome := h.checker.Check(coin, req.Address)
	c.JSON(http.StatusOK, gin.H{
		"valid":  outcome.Valid,
		"reason": outcome.Reason,
	})
}

type sendRequest struct {
	Recipient string          `json:"recipient"`
	Amount    json.RawMessage `json:"amount"`
	FeeRate   int64           `json:"feeRate"`
}

// parseAmount accepts a quoted decimal string or a bare JSON number. Numbers
// are snapped to smallest units so float noise never reaches the send flow.
func parseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return decimal.NewFromString(s)
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return decimal.Decimal{}, err
	}
	units, err := model.FloatToUnits(f)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return model.UnitsToDecimal(units), nil
}

// Send composes and submits an outbound transaction. The call returns once
// reconciliation has completed, so a success response means the feed already
// reflects the bridge's post-send answers.
// POST /api/v1/wallet/:coin/send
func (h *WalletHandler) Send(c *gin.Context) {
	coin := coinFrom(c)
	ctrl, ok := h.senders[coin]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "coin not enabled"})
		return
	}

	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	ctrl.Begin()
	outcome := ctrl.SetRecipient(req.Recipient)
	ctrl.SetAmount(amount)
	ctrl.SetFeeRate(req.FeeRate)

	if err := ctrl.Submit(c.Request.Context()); err != nil {
		status, body := sendErrorResponse(err, outcome)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "accepted"})
}

func sendErrorResponse(err error, outcome addrcheck.Outcome) (int, gin.H) {
	if errors.Is(err, sendflow.ErrNotSubmittable) {
		body := gin.H{"error": "not submittable"}
		if !outcome.Valid {
			body["reason"] = outcome.Reason
		}
		return http.StatusUnprocessableEntity, body
	}

	var se *bridge.ServiceError
	if errors.As(err, &se) {
		return http.StatusBadGateway, gin.H{
			"error": se.Message,
			"code":  se.Code,
		}
	}
	return http.StatusBadGateway, gin.H{"error": err.Error()}
}
