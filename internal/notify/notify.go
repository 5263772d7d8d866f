// Package notify keeps short-lived user notifications for the dashboard.
// A notification leaves the center in exactly two ways: its display window
// expires, or the caller dismisses it explicitly by id. There is no other
// removal path, so incidental interactions can never swallow one.
package notify

import (
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Kind distinguishes success and error notifications.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is one active entry.
type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Center holds active notifications with a fixed display window.
type Center struct {
	window time.Duration
	logger *zap.Logger
	now    func() time.Time

	mu    sync.Mutex
	seq   int64
	items []Notification
}

// NewCenter builds a center whose notifications live for window.
func NewCenter(window time.Duration, logger *zap.Logger) *Center {
	return &Center{
		window: window,
		logger: logger,
		now:    time.Now,
	}
}

// Push adds a notification and returns its id.
func (c *Center) Push(kind Kind, message string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	id := strconv.FormatInt(c.seq, 10)
	c.items = append(c.items, Notification{
		ID:        id,
		Kind:      kind,
		Message:   message,
		ExpiresAt: c.now().Add(c.window),
	})
	c.logger.Debug("notification pushed",
		zap.String("id", id),
		zap.String("kind", string(kind)))
	return id
}

// Dismiss removes a notification by id, reporting whether it was present.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prune()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Active returns the notifications whose display window has not elapsed.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prune()
	return append([]Notification(nil), c.items...)
}

func (c *Center) prune() {
	now := c.now()
	kept := c.items[:0]
	for _, n := range c.items {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	c.items = kept
}
