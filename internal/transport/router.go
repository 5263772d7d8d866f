// Package transport exposes the dashboard's REST API.
package transport

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nimbuswallet/walletdash-backend/internal/addrcheck"
	"github.com/nimbuswallet/walletdash-backend/internal/model"
)

// Services are the per-coin and shared components the API fronts.
type Services struct {
	Feeds         map[model.Coin]WalletFeed
	Senders       map[model.Coin]SendController
	Checker       *addrcheck.Registry
	Names         NameResolver
	Notifications NotificationStore
	Logger        *zap.Logger
}

// Router wraps the Gin router with handlers
type Router struct {
	engine        *gin.Engine
	wallet        *WalletHandler
	names         *NameHandler
	notifications *NotificationHandler
}

// NewRouter creates a new Router with all handlers
func NewRouter(svc Services) *Router {
	gin.SetMode(gin.ReleaseMode)

	r := &Router{
		engine:        gin.New(),
		wallet:        NewWalletHandler(svc.Feeds, svc.Senders, svc.Checker),
		names:         NewNameHandler(svc.Names),
		notifications: NewNotificationHandler(svc.Notifications),
	}

	r.engine.Use(gin.Recovery())
	r.engine.Use(requestLogger(svc.Logger))
	r.setupRoutes()

	return r
}

// setupRoutes configures API routes
func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.engine.Group("/api/v1")
	{
		wallet := v1.Group("/wallet/:coin")
		wallet.Use(validateCoin())
		{
			wallet.GET("/summary", r.wallet.GetSummary)
			wallet.GET("/transactions", r.wallet.GetTransactions)
			wallet.POST("/validate", r.wallet.Validate)
			wallet.POST("/send", r.wallet.Send)
		}

		v1.GET("/names/:name", r.names.Get)

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", r.notifications.List)
			notifications.DELETE("/:id", r.notifications.Dismiss)
		}
	}
}

// Engine returns the underlying Gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

const coinKey = "coin"

// validateCoin resolves the :coin path segment to a known coin before any
// wallet handler runs.
func validateCoin() gin.HandlerFunc {
	return func(c *gin.Context) {
		coin, ok := model.ParseCoin(c.Param("coin"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown coin"})
			return
		}
		c.Set(coinKey, coin)
		c.Next()
	}
}

func coinFrom(c *gin.Context) model.Coin {
	return c.MustGet(coinKey).(model.Coin)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(started)))
	}
}
