package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/nimbuswallet/walletdash-backend/internal/addrcheck"
	"github.com/nimbuswallet/walletdash-backend/internal/bridge"
	"github.com/nimbuswallet/walletdash-backend/internal/clock"
	"github.com/nimbuswallet/walletdash-backend/internal/config"
	"github.com/nimbuswallet/walletdash-backend/internal/feed"
	"github.com/nimbuswallet/walletdash-backend/internal/fees"
	"github.com/nimbuswallet/walletdash-backend/internal/metrics"
	"github.com/nimbuswallet/walletdash-backend/internal/model"
	"github.com/nimbuswallet/walletdash-backend/internal/notify"
	"github.com/nimbuswallet/walletdash-backend/internal/sendflow"
	"github.com/nimbuswallet/walletdash-backend/internal/transport"
	"github.com/nimbuswallet/walletdash-backend/pkg/workerpool"
)

const activationWorkers = 3

var opts struct {
	ConfigPath string `long:"config" env:"WALLETDASH_CONFIG" description:"path to config file" default:"config.yaml"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&opts, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	invoker := bridge.NewObservedInvoker(
		bridge.NewHTTPInvoker(cfg.Bridge.Endpoint, cfg.Bridge.RequestsPerSecond, logger),
		metrics.NewBridgeInvoker(),
	)
	client := bridge.NewClient(invoker)

	checker := addrcheck.NewRegistry(logger)
	calculator := fees.NewCalculator(cfg.FeeMultipliers())
	notifications := notify.NewCenter(cfg.Notify.Window(), logger)

	nameResolver := addrcheck.NewResolver(client, 500*time.Millisecond, logger)
	defer nameResolver.Close()

	feedCfg := feed.Config{
		PollInterval: cfg.Feed.PollInterval(),
		FetchCeiling: cfg.Feed.FetchCeiling(),
	}

	feeds := make(map[model.Coin]transport.WalletFeed)
	senders := make(map[model.Coin]transport.SendController)
	activating := make([]*feed.Feed, 0, len(model.Coins()))
	for _, coin := range model.Coins() {
		f := feed.New(client, coin, feedCfg, metrics.NewFeed(coin), logger)
		feeds[coin] = f
		activating = append(activating, f)
		deps := sendflow.Deps{
			Checker:    checker,
			Calculator: calculator,
			Sender:     client,
			Feed:       f,
			Notifier:   notifications,
			Metrics:    metrics.NewSendFlow(coin),
			Logger:     logger,
		}
		if coin == model.QORT {
			// QORT recipients may be registered names; resolve them while
			// the user types.
			deps.Resolver = nameResolver
		}
		senders[coin] = sendflow.New(coin, deps, sendflow.Config{SettleDelay: cfg.Send.SettleDelay()})
	}

	// Activate feeds a few at a time so startup does not burst the bridge.
	// The group absorbs activations that finish after shutdown has begun.
	var tickers clock.TickerGroup
	go func() {
		err := workerpool.Process(ctx, activationWorkers, activating,
			func(ctx context.Context, f *feed.Feed) error {
				tickers.Add(f.Activate(ctx))
				return nil
			}, nil)
		if err != nil {
			logger.Warn("feed activation interrupted", zap.Error(err))
		}
	}()

	router := transport.NewRouter(transport.Services{
		Feeds:         feeds,
		Senders:       senders,
		Checker:       checker,
		Names:         client,
		Notifications: notifications,
		Logger:        logger,
	})

	mux := http.NewServeMux()
	mux.Handle("/", router.Engine())
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		tickers.Stop()
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", s.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
