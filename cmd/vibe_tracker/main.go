package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"vibe_tracker/internal/app/port"
	"vibe_tracker/internal/app/service"
	"vibe_tracker/internal/app/state"
	"vibe_tracker/internal/app/view"
	"vibe_tracker/internal/infrastructure/configloader"
	"vibe_tracker/internal/infrastructure/httpclient"
	"vibe_tracker/internal/infrastructure/restapi"
	"vibe_tracker/internal/infrastructure/storage"
	"vibe_tracker/internal/infrastructure/upstream"
	"vibe_tracker/internal/pkg/logger"
	"vibe_tracker/internal/pkg/metrics"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.yml"
	}
	// До InitSlog logger.Fatal пишет JSON в stdout
	cfg, err := configloader.Load(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", "path", cfgPath, "error", err)
	}

	zapLogger, err := logger.NewZap(cfg.Logging.Level)
	if err != nil {
		logger.Fatal("Failed to initialize zap logger", "error", err)
	}
	defer zapLogger.Sync() // flushes buffer, if any

	// Все slog-вызовы идут в тот же zap
	logger.InitSlog(zapLogger, cfg.Logging.Level)
	appLogger := logger.NewSlogAdapter()

	zapLogger.Info("Configuration loaded",
		zap.String("path", cfgPath),
		zap.String("upstream", cfg.Upstream.BaseURL),
		zap.Int64("chainID", cfg.Market.ChainID),
		zap.Bool("apiKeyConfigured", cfg.Upstream.APIKey != ""))
	if cfg.Upstream.APIKey == "" {
		zapLogger.Warn("WIELD_API_KEY is not set, upstream calls will be unauthenticated")
	}

	metrics.MustRegisterMetrics()

	store, err := newStore(cfg.Storage)
	if err != nil {
		zapLogger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	zapLogger.Info("Storage initialized", zap.String("driver", cfg.Storage.Driver))

	forwarder := upstream.NewForwarder(cfg.Upstream, zapLogger)
	fetcher := httpclient.NewProxyClient(cfg.Client.ProxyBaseURL, zapLogger)
	market := httpclient.NewMarketClient(fetcher, cfg.Market, zapLogger)
	shaper := view.NewShaper(cfg.Market.MarketURL)

	dashboardSvc := service.NewDashboardService(market, shaper, appLogger)
	tradeSvc := service.NewTradeListService(store, market, shaper, appLogger)
	appState := state.NewStore()

	router := restapi.SetupRouter(restapi.Handlers{
		Proxy:     restapi.NewProxyHandler(forwarder, zapLogger),
		Dashboard: restapi.NewDashboardHandler(dashboardSvc, appState, cfg, appLogger),
		State:     restapi.NewStateHandler(appState, dashboardSvc, appLogger),
		Trade:     restapi.NewTradeHandler(tradeSvc, appState, appLogger),
	}, cfg, zapLogger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		zapLogger.Info(fmt.Sprintf("Server starting on port %s", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// The data layer goes through our own proxy route, so the first load waits for the listener.
	if cfg.Market.RefreshOnStart {
		go func() {
			time.Sleep(500 * time.Millisecond)
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if err := dashboardSvc.Load(ctx, appState.Snapshot().Wallet); err != nil {
				zapLogger.Warn("Initial dashboard load completed with errors", zap.Error(err))
			} else {
				zapLogger.Info("Initial dashboard load completed")
			}
		}()
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}

func newStore(cfg configloader.StorageConfig) (port.KeyValueStore, error) {
	switch cfg.Driver {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "file", "":
		return storage.NewFileStore(cfg.Dir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
