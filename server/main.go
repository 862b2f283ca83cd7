package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"go-imf-rate-provider/alias"
	"go-imf-rate-provider/config"
	"go-imf-rate-provider/exchange"
	"go-imf-rate-provider/feed"
	"go-imf-rate-provider/http"
	"go-imf-rate-provider/imf"
	"go-imf-rate-provider/metrics"

	nhttp "net/http"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	cfg, err := config.LoadConfig(logger)
	if err != nil {
		level.Error(logger).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, cfg.LevelFilter())

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	instruments := metrics.New(registry)

	var rates imf.Service
	rates = imf.NewService(alias.Default(), log.With(logger, "component", "imf"))
	rates = imf.NewInstrumentingService(instruments, rates)
	rates = imf.NewLoggingService(log.With(logger, "component", "imf"), rates)

	var source feed.Source
	source = feed.NewFileSource(cfg.FeedPath)
	source = feed.NewLoggingSource(log.With(logger, "component", "feed_file"), source)
	loader := feed.NewLoader(source, rates, cfg.RefreshInterval, log.With(logger, "component", "feed"))

	exchangeService := exchange.NewService(rates)
	exchangeService = exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchangeService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go loader.Run(ctx)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := http.NewServer(rates, exchangeService, registry, log.With(logger, "component", "http"))
	server := &nhttp.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			level.Error(logger).Log("msg", "shutdown", "err", err)
		}
	}()

	level.Info(logger).Log("msg", "server starting", "port", cfg.Port, "feed", cfg.FeedPath, "refresh", cfg.RefreshInterval)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
		level.Error(logger).Log("msg", "server failed", "err", err)
		os.Exit(1)
	}
}
