package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"liyu1981.xyz/seismic-telemetry-service/pkg/cache"
	"liyu1981.xyz/seismic-telemetry-service/pkg/common"
	"liyu1981.xyz/seismic-telemetry-service/pkg/hub"
	seismicHttp "liyu1981.xyz/seismic-telemetry-service/pkg/http"
	"liyu1981.xyz/seismic-telemetry-service/pkg/metric"
	"liyu1981.xyz/seismic-telemetry-service/pkg/ws"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeySeismicHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeySeismicDefaultRate), 64); err != nil {
		log.Fatal("Invalid SEISMIC_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeySeismicDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid SEISMIC_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	var quakeThreshold float64
	if raw, found := os.LookupEnv(common.EnvKeySeismicQuakeThreshold); found {
		if quakeThreshold, err = strconv.ParseFloat(raw, 64); err != nil {
			log.Fatal("Invalid SEISMIC_QUAKE_THRESHOLD, should be a float64 value")
		}
	}

	livenessPeriod := hub.DefaultLivenessPeriod
	if raw, found := os.LookupEnv(common.EnvKeySeismicLivenessPeriodSeconds); found {
		var seconds int64
		if seconds, err = strconv.ParseInt(raw, 10, 64); err != nil || seconds < 1 {
			log.Fatal("Invalid SEISMIC_LIVENESS_PERIOD_SECONDS, should be a positive int value")
		}
		livenessPeriod = time.Duration(seconds) * time.Second
	}

	logger := common.GetLogger()

	registry := prometheus.NewRegistry()

	hubCore := hub.New(hub.Config{
		Store:          cache.GetStore(cache.UseSnapshotFile()),
		Metrics:        metric.NewHubMetrics(registry),
		QuakeThreshold: quakeThreshold,
	})
	hubCore.Snapshot.LoadInitial()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hubCore.StartLivenessMonitor(ctx, livenessPeriod)
	hubCore.StartThroughputMeter(ctx)

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &seismicHttp.RestfulServer{
		Server:           gin.Default(),
		Hub:              hubCore,
		Gateway:          ws.NewGateway(hubCore, livenessPeriod),
		RateLimiterStore: hub.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
		MetricsRegistry:  registry,
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	srv := &http.Server{
		Addr:    httpHostPort,
		Handler: rs.Server,
	}

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down")
		hubCore.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http server shutdown did not finish cleanly", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
