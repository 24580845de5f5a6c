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

	"github.com/fleetflow/fleetflow-api/internal/business/fleet"
	"github.com/fleetflow/fleetflow-api/internal/platform/config"
	firestoreclient "github.com/fleetflow/fleetflow-api/internal/platform/firestore"
	apirouter "github.com/fleetflow/fleetflow-api/internal/platform/http"
	"github.com/fleetflow/fleetflow-api/internal/platform/log"
	"github.com/fleetflow/fleetflow-api/internal/platform/metrics"
	"github.com/fleetflow/fleetflow-api/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load: %v\n", err)
		os.Exit(1)
	}

	if err := log.Init(log.Options{Name: "fleetflow", Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger := log.L()

	gin.SetMode(cfg.GinMode)

	firestoreClient, credsSource, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		logger.Fatal("firestore init", zap.Error(err))
	}
	defer firestoreClient.Close()

	if err := firestoreclient.Ping(ctx, firestoreClient); err != nil {
		logger.Fatal("firestore ping", zap.Error(err))
	}
	logger.Info("connected to Firestore",
		zap.String("project", cfg.FirebaseProjectID),
		zap.String("credentials", credsSource),
	)

	vehicleRepo := repository.NewVehicleRepository(firestoreClient)
	driverRepo := repository.NewDriverRepository(firestoreClient)
	fuelRepo := repository.NewFuelLogRepository(firestoreClient)
	maintenanceRepo := repository.NewMaintenanceRepository(firestoreClient)
	statsRepo := repository.NewStatsRepository(firestoreClient)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	fleetMetrics := metrics.NewFleet(registry)

	dashboard := fleet.NewService(vehicleRepo, statsRepo, fleet.NewAggregator(fleet.DefaultPalette()), fleetMetrics, logger)

	router := apirouter.NewRouter(apirouter.Deps{
		Vehicles:       vehicleRepo,
		Drivers:        driverRepo,
		FuelLogs:       fuelRepo,
		Maintenance:    maintenanceRepo,
		Dashboard:      dashboard,
		Gatherer:       registry,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		APIToken:       cfg.APIToken,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()
	logger.Info("server listening", zap.String("port", cfg.Port))

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
