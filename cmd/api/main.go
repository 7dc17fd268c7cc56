package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/mishasvintus/mergington_activities/internal/config"
	"github.com/mishasvintus/mergington_activities/internal/domain"
	"github.com/mishasvintus/mergington_activities/internal/handler"
	"github.com/mishasvintus/mergington_activities/internal/logger"
	"github.com/mishasvintus/mergington_activities/internal/observability"
	"github.com/mishasvintus/mergington_activities/internal/repository"
	"github.com/mishasvintus/mergington_activities/internal/router"
	"github.com/mishasvintus/mergington_activities/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	gin.SetMode(cfg.GinMode)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(reg)

	activityRepo := repository.NewActivityRepository(domain.DefaultActivities())
	activityService := service.NewActivityService(activityRepo, logg, metrics)
	activityHandler := handler.NewActivityHandler(activityService)

	r := router.SetupRoutes(activityHandler, router.Options{
		Logger:    logg,
		Gatherer:  reg,
		StaticDir: cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logg.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logg.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logg.Info("server exited")
}
