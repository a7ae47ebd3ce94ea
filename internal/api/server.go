package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/yupiter/analytics-api/internal/api/handler"
	"github.com/yupiter/analytics-api/internal/api/handler/router"
	"github.com/yupiter/analytics-api/internal/config"
	"github.com/yupiter/analytics-api/internal/scheduler"
	"github.com/yupiter/analytics-api/internal/usecases/authenticating"
	"github.com/yupiter/analytics-api/internal/usecases/cataloging"
	"github.com/yupiter/analytics-api/internal/usecases/insighting"
	"github.com/yupiter/analytics-api/internal/usecases/projecting"
	"github.com/yupiter/analytics-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	catalog *cataloging.Catalog,
	insightService insighting.Insighter,
	projectionService projecting.Projector,
	snapshotService *scheduler.SnapshotSyncService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Catalog(catalog)...),
		router.WithRoutes(handler.Insights(insightService)...),
		router.WithRoutes(handler.Projection(projectionService)...),
		router.WithRoutes(handler.Snapshots(snapshotService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("error while running the server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful server shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped successfully")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("running cleanup before shutdown")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("HTTP server stopped successfully")
	return nil
}
