package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/yupiter/analytics-api/infrastructure/database/postgres"
	"github.com/yupiter/analytics-api/infrastructure/kvstore"
	"github.com/yupiter/analytics-api/infrastructure/repository"
	"github.com/yupiter/analytics-api/internal/api"
	"github.com/yupiter/analytics-api/internal/config"
	"github.com/yupiter/analytics-api/internal/scheduler"
	"github.com/yupiter/analytics-api/internal/usecases/authenticating"
	"github.com/yupiter/analytics-api/internal/usecases/cataloging"
	"github.com/yupiter/analytics-api/internal/usecases/insighting"
	"github.com/yupiter/analytics-api/internal/usecases/projecting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newStore(ctx, cfg)

	userRepo := repository.NewUserRepository(store)
	sessionRepo := repository.NewSessionRepository(store)

	authenticator := authenticating.NewService(userRepo, sessionRepo, cfg)

	catalog := cataloging.NewCatalog(store)
	insightService := insighting.NewService(catalog.StoreRecords, catalog.NegativeRecords)
	projectionService := projecting.NewService()

	snapshotService := scheduler.NewSnapshotSyncService(store, cfg)
	if err := snapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start the collection snapshot scheduler")
	} else {
		logrus.Info("collection snapshot scheduler started")
	}

	server, err := api.New(
		cfg,
		authenticator,
		catalog,
		insightService,
		projectionService,
		snapshotService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and working directory
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newStore builds the key-value driver selected by configuration. The file
// driver is the default; postgres is used when the data must outlive the host.
func newStore(ctx context.Context, cfg *config.Config) kvstore.Store {
	switch cfg.Storage.Driver {
	case "postgres":
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
		}

		store, err := kvstore.NewPostgres(ctx, conn, cfg.Storage.Prefix)
		if err != nil {
			logrus.WithError(err).Fatal("failed to initialize the postgres kv store")
		}

		logrus.Info("postgres kv store initialized")
		return store

	default:
		store, err := kvstore.NewFile(afero.NewOsFs(), cfg.Storage.Path, cfg.Storage.Prefix)
		if err != nil {
			logrus.WithError(err).Fatal("failed to initialize the file kv store")
		}

		logrus.WithField("path", cfg.Storage.Path).Info("file kv store initialized")
		return store
	}
}
