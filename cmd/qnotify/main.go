// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package main contains qnotify main function to start the quality
// notifications service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	chi "github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	assetspg "github.com/partlane/qnotify/assets/postgres"
	bpncache "github.com/partlane/qnotify/bpn/cache"
	bpnpg "github.com/partlane/qnotify/bpn/postgres"
	"github.com/partlane/qnotify/edc"
	qlog "github.com/partlane/qnotify/logger"
	"github.com/partlane/qnotify/notifications"
	httpapi "github.com/partlane/qnotify/notifications/api/http"
	"github.com/partlane/qnotify/notifications/events"
	"github.com/partlane/qnotify/notifications/middleware"
	notifpg "github.com/partlane/qnotify/notifications/postgres"
	jaegerclient "github.com/partlane/qnotify/pkg/jaeger"
	pgclient "github.com/partlane/qnotify/pkg/postgres"
	"github.com/partlane/qnotify/pkg/prometheus"
	"github.com/partlane/qnotify/pkg/server"
	httpserver "github.com/partlane/qnotify/pkg/server/http"
	"github.com/partlane/qnotify/pkg/ulid"
	"github.com/partlane/qnotify/pkg/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	svcName        = "notifications"
	envPrefixDB    = "QNOTIFY_DB_"
	envPrefixHTTP  = "QNOTIFY_HTTP_"
	envPrefixEDC   = "QNOTIFY_EDC_"
	defDB          = "qnotify"
	defSvcHTTPPort = "9180"
)

type config struct {
	LogLevel    string        `env:"QNOTIFY_LOG_LEVEL"          envDefault:"info"`
	OwnBpn      string        `env:"QNOTIFY_OWN_BPN,notEmpty"`
	InstanceID  string        `env:"QNOTIFY_INSTANCE_ID"        envDefault:""`
	ESURL       string        `env:"QNOTIFY_ES_URL"             envDefault:"redis://localhost:6379/0"`
	CacheURL    string        `env:"QNOTIFY_CACHE_URL"          envDefault:"redis://localhost:6379/0"`
	CacheKeyTTL time.Duration `env:"QNOTIFY_CACHE_KEY_TTL"      envDefault:"10m"`
	JaegerURL   url.URL       `env:"QNOTIFY_JAEGER_URL"         envDefault:"http://localhost:4318/v1/traces"`
	TraceRatio  float64       `env:"QNOTIFY_JAEGER_TRACE_RATIO" envDefault:"1.0"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := qlog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err.Error())
	}

	var exitCode int
	defer qlog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	dbConfig := pgclient.Config{Name: defDB}
	if err := env.ParseWithOptions(&dbConfig, env.Options{Prefix: envPrefixDB}); err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	migrations := notifpg.Migration()
	migrations.Migrations = append(migrations.Migrations, assetspg.Migration().Migrations...)
	migrations.Migrations = append(migrations.Migrations, bpnpg.Migration().Migrations...)
	db, err := pgclient.Setup(dbConfig, *migrations)
	if err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	defer db.Close()

	tp, err := jaegerclient.NewProvider(ctx, svcName, cfg.JaegerURL, cfg.InstanceID, cfg.TraceRatio)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to init Jaeger: %s", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("error shutting down tracer provider: %s", err))
		}
	}()
	tracer := tp.Tracer(svcName)

	cacheOpts, err := redis.ParseURL(cfg.CacheURL)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse cache URL: %s", err))
		exitCode = 1
		return
	}
	cache := redis.NewClient(cacheOpts)
	defer cache.Close()

	edcConfig := edc.Config{}
	if err := env.ParseWithOptions(&edcConfig, env.Options{Prefix: envPrefixEDC}); err != nil {
		logger.Error(fmt.Sprintf("failed to load connector client configuration : %s", err))
		exitCode = 1
		return
	}

	svc, err := newService(ctx, db, tracer, cache, edcConfig, cfg, logger)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create %s service: %s", svcName, err))
		exitCode = 1
		return
	}

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.ParseWithOptions(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err))
		exitCode = 1
		return
	}
	mux := chi.NewRouter()
	hs := httpserver.NewServer(ctx, cancel, svcName, httpServerConfig, httpapi.MakeHandler(svc, mux, logger, cfg.InstanceID), logger)

	logger.Info(fmt.Sprintf("%s service started using http on port %s with own BPN %s", svcName, httpServerConfig.Port, cfg.OwnBpn))

	g.Go(func() error {
		return hs.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, hs)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}

func newService(ctx context.Context, db *sqlx.DB, tracer trace.Tracer, cache *redis.Client, edcConfig edc.Config, cfg config, logger *slog.Logger) (notifications.Service, error) {
	database := pgclient.NewDatabase(db, tracer)
	repo := notifpg.NewRepository(database)
	assetRepo := assetspg.NewRepository(database)
	partnerRepo := bpncache.NewMappingsCache(cache, bpnpg.NewRepository(database), cfg.CacheKeyTTL)
	transport := edc.New(edcConfig)

	svc := notifications.New(repo, assetRepo, partnerRepo, transport, ulid.New(), uuid.New(), cfg.OwnBpn, notifications.DefaultTransitions())
	svc = middleware.LoggingMiddleware(svc, logger)
	counter, latency := prometheus.MakeMetrics(svcName, "api")
	svc = middleware.MetricsMiddleware(svc, counter, latency)
	svc = middleware.TracingMiddleware(tracer, svc)
	svc, err := events.NewEventStoreMiddleware(ctx, svc, cfg.ESURL)
	if err != nil {
		return nil, err
	}

	return svc, nil
}
