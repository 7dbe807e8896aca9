package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/tuolden/health-dashboard-sub003/internal/api"
	dashboards_v1 "github.com/tuolden/health-dashboard-sub003/internal/api/dashboards/v1"
	"github.com/tuolden/health-dashboard-sub003/internal/app/config"
	"github.com/tuolden/health-dashboard-sub003/internal/app/server"
	"github.com/tuolden/health-dashboard-sub003/internal/pkg/repository"
	"github.com/tuolden/health-dashboard-sub003/internal/pkg/service"
	"github.com/tuolden/health-dashboard-sub003/logger"
	"github.com/tuolden/health-dashboard-sub003/tracing"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "", "application config, built from environment variables when omitted")
)

func init() {
	// Load .env file for local development (optional).
	// OS environment variables take precedence.
	_ = godotenv.Load()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGTERM,
		os.Interrupt,
	)
	defer cancel()

	run(ctx)
}

func run(ctx context.Context) {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("read config error", zap.Error(err))
	}

	if tracingCfg, err := tracing.Initialize(); err != nil {
		logger.Error("tracing initialization failed", zap.Error(err))
	} else {
		logger.Info(
			"tracing initialization success",
			zap.String("service_name", tracingCfg.ServiceName),
			zap.String("agent_host", tracingCfg.JaegerAgent.Host),
			zap.String("agent_port", tracingCfg.JaegerAgent.Port),
			zap.Float64("sampler_param", tracingCfg.SamplerParam))
	}

	registrar := initApp(ctx, cfg)

	serv, err := server.New(ctx, cfg.Server, registrar)
	if err != nil {
		logger.Fatal("app init error", zap.Error(err))
	}

	// Run launches the api and debug servers. On successful shutdown
	// http.ErrServerClosed is returned because of http.Server.Serve.
	if err = serv.Run(ctx); !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("app run", zap.Error(err))
	}
}

func initApp(ctx context.Context, cfg config.Config) *api.Registrar {
	logger.Info("initializing db")
	db, err := initDb(ctx, cfg.Server.DB)
	if err != nil {
		logger.Fatal("failed to init db", zap.Error(err))
	}

	repo := repository.New(db, cfg.Server.DB.RequestTimeout)

	logger.Info("initializing db schema")
	if err = repo.Schema.Init(ctx); err != nil {
		logger.Fatal("failed to init db schema", zap.Error(err))
	}

	svc := service.New(repo)
	dashboardsV1 := dashboards_v1.New(svc)

	return api.NewRegistrar(dashboardsV1)
}

func initDb(ctx context.Context, cfg *config.DB) (*pgxpool.Pool, error) {
	pgxCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("can't parse connection string: %w", err)
	}

	if !*cfg.UsePreparedStatements {
		// By default, pgx uses the QueryExecModeCacheStatement and automatically prepares and caches prepared statements.
		// However, this may be incompatible with proxies such as PGBouncer.
		pgxCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
		logger.Info("db running without prepared statements")
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, fmt.Errorf("can't create pgx pool: %w", err)
	}

	ping := func() error {
		return pool.Ping(ctx)
	}
	eb := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	if err = backoff.Retry(ping, eb); err != nil {
		pool.Close()
		return nil, fmt.Errorf("can't reach db: %w", err)
	}

	return pool, nil
}
