package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"scoreboard/internal/config"
	"scoreboard/internal/domain/entity"
	"scoreboard/internal/domain/service/scoreboard"
	"scoreboard/internal/infrastructure/metrics"
	"scoreboard/internal/infrastructure/notifier"
	"scoreboard/internal/infrastructure/persistence"
	"scoreboard/internal/transport/bot"
	"scoreboard/internal/transport/bot/view"
	"scoreboard/pkg/application/connectors"
	"scoreboard/pkg/application/modules"
	"scoreboard/pkg/contextx"
	"scoreboard/pkg/logx"
	"scoreboard/pkg/probe"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const settlementBuffer = 8

type Application struct {
	cfg      config.Config
	postgres *connectors.Postgres
	redis    *connectors.Redis
}

func New(cfg config.Config) *Application {
	return &Application{cfg: cfg}
}

// Run поднимает хранилище, табло, бота и служебные серверы и ждёт отмены ctx.
func (a *Application) Run(ctx context.Context) error {
	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		slog.String(logx.FieldAppName, a.cfg.App.Name),
		slog.String(logx.FieldAppVersion, a.cfg.App.Version),
	))

	defer a.close(ctx)

	store, checkers, err := a.store(ctx)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return fmt.Errorf("metrics.NewRecorder: %w", err)
	}

	svc := scoreboard.NewService(store).
		WithRecorder(recorder).
		WithResetOnCorrupt(a.cfg.Storage.ResetOnCorrupt)

	settlements := make(chan scoreboard.Settlement, settlementBuffer)
	if a.cfg.Bot.AnnounceChatID != 0 {
		svc.WithSettlementSink(settlements)
	}

	if err := svc.Bootstrap(ctx); err != nil {
		return fmt.Errorf("svc.Bootstrap: %w", err)
	}

	client, err := bot.NewClient(a.cfg.Bot)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return bot.New(client, a.cfg.Bot, svc).Run(ctx)
	})

	if a.cfg.Bot.AnnounceChatID != 0 {
		announcer := notifier.NewTelegramBot(client, a.cfg.Bot.AnnounceChatID, func(podium []entity.RankedTeam) string {
			return view.Settlement(podium).Text
		})

		g.Go(func() error {
			return announcer.Run(ctx, settlements)
		})
	}

	modules.ProbeServer{
		Name:            a.cfg.App.Name,
		Version:         a.cfg.App.Version,
		ListenAddress:   a.cfg.Probe.ListenAddress,
		ShutdownTimeout: a.cfg.Probe.ShutdownTimeout,
		Checkers:        checkers,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: a.cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	logger(ctx).Info("application started", slog.String(logx.FieldStorageDriver, a.cfg.Storage.Driver))

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// store выбирает хранилище слота по STORAGE_DRIVER. Удалённые хранилища
// оборачиваются предохранителем и попадают в проверку готовности.
func (a *Application) store(ctx context.Context) (scoreboard.TeamStore, map[string]probe.Checker, error) {
	cfg := a.cfg.Storage
	ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldSlot, cfg.Slot)))

	breaker := persistence.BreakerSettings{
		Name:                cfg.Driver,
		ConsecutiveFailures: cfg.BreakerFailures,
		OpenTimeout:         cfg.BreakerOpenTimeout,
	}

	switch cfg.Driver {
	case config.StorageMemory:
		logger(ctx).Warn("memory storage: teams are lost on restart")
		return persistence.NewMemoryStore(), nil, nil

	case config.StorageRedis:
		a.redis = &connectors.Redis{
			Address:            a.cfg.Redis.Address,
			Username:           a.cfg.Redis.Username,
			Password:           a.cfg.Redis.Password,
			DatabaseNumber:     a.cfg.Redis.DatabaseNumber,
			PoolSize:           a.cfg.Redis.PoolSize,
			MinIdleConnections: a.cfg.Redis.MinIdleConnections,
			MaxIdleConnections: a.cfg.Redis.MaxIdleConnections,
		}

		client, err := a.redis.Client(ctx)
		if err != nil {
			return nil, nil, err
		}

		store := persistence.NewBreakerStore(persistence.NewRedisStore(client, cfg.Slot), breaker)

		return store, map[string]probe.Checker{"redis": store}, nil

	case config.StoragePostgres:
		a.postgres = &connectors.Postgres{
			DSN:             a.cfg.Postgres.DSN,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		}

		db, err := a.postgres.Client(ctx)
		if err != nil {
			return nil, nil, err
		}

		if err := persistence.Migrate(ctx, db); err != nil {
			return nil, nil, fmt.Errorf("persistence.Migrate: %w", err)
		}

		store := persistence.NewBreakerStore(persistence.NewPostgresStore(db, cfg.Slot), breaker)

		return store, map[string]probe.Checker{"postgres": store}, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownStorageDriver, cfg.Driver)
	}
}

func (a *Application) close(ctx context.Context) {
	if a.postgres != nil {
		a.postgres.Close(ctx)
	}

	if a.redis != nil {
		a.redis.Close(ctx)
	}
}
