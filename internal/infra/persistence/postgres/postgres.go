package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"smachna/config"
	"smachna/internal/domain/lifecycle"
	"smachna/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolStatsInterval  = 5 * time.Second
	poolWaitWarnBudget = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates PostgreSQL client mapping
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes (establishment plus media) go through
		// txManager.Execute; per-statement implicit transactions only add cost.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	poolLogger := params.Logger.With(slog.String("component", "postgres"))
	watchCtx, cancelWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			poolLogger.LogAttrs(ctx, slog.LevelInfo, "PostgreSQL connection established")

			go watchPoolStats(watchCtx, poolLogger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// watchPoolStats periodically samples sql.DB pool statistics and reports
// connection waits. Sustained waits mean the pool is undersized for the
// listing and moderation traffic hitting it.
func watchPoolStats(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waits := cur.WaitCount - prev.WaitCount
			waited := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waits == 0 {
				continue
			}

			level := slog.LevelDebug
			if waited >= poolWaitWarnBudget {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "connection pool wait",
				slog.Int64("waits", waits),
				slog.Duration("waited", waited),
				slog.Duration("avgWait", waited/time.Duration(waits)),
				slog.Int("open", cur.OpenConnections),
				slog.Int("inUse", cur.InUse),
				slog.Int("idle", cur.Idle),
				slog.Int("maxOpen", cur.MaxOpenConnections),
			)
		}
	}
}
