// Package postgres управляет пулом соединений Postgres и схемой базы данных.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"notekeep/pkg/logger"
)

// Options описывает, как открыть базу данных сервиса.
type Options struct {
	// DSN пула соединений в форме key=value.
	DSN string
	// MigrateURL - URL подключения для golang-migrate (postgres://...).
	MigrateURL string
	// MigrationsDir - каталог с парами .up/.down SQL файлов.
	// Пустое значение отключает применение миграций.
	MigrationsDir string

	MinConns int32
	MaxConns int32
}

// Database владеет пулом соединений Postgres.
type Database struct {
	pool *pgxpool.Pool
}

// Open применяет миграции (если задан каталог) и создает пул соединений.
// Пул проверяется ping-ом до возврата.
func Open(ctx context.Context, opts Options) (*Database, error) {
	log := logger.Log(ctx)

	if opts.MigrationsDir != "" {
		if err := applyMigrations(ctx, opts.MigrateURL, opts.MigrationsDir); err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
	}

	poolCfg, err := pgxpool.ParseConfig(opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing pool config: %w", err)
	}
	poolCfg.MinConns = opts.MinConns
	poolCfg.MaxConns = opts.MaxConns

	log.Info(ctx, "connecting to postgres",
		zap.Int32("min_conns", opts.MinConns),
		zap.Int32("max_conns", opts.MaxConns))

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.Info(ctx, "postgres connection established")

	return &Database{pool: pool}, nil
}

// Pool возвращает пул соединений.
func (db *Database) Pool() *pgxpool.Pool {
	return db.pool
}

// Ping проверяет доступность базы данных.
func (db *Database) Ping(ctx context.Context) error {
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}

// Close закрывает пул соединений.
func (db *Database) Close(ctx context.Context) {
	logger.Log(ctx).Info(ctx, "closing postgres connection pool")
	db.pool.Close()
}
