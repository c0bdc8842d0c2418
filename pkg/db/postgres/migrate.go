package postgres

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // драйвер БД для миграций
	_ "github.com/golang-migrate/migrate/v4/source/file"       // файловый источник миграций
	"go.uber.org/zap"

	"notekeep/pkg/logger"
)

// applyMigrations накатывает все миграции из каталога. Отсутствие новых
// миграций ошибкой не считается.
func applyMigrations(ctx context.Context, databaseURL, dir string) error {
	log := logger.Log(ctx)

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving migrations dir: %w", err)
	}
	sourceURL := "file://" + absDir

	log.Info(ctx, "applying database migrations", zap.String("source", sourceURL))

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}

	log.Info(ctx, "database migrations up to date")
	return nil
}
