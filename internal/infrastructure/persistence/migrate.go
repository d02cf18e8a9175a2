package persistence

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate применяет все миграции по порядку имён. Миграции идемпотентны.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("fs.Glob: %w", err)
	}

	sort.Strings(names)

	for _, name := range names {
		query, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("migrations.ReadFile: %w", err)
		}

		if _, err := db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("db.ExecContext(%s): %w", name, err)
		}

		logger(ctx).Debug("migration applied", slog.String("migration", name))
	}

	return nil
}
