package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{
			Name: "create_roadmap_store",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return createRoadmapStore(ctx, pool)
			},
		},
		{
			Name: "add_updated_at_index",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return addUpdatedAtIndex(ctx, pool)
			},
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// createRoadmapStore creates the key-value table every entity persists into
func createRoadmapStore(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS roadmap_store (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		return err
	}

	slog.Info("Successfully ensured roadmap_store table")
	return nil
}

// addUpdatedAtIndex indexes updated_at so backup housekeeping queries stay cheap
func addUpdatedAtIndex(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE INDEX IF NOT EXISTS roadmap_store_updated_at_idx
		ON roadmap_store (updated_at);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		// Log the error but don't fail - the index may already exist
		slog.Warn("Error adding updated_at index (may already exist)", "error", err)
		return nil
	}

	slog.Info("Successfully added updated_at index to roadmap_store")
	return nil
}
