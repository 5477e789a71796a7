package database

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Migration represents a database migration. Up and Down return one or more
// statements for the given dialect.
type Migration struct {
	Version     int
	Description string
	Up          func(d Dialect) []string
	Down        func(d Dialect) []string
}

// Migrator handles database migrations
type Migrator struct {
	db         *DB
	migrations []Migration
}

// NewMigrator creates a migrator with the application schema registered.
func NewMigrator(db *DB) *Migrator {
	m := &Migrator{
		db:         db,
		migrations: make([]Migration, 0),
	}
	m.registerMigrations()
	return m
}

// registerMigrations registers the settings and history tables.
func (m *Migrator) registerMigrations() {
	m.Register(Migration{
		Version:     1,
		Description: "Create settings table",
		Up: func(d Dialect) []string {
			return []string{d.CreateTable("settings",
				fmt.Sprintf("name %s PRIMARY KEY, data %s NOT NULL, updated_at %s NOT NULL", d.Key, d.Text, d.BigInt))}
		},
		Down: func(d Dialect) []string {
			return []string{"DROP TABLE settings"}
		},
	})

	m.Register(Migration{
		Version:     2,
		Description: "Create history table",
		Up: func(d Dialect) []string {
			return []string{
				d.CreateTable("history", fmt.Sprintf(
					"id %s PRIMARY KEY, created_at %s NOT NULL, trigger_kind %s NOT NULL, "+
						"source_url %s, source_engine %s, target_engine %s NOT NULL, "+
						"query %s NOT NULL, image %s NOT NULL, result_url %s NOT NULL",
					d.Key, d.BigInt, d.Key, d.Text, d.Key, d.Key, d.Text, d.SmallInt, d.Text)),
				"CREATE INDEX idx_history_created ON history (created_at)",
			}
		},
		Down: func(d Dialect) []string {
			return []string{"DROP TABLE history"}
		},
	})

	// Sort migrations by version
	sort.Slice(m.migrations, func(i, j int) bool {
		return m.migrations[i].Version < m.migrations[j].Version
	})
}

// Register adds a migration
func (m *Migrator) Register(migration Migration) {
	m.migrations = append(m.migrations, migration)
}

// Migrate runs all pending migrations
func (m *Migrator) Migrate(ctx context.Context) error {
	d := m.db.Dialect()
	create := d.CreateTable("schema_version", fmt.Sprintf(
		"version INTEGER PRIMARY KEY, description %s NOT NULL, applied_at %s NOT NULL", d.Text, d.BigInt))
	if _, err := m.db.Exec(ctx, create); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	currentVersion, err := m.getCurrentVersion(ctx)
	if err != nil {
		return err
	}

	// Apply pending migrations
	for _, migration := range m.migrations {
		if migration.Version <= currentVersion {
			continue
		}

		if err := m.applyMigration(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}
	}

	return nil
}

// getCurrentVersion returns the current schema version
func (m *Migrator) getCurrentVersion(ctx context.Context) (int, error) {
	row := m.db.QueryRow(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
	var version int
	if err := row.Scan(&version); err != nil {
		return 0, err
	}
	return version, nil
}

// applyMigration applies a single migration
func (m *Migrator) applyMigration(ctx context.Context, migration Migration) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range migration.Up(m.db.Dialect()) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	// Record migration
	if _, err := tx.ExecContext(ctx,
		m.db.Rebind("INSERT INTO schema_version (version, description, applied_at) VALUES (?, ?, ?)"),
		migration.Version, migration.Description, time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	return tx.Commit()
}

// Rollback rolls back the last migration
func (m *Migrator) Rollback(ctx context.Context) error {
	currentVersion, err := m.getCurrentVersion(ctx)
	if err != nil {
		return err
	}

	if currentVersion == 0 {
		return fmt.Errorf("no migrations to rollback")
	}

	// Find the migration to rollback
	for i := len(m.migrations) - 1; i >= 0; i-- {
		if m.migrations[i].Version == currentVersion {
			return m.rollbackMigration(ctx, m.migrations[i])
		}
	}

	return fmt.Errorf("migration %d not found", currentVersion)
}

// rollbackMigration rolls back a single migration
func (m *Migrator) rollbackMigration(ctx context.Context, migration Migration) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range migration.Down(m.db.Dialect()) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to rollback migration: %w", err)
		}
	}

	// Remove migration record
	if _, err := tx.ExecContext(ctx,
		m.db.Rebind("DELETE FROM schema_version WHERE version = ?"),
		migration.Version); err != nil {
		return fmt.Errorf("failed to remove migration record: %w", err)
	}

	return tx.Commit()
}

// GetVersion returns the current schema version
func (m *Migrator) GetVersion(ctx context.Context) (int, error) {
	return m.getCurrentVersion(ctx)
}

// GetMigrations returns all migrations
func (m *Migrator) GetMigrations() []Migration {
	return m.migrations
}

// OpenAndMigrate opens the database and brings its schema up to date.
func OpenAndMigrate(ctx context.Context, cfg *Config) (*DB, error) {
	db, err := Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := NewMigrator(db).Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
