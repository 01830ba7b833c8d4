// Package provision reconciles the database with the declared schema
// and seed data. It is safe to run on every process start: a fully
// provisioned store is left untouched, a missing database or table set
// is created, and empty reference tables are re-seeded after a partial
// failure or an external wipe.
package provision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/odudar/skybook/internal/config"
	"github.com/odudar/skybook/internal/postgres"
)

// Status reports what EnsureReady had to do.
type Status int

const (
	// StatusReady: schema and seed data were already in place, nothing
	// was written.
	StatusReady Status = iota
	// StatusCreated: the database or the full table set was created
	// from scratch.
	StatusCreated
	// StatusRepaired: some tables or seed rows were missing and were
	// restored without touching populated tables.
	StatusRepaired
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "already-ready"
	case StatusCreated:
		return "freshly-created"
	case StatusRepaired:
		return "repaired"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ErrSchemaMismatch marks a pre-existing table whose columns do not
// match the declared schema. Provisioning refuses to write anything in
// that case; the store needs manual inspection.
var ErrSchemaMismatch = errors.New("existing table does not match declared schema")

// seatLayout is the numbering convention used when cabins are seeded.
var seatLayout = DefaultLayout

// EnsureReady brings the target database to a usable state and returns
// the pool the rest of the application should use. Reference tables
// (airports, aircraft, seats, flights) are seeded whenever they are
// empty; passengers and reservations are sample data and only seeded
// when the whole schema was just created.
func EnsureReady(ctx context.Context, cfg config.PostgresConfig, logger *slog.Logger) (Status, *pgxpool.Pool, error) {
	const op = "provision.EnsureReady"

	pool, err := connect(ctx, cfg, logger)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", op, err)
	}

	missing, err := missingTables(ctx, pool)
	if err != nil {
		pool.Close()
		return 0, nil, fmt.Errorf("%s: %w", op, err)
	}

	fresh := len(missing) == len(requiredTables)

	// Check-then-create only: a table we did not just create must
	// already have the declared shape before anything is written.
	for _, table := range requiredTables {
		if missing[table] {
			continue
		}
		if err := validateTable(ctx, pool, table); err != nil {
			pool.Close()
			return 0, nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if len(missing) > 0 {
		logger.Info("creating tables", "missing", len(missing))
		if err := applySchema(ctx, pool); err != nil {
			pool.Close()
			return 0, nil, fmt.Errorf("%s: apply schema: %w", op, err)
		}
	}

	seeded, err := seedEmptyTables(ctx, pool, fresh, logger)
	if err != nil {
		pool.Close()
		return 0, nil, fmt.Errorf("%s: %w", op, err)
	}

	status := StatusReady
	switch {
	case fresh:
		status = StatusCreated
	case len(missing) > 0 || seeded:
		status = StatusRepaired
	}

	return status, pool, nil
}

// connect opens the pool against the target database, creating the
// database via the maintenance connection when it does not exist yet.
func connect(ctx context.Context, cfg config.PostgresConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := postgres.New(ctx, postgres.Config{DSN: cfg.DSN()})
	if err == nil {
		return pool, nil
	}

	var pgErr *pgconn.PgError
	// invalid_catalog_name: the database itself is missing
	if !errors.As(err, &pgErr) || pgErr.Code != "3D000" {
		return nil, err
	}

	logger.Info("database does not exist, creating it", "database", cfg.Name)

	if err := createDatabase(ctx, cfg); err != nil {
		return nil, err
	}

	return postgres.New(ctx, postgres.Config{DSN: cfg.DSN()})
}

func createDatabase(ctx context.Context, cfg config.PostgresConfig) error {
	conn, err := postgres.Connect(ctx, cfg.AdminDSN())
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`,
		cfg.Name,
	).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	// CREATE DATABASE cannot be parameterized; the identifier is
	// sanitized instead.
	_, err = conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.Name}.Sanitize())
	return err
}

func missingTables(ctx context.Context, pool *pgxpool.Pool) (map[string]bool, error) {
	missing := make(map[string]bool)
	for _, table := range requiredTables {
		var reg *string
		err := pool.QueryRow(ctx,
			`SELECT to_regclass('public.' || $1)::text`,
			table,
		).Scan(&reg)
		if err != nil {
			return nil, fmt.Errorf("check table %s: %w", table, err)
		}
		if reg == nil {
			missing[table] = true
		}
	}
	return missing, nil
}

func validateTable(ctx context.Context, pool *pgxpool.Pool, table string) error {
	rows, err := pool.Query(ctx,
		`SELECT column_name FROM information_schema.columns
		 WHERE table_schema = 'public' AND table_name = $1`,
		table,
	)
	if err != nil {
		return fmt.Errorf("inspect table %s: %w", table, err)
	}

	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var col string
		if err := rows.Scan(&col); err != nil {
			return fmt.Errorf("inspect table %s: %w", table, err)
		}
		present[col] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("inspect table %s: %w", table, err)
	}

	for _, col := range expectedColumns[table] {
		if !present[col] {
			return fmt.Errorf("table %s is missing column %s: %w", table, col, ErrSchemaMismatch)
		}
	}

	return nil
}

func applySchema(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx)

	for _, stmt := range schemaDDL {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// seedEmptyTables populates every empty reference table inside one
// transaction. Row counts are checked, not table existence, so a prior
// run that created empty tables still gets its data. Returns whether
// anything was written.
func seedEmptyTables(ctx context.Context, pool *pgxpool.Pool, fresh bool, logger *slog.Logger) (bool, error) {
	type step struct {
		table     string
		seed      func(ctx context.Context, tx pgx.Tx) error
		freshOnly bool
	}

	steps := []step{
		{"airports", seedAirportsTable, false},
		{"aircraft", seedAircraftTable, false},
		{"seats", func(ctx context.Context, tx pgx.Tx) error {
			return seedSeatsTable(ctx, tx, seatLayout)
		}, false},
		{"flights", seedFlightsTable, false},
		{"passengers", seedPassengersTable, true},
		{"reservations", seedReservationsTable, true},
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return false, err
	}

	defer tx.Rollback(ctx)

	seeded := false
	for _, s := range steps {
		if s.freshOnly && !fresh {
			continue
		}

		var count int64
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM `+s.table).Scan(&count); err != nil {
			return false, fmt.Errorf("count %s: %w", s.table, err)
		}
		if count > 0 {
			continue
		}

		logger.Info("seeding table", "table", s.table)
		if err := s.seed(ctx, tx); err != nil {
			return false, fmt.Errorf("seed %s: %w", s.table, err)
		}
		seeded = true
	}

	if !seeded {
		return false, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}

	return true, nil
}
