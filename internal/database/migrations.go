package database

import (
	"database/sql"
	"fmt"
	"log"
	"sort"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the full ordered schema history. The trips and zones tables are
// populated by the external seeding pipeline; the core only creates the schema
// and the indexes it assumes for filter pushdown.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_zones",
		SQL: `CREATE TABLE IF NOT EXISTS zones (
			location_id INTEGER PRIMARY KEY,
			borough TEXT,
			zone TEXT,
			service_zone TEXT,
			geometry TEXT
		)`,
	},
	{
		Version: 2,
		Name:    "create_trips",
		SQL: `CREATE TABLE IF NOT EXISTS trips (
			trip_id INTEGER PRIMARY KEY,
			vendor_id INTEGER,
			tpep_pickup_datetime TEXT NOT NULL,
			tpep_dropoff_datetime TEXT NOT NULL,
			passenger_count INTEGER,
			trip_distance REAL NOT NULL DEFAULT 0,
			pu_location_id INTEGER,
			do_location_id INTEGER,
			payment_type INTEGER,
			fare_amount REAL NOT NULL DEFAULT 0,
			tip_amount REAL NOT NULL DEFAULT 0,
			total_amount REAL NOT NULL DEFAULT 0
		)`,
	},
	{
		Version: 3,
		Name:    "create_trip_indexes",
		SQL: `CREATE INDEX IF NOT EXISTS idx_trips_pickup_datetime ON trips (tpep_pickup_datetime);
			CREATE INDEX IF NOT EXISTS idx_trips_pu_location ON trips (pu_location_id);
			CREATE INDEX IF NOT EXISTS idx_trips_do_location ON trips (do_location_id)`,
	},
	{
		Version: 4,
		Name:    "create_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
}

// Migrate applies all pending migrations to the given database
func Migrate(conn *sql.DB) error {
	if err := initMigrationsTable(conn); err != nil {
		return err
	}

	applied, err := appliedMigrations(conn)
	if err != nil {
		return err
	}

	pending := make([]Migration, 0, len(migrations))
	for _, m := range migrations {
		if !applied[m.Version] {
			pending = append(pending, m)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Version < pending[j].Version
	})

	for _, m := range pending {
		if err := applyMigration(conn, m); err != nil {
			return err
		}
		log.Printf("Applied migration %d_%s", m.Version, m.Name)
	}

	return nil
}

func initMigrationsTable(conn *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := conn.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(conn *sql.DB) (map[int]bool, error) {
	rows, err := conn.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

func applyMigration(conn *sql.DB, migration Migration) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if _, err := tx.Exec(migration.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to execute migration %d: %w", migration.Version, err)
	}

	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", migration.Version, migration.Name); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
	}

	return nil
}
