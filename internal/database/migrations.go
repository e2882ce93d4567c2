package database

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order; each entry runs at most once,
// tracked in the schema_migrations table.
var migrations = []struct {
	version int
	name    string
	sql     string
}{
	{
		version: 1,
		name:    "create_hourly_records",
		sql: `
			CREATE TABLE IF NOT EXISTS hourly_records (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				date TEXT NOT NULL,
				hour INTEGER NOT NULL,
				year INTEGER NOT NULL,
				month INTEGER NOT NULL,
				season INTEGER NOT NULL,
				holiday INTEGER NOT NULL,
				weekday INTEGER NOT NULL,
				working_day INTEGER NOT NULL,
				weather INTEGER NOT NULL,
				temp REAL NOT NULL,
				feels_temp REAL NOT NULL,
				humidity REAL NOT NULL,
				windspeed REAL NOT NULL,
				casual INTEGER NOT NULL,
				registered INTEGER NOT NULL,
				count INTEGER NOT NULL
			)
		`,
	},
	{
		version: 2,
		name:    "index_hourly_records",
		sql: `
			CREATE INDEX IF NOT EXISTS idx_hourly_records_date ON hourly_records(date);
			CREATE INDEX IF NOT EXISTS idx_hourly_records_hour ON hourly_records(hour);
			CREATE INDEX IF NOT EXISTS idx_hourly_records_year ON hourly_records(year)
		`,
	},
}

// Migrate applies pending schema migrations
func Migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := db.Query("SELECT version FROM schema_migrations")
	if err != nil {
		return fmt.Errorf("query migrations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return fmt.Errorf("scan migration version: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate migrations: %w", err)
	}

	for _, m := range migrations {
		if applied[m.version] {
			continue
		}
		if err := Transaction(db, func(tx *sql.Tx) error {
			if _, err := tx.Exec(m.sql); err != nil {
				return fmt.Errorf("apply migration %d (%s): %w", m.version, m.name, err)
			}
			if _, err := tx.Exec(
				"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
				m.version, m.name,
			); err != nil {
				return fmt.Errorf("record migration %d: %w", m.version, err)
			}
			return nil
		}); err != nil {
			return err
		}
	}

	return nil
}
