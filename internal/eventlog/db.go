package eventlog

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

const schemaEvents = `
CREATE TABLE IF NOT EXISTS thermostat_events (
    id TEXT PRIMARY KEY,
    occurred_at TEXT NOT NULL,
    type TEXT NOT NULL,
    message TEXT NOT NULL,
    meta TEXT
);
CREATE INDEX IF NOT EXISTS thermostat_events_occurred_at ON thermostat_events (occurred_at);
`

// Open opens (or creates) the SQLite database at path and returns a Store for it.
func Open(path string) (*Store, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// SQLite handles a single writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err = db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if _, err = db.Exec(schemaEvents); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return New(db), nil
}
