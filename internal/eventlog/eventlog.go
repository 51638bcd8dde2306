// Package eventlog keeps a journal of the commands sent to the thermostat and the changes observed in its state.
package eventlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	TypeSetTemperature = "SET_TEMPERATURE"
	TypeSetMode        = "SET_MODE"
	TypeModeChange     = "MODE_CHANGE"
	TypeBoilerChange   = "BOILER_CHANGE"
	TypeError          = "ERROR"
)

// timestampFormat sorts & compares correctly as text.
const timestampFormat = "2006-01-02 15:04:05"

// Event is a single journal entry.
type Event struct {
	ID         string         `json:"id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Type       string         `json:"type"`
	Message    string         `json:"message"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Store is an event journal, backed by SQLite.
type Store struct {
	db *sql.DB
}

// New returns a Store for an open database. Open creates the required schema.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append adds an event to the journal. If the event's ID or OccurredAt are empty, they are set.
func (s *Store) Append(ctx context.Context, e Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}

	var meta *string
	if len(e.Metadata) > 0 {
		b, err := json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("metadata: %w", err)
		}
		m := string(b)
		meta = &m
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO thermostat_events (id, occurred_at, type, message, meta) VALUES (?, ?, ?, ?, ?)`,
		e.ID,
		e.OccurredAt.UTC().Format(timestampFormat),
		normalizeType(e.Type),
		e.Message,
		meta,
	)
	if err != nil {
		return fmt.Errorf("append: %w", err)
	}
	return nil
}

// List returns the events between from and to (inclusive) of the requested type, oldest first.
// Zero from/to and an empty type are not filtered on.
func (s *Store) List(ctx context.Context, from, to time.Time, eventType string) ([]Event, error) {
	var (
		conditions []string
		args       []any
	)
	if !from.IsZero() {
		conditions = append(conditions, "occurred_at >= ?")
		args = append(args, from.UTC().Format(timestampFormat))
	}
	if !to.IsZero() {
		conditions = append(conditions, "occurred_at <= ?")
		args = append(args, to.UTC().Format(timestampFormat))
	}
	if eventType = normalizeType(eventType); eventType != "" {
		conditions = append(conditions, "type = ?")
		args = append(args, eventType)
	}

	query := `SELECT id, occurred_at, type, message, meta FROM thermostat_events`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY occurred_at ASC, rowid ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := make([]Event, 0)
	for rows.Next() {
		var (
			e          Event
			occurredAt string
			meta       sql.NullString
		)
		if err = rows.Scan(&e.ID, &occurredAt, &e.Type, &e.Message, &meta); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		if e.OccurredAt, err = parseTimestamp(occurredAt); err != nil {
			return nil, fmt.Errorf("event %s: %w", e.ID, err)
		}
		if meta.Valid && meta.String != "" {
			if err = json.Unmarshal([]byte(meta.String), &e.Metadata); err != nil {
				return nil, fmt.Errorf("event %s: metadata: %w", e.ID, err)
			}
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func normalizeType(eventType string) string {
	return strings.ToUpper(strings.TrimSpace(eventType))
}

// parseTimestamp accepts the format written by Append, as well as RFC3339 for rows written by other tools.
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{timestampFormat, time.RFC3339Nano} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
