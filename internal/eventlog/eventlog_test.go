package eventlog_test

import (
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/clambin/nefit-monitor/internal/eventlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	s, err := eventlog.Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	base := time.Date(2024, time.December, 24, 10, 0, 0, 0, time.UTC)
	events := []eventlog.Event{
		{OccurredAt: base, Type: eventlog.TypeSetTemperature, Message: "target temperature set to 21.5", Metadata: map[string]any{"temperature": 21.5}},
		{OccurredAt: base.Add(time.Minute), Type: "mode_change", Message: "mode changed from auto to manual"},
		{OccurredAt: base.Add(time.Hour), Type: eventlog.TypeError, Message: "set mode: 502 Bad Gateway"},
	}
	for _, e := range events {
		require.NoError(t, s.Append(t.Context(), e))
	}

	got, err := s.List(t.Context(), time.Time{}, time.Time{}, "")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := range got {
		assert.NotEmpty(t, got[i].ID)
		assert.Equal(t, events[i].OccurredAt, got[i].OccurredAt)
	}
	assert.Equal(t, eventlog.TypeModeChange, got[1].Type)
	assert.Equal(t, map[string]any{"temperature": 21.5}, got[0].Metadata)
	assert.Nil(t, got[1].Metadata)

	got, err = s.List(t.Context(), base.Add(time.Second), base.Add(2*time.Hour), "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, eventlog.TypeModeChange, got[0].Type)

	got, err = s.List(t.Context(), time.Time{}, time.Time{}, " error ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "set mode: 502 Bad Gateway", got[0].Message)

	got, err = s.List(t.Context(), base.Add(24*time.Hour), time.Time{}, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpen_Failure(t *testing.T) {
	_, err := eventlog.Open(filepath.Join(t.TempDir(), "missing", "events.db"))
	assert.Error(t, err)
}

func TestStore_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	s := eventlog.New(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO thermostat_events (id, occurred_at, type, message, meta) VALUES (?, ?, ?, ?, ?)`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), eventlog.TypeSetMode, "mode set to holiday", `{"mode":"holiday"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO thermostat_events").
		WillReturnError(errors.New("disk full"))

	assert.NoError(t, s.Append(t.Context(), eventlog.Event{
		Type:     " set_mode",
		Message:  "mode set to holiday",
		Metadata: map[string]any{"mode": "holiday"},
	}))
	err = s.Append(t.Context(), eventlog.Event{Type: eventlog.TypeError, Message: "failed"})
	assert.ErrorContains(t, err, "disk full")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	s := eventlog.New(db)

	from := time.Date(2024, time.December, 24, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, occurred_at, type, message, meta FROM thermostat_events WHERE occurred_at >= ? AND occurred_at <= ? AND type = ? ORDER BY occurred_at ASC, rowid ASC`)).
		WithArgs("2024-12-24 00:00:00", "2024-12-25 00:00:00", eventlog.TypeBoilerChange).
		WillReturnRows(sqlmock.NewRows([]string{"id", "occurred_at", "type", "message", "meta"}).
			AddRow("1", "2024-12-24 10:00:00", eventlog.TypeBoilerChange, "boiler changed from off to central heating", `{"from":"off","to":"central heating"}`).
			AddRow("2", "2024-12-24T11:00:00Z", eventlog.TypeBoilerChange, "boiler changed from central heating to off", nil),
		)

	got, err := s.List(t.Context(), from, to, "boiler_change")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, time.Date(2024, time.December, 24, 10, 0, 0, 0, time.UTC), got[0].OccurredAt)
	assert.Equal(t, map[string]any{"from": "off", "to": "central heating"}, got[0].Metadata)
	assert.Equal(t, time.Date(2024, time.December, 24, 11, 0, 0, 0, time.UTC), got[1].OccurredAt)
	assert.Nil(t, got[1].Metadata)

	mock.ExpectQuery("SELECT id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "occurred_at", "type", "message", "meta"}).
			AddRow("3", "yesterday", eventlog.TypeError, "bad", nil),
		)
	_, err = s.List(t.Context(), time.Time{}, time.Time{}, "")
	assert.ErrorContains(t, err, "invalid timestamp")

	mock.ExpectQuery("SELECT id").WillReturnError(errors.New("locked"))
	_, err = s.List(t.Context(), time.Time{}, time.Time{}, "")
	assert.ErrorContains(t, err, "locked")

	assert.NoError(t, mock.ExpectationsWereMet())
}
