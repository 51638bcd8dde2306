package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/clambin/nefit-monitor/internal/api/mocks"
	"github.com/clambin/nefit-monitor/internal/eventlog"
	"github.com/clambin/nefit-monitor/internal/poller"
	mockPoller "github.com/clambin/nefit-monitor/internal/poller/mocks"
	"github.com/clambin/nefit-monitor/internal/thermostat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.DiscardHandler)

func TestServer_Run(t *testing.T) {
	ch := make(chan poller.Update)
	p := mockPoller.NewPoller(t)
	p.EXPECT().Subscribe().Return(ch).Once()
	p.EXPECT().Unsubscribe((<-chan poller.Update)(ch)).Once()
	c := mocks.NewController(t)
	c.EXPECT().Refresh().Once()

	s := New(p, c, nil, discardLogger)
	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error)
	go func() { errCh <- s.Run(ctx) }()

	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/thermostat", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	ch <- poller.Update{State: thermostat.State{Name: "living room", Mode: thermostat.ModeAuto, TargetTemperature: 20}}
	assert.Eventually(t, func() bool {
		_, ok := s.Get()
		return ok
	}, time.Second, 10*time.Millisecond)

	w = httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/thermostat", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var state thermostat.State
	require.NoError(t, json.NewDecoder(w.Body).Decode(&state))
	assert.Equal(t, "living room", state.Name)
	assert.Equal(t, thermostat.ModeAuto, state.Mode)
	assert.Equal(t, 20.0, state.TargetTemperature)

	cancel()
	assert.NoError(t, <-errCh)
}

func TestServer_SetTemperature(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		call     bool
		wantCode int
	}{
		{name: "valid", body: `{"temperature":21.5}`, call: true, wantCode: http.StatusOK},
		{name: "missing", body: `{}`, wantCode: http.StatusBadRequest},
		{name: "not json", body: `21.5`, wantCode: http.StatusBadRequest},
		{name: "out of range", body: `{"temperature":50}`, call: true, err: fmt.Errorf("%w: 50.0", thermostat.ErrInvalidTemperature), wantCode: http.StatusBadRequest},
		{name: "backend failure", body: `{"temperature":50}`, call: true, err: errors.New("set temperature: 502 Bad Gateway"), wantCode: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mocks.NewController(t)
			if tt.call {
				c.EXPECT().SetTemperature(mock.Anything, mock.AnythingOfType("float64")).Return(tt.err).Once()
			}
			s := New(nil, c, nil, discardLogger)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/thermostat/temperature", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			s.ServeHTTP(w, r)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				assert.Contains(t, w.Body.String(), `"error"`)
			}
		})
	}
}

func TestServer_SetMode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mode     thermostat.Mode
		err      error
		wantCode int
	}{
		{name: "auto", body: `{"mode":"auto"}`, mode: thermostat.ModeAuto, wantCode: http.StatusOK},
		{name: "holiday", body: `{"mode":"Holiday"}`, mode: thermostat.ModeHoliday, wantCode: http.StatusOK},
		{name: "invalid", body: `{"mode":"away"}`, wantCode: http.StatusBadRequest},
		{name: "missing", body: `{}`, wantCode: http.StatusBadRequest},
		{name: "backend failure", body: `{"mode":"manual"}`, mode: thermostat.ModeManual, err: errors.New("user mode: 502 Bad Gateway"), wantCode: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mocks.NewController(t)
			if tt.mode != thermostat.ModeUnknown {
				c.EXPECT().SetMode(mock.Anything, tt.mode).Return(tt.err).Once()
			}
			s := New(nil, c, nil, discardLogger)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/thermostat/mode", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			s.ServeHTTP(w, r)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestServer_Refresh(t *testing.T) {
	c := mocks.NewController(t)
	c.EXPECT().Refresh().Once()
	s := New(nil, c, nil, discardLogger)

	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/thermostat/refresh", nil))
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestServer_ListEvents(t *testing.T) {
	from := time.Date(2024, time.December, 24, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	tests := []struct {
		name      string
		query     string
		list      bool
		err       error
		wantCode  int
		wantCount int
	}{
		{name: "all", query: "", list: true, wantCode: http.StatusOK, wantCount: 2},
		{name: "range", query: "?from=" + from.Format(time.RFC3339) + "&to=" + to.Format(time.RFC3339) + "&type=mode_change", list: true, wantCode: http.StatusOK, wantCount: 2},
		{name: "invalid from", query: "?from=yesterday", wantCode: http.StatusBadRequest},
		{name: "invalid to", query: "?to=2024-12-24", wantCode: http.StatusBadRequest},
		{name: "reversed", query: "?from=" + to.Format(time.RFC3339) + "&to=" + from.Format(time.RFC3339), wantCode: http.StatusBadRequest},
		{name: "failure", list: true, err: errors.New("database is locked"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := mocks.NewEventLister(t)
			if tt.list {
				var events []eventlog.Event
				if tt.err == nil {
					events = []eventlog.Event{
						{ID: "1", OccurredAt: from.Add(time.Hour), Type: eventlog.TypeModeChange, Message: "mode changed from auto to manual"},
						{ID: "2", OccurredAt: from.Add(2 * time.Hour), Type: eventlog.TypeModeChange, Message: "mode changed from manual to auto"},
					}
				}
				l.EXPECT().List(mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), mock.AnythingOfType("string")).
					RunAndReturn(func(_ context.Context, f time.Time, tt2 time.Time, eventType string) ([]eventlog.Event, error) {
						if tt.query != "" {
							assert.Equal(t, from, f)
							assert.Equal(t, to, tt2)
							assert.Equal(t, eventlog.TypeModeChange, eventType)
						}
						return events, tt.err
					}).Once()
			}
			s := New(nil, nil, l, discardLogger)

			w := httptest.NewRecorder()
			s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events"+tt.query, nil))
			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				return
			}
			var response struct {
				Count  int              `json:"count"`
				Events []eventlog.Event `json:"events"`
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, tt.wantCount, response.Count)
			assert.Len(t, response.Events, tt.wantCount)
		})
	}
}

func TestServer_NoEvents(t *testing.T) {
	s := New(nil, nil, nil, discardLogger)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
