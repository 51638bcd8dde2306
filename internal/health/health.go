// Package health reports whether the thermostat is still being polled successfully.
package health

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/clambin/nefit-monitor/internal/poller"
)

// Report is the body of a /health response.
type Report struct {
	Name       string    `json:"name"`
	Healthy    bool      `json:"healthy"`
	LastUpdate time.Time `json:"last_update"`
	Age        string    `json:"age"`
	ErrorCount int       `json:"error_count"`
}

// Health is unhealthy until the first update arrives, or when the last successful poll is older than MaxAge.
// A MaxAge of zero disables the age check.
type Health struct {
	*poller.Latest
	MaxAge time.Duration
	logger *slog.Logger
}

func New(p poller.Poller, maxAge time.Duration, logger *slog.Logger) *Health {
	return &Health{
		Latest: poller.NewLatest(p, logger),
		MaxAge: maxAge,
		logger: logger,
	}
}

func (h *Health) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	update, ok := h.Get()
	if !ok {
		http.Error(w, "no update yet", http.StatusServiceUnavailable)
		h.Refresh()
		return
	}

	age := time.Since(update.Updated)
	report := Report{
		Name:       update.Name,
		Healthy:    h.MaxAge <= 0 || age <= h.MaxAge,
		LastUpdate: update.Updated,
		Age:        age.Round(time.Second).String(),
		ErrorCount: update.ErrorCount,
	}

	code := http.StatusOK
	if !report.Healthy {
		h.logger.Warn("thermostat data is stale", "age", age, "errors", update.ErrorCount)
		code = http.StatusServiceUnavailable
		h.Refresh()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		h.logger.Error("failed to encode health report", "err", err)
	}
}
