package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/clambin/nefit-monitor/internal/thermostat"
	"github.com/gin-gonic/gin"
)

type temperatureRequest struct {
	Temperature *float64 `json:"temperature" binding:"required"`
}

type modeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

func (s *Server) getThermostat(c *gin.Context) {
	update, ok := s.Get()
	if !ok {
		s.Controller.Refresh()
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no update yet"})
		return
	}
	c.JSON(http.StatusOK, update)
}

func (s *Server) setTemperature(c *gin.Context) {
	var req temperatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}
	if err := s.Controller.SetTemperature(c.Request.Context(), *req.Temperature); err != nil {
		s.commandFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "temperature": *req.Temperature})
}

func (s *Server) setMode(c *gin.Context) {
	var req modeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}
	mode, err := thermostat.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err = s.Controller.SetMode(c.Request.Context(), mode); err != nil {
		s.commandFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "mode": mode})
}

func (s *Server) refresh(c *gin.Context) {
	s.Controller.Refresh()
	c.JSON(http.StatusAccepted, gin.H{"status": "refreshing"})
}

func (s *Server) commandFailed(c *gin.Context, err error) {
	if errors.Is(err, thermostat.ErrInvalidTemperature) || errors.Is(err, thermostat.ErrInvalidMode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.logger.Error("command failed", "path", c.Request.URL.Path, "err", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

func (s *Server) listEvents(c *gin.Context) {
	var (
		from, to  time.Time
		eventType = strings.ToUpper(strings.TrimSpace(c.Query("type")))
		err       error
	)
	if from, err = parseQueryTime(c.Query("from")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from: " + err.Error()})
		return
	}
	if to, err = parseQueryTime(c.Query("to")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to: " + err.Error()})
		return
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' must be before 'to'"})
		return
	}

	events, err := s.Events.List(c.Request.Context(), from, to, eventType)
	if err != nil {
		s.logger.Error("failed to list events", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(events), "events": events})
}

// parseQueryTime parses an optional RFC3339 timestamp. An empty string returns the zero time.
func parseQueryTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use RFC3339", s)
	}
	return t.UTC(), nil
}
