// Package api exposes the thermostat's state and commands over a REST API.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/clambin/nefit-monitor/internal/eventlog"
	"github.com/clambin/nefit-monitor/internal/poller"
	"github.com/clambin/nefit-monitor/internal/thermostat"
	"github.com/gin-gonic/gin"
)

type Controller interface {
	SetTemperature(ctx context.Context, temperature float64) error
	SetMode(ctx context.Context, mode thermostat.Mode) error
	Refresh()
}

type EventLister interface {
	List(ctx context.Context, from, to time.Time, eventType string) ([]eventlog.Event, error)
}

// Server serves the REST API. It follows the poller's updates, so reading the state never calls the thermostat.
type Server struct {
	*poller.Latest
	Controller Controller
	Events     EventLister
	logger     *slog.Logger
	router     *gin.Engine
}

// New returns a new Server. If events is nil, the events endpoint is not registered.
func New(p poller.Poller, c Controller, events EventLister, logger *slog.Logger) *Server {
	s := Server{
		Latest:     poller.NewLatest(p, logger),
		Controller: c,
		Events:     events,
		logger:     logger,
	}
	s.router = s.initRoutes()
	return &s
}

func (s *Server) initRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.logRequest)

	api := router.Group("/api/v1")
	{
		device := api.Group("/thermostat")
		device.GET("", s.getThermostat)
		device.POST("/temperature", s.setTemperature)
		device.POST("/mode", s.setMode)
		device.POST("/refresh", s.refresh)

		if s.Events != nil {
			api.GET("/events", s.listEvents)
		}
	}
	return router
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) logRequest(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.logger.Debug("request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("code", c.Writer.Status()),
		slog.Duration("latency", time.Since(start)),
	)
}
