package nefit

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/clambin/go-common/http/metrics"
	"github.com/clambin/go-common/http/roundtripper"
	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the http.Client used to call the bridge. Default is http.DefaultClient.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a structured logger for debug logging. By default, nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRequestMetrics records the duration & count of every bridge call in m.
func WithRequestMetrics(m metrics.RequestMetrics) Option {
	return func(c *Client) {
		transport := c.httpClient.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		c.httpClient = &http.Client{
			Transport: roundtripper.New(
				roundtripper.WithRequestMetrics(m),
				roundtripper.WithRoundTripper(transport),
			),
			Timeout: c.httpClient.Timeout,
		}
	}
}

// NewRequestMetrics returns request metrics for bridge calls. Resource paths are collapsed to their
// top-level resource ("/bridge/heatingCircuits", "/bridge/system", ...) to keep label cardinality low.
func NewRequestMetrics(namespace, subsystem string, labels prometheus.Labels) metrics.RequestMetrics {
	return metrics.NewRequestMetrics(metrics.Options{
		Namespace:   namespace,
		Subsystem:   subsystem,
		ConstLabels: labels,
		LabelValues: func(request *http.Request, code int) (string, string, string) {
			return request.Method, metricsPath(request.URL.Path), strconv.Itoa(code)
		},
	})
}

func metricsPath(path string) string {
	const bridge = "/bridge/"
	if !strings.HasPrefix(path, bridge) {
		return path
	}
	resource, _, _ := strings.Cut(strings.TrimPrefix(path, bridge), "/")
	return bridge + resource
}
