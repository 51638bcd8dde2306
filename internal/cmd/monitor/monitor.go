package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/clambin/go-common/charmer"
	"github.com/clambin/go-common/slackbot"
	"github.com/clambin/nefit-monitor/internal/api"
	"github.com/clambin/nefit-monitor/internal/bot"
	"github.com/clambin/nefit-monitor/internal/collector"
	"github.com/clambin/nefit-monitor/internal/controller"
	"github.com/clambin/nefit-monitor/internal/eventlog"
	"github.com/clambin/nefit-monitor/internal/health"
	"github.com/clambin/nefit-monitor/internal/poller"
	"github.com/clambin/nefit-monitor/internal/thermostat"
	"github.com/clambin/nefit-monitor/pkg/nefit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

var Cmd = cobra.Command{
	Use:   "monitor",
	Short: "Monitor & control a Nefit Easy thermostat",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return run(ctx, viper.GetViper(), prometheus.DefaultRegisterer, cmd.Root().Version, charmer.GetLogger(cmd))
	},
}

type task interface {
	Run(ctx context.Context) error
}

func run(ctx context.Context, cfg *viper.Viper, registry prometheus.Registerer, version string, logger *slog.Logger) error {
	logger.Info("nefit monitor starting", "version", version)
	defer logger.Info("nefit monitor stopped")

	th := thermostat.New(NewClient(cfg, registry, logger), Configuration(cfg), logger.With("component", "thermostat"))
	if err := th.Connect(ctx); err != nil {
		return fmt.Errorf("nefit: %w", err)
	}
	defer func() {
		if err := th.Close(context.Background()); err != nil {
			logger.Warn("failed to disconnect", "err", err)
		}
	}()

	var store *eventlog.Store
	if path := cfg.GetString("eventlog.path"); path != "" {
		var err error
		if store, err = eventlog.Open(path); err != nil {
			return fmt.Errorf("event log: %w", err)
		}
		defer func() { _ = store.Close() }()
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, t := range makeTasks(cfg, th, store, registry, version, logger) {
		g.Go(func() error { return t.Run(ctx) })
	}
	return g.Wait()
}

// NewClient returns a bridge client for the configured thermostat. Calls to the bridge are instrumented.
func NewClient(cfg *viper.Viper, registry prometheus.Registerer, logger *slog.Logger) *nefit.Client {
	m := nefit.NewRequestMetrics("nefit", "bridge", nil)
	registry.MustRegister(m)

	return nefit.New(
		cfg.GetString("nefit.bridge"),
		nefit.Credentials{
			SerialNumber: cfg.GetString("nefit.serial"),
			AccessKey:    cfg.GetString("nefit.accessKey"),
			Password:     cfg.GetString("nefit.password"),
		},
		nefit.WithRequestMetrics(m),
		nefit.WithLogger(logger.With("component", "nefit")),
	)
}

// Configuration returns the thermostat's configuration.
func Configuration(cfg *viper.Viper) thermostat.Configuration {
	return thermostat.Configuration{
		Name:               cfg.GetString("nefit.name"),
		HolidayTemperature: cfg.GetFloat64("holiday.temperature"),
		HolidayDuration:    cfg.GetInt("holiday.duration"),
	}
}

func makeTasks(cfg *viper.Viper, t *thermostat.Thermostat, store *eventlog.Store, registry prometheus.Registerer, version string, l *slog.Logger) []task {
	var tasks []task

	// Poller
	p := poller.New(t, cfg.GetDuration("poller.interval"), l.With("component", "poller"))
	tasks = append(tasks, p)

	// Collector
	coll := collector.New(p, l.With("component", "collector"))
	registry.MustRegister(coll)
	tasks = append(tasks, coll)

	// Prometheus Server
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.Handler())
	tasks = append(tasks, newHTTPServer(cfg.GetString("exporter.addr"), m))

	// Health Endpoint
	h := health.New(p, cfg.GetDuration("health.maxAge"), l.With("component", "health"))
	tasks = append(tasks, h)
	r := http.NewServeMux()
	r.Handle("/health", h)
	tasks = append(tasks, newHTTPServer(cfg.GetString("health.addr"), r))

	// Event log
	var (
		events controller.EventStore
		lister api.EventLister
	)
	if store != nil {
		events, lister = store, store
	}

	// Slack bot
	var sb *slackbot.SlackBot
	notifiers := controller.Notifiers{controller.SLogNotifier{Logger: l.With("component", "notifier")}}
	if token := cfg.GetString("slack.token"); token != "" {
		sb = slackbot.New(
			token,
			slackbot.WithName("nefitBot "+version),
			slackbot.WithLogger(l.With(slog.String("component", "slackbot"))),
		)
		notifiers = append(notifiers, controller.SlackNotifier{
			Bot:    sb,
			Name:   cfg.GetString("nefit.name"),
			Logger: l.With("component", "notifier"),
		})
	}

	// Controller
	c := controller.New(t, p, events, notifiers, l.With("component", "controller"))
	tasks = append(tasks, c)

	// REST API
	if addr := cfg.GetString("api.addr"); addr != "" {
		a := api.New(p, c, lister, l.With("component", "api"))
		tasks = append(tasks, a, newHTTPServer(addr, a))
	}

	if sb != nil {
		tasks = append(tasks, sb, bot.New(sb, p, c, l.With("component", "nefitbot")))
	}

	return tasks
}
