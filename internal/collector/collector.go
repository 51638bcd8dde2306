package collector

import (
	"log/slog"

	"github.com/clambin/nefit-monitor/internal/poller"
	"github.com/clambin/nefit-monitor/internal/thermostat"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	nefitTemperature = prometheus.NewDesc(
		prometheus.BuildFQName("nefit", "", "temperature_celsius"),
		"Current room temperature in degrees celsius",
		[]string{"name"},
		nil,
	)
	nefitTargetTemperature = prometheus.NewDesc(
		prometheus.BuildFQName("nefit", "", "target_temperature_celsius"),
		"Target room temperature in degrees celsius",
		[]string{"name"},
		nil,
	)
	nefitOutdoorTemperature = prometheus.NewDesc(
		prometheus.BuildFQName("nefit", "outdoor", "temperature_celsius"),
		"Outdoor temperature in degrees celsius",
		[]string{"name"},
		nil,
	)
	nefitSupplyTemperature = prometheus.NewDesc(
		prometheus.BuildFQName("nefit", "boiler", "supply_temperature_celsius"),
		"Supply temperature of the central heating circuit in degrees celsius",
		[]string{"name"},
		nil,
	)
	nefitSystemPressure = prometheus.NewDesc(
		prometheus.BuildFQName("nefit", "boiler", "pressure_bar"),
		"Central heating system pressure in bar",
		[]string{"name"},
		nil,
	)
	nefitBoilerIndicator = prometheus.NewDesc(
		prometheus.BuildFQName("nefit", "boiler", "indicator"),
		"Boiler activity. Always 1. Label indicator specifies the activity",
		[]string{"name", "indicator"},
		nil,
	)
	nefitMode = prometheus.NewDesc(
		prometheus.BuildFQName("nefit", "", "mode"),
		"Operating mode. Always 1. Label mode specifies the mode",
		[]string{"name", "mode"},
		nil,
	)
	nefitYearTotal = prometheus.NewDesc(
		prometheus.BuildFQName("nefit", "", "gas_usage_year_total"),
		"Gas usage for the current year",
		[]string{"name", "unit"},
		nil,
	)
	nefitPollErrors = prometheus.NewDesc(
		prometheus.BuildFQName("nefit", "", "consecutive_poll_errors"),
		"Number of consecutive failed polls",
		[]string{"name"},
		nil,
	)
)

// Collector exports the latest thermostat update as Prometheus metrics.
type Collector struct {
	*poller.Latest
	Logger *slog.Logger
}

func New(p poller.Poller, logger *slog.Logger) *Collector {
	return &Collector{
		Latest: poller.NewLatest(p, logger),
		Logger: logger,
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- nefitTemperature
	ch <- nefitTargetTemperature
	ch <- nefitOutdoorTemperature
	ch <- nefitSupplyTemperature
	ch <- nefitSystemPressure
	ch <- nefitBoilerIndicator
	ch <- nefitMode
	ch <- nefitYearTotal
	ch <- nefitPollErrors
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	update, ok := c.Get()
	if !ok {
		return
	}
	collectTemperatures(ch, update)
	collectBoiler(ch, update)
	c.collectMode(ch, update)
	collectUsage(ch, update)
}

func collectTemperatures(ch chan<- prometheus.Metric, update poller.Update) {
	name := update.Name
	ch <- prometheus.MustNewConstMetric(nefitTemperature, prometheus.GaugeValue, update.CurrentTemperature, name)
	ch <- prometheus.MustNewConstMetric(nefitTargetTemperature, prometheus.GaugeValue, update.TargetTemperature, name)
	if value, ok := update.Attributes.Float(thermostat.AttrOutdoorTemperature); ok {
		ch <- prometheus.MustNewConstMetric(nefitOutdoorTemperature, prometheus.GaugeValue, value, name)
	}
	if value, ok := update.Attributes.Float(thermostat.AttrSupplyTemperature); ok {
		ch <- prometheus.MustNewConstMetric(nefitSupplyTemperature, prometheus.GaugeValue, value, name)
	}
}

func collectBoiler(ch chan<- prometheus.Metric, update poller.Update) {
	name := update.Name
	if value, ok := update.Attributes.Float(thermostat.AttrSystemPressure); ok {
		ch <- prometheus.MustNewConstMetric(nefitSystemPressure, prometheus.GaugeValue, value, name)
	}
	if indicator := update.BoilerIndicator(); indicator != "" {
		ch <- prometheus.MustNewConstMetric(nefitBoilerIndicator, prometheus.GaugeValue, 1, name, indicator)
	}
}

func (c *Collector) collectMode(ch chan<- prometheus.Metric, update poller.Update) {
	if update.Mode == thermostat.ModeUnknown {
		c.Logger.Warn("unknown operating mode. skipping collection", "userMode", update.Status.UserMode)
		return
	}
	ch <- prometheus.MustNewConstMetric(nefitMode, prometheus.GaugeValue, 1, update.Name, string(update.Mode))
}

func collectUsage(ch chan<- prometheus.Metric, update poller.Update) {
	name := update.Name
	if value, ok := update.Attributes.Float(thermostat.AttrYearTotal); ok {
		unit, _ := update.Attributes.String(thermostat.AttrYearTotalUnitOfMeasure)
		ch <- prometheus.MustNewConstMetric(nefitYearTotal, prometheus.GaugeValue, value, name, unit)
	}
	ch <- prometheus.MustNewConstMetric(nefitPollErrors, prometheus.GaugeValue, float64(update.ErrorCount), name)
}
