package cmd

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/clambin/go-common/charmer"
	"github.com/clambin/nefit-monitor/internal/cmd/monitor"
	"github.com/clambin/nefit-monitor/internal/cmd/status"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFilename string
	RootCmd        = cobra.Command{
		Use:   "nefit",
		Short: "Utility for Nefit Easy thermostats",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			charmer.SetJSONLogger(cmd, viper.GetBool("debug"))
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&configFilename, "config", "", "Configuration file")
	if err := charmer.SetPersistentFlags(&RootCmd, viper.GetViper(), args); err != nil {
		panic("failed to set flags: " + err.Error())
	}

	RootCmd.AddCommand(&monitor.Cmd, &status.Cmd)
}

var args = charmer.Arguments{
	"debug":               charmer.Argument{Default: false, Help: "Log debug messages"},
	"nefit.name":          charmer.Argument{Default: "Nefit", Help: "Thermostat name"},
	"nefit.serial":        charmer.Argument{Default: "", Help: "Thermostat serial number"},
	"nefit.accessKey":     charmer.Argument{Default: "", Help: "Thermostat access key"},
	"nefit.password":      charmer.Argument{Default: "", Help: "Thermostat password"},
	"nefit.bridge":        charmer.Argument{Default: "http://localhost:3000", Help: "URL of the Nefit Easy bridge"},
	"holiday.temperature": charmer.Argument{Default: 15.0, Help: "Target temperature in holiday mode"},
	"holiday.duration":    charmer.Argument{Default: 7, Help: "Duration of holiday mode (days)"},
	"poller.interval":     charmer.Argument{Default: time.Minute, Help: "Poller interval"},
	"exporter.addr":       charmer.Argument{Default: ":9090", Help: "Address of Prometheus exporter"},
	"health.addr":         charmer.Argument{Default: ":8080", Help: "Address of /health endpoint"},
	"health.maxAge":       charmer.Argument{Default: 5 * time.Minute, Help: "Report unhealthy if the last successful poll is older than this (0 disables the check)"},
	"api.addr":            charmer.Argument{Default: ":8088", Help: "Address of the REST API (blank disables the API)"},
	"eventlog.path":       charmer.Argument{Default: "nefit-events.db", Help: "Event log database (blank disables the event log)"},
	"slack.token":         charmer.Argument{Default: "", Help: "Slack token (blank disables the Slack bot)"},
}

func initConfig() {
	if configFilename != "" {
		viper.SetConfigFile(configFilename)
	} else {
		viper.AddConfigPath("/etc/nefit-monitor/")
		viper.AddConfigPath("$HOME/.nefit-monitor")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}

	if err := charmer.SetDefaults(viper.GetViper(), args); err != nil {
		panic("failed to set viper defaults: " + err.Error())
	}

	viper.SetEnvPrefix("NEFIT_MONITOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFilename != "" || !errors.As(err, &notFound) {
			slog.Error("failed to read config file", "err", err)
			os.Exit(1)
		}
	}
}
