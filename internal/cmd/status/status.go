package status

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/clambin/go-common/charmer"
	"github.com/clambin/nefit-monitor/internal/cmd/monitor"
	"github.com/clambin/nefit-monitor/internal/thermostat"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	Cmd = cobra.Command{
		Use:   "status",
		Short: "Show the thermostat's current state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := thermostat.New(
				monitor.NewClient(viper.GetViper(), prometheus.NewRegistry(), charmer.GetLogger(cmd)),
				monitor.Configuration(viper.GetViper()),
				charmer.GetLogger(cmd),
			)
			return show(cmd.Context(), cmd.OutOrStdout(), t, viper.GetString("status.format"), charmer.GetLogger(cmd))
		},
	}

	args = charmer.Arguments{
		"status.format": {Default: "yaml", Help: "Output format (yaml|json)"},
	}
)

func init() {
	_ = charmer.SetPersistentFlags(&Cmd, viper.GetViper(), args)
}

type Thermostat interface {
	Connect(ctx context.Context) error
	Close(ctx context.Context) error
	Update(ctx context.Context) error
	State() (thermostat.State, error)
}

func show(ctx context.Context, w io.Writer, t Thermostat, format string, logger *slog.Logger) error {
	if format != "yaml" && format != "json" {
		return fmt.Errorf("invalid format: %q", format)
	}

	if err := t.Connect(ctx); err != nil {
		return fmt.Errorf("nefit: %w", err)
	}
	defer func() {
		if err := t.Close(context.Background()); err != nil {
			logger.Warn("failed to disconnect", "err", err)
		}
	}()

	if err := t.Update(ctx); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	state, err := t.State()
	if err != nil {
		return err
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(state)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(state)
	}
}
