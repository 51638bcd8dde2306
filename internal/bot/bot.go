// Package bot lets users query & control the thermostat from Slack.
package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clambin/go-common/slackbot"
	"github.com/clambin/nefit-monitor/internal/poller"
	"github.com/clambin/nefit-monitor/internal/slacktools"
	"github.com/clambin/nefit-monitor/internal/thermostat"
	"github.com/slack-go/slack"
)

type Bot struct {
	*poller.Latest
	controller Controller
}

type SlackBot interface {
	Add(commands slackbot.Commands)
}

type Controller interface {
	SetTemperature(ctx context.Context, temperature float64) error
	SetMode(ctx context.Context, mode thermostat.Mode) error
	Refresh()
}

func New(slackBot SlackBot, p poller.Poller, c Controller, logger *slog.Logger) *Bot {
	b := &Bot{
		Latest:     poller.NewLatest(p, logger),
		controller: c,
	}
	slackBot.Add(slackbot.Commands{
		"status":      slackbot.HandlerFunc(b.ReportStatus),
		"temperature": slackbot.HandlerFunc(b.SetTemperature),
		"mode":        slackbot.HandlerFunc(b.SetMode),
		"refresh":     slackbot.HandlerFunc(b.DoRefresh),
	})
	return b
}

func (b *Bot) ReportStatus(_ context.Context, _ ...string) []slack.Attachment {
	update, ok := b.Get()
	if !ok {
		return []slack.Attachment{{
			Color: "bad",
			Text:  "no updates yet. please check back later",
		}}
	}

	return []slack.Attachment{slacktools.Attachment{
		Color:  "good",
		Header: update.Name,
		Body:   statusLines(update),
	}.Build()}
}

func statusLines(update poller.Update) []string {
	lines := []string{
		fmt.Sprintf("current: %.1fºC", update.CurrentTemperature),
		fmt.Sprintf("target: %.1fºC", update.TargetTemperature),
		"mode: " + string(update.Mode),
		"boiler: " + update.BoilerIndicator(),
	}
	if outdoor, ok := update.Attributes.Float(thermostat.AttrOutdoorTemperature); ok {
		lines = append(lines, fmt.Sprintf("outdoor: %.1fºC", outdoor))
	}
	if pressure, ok := update.Attributes.Float(thermostat.AttrSystemPressure); ok {
		lines = append(lines, fmt.Sprintf("pressure: %.1f bar", pressure))
	}
	if update.ErrorCount > 0 {
		lines = append(lines, fmt.Sprintf("failed polls: %d", update.ErrorCount))
	}
	return lines
}

func (b *Bot) SetTemperature(ctx context.Context, args ...string) []slack.Attachment {
	temperature, err := parseTemperature(args...)
	if err == nil {
		err = b.controller.SetTemperature(ctx, temperature)
	}
	if err != nil {
		return []slack.Attachment{{
			Color: "bad",
			Text:  err.Error(),
		}}
	}
	return []slack.Attachment{{
		Color: "good",
		Text:  fmt.Sprintf("Setting target temperature to %.1fºC", temperature),
	}}
}

func (b *Bot) SetMode(ctx context.Context, args ...string) []slack.Attachment {
	mode, err := parseMode(args...)
	if err == nil {
		err = b.controller.SetMode(ctx, mode)
	}
	if err != nil {
		return []slack.Attachment{{
			Color: "bad",
			Text:  err.Error(),
		}}
	}
	return []slack.Attachment{{
		Color: "good",
		Text:  "Switching to " + string(mode) + " mode",
	}}
}

func (b *Bot) DoRefresh(_ context.Context, _ ...string) []slack.Attachment {
	b.controller.Refresh()
	return []slack.Attachment{{
		Text: "refreshing thermostat data",
	}}
}
