package controller

import (
	"log/slog"

	"github.com/clambin/nefit-monitor/internal/eventlog"
	"github.com/slack-go/slack"
)

// A Notifier informs the user of a change in the thermostat's state.
type Notifier interface {
	Notify(event eventlog.Event)
}

type Notifiers []Notifier

func (n Notifiers) Notify(event eventlog.Event) {
	for _, l := range n {
		l.Notify(event)
	}
}

var _ Notifier = SLogNotifier{}

type SLogNotifier struct {
	Logger *slog.Logger
}

func (s SLogNotifier) Notify(event eventlog.Event) {
	s.Logger.Info(event.Message, "type", event.Type)
}

type SlackSender interface {
	Send(channel string, attachments []slack.Attachment) error
}

var _ Notifier = SlackNotifier{}

// SlackNotifier posts events to all channels the bot has joined.
type SlackNotifier struct {
	Bot    SlackSender
	Name   string
	Logger *slog.Logger
}

func (s SlackNotifier) Notify(event eventlog.Event) {
	color := "good"
	if event.Type == eventlog.TypeError {
		color = "bad"
	}
	err := s.Bot.Send("", []slack.Attachment{{
		Color: color,
		Title: s.Name + ": " + event.Message,
	}})
	if err != nil {
		s.Logger.Error("failed to post notification", "err", err)
	}
}
