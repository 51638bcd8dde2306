package controller_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/clambin/nefit-monitor/internal/controller"
	"github.com/clambin/nefit-monitor/internal/controller/mocks"
	"github.com/clambin/nefit-monitor/internal/eventlog"
	"github.com/clambin/nefit-monitor/internal/poller"
	mockPoller "github.com/clambin/nefit-monitor/internal/poller/mocks"
	"github.com/clambin/nefit-monitor/internal/thermostat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var discardLogger = slog.New(slog.DiscardHandler)

func TestController_SetTemperature(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		eventType string
		refresh   bool
		wantErr   assert.ErrorAssertionFunc
	}{
		{name: "success", eventType: eventlog.TypeSetTemperature, refresh: true, wantErr: assert.NoError},
		{name: "failure", err: errors.New("set temperature: 502 Bad Gateway"), eventType: eventlog.TypeError, wantErr: assert.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := mocks.NewThermostat(t)
			th.EXPECT().SetTemperature(mock.Anything, 21.5).Return(tt.err).Once()
			p := mockPoller.NewPoller(t)
			if tt.refresh {
				p.EXPECT().Refresh().Once()
			}
			events := mocks.NewEventStore(t)
			events.EXPECT().Append(mock.Anything, mock.AnythingOfType("eventlog.Event")).RunAndReturn(func(_ context.Context, e eventlog.Event) error {
				assert.Equal(t, tt.eventType, e.Type)
				assert.Equal(t, 21.5, e.Metadata["temperature"])
				return nil
			}).Once()

			c := controller.New(th, p, events, nil, discardLogger)
			tt.wantErr(t, c.SetTemperature(t.Context(), 21.5))
		})
	}
}

func TestController_SetMode(t *testing.T) {
	th := mocks.NewThermostat(t)
	p := mockPoller.NewPoller(t)
	events := mocks.NewEventStore(t)
	c := controller.New(th, p, events, nil, discardLogger)

	th.EXPECT().SetMode(mock.Anything, thermostat.ModeHoliday).Return(nil).Once()
	p.EXPECT().Refresh().Once()
	events.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e eventlog.Event) bool {
		return e.Type == eventlog.TypeSetMode && e.Message == "mode set to holiday"
	})).Return(nil).Once()
	assert.NoError(t, c.SetMode(t.Context(), thermostat.ModeHoliday))

	// a failure to journal the event doesn't fail the command
	th.EXPECT().SetMode(mock.Anything, thermostat.ModeAuto).Return(nil).Once()
	p.EXPECT().Refresh().Once()
	events.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e eventlog.Event) bool {
		return e.Type == eventlog.TypeSetMode && e.Message == "mode set to auto"
	})).Return(errors.New("database is locked")).Once()
	assert.NoError(t, c.SetMode(t.Context(), thermostat.ModeAuto))

	th.EXPECT().SetMode(mock.Anything, thermostat.ModeManual).Return(errors.New("user mode: 502 Bad Gateway")).Once()
	events.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e eventlog.Event) bool {
		return e.Type == eventlog.TypeError && e.Message == "user mode: 502 Bad Gateway" && e.Metadata["mode"] == "manual"
	})).Return(nil).Once()
	assert.Error(t, c.SetMode(t.Context(), thermostat.ModeManual))
}

func TestController_Refresh(t *testing.T) {
	p := mockPoller.NewPoller(t)
	p.EXPECT().Refresh().Once()
	c := controller.New(nil, p, nil, nil, discardLogger)
	c.Refresh()
}

func TestController_Run(t *testing.T) {
	ch := make(chan poller.Update)
	p := mockPoller.NewPoller(t)
	p.EXPECT().Subscribe().Return(ch).Once()
	p.EXPECT().Unsubscribe((<-chan poller.Update)(ch)).Once()

	recorded := make(chan eventlog.Event, 10)
	events := mocks.NewEventStore(t)
	events.EXPECT().Append(mock.Anything, mock.AnythingOfType("eventlog.Event")).RunAndReturn(func(_ context.Context, e eventlog.Event) error {
		recorded <- e
		return nil
	})

	s := mocks.NewSlackSender(t)
	s.EXPECT().Send("", mock.AnythingOfType("[]slack.Attachment")).Return(nil)
	n := controller.Notifiers{
		controller.SLogNotifier{Logger: discardLogger},
		controller.SlackNotifier{Bot: s, Name: "living room", Logger: discardLogger},
	}

	c := controller.New(nil, p, events, n, discardLogger)
	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error)
	go func() { errCh <- c.Run(ctx) }()

	// first update: no events
	ch <- makeUpdate(thermostat.ModeAuto, "off")
	// same state: no events
	ch <- makeUpdate(thermostat.ModeAuto, "off")
	// boiler change
	ch <- makeUpdate(thermostat.ModeAuto, "central heating")
	// mode and boiler change
	ch <- makeUpdate(thermostat.ModeHoliday, "off")

	want := []struct {
		eventType string
		message   string
	}{
		{eventlog.TypeBoilerChange, "boiler changed from off to central heating"},
		{eventlog.TypeModeChange, "mode changed from auto to holiday"},
		{eventlog.TypeBoilerChange, "boiler changed from central heating to off"},
	}
	for _, w := range want {
		select {
		case e := <-recorded:
			assert.Equal(t, w.eventType, e.Type)
			assert.Equal(t, w.message, e.Message)
		case <-time.After(time.Second):
			t.Fatalf("timeout waiting for %s", w.message)
		}
	}

	cancel()
	assert.NoError(t, <-errCh)
	assert.Empty(t, recorded)
}

func makeUpdate(mode thermostat.Mode, boiler string) poller.Update {
	return poller.Update{State: thermostat.State{
		Name:       "living room",
		Mode:       mode,
		Attributes: thermostat.Attributes{thermostat.AttrBoilerIndicator: boiler},
	}}
}
