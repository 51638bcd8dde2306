package thermostat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPending(t *testing.T) {
	var p pending[float64]

	_, ok := p.Take()
	assert.False(t, ok)

	p.Set(21)
	p.Set(22)
	value, ok := p.Take()
	require.True(t, ok)
	assert.Equal(t, 22.0, value)

	_, ok = p.Take()
	assert.False(t, ok)
}

func TestHolidayWindow(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		days    int
		want    string
		wantErr assert.ErrorAssertionFunc
	}{
		{name: "one week", start: "2024-06-01T00:00:00", days: 7, want: "2024-06-08T00:00:00", wantErr: assert.NoError},
		{name: "month end", start: "2024-01-30T08:30:00", days: 3, want: "2024-02-02T08:30:00", wantErr: assert.NoError},
		{name: "leap year", start: "2024-02-28T00:00:00", days: 1, want: "2024-02-29T00:00:00", wantErr: assert.NoError},
		{name: "year end", start: "2023-12-30T12:00:00", days: 5, want: "2024-01-04T12:00:00", wantErr: assert.NoError},
		{name: "dst", start: "2024-03-30T00:00:00", days: 2, want: "2024-04-01T00:00:00", wantErr: assert.NoError},
		{name: "zero days", start: "2024-06-01T00:00:00", days: 0, want: "2024-06-01T00:00:00", wantErr: assert.NoError},
		{name: "invalid", start: "01/06/2024", days: 7, wantErr: assert.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := holidayWindow(tt.start, tt.days)
			tt.wantErr(t, err)
			if err != nil {
				return
			}
			assert.Equal(t, tt.start, start.Format(DateFormat))
			assert.Equal(t, tt.want, end.Format(DateFormat))
			assert.Equal(t, time.Duration(tt.days)*24*time.Hour, end.Sub(start))
		})
	}
}
