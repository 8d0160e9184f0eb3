package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", "2026-03-15T10:30:00Z", time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"sql style", "2026-03-15 10:30:45", time.Date(2026, 3, 15, 10, 30, 45, 0, time.UTC)},
		{"datetime-local", "2026-03-15T10:30", time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"bare day", "2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	_, err := ParseTimestamp("15/03/2026")
	assert.Error(t, err)
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2026-03-01")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDay("2026-03-15T10:30:00Z")
	assert.Error(t, err)
}

func TestDay(t *testing.T) {
	assert.Equal(t, "2026-03-15", Day(time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)))
}
