package utils_test

import (
	"testing"
	"time"

	"restaurent-app-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestTimeAgo(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"zero elapsed", 0, "0 seconds ago"},
		{"one second", time.Second, "1 second ago"},
		{"forty-five seconds", 45 * time.Second, "45 seconds ago"},
		{"just under a minute", 59 * time.Second, "59 seconds ago"},
		{"ninety seconds", 90 * time.Second, "1 minute ago"},
		{"several minutes", 45 * time.Minute, "45 minutes ago"},
		{"exactly one hour", time.Hour, "1 hour ago"},
		{"just under a day", 23 * time.Hour, "23 hours ago"},
		{"one day", 24 * time.Hour, "1 day ago"},
		{"one month", 30 * 24 * time.Hour, "1 month ago"},
		{"eleven months", 11 * 30 * 24 * time.Hour, "11 months ago"},
		{"one year", 12 * 30 * 24 * time.Hour, "1 year ago"},
		{"many years", 5 * 12 * 30 * 24 * time.Hour, "5 years ago"},
		// Clock skew is deliberately not clamped.
		{"future timestamp", -5 * time.Second, "-5 seconds ago"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := utils.TimeAgo(now.Add(-tt.elapsed), now)
			assert.Equal(t, tt.want, got)
		})
	}
}
