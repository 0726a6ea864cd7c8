//go:build unit

package clock_test

import (
	"testing"
	"time"

	"hotel-frontdesk/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	tests := []struct {
		name string
		now  time.Time
		loc  *time.Location
		want time.Time
	}{
		{
			name: "UTCでは前日でも現地では翌日",
			now:  time.Date(2024, 1, 9, 18, 30, 0, 0, time.UTC),
			loc:  jakarta,
			want: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "ロケーション未指定はUTC",
			now:  time.Date(2024, 1, 9, 18, 30, 0, 0, time.UTC),
			loc:  nil,
			want: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clock.Today(clock.NewMockClock(tt.now), tt.loc)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMockClockAdvance(t *testing.T) {
	start := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(start)
	c.Add(3 * time.Second)
	assert.Equal(t, start.Add(3*time.Second), c.Now())
}
