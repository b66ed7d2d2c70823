package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowsAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 45, 0, time.UTC)
	w := windowsAt(now)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), w.TodayStart)
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), w.YesterdayStart)
	assert.Equal(t, now.Add(-7*24*time.Hour), w.WeekAgo)
	assert.Equal(t, now.Add(-30*24*time.Hour), w.MonthAgo)
}

func TestWindowsAtNormalizesToUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 23:30 in New York on June 14 is already June 15 in UTC.
	local := time.Date(2025, 6, 14, 23, 30, 0, 0, loc)
	w := windowsAt(local)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), w.TodayStart)
}

func TestWindowsAtMidnightBoundary(t *testing.T) {
	midnight := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	w := windowsAt(midnight)

	assert.Equal(t, midnight, w.TodayStart)
	assert.Equal(t, 24*time.Hour, w.TodayStart.Sub(w.YesterdayStart))
}

func TestWindowsOrdering(t *testing.T) {
	w := windowsAt(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	assert.True(t, w.MonthAgo.Before(w.WeekAgo))
	assert.True(t, w.WeekAgo.Before(w.YesterdayStart))
	assert.True(t, w.YesterdayStart.Before(w.TodayStart))
}
