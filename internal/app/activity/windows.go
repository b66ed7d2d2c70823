package activity

import "time"

// statWindows holds the boundaries for the five counting windows, all derived
// from a single instant so one aggregate query sees one snapshot.
type statWindows struct {
	TodayStart     time.Time
	YesterdayStart time.Time
	WeekAgo        time.Time
	MonthAgo       time.Time
}

// windowsAt computes window boundaries relative to now, in UTC. Today and
// yesterday align to UTC midnight; week and month roll back 7 and 30 days
// (exactly 168h and 720h) from now rather than aligning to the calendar.
func windowsAt(now time.Time) statWindows {
	now = now.UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return statWindows{
		TodayStart:     todayStart,
		YesterdayStart: todayStart.Add(-24 * time.Hour),
		WeekAgo:        now.Add(-7 * 24 * time.Hour),
		MonthAgo:       now.Add(-30 * 24 * time.Hour),
	}
}
