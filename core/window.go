package core

import "time"

// TimeWindow is a query range in UTC epoch milliseconds.
type TimeWindow struct {
	StartMillis    int64
	EndMillis      int64
	DurationMillis int64
}

// DayWindow returns the window from midnight of now's date in loc up to
// now. Midnight is taken in loc and converted to its UTC millisecond
// representation; the duration is the raw difference of the two
// timestamps. A run that spans a DST transition therefore reflects
// wall-clock elapsed milliseconds, not calendar hours, and can sit a few
// hours off "elapsed time since local midnight" right at the boundary.
func DayWindow(now time.Time, loc *time.Location) TimeWindow {
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	w := TimeWindow{
		StartMillis: midnight.UnixMilli(),
		EndMillis:   now.UnixMilli(),
	}
	w.DurationMillis = w.EndMillis - w.StartMillis
	return w
}
