package timestamp

import (
	"fmt"
	"time"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Relative describes t from the point of view of now using the largest whole
// unit, e.g. "3 days ago" or "in 2 hours". Months are 30 days, years 365.
// The difference is taken in whole milliseconds so it spans the full date range.
func Relative(t, now time.Time) string {
	diff := t.UnixMilli() - now.UnixMilli()
	past := diff < 0
	if past {
		diff = -diff
	}

	var value string
	switch days := diff / msPerDay; {
	case days >= 365:
		value = plural(days/365, "year")
	case days >= 30:
		value = plural(days/30, "month")
	case days > 0:
		value = plural(days, "day")
	case diff >= msPerHour:
		value = plural(diff/msPerHour, "hour")
	case diff >= msPerMinute:
		value = plural(diff/msPerMinute, "minute")
	default:
		value = plural(diff/msPerSecond, "second")
	}

	if past {
		return value + " ago"
	}
	return "in " + value
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
