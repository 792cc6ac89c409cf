package format

import (
	"fmt"
	"time"
)

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

type bucket struct {
	below   time.Duration
	unit    time.Duration
	compact string
	verbose string
}

// buckets is evaluated top to bottom; the last one catches everything.
var buckets = []bucket{
	{below: time.Hour, unit: time.Minute, compact: "m", verbose: "minute"},
	{below: day, unit: time.Hour, compact: "h", verbose: "hour"},
	{below: week, unit: day, compact: "d", verbose: "day"},
	{below: month, unit: week, compact: "w", verbose: "week"},
	{below: year, unit: month, compact: "mo", verbose: "month"},
	{below: 1<<63 - 1, unit: year, compact: "y", verbose: "year"},
}

// Compact renders elapsed time since t as "5m ago", "3h ago", "2d ago".
func Compact(t, now time.Time) string {
	n, b, ok := elapsed(t, now)
	if !ok {
		return "Just now"
	}
	return fmt.Sprintf("%d%s ago", n, b.compact)
}

// Verbose renders elapsed time since t as "5 minutes ago", "1 hour ago".
func Verbose(t, now time.Time) string {
	n, b, ok := elapsed(t, now)
	if !ok {
		return "Just now"
	}
	if n == 1 {
		return fmt.Sprintf("1 %s ago", b.verbose)
	}
	return fmt.Sprintf("%d %ss ago", n, b.verbose)
}

func elapsed(t, now time.Time) (int64, bucket, bool) {
	d := now.Sub(t)
	if d < time.Minute {
		return 0, bucket{}, false
	}
	for _, b := range buckets {
		if d < b.below {
			return int64(d / b.unit), b, true
		}
	}
	last := buckets[len(buckets)-1]
	return int64(d / last.unit), last, true
}
