// Package timebucket maps calendar dates to trend bucket keys. Keeping this
// logic out of SQL avoids engine-specific date formatting functions and makes
// it testable without a database.
package timebucket

import (
	"fmt"
	"strings"
	"time"
)

// Period selects the lookback window and bucket granularity of a trend query.
type Period string

const (
	Week  Period = "week"  // last 7 days, one bucket per day
	Month Period = "month" // last 30 days, one bucket per day
	Year  Period = "year"  // last year, one bucket per month
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// ParsePeriod parses a user-supplied period string.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "week":
		return Week, nil
	case "month", "":
		return Month, nil
	case "year":
		return Year, nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}

// Key returns the bucket key for a date under this period: a day key for
// week/month, a month key for year. Keys sort chronologically as strings.
func (p Period) Key(d time.Time) string {
	if p == Year {
		return d.Format(monthLayout)
	}
	return d.Format(dayLayout)
}

// WindowStart returns the inclusive start of the lookback window ending now.
func (p Period) WindowStart(now time.Time) time.Time {
	switch p {
	case Week:
		return now.AddDate(0, 0, -7)
	case Year:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, 0, -30)
	}
}

// MonthKey returns the month bucket key used by the monthly trend.
func MonthKey(d time.Time) string {
	return d.Format(monthLayout)
}

// MonthsWindowStart returns the inclusive start of a lookback of n months.
func MonthsWindowStart(now time.Time, months int) time.Time {
	return now.AddDate(0, -months, 0)
}

// MonthBounds returns the half-open [first of month, first of next month)
// interval containing d. Reporting queries pass these as parameters instead
// of formatting dates inside SQL.
func MonthBounds(d time.Time) (time.Time, time.Time) {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	return first, first.AddDate(0, 1, 0)
}
