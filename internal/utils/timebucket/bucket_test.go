package timebucket_test

import (
	"testing"
	"time"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/utils/timebucket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    timebucket.Period
		wantErr bool
	}{
		{"week", timebucket.Week, false},
		{"month", timebucket.Month, false},
		{"year", timebucket.Year, false},
		{"YEAR", timebucket.Year, false},
		{"", timebucket.Month, false},
		{"quarter", "", true},
	}
	for _, tt := range tests {
		got, err := timebucket.ParsePeriod(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestKey(t *testing.T) {
	d := date(2024, time.March, 5)
	assert.Equal(t, "2024-03-05", timebucket.Week.Key(d))
	assert.Equal(t, "2024-03-05", timebucket.Month.Key(d))
	assert.Equal(t, "2024-03", timebucket.Year.Key(d))
}

func TestKeysSortChronologically(t *testing.T) {
	earlier := timebucket.Month.Key(date(2023, time.December, 31))
	later := timebucket.Month.Key(date(2024, time.January, 1))
	assert.Less(t, earlier, later)
}

func TestWindowStart(t *testing.T) {
	now := date(2024, time.March, 15)
	assert.Equal(t, date(2024, time.March, 8), timebucket.Week.WindowStart(now))
	assert.Equal(t, date(2024, time.February, 14), timebucket.Month.WindowStart(now))
	assert.Equal(t, date(2023, time.March, 15), timebucket.Year.WindowStart(now))
}

func TestMonthBounds(t *testing.T) {
	from, to := timebucket.MonthBounds(date(2024, time.January, 17))
	assert.Equal(t, date(2024, time.January, 1), from)
	assert.Equal(t, date(2024, time.February, 1), to)

	// December rolls into the next year.
	from, to = timebucket.MonthBounds(date(2024, time.December, 3))
	assert.Equal(t, date(2024, time.December, 1), from)
	assert.Equal(t, date(2025, time.January, 1), to)
}

func TestMonthsWindowStart(t *testing.T) {
	now := date(2024, time.March, 15)
	assert.Equal(t, date(2023, time.March, 15), timebucket.MonthsWindowStart(now, 12))
}
