package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reference = time.Date(2025, time.May, 12, 0, 0, 0, 0, time.UTC)

func TestWeekWindowReferenceWeek(t *testing.T) {
	week := WeekWindow(reference, 0)

	require.Len(t, week, DaysPerWeek)
	assert.Equal(t, []string{"2025-05-12", "2025-05-13", "2025-05-14", "2025-05-15", "2025-05-16", "2025-05-17"}, week.Dates())
	assert.Equal(t, "Понедельник", week[0].Weekday)
	assert.Equal(t, "Суббота", week[5].Weekday)
	assert.Equal(t, "12 мая", week[0].Display)
	assert.Equal(t, "12 мая - 17 мая", week.Range())
	assert.Equal(t, 12, week[0].Time.Hour())
}

func TestWeekWindowProperties(t *testing.T) {
	for offset := -60; offset <= 60; offset++ {
		week := WeekWindow(reference, offset)
		require.Len(t, week, DaysPerWeek)
		assert.Equal(t, time.Monday, week[0].Time.Weekday(), "offset %d", offset)
		for i := 1; i < len(week); i++ {
			assert.Equal(t, week[i-1].Time.AddDate(0, 0, 1).Format(DateLayout), week[i].Date, "offset %d", offset)
		}

		next := WeekWindow(reference, offset+1)
		assert.Equal(t, week[0].Time.AddDate(0, 0, 7).Format(DateLayout), next[0].Date, "offset %d", offset)
	}
}

func TestWeekWindowAcrossYearBoundary(t *testing.T) {
	week := WeekWindow(reference, 33)
	assert.Equal(t, []string{"2025-12-29", "2025-12-30", "2025-12-31", "2026-01-01", "2026-01-02", "2026-01-03"}, week.Dates())
	assert.Equal(t, "29 декабря - 3 января", week.Range())

	assert.Equal(t, "2026-01-05", WeekWindow(reference, 34)[0].Date)
}

func TestWeekWindowSundayBelongsToPreviousWeek(t *testing.T) {
	sunday := time.Date(2025, time.May, 18, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-05-12", WeekWindow(sunday, 0)[0].Date)
}

func TestWeekWindowIsRestartable(t *testing.T) {
	assert.Equal(t, WeekWindow(reference, -3), WeekWindow(reference, -3))
}

func TestWeekShift(t *testing.T) {
	week := WeekWindow(reference, 0)
	shifted := week.Shift(1)

	assert.Equal(t, WeekWindow(reference, 1).Dates(), shifted.Dates())
	assert.Equal(t, "Понедельник", shifted[0].Weekday)
	assert.True(t, shifted.Contains("2025-05-24"))
	assert.False(t, shifted.Contains("2025-05-17"))
}

func TestNormalizeDate(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)

	key, err := NormalizeDate("2025-05-12", moscow)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-12", key)

	key, err = NormalizeDate("2025-05-11T21:00:00.000Z", moscow)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-12", key)

	_, err = NormalizeDate("12.05.2025", moscow)
	assert.Error(t, err)
}
