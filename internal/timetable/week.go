package timetable

import (
	"fmt"
	"time"
)

// DateLayout is the key format used for lesson dates.
const DateLayout = "2006-01-02"

// DaysPerWeek is the number of school days shown in a window, Monday to Saturday.
const DaysPerWeek = 6

var weekdayNames = [DaysPerWeek]string{"Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота"}

var monthNames = [12]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// Day is one date of a week window.
type Day struct {
	Date    string
	Weekday string
	Display string
	Time    time.Time
}

// Week is an ordered Monday..Saturday window.
type Week []Day

// WeekWindow returns the Monday..Saturday window containing reference shifted
// by offset weeks. Days are anchored at midday in the reference's location.
func WeekWindow(reference time.Time, offset int) Week {
	midday := time.Date(reference.Year(), reference.Month(), reference.Day(), 12, 0, 0, 0, reference.Location())
	date := midday.AddDate(0, 0, offset*7)

	index := int(date.Weekday())
	if index == 0 {
		index = 7
	}
	monday := date.AddDate(0, 0, -(index - 1))

	week := make(Week, DaysPerWeek)
	for i := range week {
		week[i] = newDay(monday.AddDate(0, 0, i), i)
	}
	return week
}

func newDay(t time.Time, index int) Day {
	return Day{
		Date:    t.Format(DateLayout),
		Weekday: weekdayNames[index],
		Display: FormatDisplay(t),
		Time:    t,
	}
}

// FormatDisplay renders a date as "12 мая".
func FormatDisplay(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), monthNames[t.Month()-1])
}

// Dates returns the YYYY-MM-DD keys of the window.
func (w Week) Dates() []string {
	dates := make([]string, len(w))
	for i, day := range w {
		dates[i] = day.Date
	}
	return dates
}

// Shift returns the window n weeks later.
func (w Week) Shift(n int) Week {
	if len(w) == 0 {
		return nil
	}
	shifted := make(Week, len(w))
	for i, day := range w {
		shifted[i] = newDay(day.Time.AddDate(0, 0, n*7), i)
	}
	return shifted
}

// Contains reports whether date is one of the window's keys.
func (w Week) Contains(date string) bool {
	for _, day := range w {
		if day.Date == date {
			return true
		}
	}
	return false
}

// Range renders the window bounds as "12 мая - 17 мая".
func (w Week) Range() string {
	if len(w) == 0 {
		return ""
	}
	return w[0].Display + " - " + w[len(w)-1].Display
}

// NormalizeDate converts a lesson date as returned by the API into a window
// key. It accepts YYYY-MM-DD and RFC3339 timestamps; timestamps are read in
// loc so a midnight-local date serialized in UTC maps back to the same day.
func NormalizeDate(raw string, loc *time.Location) (string, error) {
	if t, err := time.ParseInLocation(DateLayout, raw, loc); err == nil {
		return t.Format(DateLayout), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return "", fmt.Errorf("unrecognised lesson date %q", raw)
	}
	local := t.In(loc)
	midday := time.Date(local.Year(), local.Month(), local.Day(), 12, 0, 0, 0, loc)
	return midday.Format(DateLayout), nil
}
