package timetable

import (
	"time"

	"github.com/noah-isme/class-schedule-api/internal/models"
)

// Slot is one cell of the grid. Unscheduled slots carry only their timing.
type Slot struct {
	LessonNumber          int
	Time                  models.LessonTime
	LessonID              int
	FirstHalfSubject      string
	SecondHalfSubject     string
	Room                  string
	RoomFirstHalf         string
	RoomSecondHalf        string
	IsCancelled           bool
	IsCancelledFirstHalf  bool
	IsCancelledSecondHalf bool
	Scheduled             bool
}

// Empty reports whether neither half has a subject.
func (s Slot) Empty() bool {
	return s.FirstHalfSubject == "" && s.SecondHalfSubject == ""
}

// Grid maps each date to its 6 slots, index = lesson_number - 1.
type Grid struct {
	Week  Week
	Days  map[string][]Slot
	times map[int]models.LessonTime
	loc   *time.Location
}

// BuildGrid buckets schedule rows into the week window. Rows dated outside the
// window or with an unknown lesson number are discarded.
func BuildGrid(week Week, times []models.LessonTime, rows []models.ScheduleEntry) Grid {
	if len(times) == 0 {
		times = DefaultLessonTimes()
	}
	loc := time.Local
	if len(week) > 0 {
		loc = week[0].Time.Location()
	}

	grid := Grid{
		Week:  week,
		Days:  make(map[string][]Slot, len(week)),
		times: make(map[int]models.LessonTime, len(times)),
		loc:   loc,
	}
	for _, lt := range times {
		grid.times[lt.LessonNumber] = lt
	}
	for _, day := range week {
		grid.Days[day.Date] = grid.placeholders()
	}

	for _, row := range rows {
		key, ok := grid.slotKey(row)
		if !ok || !week.Contains(key) {
			continue
		}
		grid.apply(key, row)
	}
	return grid
}

// Merge applies rows returned by a week copy, creating placeholder days for
// dates the grid does not hold yet.
func (g *Grid) Merge(rows []models.ScheduleEntry) {
	if g.Days == nil {
		g.Days = make(map[string][]Slot)
	}
	for _, row := range rows {
		key, ok := g.slotKey(row)
		if !ok {
			continue
		}
		if _, exists := g.Days[key]; !exists {
			g.Days[key] = g.placeholders()
		}
		g.apply(key, row)
	}
}

// Slots returns the slots for date, or nil if the grid does not hold it.
func (g Grid) Slots(date string) []Slot {
	return g.Days[date]
}

// Slot returns the slot at (date, lessonNumber).
func (g Grid) Slot(date string, lessonNumber int) (Slot, bool) {
	slots, ok := g.Days[date]
	if !ok || lessonNumber < 1 || lessonNumber > len(slots) {
		return Slot{}, false
	}
	return slots[lessonNumber-1], true
}

func (g Grid) placeholders() []Slot {
	slots := make([]Slot, models.LessonsPerDay)
	for i := range slots {
		number := i + 1
		lt, ok := g.times[number]
		if !ok {
			lt = models.LessonTime{LessonNumber: number}
		}
		slots[i] = Slot{LessonNumber: number, Time: lt}
	}
	return slots
}

func (g Grid) slotKey(row models.ScheduleEntry) (string, bool) {
	if row.LessonNumber < 1 || row.LessonNumber > models.LessonsPerDay {
		return "", false
	}
	loc := g.loc
	if loc == nil {
		loc = time.Local
	}
	key, err := NormalizeDate(row.Date, loc)
	if err != nil {
		return "", false
	}
	return key, true
}

func (g Grid) apply(key string, row models.ScheduleEntry) {
	slot := &g.Days[key][row.LessonNumber-1]
	slot.LessonID = row.ID
	slot.FirstHalfSubject = models.StringValue(row.FirstHalfSubject)
	slot.SecondHalfSubject = models.StringValue(row.SecondHalfSubject)
	slot.Room = models.StringValue(row.Room)
	slot.RoomFirstHalf = models.StringValue(row.RoomFirstHalf)
	slot.RoomSecondHalf = models.StringValue(row.RoomSecondHalf)
	slot.IsCancelled = row.IsCancelled
	slot.IsCancelledFirstHalf = row.IsCancelledFirstHalf
	slot.IsCancelledSecondHalf = row.IsCancelledSecondHalf
	slot.Scheduled = true
}
