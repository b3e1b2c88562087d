package timetable

import "github.com/noah-isme/class-schedule-api/internal/models"

// DefaultLessonTimes is the built-in slot catalog, used when the API does not
// provide one.
func DefaultLessonTimes() []models.LessonTime {
	return []models.LessonTime{
		{ID: 1, LessonNumber: 1, FirstHalfStart: "09:00", FirstHalfEnd: "09:45", SecondHalfStart: "09:55", SecondHalfEnd: "10:40", BreakDuration: 10},
		{ID: 2, LessonNumber: 2, FirstHalfStart: "10:50", FirstHalfEnd: "11:35", SecondHalfStart: "11:45", SecondHalfEnd: "12:30", BreakDuration: 10},
		{ID: 3, LessonNumber: 3, FirstHalfStart: "13:15", FirstHalfEnd: "14:00", SecondHalfStart: "14:10", SecondHalfEnd: "14:55", BreakDuration: 10},
		{ID: 4, LessonNumber: 4, FirstHalfStart: "15:05", FirstHalfEnd: "15:50", SecondHalfStart: "16:00", SecondHalfEnd: "16:45", BreakDuration: 10},
		{ID: 5, LessonNumber: 5, FirstHalfStart: "16:55", FirstHalfEnd: "17:40", SecondHalfStart: "17:50", SecondHalfEnd: "18:35", BreakDuration: 10},
		{ID: 6, LessonNumber: 6, FirstHalfStart: "18:45", FirstHalfEnd: "19:30", SecondHalfStart: "19:40", SecondHalfEnd: "20:25", BreakDuration: 10},
	}
}
