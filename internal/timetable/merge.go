package timetable

import (
	"fmt"

	"github.com/noah-isme/class-schedule-api/internal/models"
)

// BuildUpsert merges a single-half edit into the existing slot so the
// both-halves upsert does not clobber the untouched half. For HalfBoth the
// room is applied to both halves.
func BuildUpsert(date string, existing Slot, half models.Half, subject, room string) (models.LessonInput, error) {
	if !half.Valid(true) {
		return models.LessonInput{}, fmt.Errorf("unknown half %q", half)
	}
	if subject == "" {
		return models.LessonInput{}, fmt.Errorf("subject is required")
	}

	input := models.LessonInput{
		Date:              date,
		LessonNumber:      existing.LessonNumber,
		FirstHalfSubject:  models.StringPtr(existing.FirstHalfSubject),
		SecondHalfSubject: models.StringPtr(existing.SecondHalfSubject),
		RoomFirstHalf:     models.StringPtr(existing.RoomFirstHalf),
		RoomSecondHalf:    models.StringPtr(existing.RoomSecondHalf),
	}

	if half == models.HalfFirst || half == models.HalfBoth {
		input.FirstHalfSubject = models.StringPtr(subject)
		input.RoomFirstHalf = models.StringPtr(room)
	}
	if half == models.HalfSecond || half == models.HalfBoth {
		input.SecondHalfSubject = models.StringPtr(subject)
		input.RoomSecondHalf = models.StringPtr(room)
	}
	return input, nil
}
