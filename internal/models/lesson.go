package models

// LessonsPerDay is the number of fixed daily slots.
const LessonsPerDay = 6

// Half selects one of the two sub-intervals of a slot.
type Half string

const (
	HalfFirst  Half = "first"
	HalfSecond Half = "second"
	HalfBoth   Half = "both"
)

// Valid reports whether h is a known half. allowBoth admits HalfBoth.
func (h Half) Valid(allowBoth bool) bool {
	switch h {
	case HalfFirst, HalfSecond:
		return true
	case HalfBoth:
		return allowBoth
	default:
		return false
	}
}

// LessonTime is the static timing of one slot. Times are HH:MM.
type LessonTime struct {
	ID              int    `db:"lesson_times_id" json:"lesson_times_id"`
	LessonNumber    int    `db:"lesson_number" json:"lesson_number"`
	FirstHalfStart  string `db:"first_half_start" json:"first_half_start"`
	FirstHalfEnd    string `db:"first_half_end" json:"first_half_end"`
	SecondHalfStart string `db:"second_half_start" json:"second_half_start"`
	SecondHalfEnd   string `db:"second_half_end" json:"second_half_end"`
	BreakDuration   int    `db:"break_duration" json:"break_duration"`
}

// Lesson is one row of the lessons table. Date is YYYY-MM-DD.
// IsCancelled is the legacy whole-slot flag; the per-half flags are kept separately.
type Lesson struct {
	ID                    int     `db:"lesson_id" json:"lesson_id"`
	Date                  string  `db:"date" json:"date"`
	LessonNumber          int     `db:"lesson_number" json:"lesson_number"`
	FirstHalfSubject      *string `db:"first_half_subject" json:"first_half_subject"`
	SecondHalfSubject     *string `db:"second_half_subject" json:"second_half_subject"`
	Room                  *string `db:"room" json:"room"`
	IsCancelled           bool    `db:"is_cancelled" json:"is_cancelled"`
	IsCancelledFirstHalf  bool    `db:"is_cancelled_first_half" json:"is_cancelled_first_half"`
	IsCancelledSecondHalf bool    `db:"is_cancelled_second_half" json:"is_cancelled_second_half"`
	RoomFirstHalf         *string `db:"room_first_half" json:"room_first_half"`
	RoomSecondHalf        *string `db:"room_second_half" json:"room_second_half"`
}

// ScheduleEntry is a lesson joined with its slot timing. Timing columns are
// nullable because of the LEFT JOIN.
type ScheduleEntry struct {
	Lesson
	FirstHalfStart  *string `db:"first_half_start" json:"first_half_start"`
	FirstHalfEnd    *string `db:"first_half_end" json:"first_half_end"`
	SecondHalfStart *string `db:"second_half_start" json:"second_half_start"`
	SecondHalfEnd   *string `db:"second_half_end" json:"second_half_end"`
	BreakDuration   *int    `db:"break_duration" json:"break_duration"`
}

// LessonInput carries the subject and room for both halves of a slot.
type LessonInput struct {
	Date              string
	LessonNumber      int
	FirstHalfSubject  *string
	SecondHalfSubject *string
	RoomFirstHalf     *string
	RoomSecondHalf    *string
}

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences s, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
