package dto

import "github.com/noah-isme/class-schedule-api/internal/models"

// UpsertLessonRequest creates a lesson or overwrites both halves of an existing one.
type UpsertLessonRequest struct {
	Date              string  `json:"date" validate:"required,datetime=2006-01-02"`
	LessonNumber      int     `json:"lessonNumber" validate:"required,min=1,max=6"`
	FirstHalfSubject  *string `json:"firstHalfSubject"`
	SecondHalfSubject *string `json:"secondHalfSubject"`
	RoomFirstHalf     *string `json:"roomFirstHalf"`
	RoomSecondHalf    *string `json:"roomSecondHalf"`
}

// UpdateLessonRequest overwrites the halves of an existing lesson.
type UpdateLessonRequest struct {
	FirstHalfSubject  *string `json:"firstHalfSubject"`
	SecondHalfSubject *string `json:"secondHalfSubject"`
	RoomFirstHalf     *string `json:"roomFirstHalf"`
	RoomSecondHalf    *string `json:"roomSecondHalf"`
}

// LessonKey addresses a lesson by its unique pair.
type LessonKey struct {
	Date         string `validate:"required,datetime=2006-01-02"`
	LessonNumber int    `validate:"min=1,max=6"`
}

// StatusRequest toggles a cancellation flag.
type StatusRequest struct {
	IsCancelled *bool `json:"isCancelled" validate:"required"`
}

// CopyWeekRequest pairs source and target dates by position.
type CopyWeekRequest struct {
	CurrentWeekDates []string `json:"currentWeekDates" validate:"required,min=1,dive,datetime=2006-01-02"`
	NextWeekDates    []string `json:"nextWeekDates" validate:"required,min=1,dive,datetime=2006-01-02"`
}

// LessonResult is returned by update and status endpoints.
type LessonResult struct {
	Success bool           `json:"success"`
	Lesson  *models.Lesson `json:"lesson"`
	Message string         `json:"message,omitempty"`
}

// DeleteLessonResult is returned when a lesson row is removed.
type DeleteLessonResult struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	DeletedLesson *models.Lesson `json:"deletedLesson"`
}

// CopyWeekResult carries the rows now present on the target dates.
type CopyWeekResult struct {
	Success  bool                   `json:"success"`
	Message  string                 `json:"message"`
	Schedule []models.ScheduleEntry `json:"schedule"`
}

// MessageResult is a bare acknowledgement.
type MessageResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ScheduleFilter narrows schedule listings. An empty Date returns every row.
type ScheduleFilter struct {
	Date string `form:"date" validate:"omitempty,datetime=2006-01-02"`
}
