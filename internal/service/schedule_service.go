package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/class-schedule-api/internal/dto"
	"github.com/noah-isme/class-schedule-api/internal/models"
	appErrors "github.com/noah-isme/class-schedule-api/pkg/errors"
)

type lessonRepository interface {
	List(ctx context.Context) ([]models.ScheduleEntry, error)
	ListByDate(ctx context.Context, date string) ([]models.ScheduleEntry, error)
	Dump(ctx context.Context) ([]models.Lesson, error)
	Upsert(ctx context.Context, input models.LessonInput) (*models.Lesson, error)
	Update(ctx context.Context, input models.LessonInput) (*models.Lesson, error)
	SetCancelled(ctx context.Context, date string, lessonNumber int, cancelled bool) (*models.Lesson, error)
	SetHalfCancelled(ctx context.Context, date string, lessonNumber int, half models.Half, cancelled bool) (*models.Lesson, error)
	ClearHalf(ctx context.Context, date string, lessonNumber int, half models.Half) (*models.Lesson, error)
	Delete(ctx context.Context, date string, lessonNumber int) (*models.Lesson, error)
	CopyWeek(ctx context.Context, sourceDates, targetDates []string) ([]models.ScheduleEntry, error)
}

type seedRepository interface {
	SeedDemoData(ctx context.Context) error
}

var errLessonNotFound = appErrors.Clone(appErrors.ErrNotFound, "lesson not found")

// ScheduleService implements lesson reads and writes. Concurrent edits of the
// same slot are last-write-wins.
type ScheduleService struct {
	lessons   lessonRepository
	seeder    seedRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(lessons lessonRepository, seeder seedRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{lessons: lessons, seeder: seeder, cache: cache, metrics: metrics, validator: validate, logger: logger}
}

// List returns every lesson joined with its slot timing, or the lessons of
// filter.Date when set.
func (s *ScheduleService) List(ctx context.Context, filter dto.ScheduleFilter) ([]models.ScheduleEntry, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, appErrors.Validation(err, "date must be formatted as YYYY-MM-DD")
	}

	key, label := cacheKeyScheduleAll, "lessons.list"
	load := func() ([]models.ScheduleEntry, error) { return s.lessons.List(ctx) }
	if filter.Date != "" {
		key, label = cacheKeySchedule+"date:"+filter.Date, "lessons.list_by_date"
		load = func() ([]models.ScheduleEntry, error) { return s.lessons.ListByDate(ctx, filter.Date) }
	}

	entries, err := cached(ctx, s.cache, key, func() ([]models.ScheduleEntry, error) {
		defer s.observe(label, time.Now())
		return load()
	})
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load schedule")
	}
	return entries, nil
}

// Dump returns the raw lessons table.
func (s *ScheduleService) Dump(ctx context.Context) ([]models.Lesson, error) {
	defer s.observe("lessons.dump", time.Now())
	lessons, err := s.lessons.Dump(ctx)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load lessons")
	}
	return lessons, nil
}

// Upsert creates the lesson or overwrites both halves of the existing one.
func (s *ScheduleService) Upsert(ctx context.Context, req dto.UpsertLessonRequest) (*models.Lesson, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "date and lessonNumber are required")
	}

	input := models.LessonInput{
		Date:              req.Date,
		LessonNumber:      req.LessonNumber,
		FirstHalfSubject:  req.FirstHalfSubject,
		SecondHalfSubject: req.SecondHalfSubject,
		RoomFirstHalf:     req.RoomFirstHalf,
		RoomSecondHalf:    req.RoomSecondHalf,
	}
	lesson, err := s.write(ctx, "upsert", func() (*models.Lesson, error) { return s.lessons.Upsert(ctx, input) })
	if err != nil {
		return nil, appErrors.Internal(err, "failed to save lesson")
	}
	return lesson, nil
}

// Update overwrites both halves of an existing lesson.
func (s *ScheduleService) Update(ctx context.Context, key dto.LessonKey, req dto.UpdateLessonRequest) (*dto.LessonResult, error) {
	if err := s.validateKey(key); err != nil {
		return nil, err
	}
	input := models.LessonInput{
		Date:              key.Date,
		LessonNumber:      key.LessonNumber,
		FirstHalfSubject:  req.FirstHalfSubject,
		SecondHalfSubject: req.SecondHalfSubject,
		RoomFirstHalf:     req.RoomFirstHalf,
		RoomSecondHalf:    req.RoomSecondHalf,
	}
	lesson, err := s.write(ctx, "update", func() (*models.Lesson, error) { return s.lessons.Update(ctx, input) })
	if err != nil {
		return nil, s.lessonError(err, "failed to update lesson")
	}
	return &dto.LessonResult{Success: true, Lesson: lesson}, nil
}

// SetStatus writes the legacy whole-slot cancellation flag only.
func (s *ScheduleService) SetStatus(ctx context.Context, key dto.LessonKey, req dto.StatusRequest) (*dto.LessonResult, error) {
	if err := s.validateKey(key); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "isCancelled is required")
	}
	cancelled := *req.IsCancelled
	lesson, err := s.write(ctx, "status", func() (*models.Lesson, error) {
		return s.lessons.SetCancelled(ctx, key.Date, key.LessonNumber, cancelled)
	})
	if err != nil {
		return nil, s.lessonError(err, "failed to update lesson status")
	}
	message := "Lesson resumed"
	if cancelled {
		message = "Lesson cancelled"
	}
	return &dto.LessonResult{Success: true, Lesson: lesson, Message: message}, nil
}

// SetHalfStatus writes the cancellation flag of one half only.
func (s *ScheduleService) SetHalfStatus(ctx context.Context, key dto.LessonKey, half models.Half, req dto.StatusRequest) (*dto.LessonResult, error) {
	if err := s.validateKey(key); err != nil {
		return nil, err
	}
	if !half.Valid(false) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("half must be first or second, got %q", half))
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "isCancelled is required")
	}
	lesson, err := s.write(ctx, "half_status", func() (*models.Lesson, error) {
		return s.lessons.SetHalfCancelled(ctx, key.Date, key.LessonNumber, half, *req.IsCancelled)
	})
	if err != nil {
		return nil, s.lessonError(err, "failed to update lesson half status")
	}
	return &dto.LessonResult{Success: true, Lesson: lesson}, nil
}

// ClearHalf removes the subject and room of one or both halves, keeping the row.
func (s *ScheduleService) ClearHalf(ctx context.Context, key dto.LessonKey, half models.Half) (*dto.LessonResult, error) {
	if err := s.validateKey(key); err != nil {
		return nil, err
	}
	if !half.Valid(true) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("half must be first, second or both, got %q", half))
	}
	lesson, err := s.write(ctx, "clear_half", func() (*models.Lesson, error) {
		return s.lessons.ClearHalf(ctx, key.Date, key.LessonNumber, half)
	})
	if err != nil {
		return nil, s.lessonError(err, "failed to clear lesson")
	}
	return &dto.LessonResult{Success: true, Lesson: lesson, Message: "Lesson cleared"}, nil
}

// Delete removes the lesson row.
func (s *ScheduleService) Delete(ctx context.Context, key dto.LessonKey) (*dto.DeleteLessonResult, error) {
	if err := s.validateKey(key); err != nil {
		return nil, err
	}
	lesson, err := s.write(ctx, "delete", func() (*models.Lesson, error) {
		return s.lessons.Delete(ctx, key.Date, key.LessonNumber)
	})
	if err != nil {
		return nil, s.lessonError(err, "failed to delete lesson")
	}
	return &dto.DeleteLessonResult{Success: true, Message: "Lesson deleted", DeletedLesson: lesson}, nil
}

// CopyWeek copies the lessons of each current-week date onto the paired
// next-week date atomically and returns the rows now on the target dates.
func (s *ScheduleService) CopyWeek(ctx context.Context, req dto.CopyWeekRequest) (*dto.CopyWeekResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "currentWeekDates and nextWeekDates are required")
	}
	if len(req.CurrentWeekDates) != len(req.NextWeekDates) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "currentWeekDates and nextWeekDates must have the same length")
	}

	start := time.Now()
	schedule, err := s.lessons.CopyWeek(ctx, req.CurrentWeekDates, req.NextWeekDates)
	s.observe("lessons.copy_week", start)
	s.metrics.RecordWeekCopy(err, len(schedule))
	if err != nil {
		s.logger.Error("week copy rolled back", zap.Strings("source", req.CurrentWeekDates), zap.Strings("target", req.NextWeekDates), zap.Error(err))
		return nil, appErrors.Internal(err, "failed to copy schedule")
	}

	s.cache.Invalidate(ctx, cacheKeySchedule)
	s.logger.Info("week copied", zap.Strings("source", req.CurrentWeekDates), zap.Strings("target", req.NextWeekDates), zap.Int("lessons", len(schedule)))
	return &dto.CopyWeekResult{Success: true, Message: "Schedule copied", Schedule: schedule}, nil
}

// SeedDemoData wipes lessons, subjects and rooms and inserts the demo catalogs.
func (s *ScheduleService) SeedDemoData(ctx context.Context) (*dto.MessageResult, error) {
	defer s.observe("seed.demo", time.Now())
	if err := s.seeder.SeedDemoData(ctx); err != nil {
		return nil, appErrors.Internal(err, "failed to create demo data")
	}
	for _, prefix := range []string{cacheKeySchedule, cacheKeySubjects, cacheKeyCatalog} {
		s.cache.Invalidate(ctx, prefix)
	}
	s.logger.Warn("demo data seeded, existing lessons removed")
	return &dto.MessageResult{Success: true, Message: "Demo data created"}, nil
}

func (s *ScheduleService) write(ctx context.Context, op string, fn func() (*models.Lesson, error)) (*models.Lesson, error) {
	start := time.Now()
	lesson, err := fn()
	s.observe("lessons."+op, start)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordLessonWrite(op)
	s.cache.Invalidate(ctx, cacheKeySchedule)
	s.logger.Info("lesson written", zap.String("operation", op), zap.String("date", lesson.Date), zap.Int("lesson_number", lesson.LessonNumber))
	return lesson, nil
}

func (s *ScheduleService) validateKey(key dto.LessonKey) error {
	if err := s.validator.Struct(key); err != nil {
		return appErrors.Validation(err, "invalid date or lesson number")
	}
	return nil
}

func (s *ScheduleService) lessonError(err error, message string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errLessonNotFound
	}
	s.logger.Error(message, zap.Error(err))
	return appErrors.Internal(err, message)
}

func (s *ScheduleService) observe(label string, start time.Time) {
	s.metrics.ObserveDBQuery(label, time.Since(start))
}
