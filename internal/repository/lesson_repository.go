package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/class-schedule-api/internal/models"
)

const lessonColumns = `lesson_id, TO_CHAR(date, 'YYYY-MM-DD') AS date, lesson_number, first_half_subject, second_half_subject, room, is_cancelled, is_cancelled_first_half, is_cancelled_second_half, room_first_half, room_second_half`

const scheduleSelect = `SELECT l.lesson_id, TO_CHAR(l.date, 'YYYY-MM-DD') AS date, l.lesson_number, l.first_half_subject, l.second_half_subject, l.room,
l.is_cancelled, l.is_cancelled_first_half, l.is_cancelled_second_half, l.room_first_half, l.room_second_half,
TO_CHAR(lt.first_half_start, 'HH24:MI') AS first_half_start, TO_CHAR(lt.first_half_end, 'HH24:MI') AS first_half_end,
TO_CHAR(lt.second_half_start, 'HH24:MI') AS second_half_start, TO_CHAR(lt.second_half_end, 'HH24:MI') AS second_half_end,
lt.break_duration
FROM lessons l
LEFT JOIN lesson_times lt ON l.lesson_number = lt.lesson_number`

// LessonRepository handles persistence for lessons.
type LessonRepository struct {
	db *sqlx.DB
}

// NewLessonRepository creates a new repository instance.
func NewLessonRepository(db *sqlx.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

// List returns every lesson joined with its slot timing.
func (r *LessonRepository) List(ctx context.Context) ([]models.ScheduleEntry, error) {
	entries := []models.ScheduleEntry{}
	if err := r.db.SelectContext(ctx, &entries, scheduleSelect+" ORDER BY l.date, l.lesson_number"); err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}
	return entries, nil
}

// ListByDate returns the lessons of a single date.
func (r *LessonRepository) ListByDate(ctx context.Context, date string) ([]models.ScheduleEntry, error) {
	entries := []models.ScheduleEntry{}
	if err := r.db.SelectContext(ctx, &entries, scheduleSelect+" WHERE l.date = $1 ORDER BY l.lesson_number", date); err != nil {
		return nil, fmt.Errorf("list schedule for %s: %w", date, err)
	}
	return entries, nil
}

// Dump returns the raw lessons table.
func (r *LessonRepository) Dump(ctx context.Context) ([]models.Lesson, error) {
	lessons := []models.Lesson{}
	if err := r.db.SelectContext(ctx, &lessons, "SELECT "+lessonColumns+" FROM lessons ORDER BY date, lesson_number"); err != nil {
		return nil, fmt.Errorf("dump lessons: %w", err)
	}
	return lessons, nil
}

// Upsert inserts a lesson or overwrites both halves of the existing row for the same pair.
func (r *LessonRepository) Upsert(ctx context.Context, input models.LessonInput) (*models.Lesson, error) {
	query := `INSERT INTO lessons (date, lesson_number, first_half_subject, second_half_subject, room_first_half, room_second_half)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (date, lesson_number) DO UPDATE SET
first_half_subject = EXCLUDED.first_half_subject,
second_half_subject = EXCLUDED.second_half_subject,
room_first_half = EXCLUDED.room_first_half,
room_second_half = EXCLUDED.room_second_half
RETURNING ` + lessonColumns
	var lesson models.Lesson
	if err := r.db.GetContext(ctx, &lesson, query, input.Date, input.LessonNumber, input.FirstHalfSubject, input.SecondHalfSubject, input.RoomFirstHalf, input.RoomSecondHalf); err != nil {
		return nil, fmt.Errorf("upsert lesson: %w", err)
	}
	return &lesson, nil
}

// Update overwrites both halves of an existing lesson. A missing row yields sql.ErrNoRows.
func (r *LessonRepository) Update(ctx context.Context, input models.LessonInput) (*models.Lesson, error) {
	query := `UPDATE lessons SET first_half_subject = $1, second_half_subject = $2, room_first_half = $3, room_second_half = $4
WHERE date = $5 AND lesson_number = $6 RETURNING ` + lessonColumns
	return r.returning(ctx, "update lesson", query, input.FirstHalfSubject, input.SecondHalfSubject, input.RoomFirstHalf, input.RoomSecondHalf, input.Date, input.LessonNumber)
}

// SetCancelled writes the legacy whole-slot cancellation flag.
func (r *LessonRepository) SetCancelled(ctx context.Context, date string, lessonNumber int, cancelled bool) (*models.Lesson, error) {
	query := `UPDATE lessons SET is_cancelled = $1 WHERE date = $2 AND lesson_number = $3 RETURNING ` + lessonColumns
	return r.returning(ctx, "update lesson status", query, cancelled, date, lessonNumber)
}

// SetHalfCancelled writes the cancellation flag of one half.
func (r *LessonRepository) SetHalfCancelled(ctx context.Context, date string, lessonNumber int, half models.Half, cancelled bool) (*models.Lesson, error) {
	var column string
	switch half {
	case models.HalfFirst:
		column = "is_cancelled_first_half"
	case models.HalfSecond:
		column = "is_cancelled_second_half"
	default:
		return nil, fmt.Errorf("unsupported half %q", half)
	}
	query := fmt.Sprintf(`UPDATE lessons SET %s = $1 WHERE date = $2 AND lesson_number = $3 RETURNING %s`, column, lessonColumns)
	return r.returning(ctx, "update lesson half status", query, cancelled, date, lessonNumber)
}

// ClearHalf nulls the subject and room of the given half, keeping the row and its flags.
func (r *LessonRepository) ClearHalf(ctx context.Context, date string, lessonNumber int, half models.Half) (*models.Lesson, error) {
	var set string
	switch half {
	case models.HalfFirst:
		set = "first_half_subject = NULL, room_first_half = NULL"
	case models.HalfSecond:
		set = "second_half_subject = NULL, room_second_half = NULL"
	case models.HalfBoth:
		set = "first_half_subject = NULL, second_half_subject = NULL, room_first_half = NULL, room_second_half = NULL"
	default:
		return nil, fmt.Errorf("unsupported half %q", half)
	}
	query := fmt.Sprintf(`UPDATE lessons SET %s WHERE date = $1 AND lesson_number = $2 RETURNING %s`, set, lessonColumns)
	return r.returning(ctx, "clear lesson half", query, date, lessonNumber)
}

// Delete removes the lesson row. A missing row yields sql.ErrNoRows.
func (r *LessonRepository) Delete(ctx context.Context, date string, lessonNumber int) (*models.Lesson, error) {
	query := `DELETE FROM lessons WHERE date = $1 AND lesson_number = $2 RETURNING ` + lessonColumns
	return r.returning(ctx, "delete lesson", query, date, lessonNumber)
}

func (r *LessonRepository) returning(ctx context.Context, op, query string, args ...interface{}) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := r.db.GetContext(ctx, &lesson, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &lesson, nil
}

// CopyWeek copies every lesson on sourceDates[i] onto targetDates[i] in one
// transaction, updating rows that already exist at the target pair. It returns
// the rows present on the target dates after the copy.
func (r *LessonRepository) CopyWeek(ctx context.Context, sourceDates, targetDates []string) (result []models.ScheduleEntry, err error) {
	if len(sourceDates) != len(targetDates) {
		return nil, fmt.Errorf("copy week: %d source dates for %d target dates", len(sourceDates), len(targetDates))
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin copy week tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for i, source := range sourceDates {
		target := targetDates[i]
		var lessons []models.Lesson
		if err = tx.SelectContext(ctx, &lessons, "SELECT "+lessonColumns+" FROM lessons WHERE date = $1 ORDER BY lesson_number", source); err != nil {
			return nil, fmt.Errorf("load lessons for %s: %w", source, err)
		}
		for _, lesson := range lessons {
			if err = copyLesson(ctx, tx, target, lesson); err != nil {
				return nil, err
			}
		}
	}

	result = []models.ScheduleEntry{}
	if err = tx.SelectContext(ctx, &result, scheduleSelect+" WHERE l.date = ANY($1::date[]) ORDER BY l.date, l.lesson_number", pq.Array(targetDates)); err != nil {
		return nil, fmt.Errorf("load copied schedule: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit copy week tx: %w", err)
	}
	return result, nil
}

func copyLesson(ctx context.Context, tx *sqlx.Tx, target string, lesson models.Lesson) error {
	var existingID int
	err := tx.GetContext(ctx, &existingID, `SELECT lesson_id FROM lessons WHERE date = $1 AND lesson_number = $2`, target, lesson.LessonNumber)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		const insert = `INSERT INTO lessons (date, lesson_number, first_half_subject, second_half_subject, room, room_first_half, room_second_half, is_cancelled, is_cancelled_first_half, is_cancelled_second_half)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
		if _, err := tx.ExecContext(ctx, insert, target, lesson.LessonNumber, lesson.FirstHalfSubject, lesson.SecondHalfSubject, lesson.Room,
			lesson.RoomFirstHalf, lesson.RoomSecondHalf, lesson.IsCancelled, lesson.IsCancelledFirstHalf, lesson.IsCancelledSecondHalf); err != nil {
			return fmt.Errorf("insert lesson %s #%d: %w", target, lesson.LessonNumber, err)
		}
	case err != nil:
		return fmt.Errorf("find lesson %s #%d: %w", target, lesson.LessonNumber, err)
	default:
		const update = `UPDATE lessons SET first_half_subject = $1, second_half_subject = $2, room = $3, room_first_half = $4, room_second_half = $5,
is_cancelled = $6, is_cancelled_first_half = $7, is_cancelled_second_half = $8 WHERE lesson_id = $9`
		if _, err := tx.ExecContext(ctx, update, lesson.FirstHalfSubject, lesson.SecondHalfSubject, lesson.Room, lesson.RoomFirstHalf, lesson.RoomSecondHalf,
			lesson.IsCancelled, lesson.IsCancelledFirstHalf, lesson.IsCancelledSecondHalf, existingID); err != nil {
			return fmt.Errorf("update lesson %s #%d: %w", target, lesson.LessonNumber, err)
		}
	}
	return nil
}
