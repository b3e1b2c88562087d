package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/class-schedule-api/internal/models"
)

// LessonTimeRepository reads the static slot catalog.
type LessonTimeRepository struct {
	db *sqlx.DB
}

// NewLessonTimeRepository creates a new repository instance.
func NewLessonTimeRepository(db *sqlx.DB) *LessonTimeRepository {
	return &LessonTimeRepository{db: db}
}

// List returns every slot ordered by lesson number.
func (r *LessonTimeRepository) List(ctx context.Context) ([]models.LessonTime, error) {
	const query = `SELECT lesson_times_id, lesson_number,
TO_CHAR(first_half_start, 'HH24:MI') AS first_half_start, TO_CHAR(first_half_end, 'HH24:MI') AS first_half_end,
TO_CHAR(second_half_start, 'HH24:MI') AS second_half_start, TO_CHAR(second_half_end, 'HH24:MI') AS second_half_end,
break_duration FROM lesson_times ORDER BY lesson_number`
	times := []models.LessonTime{}
	if err := r.db.SelectContext(ctx, &times, query); err != nil {
		return nil, fmt.Errorf("list lesson times: %w", err)
	}
	return times, nil
}
