package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSubjects(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	rows := sqlmock.NewRows([]string{"subjects_id", "name"}).
		AddRow(3, "Информатика").
		AddRow(1, "Математика")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT subjects_id, name FROM subjects ORDER BY name")).WillReturnRows(rows)

	subjects, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Информатика", subjects[0].Name)
	assert.Equal(t, 1, subjects[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSubject(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO subjects (name) VALUES ($1) RETURNING subjects_id, name")).
		WithArgs("Химия").
		WillReturnRows(sqlmock.NewRows([]string{"subjects_id", "name"}).AddRow(6, "Химия"))

	subject, err := repo.Create(context.Background(), "Химия")
	require.NoError(t, err)
	assert.Equal(t, 6, subject.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByName(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM subjects WHERE LOWER(name) = LOWER($1) LIMIT 1")).
		WithArgs("химия").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.ExistsByName(context.Background(), "химия")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSubject(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	query := regexp.QuoteMeta("DELETE FROM subjects WHERE subjects_id = $1 RETURNING subjects_id, name")
	mock.ExpectQuery(query).WithArgs(2).WillReturnRows(sqlmock.NewRows([]string{"subjects_id", "name"}).AddRow(2, "Физика"))
	mock.ExpectQuery(query).WithArgs(999).WillReturnRows(sqlmock.NewRows([]string{"subjects_id", "name"}))
	mock.ExpectQuery(query).WithArgs(3).WillReturnError(errors.New("connection reset"))

	deleted, err := repo.Delete(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Физика", deleted.Name)

	_, err = repo.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = repo.Delete(context.Background(), 3)
	require.Error(t, err)
	assert.NotErrorIs(t, err, sql.ErrNoRows)
	assert.Contains(t, err.Error(), "delete subject")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRoomsAndLessonTimes(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT room_id, name FROM rooms ORDER BY name")).
		WillReturnRows(sqlmock.NewRows([]string{"room_id", "name"}).AddRow(1, "Ауд. 101"))
	mock.ExpectQuery("FROM lesson_times ORDER BY lesson_number").
		WillReturnRows(sqlmock.NewRows([]string{"lesson_times_id", "lesson_number", "first_half_start", "first_half_end", "second_half_start", "second_half_end", "break_duration"}).
			AddRow(1, 1, "09:00", "09:45", "09:55", "10:40", 10))

	rooms, err := NewRoomRepository(db).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ауд. 101", rooms[0].Name)

	times, err := NewLessonTimeRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, times, 1)
	assert.Equal(t, "09:55", times[0].SecondHalfStart)
	assert.NoError(t, mock.ExpectationsWereMet())
}
