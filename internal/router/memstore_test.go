package router

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/noah-isme/class-schedule-api/internal/models"
	"github.com/noah-isme/class-schedule-api/internal/timetable"
)

// memStore backs every repository interface with maps so the full HTTP stack
// can run without Postgres.
type memStore struct {
	mu       sync.Mutex
	users    map[string]models.User
	subjects []models.Subject
	lessons  map[string]*models.Lesson
	nextID   int
}

func newMemStore() *memStore {
	return &memStore{
		users: map[string]models.User{
			"teacher": {ID: 1, Username: "teacher", Password: "teacher123", RoleID: models.RoleIDTeacher, Role: models.RoleTeacher, FullName: "Иванов Иван Иванович"},
			"student": {ID: 2, Username: "student", Password: "student123", RoleID: models.RoleIDStudent, Role: models.RoleStudent, FullName: "Петров Петр Петрович"},
		},
		subjects: []models.Subject{{ID: 1, Name: "Физика"}, {ID: 2, Name: "Математика"}},
		lessons:  map[string]*models.Lesson{},
		nextID:   100,
	}
}

func lessonKey(date string, number int) string {
	return fmt.Sprintf("%s#%d", date, number)
}

type memUsers struct{ *memStore }

func (m memUsers) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (m memUsers) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.users[username]
	return ok, nil
}

func (m memUsers) Create(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	role := models.RoleStudent
	if req.RoleID == models.RoleIDTeacher {
		role = models.RoleTeacher
	}
	u := models.User{ID: m.nextID, Username: req.Username, Password: req.Password, RoleID: req.RoleID, Role: role, FullName: req.FullName}
	m.users[u.Username] = u
	return &u, nil
}

type memSubjects struct{ *memStore }

func (m memSubjects) List(ctx context.Context) ([]models.Subject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.Subject(nil), m.subjects...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m memSubjects) ExistsByName(ctx context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.subjects {
		if strings.EqualFold(s.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (m memSubjects) Create(ctx context.Context, name string) (*models.Subject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s := models.Subject{ID: m.nextID, Name: name}
	m.subjects = append(m.subjects, s)
	return &s, nil
}

func (m memSubjects) Delete(ctx context.Context, id int) (*models.Subject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.subjects {
		if s.ID == id {
			m.subjects = append(m.subjects[:i], m.subjects[i+1:]...)
			return &s, nil
		}
	}
	return nil, sql.ErrNoRows
}

type memLessons struct{ *memStore }

func (m memLessons) entries(match func(models.Lesson) bool) []models.ScheduleEntry {
	out := []models.ScheduleEntry{}
	for _, l := range m.lessons {
		if match(*l) {
			out = append(out, models.ScheduleEntry{Lesson: *l})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].LessonNumber < out[j].LessonNumber
	})
	return out
}

func (m memLessons) List(ctx context.Context) ([]models.ScheduleEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries(func(models.Lesson) bool { return true }), nil
}

func (m memLessons) ListByDate(ctx context.Context, date string) ([]models.ScheduleEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries(func(l models.Lesson) bool { return l.Date == date }), nil
}

func (m memLessons) Dump(ctx context.Context) ([]models.Lesson, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Lesson
	for _, e := range m.entries(func(models.Lesson) bool { return true }) {
		out = append(out, e.Lesson)
	}
	return out, nil
}

func (m memLessons) Upsert(ctx context.Context, in models.LessonInput) (*models.Lesson, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lessons[lessonKey(in.Date, in.LessonNumber)]
	if !ok {
		m.nextID++
		l = &models.Lesson{ID: m.nextID, Date: in.Date, LessonNumber: in.LessonNumber}
		m.lessons[lessonKey(in.Date, in.LessonNumber)] = l
	}
	l.FirstHalfSubject, l.SecondHalfSubject = in.FirstHalfSubject, in.SecondHalfSubject
	l.RoomFirstHalf, l.RoomSecondHalf = in.RoomFirstHalf, in.RoomSecondHalf
	out := *l
	return &out, nil
}

func (m memLessons) mutate(date string, number int, fn func(*models.Lesson)) (*models.Lesson, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lessons[lessonKey(date, number)]
	if !ok {
		return nil, sql.ErrNoRows
	}
	fn(l)
	out := *l
	return &out, nil
}

func (m memLessons) Update(ctx context.Context, in models.LessonInput) (*models.Lesson, error) {
	return m.mutate(in.Date, in.LessonNumber, func(l *models.Lesson) {
		l.FirstHalfSubject, l.SecondHalfSubject = in.FirstHalfSubject, in.SecondHalfSubject
		l.RoomFirstHalf, l.RoomSecondHalf = in.RoomFirstHalf, in.RoomSecondHalf
	})
}

func (m memLessons) SetCancelled(ctx context.Context, date string, number int, cancelled bool) (*models.Lesson, error) {
	return m.mutate(date, number, func(l *models.Lesson) { l.IsCancelled = cancelled })
}

func (m memLessons) SetHalfCancelled(ctx context.Context, date string, number int, half models.Half, cancelled bool) (*models.Lesson, error) {
	return m.mutate(date, number, func(l *models.Lesson) {
		if half == models.HalfFirst {
			l.IsCancelledFirstHalf = cancelled
		} else {
			l.IsCancelledSecondHalf = cancelled
		}
	})
}

func (m memLessons) ClearHalf(ctx context.Context, date string, number int, half models.Half) (*models.Lesson, error) {
	return m.mutate(date, number, func(l *models.Lesson) {
		if half != models.HalfSecond {
			l.FirstHalfSubject, l.RoomFirstHalf = nil, nil
		}
		if half != models.HalfFirst {
			l.SecondHalfSubject, l.RoomSecondHalf = nil, nil
		}
	})
}

func (m memLessons) Delete(ctx context.Context, date string, number int) (*models.Lesson, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lessons[lessonKey(date, number)]
	if !ok {
		return nil, sql.ErrNoRows
	}
	delete(m.lessons, lessonKey(date, number))
	return l, nil
}

func (m memLessons) CopyWeek(ctx context.Context, sourceDates, targetDates []string) ([]models.ScheduleEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	targets := map[string]bool{}
	for i, src := range sourceDates {
		dst := targetDates[i]
		targets[dst] = true
		for number := 1; number <= models.LessonsPerDay; number++ {
			l, ok := m.lessons[lessonKey(src, number)]
			if !ok {
				continue
			}
			copied := *l
			if existing, ok := m.lessons[lessonKey(dst, number)]; ok {
				copied.ID = existing.ID
			} else {
				m.nextID++
				copied.ID = m.nextID
			}
			copied.Date = dst
			m.lessons[lessonKey(dst, number)] = &copied
		}
	}
	return m.entries(func(l models.Lesson) bool { return targets[l.Date] }), nil
}

type memSeed struct{ *memStore }

func (m memSeed) SeedDemoData(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lessons = map[string]*models.Lesson{}
	m.subjects = []models.Subject{{ID: 1, Name: "Алгебра"}}
	return nil
}

type memTimes struct{}

func (memTimes) List(ctx context.Context) ([]models.LessonTime, error) {
	return timetable.DefaultLessonTimes(), nil
}

type memRooms struct{}

func (memRooms) List(ctx context.Context) ([]models.Room, error) {
	return []models.Room{{ID: 1, Name: "101"}}, nil
}
