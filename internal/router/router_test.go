package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/class-schedule-api/internal/dto"
	"github.com/noah-isme/class-schedule-api/internal/handler"
	"github.com/noah-isme/class-schedule-api/internal/models"
	"github.com/noah-isme/class-schedule-api/internal/service"
	"github.com/noah-isme/class-schedule-api/pkg/export"
)

var referenceMonday = time.Date(2025, time.May, 12, 0, 0, 0, 0, time.UTC)

func buildHandlers(store *memStore) Handlers {
	metrics := service.NewMetricsService()
	lessons := memLessons{store}
	return Handlers{
		Auth:     handler.NewAuthHandler(service.NewAuthService(memUsers{store}, nil, nil)),
		Subjects: handler.NewSubjectHandler(service.NewSubjectService(memSubjects{store}, nil, metrics, nil)),
		Schedule: handler.NewScheduleHandler(service.NewScheduleService(lessons, memSeed{store}, nil, metrics, nil, nil)),
		Catalog:  handler.NewCatalogHandler(service.NewCatalogService(memTimes{}, memRooms{}, nil)),
		Export:   handler.NewExportHandler(service.NewExportService(lessons, memTimes{}, referenceMonday, export.NewCSVExporter(), export.NewPDFExporter(""), nil)),
		Metrics:  handler.NewMetricsHandler(metrics, nil),
	}
}

func newTestEngine(store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	Mount(engine, "/api", buildHandlers(store), false)
	return engine
}

func reversed(routes []Route) []Route {
	out := make([]Route, len(routes))
	for i, r := range routes {
		out[len(routes)-1-i] = r
	}
	return out
}

func do(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRegistrationOrderDoesNotMatter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	forward := gin.New()
	h := buildHandlers(newMemStore())
	Register(forward.Group("/api"), APIRoutes(h))
	Register(forward, OpsRoutes(h))

	backward := gin.New()
	h = buildHandlers(newMemStore())
	Register(backward, reversed(OpsRoutes(h)))
	Register(backward.Group("/api"), reversed(APIRoutes(h)))

	requests := []struct{ method, path, body string }{
		{http.MethodGet, "/api/subjects", ""},
		{http.MethodGet, "/api/schedule", ""},
		{http.MethodGet, "/api/schedule/export?week=1", ""},
		{http.MethodPost, "/api/schedule/copy", `{"currentWeekDates":[],"nextWeekDates":[]}`},
		{http.MethodPatch, "/api/schedule/2025-05-12/1/status", `{"isCancelled":true}`},
		{http.MethodPatch, "/api/schedule/2025-05-12/1/half/first/status", `{"isCancelled":true}`},
		{http.MethodDelete, "/api/schedule/2025-05-12/1/half/both", ""},
		{http.MethodDelete, "/api/schedule/2025-05-12/1", ""},
		{http.MethodDelete, "/api/subjects/1", ""},
		{http.MethodGet, "/api/lesson-times", ""},
		{http.MethodGet, "/health", ""},
	}
	for _, r := range requests {
		a := do(forward, r.method, r.path, r.body)
		b := do(backward, r.method, r.path, r.body)
		assert.Equal(t, a.Code, b.Code, "%s %s", r.method, r.path)
		assert.Equal(t, a.Body.String(), b.Body.String(), "%s %s", r.method, r.path)
		assert.NotEqual(t, "404 page not found", a.Body.String(), "%s %s should be routed", r.method, r.path)
	}
}

func TestLoginAsTeacher(t *testing.T) {
	engine := newTestEngine(newMemStore())

	w := do(engine, http.MethodPost, "/api/auth/login", `{"username":"teacher","password":"teacher123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var info models.UserInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.True(t, info.IsTeacher())

	w = do(engine, http.MethodPost, "/api/auth/login", `{"username":"teacher","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubjectsAreUniqueAndSorted(t *testing.T) {
	engine := newTestEngine(newMemStore())

	require.Equal(t, http.StatusCreated, do(engine, http.MethodPost, "/api/subjects", `{"name":"Химия"}`).Code)
	dup := do(engine, http.MethodPost, "/api/subjects", `{"name":"Химия"}`)
	require.Equal(t, http.StatusBadRequest, dup.Code)
	assert.Contains(t, dup.Body.String(), "DUPLICATE")

	w := do(engine, http.MethodGet, "/api/subjects", "")
	require.Equal(t, http.StatusOK, w.Code)
	var subjects []models.Subject
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subjects))

	names := make([]string, 0, len(subjects))
	count := 0
	for _, s := range subjects {
		names = append(names, s.Name)
		if s.Name == "Химия" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.True(t, sort.StringsAreSorted(names), "%v", names)
}

func TestCopyWeekShiftsLessons(t *testing.T) {
	engine := newTestEngine(newMemStore())

	require.Equal(t, http.StatusCreated, do(engine, http.MethodPost, "/api/schedule", `{"date":"2025-05-12","lessonNumber":1,"firstHalfSubject":"Математика","roomFirstHalf":"101"}`).Code)
	require.Equal(t, http.StatusCreated, do(engine, http.MethodPost, "/api/schedule", `{"date":"2025-05-14","lessonNumber":3,"secondHalfSubject":"Физика"}`).Code)

	body := `{"currentWeekDates":["2025-05-12","2025-05-13","2025-05-14","2025-05-15","2025-05-16","2025-05-17"],` +
		`"nextWeekDates":["2025-05-19","2025-05-20","2025-05-21","2025-05-22","2025-05-23","2025-05-24"]}`
	w := do(engine, http.MethodPost, "/api/schedule/copy", body)
	require.Equal(t, http.StatusOK, w.Code)

	var result dto.CopyWeekResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	require.Len(t, result.Schedule, 2)
	assert.Equal(t, "2025-05-19", result.Schedule[0].Date)
	assert.Equal(t, 1, result.Schedule[0].LessonNumber)
	assert.Equal(t, "Математика", models.StringValue(result.Schedule[0].FirstHalfSubject))
	assert.Equal(t, "101", models.StringValue(result.Schedule[0].RoomFirstHalf))
	assert.Equal(t, "2025-05-21", result.Schedule[1].Date)
	assert.Equal(t, "Физика", models.StringValue(result.Schedule[1].SecondHalfSubject))

	w = do(engine, http.MethodGet, "/api/schedule?date=2025-05-12", "")
	require.Equal(t, http.StatusOK, w.Code)
	var source []models.ScheduleEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &source))
	assert.Len(t, source, 1)
}

func TestLessonLifecycle(t *testing.T) {
	engine := newTestEngine(newMemStore())

	require.Equal(t, http.StatusCreated, do(engine, http.MethodPost, "/api/schedule", `{"date":"2025-05-13","lessonNumber":2,"firstHalfSubject":"Химия","secondHalfSubject":"Химия"}`).Code)

	w := do(engine, http.MethodPatch, "/api/schedule/2025-05-13/2/status", `{"isCancelled":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	var status dto.LessonResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.Lesson.IsCancelled)
	assert.False(t, status.Lesson.IsCancelledFirstHalf)

	w = do(engine, http.MethodPatch, "/api/schedule/2025-05-13/2/half/second/status", `{"isCancelled":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_cancelled_second_half":true`)

	w = do(engine, http.MethodDelete, "/api/schedule/2025-05-13/2/half/first", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"first_half_subject":null`)

	require.Equal(t, http.StatusOK, do(engine, http.MethodDelete, "/api/schedule/2025-05-13/2", "").Code)
	assert.Equal(t, http.StatusNotFound, do(engine, http.MethodDelete, "/api/schedule/2025-05-13/2", "").Code)
	assert.Equal(t, http.StatusNotFound, do(engine, http.MethodPut, "/api/schedule/2025-05-13/2", `{"firstHalfSubject":"Химия"}`).Code)
}

func TestExportCSVForNextWeek(t *testing.T) {
	engine := newTestEngine(newMemStore())
	require.Equal(t, http.StatusCreated, do(engine, http.MethodPost, "/api/schedule", `{"date":"2025-05-20","lessonNumber":1,"firstHalfSubject":"Физика"}`).Code)

	w := do(engine, http.MethodGet, "/api/schedule/export?week=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "timetable_2025-05-19.csv")
	assert.Contains(t, w.Body.String(), "Физика")
}
