package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/class-schedule-api/internal/dto"
	"github.com/noah-isme/class-schedule-api/internal/models"
	appErrors "github.com/noah-isme/class-schedule-api/pkg/errors"
)

type scheduleServiceMock struct {
	entries []models.ScheduleEntry
	err     error

	lastFilter dto.ScheduleFilter
	lastUpsert dto.UpsertLessonRequest
	lastKey    dto.LessonKey
	lastHalf   models.Half
	lastStatus dto.StatusRequest
	lastCopy   dto.CopyWeekRequest
}

func (m *scheduleServiceMock) List(ctx context.Context, filter dto.ScheduleFilter) ([]models.ScheduleEntry, error) {
	m.lastFilter = filter
	return m.entries, m.err
}

func (m *scheduleServiceMock) Dump(ctx context.Context) ([]models.Lesson, error) {
	return nil, m.err
}

func (m *scheduleServiceMock) Upsert(ctx context.Context, req dto.UpsertLessonRequest) (*models.Lesson, error) {
	m.lastUpsert = req
	if m.err != nil {
		return nil, m.err
	}
	return &models.Lesson{ID: 1, Date: req.Date, LessonNumber: req.LessonNumber, FirstHalfSubject: req.FirstHalfSubject}, nil
}

func (m *scheduleServiceMock) Update(ctx context.Context, key dto.LessonKey, req dto.UpdateLessonRequest) (*dto.LessonResult, error) {
	m.lastKey = key
	if m.err != nil {
		return nil, m.err
	}
	return &dto.LessonResult{Success: true, Lesson: &models.Lesson{Date: key.Date, LessonNumber: key.LessonNumber}}, nil
}

func (m *scheduleServiceMock) SetStatus(ctx context.Context, key dto.LessonKey, req dto.StatusRequest) (*dto.LessonResult, error) {
	m.lastKey, m.lastStatus = key, req
	if m.err != nil {
		return nil, m.err
	}
	return &dto.LessonResult{Success: true, Message: "Lesson cancelled"}, nil
}

func (m *scheduleServiceMock) SetHalfStatus(ctx context.Context, key dto.LessonKey, half models.Half, req dto.StatusRequest) (*dto.LessonResult, error) {
	m.lastKey, m.lastHalf, m.lastStatus = key, half, req
	if m.err != nil {
		return nil, m.err
	}
	return &dto.LessonResult{Success: true}, nil
}

func (m *scheduleServiceMock) ClearHalf(ctx context.Context, key dto.LessonKey, half models.Half) (*dto.LessonResult, error) {
	m.lastKey, m.lastHalf = key, half
	if m.err != nil {
		return nil, m.err
	}
	return &dto.LessonResult{Success: true, Message: "Lesson cleared"}, nil
}

func (m *scheduleServiceMock) Delete(ctx context.Context, key dto.LessonKey) (*dto.DeleteLessonResult, error) {
	m.lastKey = key
	if m.err != nil {
		return nil, m.err
	}
	return &dto.DeleteLessonResult{Success: true, Message: "Lesson deleted"}, nil
}

func (m *scheduleServiceMock) CopyWeek(ctx context.Context, req dto.CopyWeekRequest) (*dto.CopyWeekResult, error) {
	m.lastCopy = req
	if m.err != nil {
		return nil, m.err
	}
	return &dto.CopyWeekResult{Success: true, Message: "Schedule copied", Schedule: m.entries}, nil
}

func (m *scheduleServiceMock) SeedDemoData(ctx context.Context) (*dto.MessageResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &dto.MessageResult{Success: true, Message: "Demo data created"}, nil
}

func lessonParams(date, number string) gin.Params {
	return gin.Params{{Key: "date", Value: date}, {Key: "lessonNumber", Value: number}}
}

func TestScheduleHandlerListFilter(t *testing.T) {
	subject := "Математика"
	mockSvc := &scheduleServiceMock{entries: []models.ScheduleEntry{{Lesson: models.Lesson{Date: "2025-05-12", LessonNumber: 1, FirstHalfSubject: &subject}}}}
	handler := NewScheduleHandler(mockSvc)

	c, w := newJSONContext(http.MethodGet, "/api/schedule?date=2025-05-12", "")
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-05-12", mockSvc.lastFilter.Date)
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Математика", body[0]["first_half_subject"])
}

func TestScheduleHandlerCreate(t *testing.T) {
	mockSvc := &scheduleServiceMock{}
	handler := NewScheduleHandler(mockSvc)

	c, w := newJSONContext(http.MethodPost, "/api/schedule", `{"date":"2025-05-12","lessonNumber":2,"firstHalfSubject":"Физика","roomFirstHalf":"201"}`)
	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 2, mockSvc.lastUpsert.LessonNumber)
	require.NotNil(t, mockSvc.lastUpsert.RoomFirstHalf)
	assert.Equal(t, "201", *mockSvc.lastUpsert.RoomFirstHalf)
	assert.Nil(t, mockSvc.lastUpsert.SecondHalfSubject)
}

func TestScheduleHandlerCreateMalformed(t *testing.T) {
	mockSvc := &scheduleServiceMock{}
	handler := NewScheduleHandler(mockSvc)

	c, w := newJSONContext(http.MethodPost, "/api/schedule", `{"date":`)
	handler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, w).Code)
	assert.Empty(t, mockSvc.lastUpsert.Date)
}

func TestScheduleHandlerUpdateNotFound(t *testing.T) {
	mockSvc := &scheduleServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "lesson not found")}
	handler := NewScheduleHandler(mockSvc)

	c, w := newJSONContext(http.MethodPut, "/api/schedule/2025-05-12/3", `{"firstHalfSubject":"Химия"}`)
	c.Params = lessonParams("2025-05-12", "3")
	handler.Update(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.LessonKey{Date: "2025-05-12", LessonNumber: 3}, mockSvc.lastKey)
	assert.Equal(t, "lesson not found", decodeError(t, w).Error)
}

func TestScheduleHandlerBadLessonNumber(t *testing.T) {
	handler := NewScheduleHandler(&scheduleServiceMock{})

	c, w := newJSONContext(http.MethodDelete, "/api/schedule/2025-05-12/x", "")
	c.Params = lessonParams("2025-05-12", "x")
	handler.Delete(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Error, "lessonNumber must be an integer")
}

func TestScheduleHandlerSetStatus(t *testing.T) {
	mockSvc := &scheduleServiceMock{}
	handler := NewScheduleHandler(mockSvc)

	c, w := newJSONContext(http.MethodPatch, "/api/schedule/2025-05-12/1/status", `{"isCancelled":true}`)
	c.Params = lessonParams("2025-05-12", "1")
	handler.SetStatus(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockSvc.lastStatus.IsCancelled)
	assert.True(t, *mockSvc.lastStatus.IsCancelled)
	assert.Contains(t, w.Body.String(), "Lesson cancelled")
}

func TestScheduleHandlerHalfRoutes(t *testing.T) {
	mockSvc := &scheduleServiceMock{}
	handler := NewScheduleHandler(mockSvc)

	c, w := newJSONContext(http.MethodPatch, "/api/schedule/2025-05-12/1/half/second/status", `{"isCancelled":false}`)
	c.Params = append(lessonParams("2025-05-12", "1"), gin.Param{Key: "half", Value: "second"})
	handler.SetHalfStatus(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.HalfSecond, mockSvc.lastHalf)

	c, w = newJSONContext(http.MethodDelete, "/api/schedule/2025-05-12/1/half/both", "")
	c.Params = append(lessonParams("2025-05-12", "1"), gin.Param{Key: "half", Value: "both"})
	handler.ClearHalf(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.HalfBoth, mockSvc.lastHalf)
	assert.Contains(t, w.Body.String(), "Lesson cleared")
}

func TestScheduleHandlerCopyWeek(t *testing.T) {
	mockSvc := &scheduleServiceMock{}
	handler := NewScheduleHandler(mockSvc)

	c, w := newJSONContext(http.MethodPost, "/api/schedule/copy", `{"currentWeekDates":["2025-05-12"],"nextWeekDates":["2025-05-19"]}`)
	handler.CopyWeek(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"2025-05-19"}, mockSvc.lastCopy.NextWeekDates)
	assert.Contains(t, w.Body.String(), "Schedule copied")
}

func TestScheduleHandlerCopyWeekFailure(t *testing.T) {
	handler := NewScheduleHandler(&scheduleServiceMock{err: appErrors.Internal(errors.New("tx aborted"), "failed to copy schedule")})

	c, w := newJSONContext(http.MethodPost, "/api/schedule/copy", `{"currentWeekDates":["2025-05-12"],"nextWeekDates":["2025-05-19"]}`)
	handler.CopyWeek(c)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
}

func TestScheduleHandlerSeed(t *testing.T) {
	handler := NewScheduleHandler(&scheduleServiceMock{})

	c, w := newJSONContext(http.MethodPost, "/api/test-data", "")
	handler.SeedDemoData(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Demo data created"}`, w.Body.String())
}
