package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/class-schedule-api/internal/dto"
	"github.com/noah-isme/class-schedule-api/internal/models"
	"github.com/noah-isme/class-schedule-api/pkg/response"
)

type scheduleService interface {
	List(ctx context.Context, filter dto.ScheduleFilter) ([]models.ScheduleEntry, error)
	Dump(ctx context.Context) ([]models.Lesson, error)
	Upsert(ctx context.Context, req dto.UpsertLessonRequest) (*models.Lesson, error)
	Update(ctx context.Context, key dto.LessonKey, req dto.UpdateLessonRequest) (*dto.LessonResult, error)
	SetStatus(ctx context.Context, key dto.LessonKey, req dto.StatusRequest) (*dto.LessonResult, error)
	SetHalfStatus(ctx context.Context, key dto.LessonKey, half models.Half, req dto.StatusRequest) (*dto.LessonResult, error)
	ClearHalf(ctx context.Context, key dto.LessonKey, half models.Half) (*dto.LessonResult, error)
	Delete(ctx context.Context, key dto.LessonKey) (*dto.DeleteLessonResult, error)
	CopyWeek(ctx context.Context, req dto.CopyWeekRequest) (*dto.CopyWeekResult, error)
	SeedDemoData(ctx context.Context) (*dto.MessageResult, error)
}

// ScheduleHandler exposes lesson endpoints.
type ScheduleHandler struct {
	service scheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(service scheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// List godoc
// @Summary List lessons joined with slot times
// @Description Returns every lesson unless date is given.
// @Tags Schedule
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {array} models.ScheduleEntry
// @Router /schedule [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	var filter dto.ScheduleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	entries, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entries)
}

// Dump godoc
// @Summary Raw lessons table
// @Tags Diagnostics
// @Produce json
// @Success 200 {array} models.Lesson
// @Router /lessons [get]
func (h *ScheduleHandler) Dump(c *gin.Context) {
	lessons, err := h.service.Dump(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, lessons)
}

// Create godoc
// @Summary Create or overwrite a lesson
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body dto.UpsertLessonRequest true "Lesson"
// @Success 201 {object} models.Lesson
// @Failure 400 {object} response.ErrorBody
// @Router /schedule [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req dto.UpsertLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	lesson, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, lesson)
}

// Update godoc
// @Summary Update an existing lesson
// @Tags Schedule
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param lessonNumber path int true "Lesson number"
// @Param payload body dto.UpdateLessonRequest true "Halves"
// @Success 200 {object} dto.LessonResult
// @Failure 404 {object} response.ErrorBody
// @Router /schedule/{date}/{lessonNumber} [put]
func (h *ScheduleHandler) Update(c *gin.Context) {
	key, err := lessonKeyFromPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	result, err := h.service.Update(c.Request.Context(), key, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// SetStatus godoc
// @Summary Cancel or resume a lesson
// @Tags Schedule
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param lessonNumber path int true "Lesson number"
// @Param payload body dto.StatusRequest true "Status"
// @Success 200 {object} dto.LessonResult
// @Failure 404 {object} response.ErrorBody
// @Router /schedule/{date}/{lessonNumber}/status [patch]
func (h *ScheduleHandler) SetStatus(c *gin.Context) {
	key, err := lessonKeyFromPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	result, err := h.service.SetStatus(c.Request.Context(), key, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// SetHalfStatus godoc
// @Summary Cancel or resume one half of a lesson
// @Tags Schedule
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param lessonNumber path int true "Lesson number"
// @Param half path string true "first or second"
// @Param payload body dto.StatusRequest true "Status"
// @Success 200 {object} dto.LessonResult
// @Failure 404 {object} response.ErrorBody
// @Router /schedule/{date}/{lessonNumber}/half/{half}/status [patch]
func (h *ScheduleHandler) SetHalfStatus(c *gin.Context) {
	key, err := lessonKeyFromPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	result, err := h.service.SetHalfStatus(c.Request.Context(), key, models.Half(c.Param("half")), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// ClearHalf godoc
// @Summary Remove the subject from one or both halves
// @Tags Schedule
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param lessonNumber path int true "Lesson number"
// @Param half path string true "first, second or both"
// @Success 200 {object} dto.LessonResult
// @Failure 404 {object} response.ErrorBody
// @Router /schedule/{date}/{lessonNumber}/half/{half} [delete]
func (h *ScheduleHandler) ClearHalf(c *gin.Context) {
	key, err := lessonKeyFromPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.service.ClearHalf(c.Request.Context(), key, models.Half(c.Param("half")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Delete godoc
// @Summary Delete a lesson row
// @Tags Schedule
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param lessonNumber path int true "Lesson number"
// @Success 200 {object} dto.DeleteLessonResult
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /schedule/{date}/{lessonNumber} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	key, err := lessonKeyFromPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.service.Delete(c.Request.Context(), key)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// CopyWeek godoc
// @Summary Copy lessons onto the paired dates
// @Description All-or-nothing; returns the rows now on the target dates.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body dto.CopyWeekRequest true "Date pairs"
// @Success 200 {object} dto.CopyWeekResult
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /schedule/copy [post]
func (h *ScheduleHandler) CopyWeek(c *gin.Context) {
	var req dto.CopyWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	result, err := h.service.CopyWeek(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// SeedDemoData godoc
// @Summary Replace lessons, subjects and rooms with demo data
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} dto.MessageResult
// @Router /test-data [post]
func (h *ScheduleHandler) SeedDemoData(c *gin.Context) {
	result, err := h.service.SeedDemoData(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
