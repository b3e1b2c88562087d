package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/class-schedule-api/internal/models"
	"github.com/noah-isme/class-schedule-api/pkg/response"
)

type catalogService interface {
	LessonTimes(ctx context.Context) ([]models.LessonTime, error)
	Rooms(ctx context.Context) ([]models.Room, error)
}

// CatalogHandler serves the slot and room catalogs.
type CatalogHandler struct {
	service catalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(service catalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// LessonTimes godoc
// @Summary Slot timings
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.LessonTime
// @Router /lesson-times [get]
func (h *CatalogHandler) LessonTimes(c *gin.Context) {
	times, err := h.service.LessonTimes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, times)
}

// Rooms godoc
// @Summary Room catalog
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Room
// @Router /rooms [get]
func (h *CatalogHandler) Rooms(c *gin.Context) {
	rooms, err := h.service.Rooms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rooms)
}
