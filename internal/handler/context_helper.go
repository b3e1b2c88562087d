package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/class-schedule-api/internal/dto"
	appErrors "github.com/noah-isme/class-schedule-api/pkg/errors"
)

func invalidPayload(err error) *appErrors.Error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload")
}

// lessonKeyFromPath reads :date and :lessonNumber. Format checks are left to the service.
func lessonKeyFromPath(c *gin.Context) (dto.LessonKey, error) {
	number, err := strconv.Atoi(c.Param("lessonNumber"))
	if err != nil {
		return dto.LessonKey{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "lessonNumber must be an integer")
	}
	return dto.LessonKey{Date: c.Param("date"), LessonNumber: number}, nil
}
