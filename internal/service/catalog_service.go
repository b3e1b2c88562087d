package service

import (
	"context"

	"github.com/noah-isme/class-schedule-api/internal/models"
	appErrors "github.com/noah-isme/class-schedule-api/pkg/errors"
)

type lessonTimeRepository interface {
	List(ctx context.Context) ([]models.LessonTime, error)
}

type roomRepository interface {
	List(ctx context.Context) ([]models.Room, error)
}

// CatalogService serves the read-only slot and room catalogs.
type CatalogService struct {
	times lessonTimeRepository
	rooms roomRepository
	cache *CacheService
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(times lessonTimeRepository, rooms roomRepository, cache *CacheService) *CatalogService {
	return &CatalogService{times: times, rooms: rooms, cache: cache}
}

// LessonTimes returns the slot catalog ordered by lesson number.
func (s *CatalogService) LessonTimes(ctx context.Context) ([]models.LessonTime, error) {
	times, err := cached(ctx, s.cache, cacheKeyCatalog+"lesson-times", func() ([]models.LessonTime, error) {
		return s.times.List(ctx)
	})
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list lesson times")
	}
	return times, nil
}

// Rooms returns the room catalog alphabetically. Rooms change only through
// demo seeding, which invalidates this entry.
func (s *CatalogService) Rooms(ctx context.Context) ([]models.Room, error) {
	rooms, err := cached(ctx, s.cache, cacheKeyCatalog+"rooms", func() ([]models.Room, error) {
		return s.rooms.List(ctx)
	})
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list rooms")
	}
	return rooms, nil
}
