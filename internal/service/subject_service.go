package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/class-schedule-api/internal/dto"
	"github.com/noah-isme/class-schedule-api/internal/models"
	"github.com/noah-isme/class-schedule-api/internal/repository"
	appErrors "github.com/noah-isme/class-schedule-api/pkg/errors"
)

type subjectRepository interface {
	List(ctx context.Context) ([]models.Subject, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, name string) (*models.Subject, error)
	Delete(ctx context.Context, id int) (*models.Subject, error)
}

// SubjectService manages the subject catalog. Lessons keep subject names as
// plain strings, so deleting a subject leaves them untouched.
type SubjectService struct {
	repo    subjectRepository
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
}

// NewSubjectService creates a new subject service.
func NewSubjectService(repo subjectRepository, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *SubjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectService{repo: repo, cache: cache, metrics: metrics, logger: logger}
}

// List returns subjects alphabetically.
func (s *SubjectService) List(ctx context.Context) ([]models.Subject, error) {
	subjects, err := cached(ctx, s.cache, cacheKeySubjectList, func() ([]models.Subject, error) {
		start := time.Now()
		defer func() { s.metrics.ObserveDBQuery("subjects.list", time.Since(start)) }()
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list subjects")
	}
	return subjects, nil
}

// Create adds a subject. Blank and duplicate names are rejected.
func (s *SubjectService) Create(ctx context.Context, req dto.CreateSubjectRequest) (*models.Subject, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "subject name is required")
	}

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to check subject")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, "subject already exists")
	}

	subject, err := s.repo.Create(ctx, name)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrDuplicate, "subject already exists")
		}
		return nil, appErrors.Internal(err, "failed to create subject")
	}

	s.cache.Invalidate(ctx, cacheKeySubjects)
	s.logger.Info("subject created", zap.Int("subject_id", subject.ID), zap.String("name", subject.Name))
	return subject, nil
}

// Delete removes a subject by id and returns it.
func (s *SubjectService) Delete(ctx context.Context, id int) (*models.Subject, error) {
	subject, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Internal(err, "failed to delete subject")
	}

	s.cache.Invalidate(ctx, cacheKeySubjects)
	s.logger.Info("subject deleted", zap.Int("subject_id", subject.ID))
	return subject, nil
}
