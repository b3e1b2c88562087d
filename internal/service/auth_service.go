package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/class-schedule-api/internal/models"
	"github.com/noah-isme/class-schedule-api/internal/repository"
	appErrors "github.com/noah-isme/class-schedule-api/pkg/errors"
)

type userRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, req models.RegisterRequest) (*models.User, error)
}

// AuthService checks credentials and registers users. Passwords are stored
// and compared as given; there is no session state on the server.
type AuthService struct {
	users     userRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(users userRepository, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{users: users, validator: validate, logger: logger}
}

// Login returns the user record for valid credentials.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.UserInfo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "username and password are required")
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.Internal(err, "failed to load user")
	}
	if user.Password != req.Password {
		s.logger.Info("login rejected", zap.String("username", req.Username))
		return nil, appErrors.ErrInvalidCredentials
	}

	info := user.Info()
	s.logger.Info("user logged in", zap.Int("user_id", user.ID), zap.String("role", string(user.Role)))
	return &info, nil
}

// Register creates a user. Usernames are unique.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.UserInfo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "username, password, roleId and fullName are required")
	}

	exists, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to check username")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, "username already exists")
	}

	user, err := s.users.Create(ctx, req)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrDuplicate, "username already exists")
		}
		return nil, appErrors.Internal(err, "failed to create user")
	}

	info := user.Info()
	s.logger.Info("user registered", zap.Int("user_id", user.ID), zap.String("role", string(user.Role)))
	return &info, nil
}
