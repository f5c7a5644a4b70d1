package service

import (
	"context"

	"go.uber.org/zap"

	"vocabox/internal/repository"
)

// UserInitializer gives a newly authorized user their first items
type UserInitializer interface {
	InitializeUser(ctx context.Context, userID int64) (int, error)
}

// AuthService handles authentication logic
type AuthService struct {
	userRepo    repository.UserRepository
	initializer UserInitializer
	botPassword string
	logger      *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, initializer UserInitializer, botPassword string, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		initializer: initializer,
		botPassword: botPassword,
		logger:      logger,
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return password == s.botPassword
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(ctx context.Context, userID int64) (bool, error) {
	return s.userRepo.IsAuthorized(ctx, userID)
}

// AuthorizeUser authorizes a user and assigns their starter items
func (s *AuthService) AuthorizeUser(ctx context.Context, userID int64) error {
	if err := s.userRepo.AuthorizeUser(ctx, userID); err != nil {
		return err
	}

	created, err := s.initializer.InitializeUser(ctx, userID)
	if err != nil {
		return err
	}
	if created > 0 {
		s.logger.Info("Starter items assigned", zap.Int64("user_id", userID), zap.Int("items", created))
	}
	return nil
}

// EnsureUserExists creates user record if doesn't exist
func (s *AuthService) EnsureUserExists(ctx context.Context, userID int64) error {
	return s.userRepo.EnsureUserExists(ctx, userID)
}
