package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"vocabox/internal/repository"
)

// Notifier delivers a due-review reminder to a user
type Notifier interface {
	NotifyDue(ctx context.Context, userID int64, due int) error
}

// ReminderService tells authorized users how many reviews are waiting
type ReminderService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
	notifier     Notifier
	clock        Clock
	logger       *zap.Logger
}

// NewReminderService creates a new reminder service
func NewReminderService(
	userRepo repository.UserRepository,
	progressRepo repository.ProgressRepository,
	notifier Notifier,
	clock Clock,
	logger *zap.Logger,
) *ReminderService {
	return &ReminderService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		notifier:     notifier,
		clock:        clock,
		logger:       logger,
	}
}

// SendDueReminders notifies every authorized user with due items.
// A failure for one user does not stop the others. Returns how many were notified.
func (s *ReminderService) SendDueReminders(ctx context.Context) (int, error) {
	users, err := s.userRepo.ListAuthorized(ctx)
	if err != nil {
		s.logger.Error("Failed to list users for reminders", zap.Error(err))
		return 0, err
	}

	now := s.clock()
	sent := 0
	var errs []error
	for _, userID := range users {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		due, err := s.progressRepo.CountDue(ctx, userID, now)
		if err != nil {
			s.logger.Error("Failed to count due items", zap.Int64("user_id", userID), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		if due == 0 {
			continue
		}

		if err := s.notifier.NotifyDue(ctx, userID, due); err != nil {
			s.logger.Warn("Failed to send reminder", zap.Int64("user_id", userID), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		sent++
	}

	s.logger.Info("Due reminders sent", zap.Int("users", len(users)), zap.Int("sent", sent))
	return sent, errors.Join(errs...)
}
