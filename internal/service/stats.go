package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"vocabox/internal/domain"
	"vocabox/internal/repository"
)

// StatsService builds dashboard statistics
type StatsService struct {
	progressRepo repository.ProgressRepository
	clock        Clock
	logger       *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(progressRepo repository.ProgressRepository, clock Clock, logger *zap.Logger) *StatsService {
	return &StatsService{
		progressRepo: progressRepo,
		clock:        clock,
		logger:       logger,
	}
}

// Snapshot aggregates every progress record of userID as of now
func (s *StatsService) Snapshot(ctx context.Context, userID int64) (domain.Stats, error) {
	records, err := s.progressRepo.FindAllForUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load progress for stats", zap.Int64("user_id", userID), zap.Error(err))
		return domain.Stats{}, fmt.Errorf("stats: %w", err)
	}

	return domain.Aggregate(records, s.clock()), nil
}

// Vocabulary lists every item userID is learning, most frequent first
func (s *StatsService) Vocabulary(ctx context.Context, userID int64) ([]domain.VocabularyEntry, error) {
	records, err := s.progressRepo.FindAllForUserWithItems(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load vocabulary", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("vocabulary: %w", err)
	}

	return domain.Vocabulary(records, s.clock()), nil
}
