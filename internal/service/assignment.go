package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"vocabox/internal/domain"
	"vocabox/internal/repository"
)

// DefaultResetPoolSize is how many of the most common items a reset samples from
const DefaultResetPoolSize = 100

// AssignmentService creates progress records: on registration, on reset and on demand
type AssignmentService struct {
	itemRepo     repository.ItemRepository
	progressRepo repository.ProgressRepository
	poolSize     int
	clock        Clock
	logger       *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewAssignmentService creates a new assignment service. rng drives reset sampling.
func NewAssignmentService(
	itemRepo repository.ItemRepository,
	progressRepo repository.ProgressRepository,
	poolSize int,
	rng *rand.Rand,
	clock Clock,
	logger *zap.Logger,
) *AssignmentService {
	if poolSize < SessionSize {
		poolSize = SessionSize
	}
	return &AssignmentService{
		itemRepo:     itemRepo,
		progressRepo: progressRepo,
		poolSize:     poolSize,
		rng:          rng,
		clock:        clock,
		logger:       logger,
	}
}

// InitializeUser assigns the most common items to a user with no progress yet.
// Users who already have records are left alone.
func (s *AssignmentService) InitializeUser(ctx context.Context, userID int64) (int, error) {
	count, err := s.progressRepo.CountForUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("initialize user: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	items, err := s.itemRepo.TopByFrequency(ctx, SessionSize)
	if err != nil {
		return 0, fmt.Errorf("initialize user: %w", err)
	}

	created, err := s.progressRepo.CreateBatch(ctx, userID, itemIDs(items), s.clock())
	if err != nil {
		s.logger.Error("Failed to initialize user", zap.Int64("user_id", userID), zap.Error(err))
		return 0, fmt.Errorf("initialize user: %w", err)
	}

	s.logger.Info("User initialized", zap.Int64("user_id", userID), zap.Int("items", created))
	return created, nil
}

// ResetUser discards all progress of userID and starts over with a random
// sample of the most common items. The swap is atomic.
func (s *AssignmentService) ResetUser(ctx context.Context, userID int64) (int, error) {
	pool, err := s.itemRepo.TopByFrequency(ctx, s.poolSize)
	if err != nil {
		return 0, fmt.Errorf("reset user: %w", err)
	}

	ids := s.sample(itemIDs(pool), SessionSize)

	created, err := s.progressRepo.ReplaceAllForUser(ctx, userID, ids, s.clock())
	if err != nil {
		s.logger.Error("Failed to reset user", zap.Int64("user_id", userID), zap.Error(err))
		return 0, fmt.Errorf("reset user: %w", err)
	}

	s.logger.Info("User progress reset", zap.Int64("user_id", userID), zap.Int("items", created))
	return created, nil
}

// Assign adds explicit items to userID. Items already assigned are skipped.
func (s *AssignmentService) Assign(ctx context.Context, userID int64, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, domain.NewValidationError("item_ids", "is required")
	}

	unique := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return 0, domain.NewValidationError("item_ids", "must be positive")
		}
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	items, err := s.itemRepo.GetByIDs(ctx, unique)
	if err != nil {
		return 0, fmt.Errorf("assign items: %w", err)
	}
	if len(items) != len(unique) {
		found := make(map[int64]bool, len(items))
		for _, item := range items {
			found[item.ID] = true
		}
		for _, id := range unique {
			if !found[id] {
				return 0, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
			}
		}
	}

	created, err := s.progressRepo.CreateBatch(ctx, userID, unique, s.clock())
	if err != nil {
		s.logger.Error("Failed to assign items", zap.Int64("user_id", userID), zap.Error(err))
		return 0, fmt.Errorf("assign items: %w", err)
	}

	return created, nil
}

// sample returns n ids picked uniformly from ids
func (s *AssignmentService) sample(ids []int64, n int) []int64 {
	shuffled := make([]int64, len(ids))
	copy(shuffled, ids)

	s.mu.Lock()
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()

	if len(shuffled) > n {
		shuffled = shuffled[:n]
	}
	return shuffled
}

func itemIDs(items []domain.Item) []int64 {
	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
