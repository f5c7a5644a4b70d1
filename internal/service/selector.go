package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"vocabox/internal/domain"
	"vocabox/internal/repository"
)

// SessionSize caps the number of cards in one session
const SessionSize = 20

// Selector picks the candidates of the next review session
type Selector struct {
	progressRepo repository.ProgressRepository
	itemRepo     repository.ItemRepository
	clock        Clock
	logger       *zap.Logger
}

// NewSelector creates a new due item selector
func NewSelector(progressRepo repository.ProgressRepository, itemRepo repository.ItemRepository, clock Clock, logger *zap.Logger) *Selector {
	return &Selector{
		progressRepo: progressRepo,
		itemRepo:     itemRepo,
		clock:        clock,
		logger:       logger,
	}
}

// Select returns up to SessionSize candidates for userID.
// Graded mode takes due records, most overdue first. Practice mode takes any
// record, least recently touched first. An empty result means nothing to review.
func (s *Selector) Select(ctx context.Context, userID int64, mode domain.Mode) ([]domain.Candidate, error) {
	now := s.clock()

	var (
		records []domain.Progress
		err     error
	)
	if mode.IsPractice() {
		records, err = s.progressRepo.FindLeastRecentlyUpdated(ctx, userID, SessionSize)
	} else {
		records, err = s.progressRepo.FindDue(ctx, userID, now, SessionSize)
	}
	if err != nil {
		return nil, fmt.Errorf("select %s candidates: %w", mode, err)
	}

	if !mode.IsPractice() {
		records = dueOnly(records, now)
	}
	if len(records) == 0 {
		return []domain.Candidate{}, nil
	}

	ids := make([]int64, len(records))
	for i, r := range records {
		ids[i] = r.ItemID
	}
	items, err := s.itemRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load session items: %w", err)
	}

	byID := make(map[int64]domain.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	candidates := make([]domain.Candidate, 0, len(records))
	for _, r := range records {
		item, ok := byID[r.ItemID]
		if !ok {
			s.logger.Warn("Progress record references missing item",
				zap.Int64("progress_id", r.ID),
				zap.Int64("item_id", r.ItemID))
			continue
		}
		candidates = append(candidates, domain.Candidate{
			Item:        item,
			ProgressID:  r.ID,
			BucketLevel: r.BucketLevel,
		})
	}

	return candidates, nil
}

func dueOnly(records []domain.Progress, now time.Time) []domain.Progress {
	due := make([]domain.Progress, 0, len(records))
	for _, r := range records {
		if r.IsDue(now) {
			due = append(due, r)
		}
	}
	return due
}
