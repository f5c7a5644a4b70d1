package testutil

import (
	"time"

	"go.uber.org/zap"

	"vocabox/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// FixedClock returns a clock that always reports t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// NewTestItem creates a test item
func NewTestItem(id int64, source, target string) domain.Item {
	return domain.Item{
		ID:           id,
		SourceText:   source,
		TargetText:   target,
		PartOfSpeech: "noun",
		Frequency:    int(id),
		CreatedAt:    time.Now(),
	}
}

// NewTestProgress creates a fresh bucket-1 record of userID for itemID, due at at
func NewTestProgress(id, userID, itemID int64, at time.Time) domain.Progress {
	return domain.Progress{
		ID:            id,
		UserID:        userID,
		ItemID:        itemID,
		BucketLevel:   1,
		NextReviewDue: at,
		CreatedAt:     at,
		UpdatedAt:     at,
	}
}
