package repository

import (
	"context"
	"time"

	"vocabox/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(ctx context.Context, userID int64) (bool, error)
	AuthorizeUser(ctx context.Context, userID int64) error
	EnsureUserExists(ctx context.Context, userID int64) error
	ListAuthorized(ctx context.Context) ([]int64, error)
}

// ItemRepository defines read-only item lookups
type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Item, error)
	TopByFrequency(ctx context.Context, limit int) ([]domain.Item, error)
}

// ProgressRepository defines progress record operations.
// Driver failures are returned as *domain.StoreError.
type ProgressRepository interface {
	FindDue(ctx context.Context, userID int64, now time.Time, limit int) ([]domain.Progress, error)
	FindLeastRecentlyUpdated(ctx context.Context, userID int64, limit int) ([]domain.Progress, error)
	FindAllForUser(ctx context.Context, userID int64) ([]domain.Progress, error)
	// FindAllForUserWithItems returns every record of userID joined with its
	// item, most frequent items first.
	FindAllForUserWithItems(ctx context.Context, userID int64) ([]domain.ProgressItem, error)
	FindByID(ctx context.Context, id int64) (*domain.Progress, error)
	// Update applies patch only if the record is still owned by userID and
	// unchanged since expectedUpdatedAt; otherwise it returns domain.ErrConflict.
	Update(ctx context.Context, id, userID int64, patch domain.ProgressPatch, expectedUpdatedAt time.Time) error
	DeleteAllForUser(ctx context.Context, userID int64) error
	// CreateBatch assigns itemIDs to userID at bucket 1, due at now. Already
	// assigned items are skipped. Returns the number of records created.
	CreateBatch(ctx context.Context, userID int64, itemIDs []int64, now time.Time) (int, error)
	// ReplaceAllForUser deletes every record of userID and creates fresh ones
	// for itemIDs in a single transaction.
	ReplaceAllForUser(ctx context.Context, userID int64, itemIDs []int64, now time.Time) (int, error)
	CountForUser(ctx context.Context, userID int64) (int, error)
	CountDue(ctx context.Context, userID int64, now time.Time) (int, error)
}
