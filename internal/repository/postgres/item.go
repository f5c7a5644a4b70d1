package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"vocabox/internal/domain"
)

const itemColumns = `id, source_text, target_text, COALESCE(example_sentence, '') AS example_sentence, part_of_speech, frequency, created_at`

// ItemRepo implements repository.ItemRepository
type ItemRepo struct {
	db *sqlx.DB
}

// NewItemRepo creates a new item repository
func NewItemRepo(db *sqlx.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

// GetByID returns a single item or domain.ErrNotFound
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var item domain.Item
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	err := r.db.GetContext(ctx, &item, query, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, domain.NewStoreError("get item", err)
	}

	return &item, nil
}

// GetByIDs returns the items with the given ids in the order of ids.
// Missing ids are skipped.
func (r *ItemRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []domain.Item
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ANY($1)`
	if err := r.db.SelectContext(ctx, &found, query, pq.Array(ids)); err != nil {
		return nil, domain.NewStoreError("get items", err)
	}

	byID := make(map[int64]domain.Item, len(found))
	for _, item := range found {
		byID[item.ID] = item
	}

	items := make([]domain.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// TopByFrequency returns up to limit items ordered by frequency rank, most common first
func (r *ItemRepo) TopByFrequency(ctx context.Context, limit int) ([]domain.Item, error) {
	var items []domain.Item
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY frequency ASC, id ASC LIMIT $1`
	if err := r.db.SelectContext(ctx, &items, query, limit); err != nil {
		return nil, domain.NewStoreError("top items", err)
	}
	return items, nil
}
