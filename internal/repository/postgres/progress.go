package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"vocabox/internal/domain"
)

const progressColumns = `id, user_id, item_id, bucket_level, next_review_due, last_quality,
	review_count, correct_count, incorrect_count, created_at, updated_at`

// ProgressRepo implements repository.ProgressRepository
type ProgressRepo struct {
	db *sqlx.DB
}

// NewProgressRepo creates a new progress repository
func NewProgressRepo(db *sqlx.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// FindDue returns records of userID due at now, most overdue first
func (r *ProgressRepo) FindDue(ctx context.Context, userID int64, now time.Time, limit int) ([]domain.Progress, error) {
	var records []domain.Progress
	query := `
		SELECT ` + progressColumns + `
		FROM progress_records
		WHERE user_id = $1 AND next_review_due <= $2
		ORDER BY next_review_due ASC, id ASC
		LIMIT $3
	`
	if err := r.db.SelectContext(ctx, &records, query, userID, now, limit); err != nil {
		return nil, domain.NewStoreError("find due", err)
	}
	return records, nil
}

// FindLeastRecentlyUpdated returns records of userID regardless of due date,
// least recently touched first
func (r *ProgressRepo) FindLeastRecentlyUpdated(ctx context.Context, userID int64, limit int) ([]domain.Progress, error) {
	var records []domain.Progress
	query := `
		SELECT ` + progressColumns + `
		FROM progress_records
		WHERE user_id = $1
		ORDER BY updated_at ASC, id ASC
		LIMIT $2
	`
	if err := r.db.SelectContext(ctx, &records, query, userID, limit); err != nil {
		return nil, domain.NewStoreError("find least recently updated", err)
	}
	return records, nil
}

// FindAllForUser returns every record of userID
func (r *ProgressRepo) FindAllForUser(ctx context.Context, userID int64) ([]domain.Progress, error) {
	var records []domain.Progress
	query := `SELECT ` + progressColumns + ` FROM progress_records WHERE user_id = $1 ORDER BY id`
	if err := r.db.SelectContext(ctx, &records, query, userID); err != nil {
		return nil, domain.NewStoreError("find all", err)
	}
	return records, nil
}

// FindAllForUserWithItems returns every record of userID with its item, ordered by item frequency
func (r *ProgressRepo) FindAllForUserWithItems(ctx context.Context, userID int64) ([]domain.ProgressItem, error) {
	var records []domain.ProgressItem
	query := `
		SELECT p.id, p.user_id, p.item_id, p.bucket_level, p.next_review_due, p.last_quality,
			p.review_count, p.correct_count, p.incorrect_count, p.created_at, p.updated_at,
			i.id AS "item.id",
			i.source_text AS "item.source_text",
			i.target_text AS "item.target_text",
			COALESCE(i.example_sentence, '') AS "item.example_sentence",
			i.part_of_speech AS "item.part_of_speech",
			i.frequency AS "item.frequency",
			i.created_at AS "item.created_at"
		FROM progress_records p
		JOIN items i ON i.id = p.item_id
		WHERE p.user_id = $1
		ORDER BY i.frequency ASC, p.id ASC
	`
	if err := r.db.SelectContext(ctx, &records, query, userID); err != nil {
		return nil, domain.NewStoreError("find vocabulary", err)
	}
	return records, nil
}

// FindByID returns one record or domain.ErrNotFound
func (r *ProgressRepo) FindByID(ctx context.Context, id int64) (*domain.Progress, error) {
	var p domain.Progress
	query := `SELECT ` + progressColumns + ` FROM progress_records WHERE id = $1`
	err := r.db.GetContext(ctx, &p, query, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, domain.NewStoreError("find by id", err)
	}

	return &p, nil
}

// Update writes patch to the record guarded by owner and last update time
func (r *ProgressRepo) Update(ctx context.Context, id, userID int64, patch domain.ProgressPatch, expectedUpdatedAt time.Time) error {
	query := `
		UPDATE progress_records
		SET bucket_level = $1,
			next_review_due = $2,
			last_quality = $3,
			review_count = $4,
			correct_count = $5,
			incorrect_count = $6,
			updated_at = $7
		WHERE id = $8 AND user_id = $9 AND updated_at = $10
	`
	res, err := r.db.ExecContext(ctx, query,
		patch.BucketLevel, patch.NextReviewDue, patch.LastQuality,
		patch.ReviewCount, patch.CorrectCount, patch.IncorrectCount, patch.UpdatedAt,
		id, userID, expectedUpdatedAt,
	)
	if err != nil {
		return domain.NewStoreError("update progress", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.NewStoreError("update progress", err)
	}
	if affected == 0 {
		return domain.ErrConflict
	}

	return nil
}

// DeleteAllForUser removes every record of userID
func (r *ProgressRepo) DeleteAllForUser(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM progress_records WHERE user_id = $1`, userID); err != nil {
		return domain.NewStoreError("delete progress", err)
	}
	return nil
}

// CreateBatch inserts fresh records for itemIDs in one statement
func (r *ProgressRepo) CreateBatch(ctx context.Context, userID int64, itemIDs []int64, now time.Time) (int, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}
	n, err := insertBatch(ctx, r.db, userID, itemIDs, now)
	if err != nil {
		return 0, domain.NewStoreError("create progress", err)
	}
	return n, nil
}

// ReplaceAllForUser deletes and recreates the records of userID atomically
func (r *ProgressRepo) ReplaceAllForUser(ctx context.Context, userID int64, itemIDs []int64, now time.Time) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, domain.NewStoreError("reset progress", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM progress_records WHERE user_id = $1`, userID); err != nil {
		return 0, domain.NewStoreError("reset progress", err)
	}

	created := 0
	if len(itemIDs) > 0 {
		created, err = insertBatch(ctx, tx, userID, itemIDs, now)
		if err != nil {
			return 0, domain.NewStoreError("reset progress", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, domain.NewStoreError("reset progress", err)
	}

	return created, nil
}

// CountForUser returns the number of records of userID
func (r *ProgressRepo) CountForUser(ctx context.Context, userID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM progress_records WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, domain.NewStoreError("count progress", err)
	}
	return count, nil
}

// CountDue returns the number of records of userID due at now
func (r *ProgressRepo) CountDue(ctx context.Context, userID int64, now time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM progress_records WHERE user_id = $1 AND next_review_due <= $2`
	if err := r.db.GetContext(ctx, &count, query, userID, now); err != nil {
		return 0, domain.NewStoreError("count due", err)
	}
	return count, nil
}

func insertBatch(ctx context.Context, db sqlx.ExecerContext, userID int64, itemIDs []int64, now time.Time) (int, error) {
	query := `
		INSERT INTO progress_records
			(user_id, item_id, bucket_level, next_review_due, last_quality,
			 review_count, correct_count, incorrect_count, created_at, updated_at)
		SELECT $1, item_id, 1, $3, 0, 0, 0, 0, $3, $3
		FROM unnest($2::bigint[]) AS item_id
		ON CONFLICT (user_id, item_id) DO NOTHING
	`
	res, err := db.ExecContext(ctx, query, userID, pq.Array(itemIDs), now)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}
