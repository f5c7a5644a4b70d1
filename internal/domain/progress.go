package domain

import (
	"time"

	"vocabox/internal/srs"
)

// Progress is the scheduling state of one item for one user
type Progress struct {
	ID             int64     `db:"id" json:"id"`
	UserID         int64     `db:"user_id" json:"user_id"`
	ItemID         int64     `db:"item_id" json:"item_id"`
	BucketLevel    int       `db:"bucket_level" json:"bucket_level"`
	NextReviewDue  time.Time `db:"next_review_due" json:"next_review_due"`
	LastQuality    int       `db:"last_quality" json:"last_quality"`
	ReviewCount    int       `db:"review_count" json:"review_count"`
	CorrectCount   int       `db:"correct_count" json:"correct_count"`
	IncorrectCount int       `db:"incorrect_count" json:"incorrect_count"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// ProgressPatch is the set of columns a graded answer rewrites
type ProgressPatch struct {
	BucketLevel    int
	NextReviewDue  time.Time
	LastQuality    int
	ReviewCount    int
	CorrectCount   int
	IncorrectCount int
	UpdatedAt      time.Time
}

// IsDue reports whether the record is due at now
func (p Progress) IsDue(now time.Time) bool {
	return !now.Before(p.NextReviewDue)
}

// OwnedBy reports whether the record belongs to userID
func (p Progress) OwnedBy(userID int64) bool {
	return p.UserID == userID
}

// Reviewed builds the patch for a graded answer with quality q and engine outcome out
func (p Progress) Reviewed(q srs.Quality, out srs.Outcome, now time.Time) ProgressPatch {
	patch := ProgressPatch{
		BucketLevel:    out.NewLevel,
		NextReviewDue:  out.NextReviewDue,
		LastQuality:    int(q),
		ReviewCount:    p.ReviewCount + 1,
		CorrectCount:   p.CorrectCount,
		IncorrectCount: p.IncorrectCount,
		UpdatedAt:      now,
	}
	if out.IsCorrect {
		patch.CorrectCount++
	} else {
		patch.IncorrectCount++
	}
	return patch
}

// Candidate is one card of a review session
type Candidate struct {
	Item        Item  `json:"item"`
	ProgressID  int64 `json:"progress_id"`
	BucketLevel int   `json:"bucket_level"`
}

// ProgressItem is a progress record joined with its item
type ProgressItem struct {
	Progress
	Item Item `db:"item" json:"item"`
}
