package domain

import (
	"time"

	"vocabox/internal/srs"
)

// Stats is a dashboard snapshot of one user's records
type Stats struct {
	TotalItems      int               `json:"total_items"`
	DueCount        int               `json:"due_count"`
	ReviewedToday   int               `json:"reviewed_today"`
	BucketHistogram [srs.MaxLevel]int `json:"bucket_histogram"`
	Accuracy        int               `json:"accuracy"`
}

// Bucket returns the number of records at level
func (s Stats) Bucket(level int) int {
	if !srs.ValidLevel(level) {
		return 0
	}
	return s.BucketHistogram[level-1]
}

// Aggregate derives the dashboard snapshot from the full record set at now
func Aggregate(records []Progress, now time.Time) Stats {
	dayStart := srs.StartOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var stats Stats
	var correct, reviews int

	for _, p := range records {
		stats.TotalItems++

		if p.IsDue(now) {
			stats.DueCount++
		}

		updated := p.UpdatedAt.In(now.Location())
		if !updated.Before(dayStart) && updated.Before(dayEnd) {
			stats.ReviewedToday++
		}

		if srs.ValidLevel(p.BucketLevel) {
			stats.BucketHistogram[p.BucketLevel-1]++
		}

		correct += p.CorrectCount
		reviews += p.ReviewCount
	}

	stats.Accuracy = percent(correct, reviews)
	return stats
}

// VocabularyEntry is one row of a user's word list
type VocabularyEntry struct {
	Item          Item      `json:"item"`
	ProgressID    int64     `json:"progress_id"`
	BucketLevel   int       `json:"bucket_level"`
	ReviewCount   int       `json:"review_count"`
	Accuracy      int       `json:"accuracy"`
	Due           bool      `json:"due"`
	NextReviewDue time.Time `json:"next_review_due"`
}

// Vocabulary turns joined records into word list rows, keeping their order
func Vocabulary(records []ProgressItem, now time.Time) []VocabularyEntry {
	entries := make([]VocabularyEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, VocabularyEntry{
			Item:          r.Item,
			ProgressID:    r.ID,
			BucketLevel:   r.BucketLevel,
			ReviewCount:   r.ReviewCount,
			Accuracy:      percent(r.CorrectCount, r.ReviewCount),
			Due:           r.IsDue(now),
			NextReviewDue: r.NextReviewDue,
		})
	}
	return entries
}
