package srs

import (
	"fmt"
	"time"
)

// Outcome is the result of advancing one item by one answer
type Outcome struct {
	NewLevel      int
	NextReviewDue time.Time
	IsCorrect     bool
}

// StartOfDay truncates t to midnight in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Advance computes the next bucket level and due date for an item currently at level
// answered with quality q on the calendar day of now.
//
//	q >= 4      correct, promote one level (capped at 5)
//	2 <= q < 4  incorrect, stay
//	q < 2       incorrect, back to level 1
//
// The due date is midnight of now's day plus the interval of the new level, so every
// answer given on the same day schedules to the same instant.
func Advance(level int, q Quality, now time.Time) Outcome {
	if !ValidLevel(level) {
		panic(fmt.Sprintf("srs: bucket level %d out of range", level))
	}
	if !q.IsValid() {
		panic(fmt.Sprintf("srs: %s out of range", q))
	}

	newLevel := level
	switch {
	case q.IsCorrect():
		newLevel = level + 1
		if newLevel > MaxLevel {
			newLevel = MaxLevel
		}
	case q >= QualityIncorrectFamiliar:
		// stay in the current bucket
	default:
		newLevel = MinLevel
	}

	return Outcome{
		NewLevel:      newLevel,
		NextReviewDue: StartOfDay(now).AddDate(0, 0, Interval(newLevel)),
		IsCorrect:     q.IsCorrect(),
	}
}
