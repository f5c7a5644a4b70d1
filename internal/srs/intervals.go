package srs

import "fmt"

const (
	// MinLevel is the bucket every new or forgotten item starts in
	MinLevel = 1
	// MaxLevel is the highest bucket
	MaxLevel = 5
)

// intervals holds the review interval in days, indexed by level-1
var intervals = [MaxLevel]int{1, 2, 4, 7, 14}

// ValidLevel reports whether level is a bucket level
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// Interval returns the review interval in days for a bucket level.
// Levels outside 1..5 are a programming error and panic.
func Interval(level int) int {
	if !ValidLevel(level) {
		panic(fmt.Sprintf("srs: bucket level %d out of range", level))
	}
	return intervals[level-1]
}
