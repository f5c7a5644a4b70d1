package domain

// Mode selects whether answers change the long-term schedule
type Mode string

const (
	// ModeGraded answers move items between buckets
	ModeGraded Mode = "graded"
	// ModePractice answers are scored for the session only
	ModePractice Mode = "practice"
)

// ParseMode converts a request value into a Mode. Empty means graded.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeGraded:
		return ModeGraded, nil
	case ModePractice:
		return ModePractice, nil
	}
	return "", NewValidationError("mode", "must be graded or practice")
}

// IsPractice reports whether m is practice mode
func (m Mode) IsPractice() bool {
	return m == ModePractice
}
