package srs

import "fmt"

// Quality is the recall-quality signal of a single answer, 0 (blank) to 5 (perfect)
type Quality int

const (
	QualityBlackout          Quality = 0 // Complete blank
	QualityIncorrect         Quality = 1 // Wrong, hard to remember
	QualityIncorrectFamiliar Quality = 2 // Wrong, but the answer felt familiar
	QualityCorrectDifficult  Quality = 3 // Right with real effort
	QualityCorrectHesitation Quality = 4 // Right after some hesitation
	QualityPerfect           Quality = 5 // Right, no hesitation
)

// IsValid reports whether q is within 0..5
func (q Quality) IsValid() bool {
	return q >= QualityBlackout && q <= QualityPerfect
}

// IsCorrect reports whether q counts as a correct answer
func (q Quality) IsCorrect() bool {
	return q >= QualityCorrectHesitation
}

// String returns the numeric form, e.g. "Quality(5)"
func (q Quality) String() string {
	return fmt.Sprintf("Quality(%d)", int(q))
}

// QualityFromAnswer maps the binary "knew it" answer of the UI to a quality signal.
// The 1-3 band is never produced here; only the HTTP API can send it.
func QualityFromAnswer(knew bool) Quality {
	if knew {
		return QualityPerfect
	}
	return QualityBlackout
}
