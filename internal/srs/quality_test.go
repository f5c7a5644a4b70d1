package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualityFromAnswer(t *testing.T) {
	assert.Equal(t, QualityPerfect, QualityFromAnswer(true))
	assert.Equal(t, QualityBlackout, QualityFromAnswer(false))
}

func TestQuality_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		quality  Quality
		expected bool
	}{
		{name: "below range", quality: -1, expected: false},
		{name: "blank", quality: 0, expected: true},
		{name: "perfect", quality: 5, expected: true},
		{name: "above range", quality: 6, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.quality.IsValid())
		})
	}
}

func TestQuality_IsCorrect(t *testing.T) {
	assert.False(t, QualityCorrectDifficult.IsCorrect())
	assert.True(t, QualityCorrectHesitation.IsCorrect())
	assert.True(t, QualityPerfect.IsCorrect())
}
