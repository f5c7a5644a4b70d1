package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Mode
		expectedError bool
	}{
		{name: "empty defaults to graded", input: "", expected: ModeGraded},
		{name: "graded", input: "graded", expected: ModeGraded},
		{name: "practice", input: "practice", expected: ModePractice},
		{name: "unknown", input: "exam", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ParseMode(tt.input)
			if tt.expectedError {
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
				assert.Equal(t, "mode", verr.Field)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}
