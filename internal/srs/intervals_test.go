package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{level: 1, expected: 1},
		{level: 2, expected: 2},
		{level: 3, expected: 4},
		{level: 4, expected: 7},
		{level: 5, expected: 14},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Interval(tt.level), "level %d", tt.level)
	}
}

func TestInterval_OutOfRangePanics(t *testing.T) {
	for _, level := range []int{-1, 0, 6, 100} {
		assert.Panics(t, func() { Interval(level) }, "level %d", level)
	}
}

func TestValidLevel(t *testing.T) {
	assert.False(t, ValidLevel(0))
	assert.True(t, ValidLevel(1))
	assert.True(t, ValidLevel(5))
	assert.False(t, ValidLevel(6))
}
