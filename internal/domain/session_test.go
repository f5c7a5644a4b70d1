package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCandidates(n int) []Candidate {
	candidates := make([]Candidate, n)
	for i := range candidates {
		candidates[i] = Candidate{
			Item:        Item{ID: int64(100 + i), SourceText: "parola", TargetText: "word"},
			ProgressID:  int64(i + 1),
			BucketLevel: 1,
		}
	}
	return candidates
}

func TestNewSession_EmptyIsComplete(t *testing.T) {
	s := NewSession("s1", 123, ModeGraded, nil, time.Now())

	assert.Equal(t, SessionComplete, s.State())
	_, ok := s.Current()
	assert.False(t, ok)
	assert.Equal(t, SessionSummary{}, s.Summary())
}

func TestSession_WalksAllCandidates(t *testing.T) {
	now := time.Now()
	s := NewSession("s1", 123, ModePractice, testCandidates(3), now)

	answers := []bool{true, false, true}
	for i, correct := range answers {
		assert.Equal(t, SessionAwaitingAnswer, s.State())
		assert.Equal(t, i, s.Index())

		current, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, int64(i+1), current.ProgressID)

		scored, err := s.BeginScoring(now)
		require.NoError(t, err)
		assert.Equal(t, current, scored)
		assert.Equal(t, SessionScoring, s.State())

		s.FinishScoring(correct, now)
	}

	assert.Equal(t, SessionComplete, s.State())
	assert.Equal(t, 0, s.Remaining())
	assert.Equal(t, SessionSummary{Correct: 2, Total: 3, Accuracy: 67}, s.Summary())
}

func TestSession_RejectsConcurrentAnswer(t *testing.T) {
	s := NewSession("s1", 123, ModeGraded, testCandidates(2), time.Now())

	_, err := s.BeginScoring(time.Now())
	require.NoError(t, err)

	_, err = s.BeginScoring(time.Now())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSession_AbortKeepsCard(t *testing.T) {
	s := NewSession("s1", 123, ModeGraded, testCandidates(2), time.Now())

	_, err := s.BeginScoring(time.Now())
	require.NoError(t, err)
	s.AbortScoring()

	assert.Equal(t, SessionAwaitingAnswer, s.State())
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 0, s.Summary().Total)
}

func TestSession_AnswerAfterComplete(t *testing.T) {
	s := NewSession("s1", 123, ModeGraded, testCandidates(1), time.Now())

	_, err := s.BeginScoring(time.Now())
	require.NoError(t, err)
	s.FinishScoring(true, time.Now())

	_, err = s.BeginScoring(time.Now())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "awaiting_answer", SessionAwaitingAnswer.String())
	assert.Equal(t, "scoring", SessionScoring.String())
	assert.Equal(t, "complete", SessionComplete.String())
	assert.Equal(t, "SessionState(9)", SessionState(9).String())
}
