package domain

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// SessionState is the phase of a review session
type SessionState int

const (
	SessionAwaitingAnswer SessionState = iota // Waiting for an answer to the current card
	SessionScoring                            // An answer for the current card is being applied
	SessionComplete                           // All cards answered, or nothing was due
)

func (s SessionState) String() string {
	switch s {
	case SessionAwaitingAnswer:
		return "awaiting_answer"
	case SessionScoring:
		return "scoring"
	case SessionComplete:
		return "complete"
	}
	return fmt.Sprintf("SessionState(%d)", int(s))
}

// SessionSummary is reported once a session completes
type SessionSummary struct {
	Correct  int `json:"correct"`
	Total    int `json:"total"`
	Accuracy int `json:"accuracy"`
}

// Session is one ephemeral pass over a batch of candidates.
// It is never persisted; each graded answer is written to its record immediately.
type Session struct {
	ID         string
	UserID     int64
	Mode       Mode
	Candidates []Candidate
	StartedAt  time.Time

	mu        sync.Mutex
	state     SessionState
	index     int
	correct   int
	total     int
	touchedAt time.Time
}

// NewSession creates a session over candidates. An empty batch starts complete.
func NewSession(id string, userID int64, mode Mode, candidates []Candidate, now time.Time) *Session {
	s := &Session{
		ID:         id,
		UserID:     userID,
		Mode:       mode,
		Candidates: candidates,
		StartedAt:  now,
		touchedAt:  now,
		state:      SessionAwaitingAnswer,
	}
	if len(candidates) == 0 {
		s.state = SessionComplete
	}
	return s
}

// State returns the current phase
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Index returns the position of the current card
func (s *Session) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Remaining returns how many cards are still unanswered
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Candidates) - s.index
}

// TouchedAt returns when the session last changed
func (s *Session) TouchedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}

// Current returns the card awaiting an answer
func (s *Session) Current() (Candidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != SessionAwaitingAnswer {
		return Candidate{}, false
	}
	return s.Candidates[s.index], true
}

// BeginScoring moves the session into Scoring and returns the card being answered.
// Only one answer can be in flight at a time.
func (s *Session) BeginScoring(now time.Time) (Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case SessionComplete:
		return Candidate{}, fmt.Errorf("%w: session already complete", ErrConflict)
	case SessionScoring:
		return Candidate{}, fmt.Errorf("%w: answer already in progress", ErrConflict)
	}

	s.state = SessionScoring
	s.touchedAt = now
	return s.Candidates[s.index], nil
}

// FinishScoring records the answer and advances to the next card or completes
func (s *Session) FinishScoring(correct bool, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionScoring {
		return
	}

	s.total++
	if correct {
		s.correct++
	}
	s.index++
	s.touchedAt = now

	if s.index >= len(s.Candidates) {
		s.state = SessionComplete
		return
	}
	s.state = SessionAwaitingAnswer
}

// AbortScoring returns to AwaitingAnswer on the same card without counting the answer
func (s *Session) AbortScoring() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == SessionScoring {
		s.state = SessionAwaitingAnswer
	}
}

// Summary returns the running totals
func (s *Session) Summary() SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionSummary{
		Correct:  s.correct,
		Total:    s.total,
		Accuracy: percent(s.correct, s.total),
	}
}

// percent returns round(100*part/whole), 0 when whole is 0
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}
