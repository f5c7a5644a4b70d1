package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"vocabox/internal/domain"
	"vocabox/internal/repository"
	"vocabox/internal/srs"
)

// AnswerResult describes the effect of one answer
type AnswerResult struct {
	ProgressID int64       `json:"progress_id"`
	Mode       domain.Mode `json:"mode"`
	Correct    bool        `json:"correct"`

	// Set in graded mode only; practice answers leave the record untouched
	NewBucketLevel int        `json:"new_bucket_level,omitempty"`
	NextReviewDue  *time.Time `json:"next_review_due,omitempty"`

	// Set when the answer was given inside a session
	Next     *domain.Candidate      `json:"next,omitempty"`
	Complete bool                   `json:"complete"`
	Summary  *domain.SessionSummary `json:"summary,omitempty"`
}

// ReviewService coordinates review sessions and applies answers
type ReviewService struct {
	selector     *Selector
	progressRepo repository.ProgressRepository
	sessions     *SessionStore
	clock        Clock
	logger       *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(
	selector *Selector,
	progressRepo repository.ProgressRepository,
	sessions *SessionStore,
	clock Clock,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		selector:     selector,
		progressRepo: progressRepo,
		sessions:     sessions,
		clock:        clock,
		logger:       logger,
	}
}

// StartSession selects candidates and opens a session for userID.
// A session with nothing to review is returned already complete and is not kept.
func (s *ReviewService) StartSession(ctx context.Context, userID int64, mode domain.Mode) (*domain.Session, error) {
	candidates, err := s.selector.Select(ctx, userID, mode)
	if err != nil {
		s.logger.Error("Failed to select session candidates", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	now := s.clock()
	if len(candidates) == 0 {
		return domain.NewSession("", userID, mode, candidates, now), nil
	}

	session := s.sessions.Create(userID, mode, candidates, now)
	s.logger.Info("Review session started",
		zap.Int64("user_id", userID),
		zap.String("session_id", session.ID),
		zap.String("mode", string(mode)),
		zap.Int("cards", len(candidates)))

	return session, nil
}

// AnswerSession answers the current card of a held session
func (s *ReviewService) AnswerSession(ctx context.Context, userID int64, sessionID string, q srs.Quality) (*AnswerResult, error) {
	if !q.IsValid() {
		return nil, domain.NewValidationError("quality", "must be between 0 and 5")
	}

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	if session.UserID != userID {
		s.logger.Warn("Answer for another user's session rejected",
			zap.Int64("user_id", userID),
			zap.Int64("owner_id", session.UserID),
			zap.String("session_id", sessionID))
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrForbidden)
	}

	now := s.clock()
	card, err := session.BeginScoring(now)
	if err != nil {
		return nil, err
	}

	result, err := s.apply(ctx, userID, card.ProgressID, q, session.Mode, now)
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
		// the card's record is gone or changed hands; it can never be answered
		s.sessions.Delete(session.ID)
		s.logger.Warn("Review session dropped, card no longer answerable",
			zap.Int64("user_id", userID),
			zap.String("session_id", session.ID),
			zap.Int64("progress_id", card.ProgressID),
			zap.Error(err))
		return nil, fmt.Errorf("session %s ended: %w", session.ID, err)
	case err != nil:
		session.AbortScoring()
		return nil, err
	}
	session.FinishScoring(result.Correct, now)

	if next, ok := session.Current(); ok {
		result.Next = &next
		return result, nil
	}

	summary := session.Summary()
	result.Complete = true
	result.Summary = &summary
	s.sessions.Delete(session.ID)

	s.logger.Info("Review session complete",
		zap.Int64("user_id", userID),
		zap.String("session_id", session.ID),
		zap.Int("correct", summary.Correct),
		zap.Int("total", summary.Total))

	return result, nil
}

// EndSession drops a held session of userID. Answers already given stay applied.
func (s *ReviewService) EndSession(userID int64, sessionID string) error {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return fmt.Errorf("session %s: %w", sessionID, err)
	}
	if session.UserID != userID {
		s.logger.Warn("End of another user's session rejected",
			zap.Int64("user_id", userID),
			zap.Int64("owner_id", session.UserID),
			zap.String("session_id", sessionID))
		return fmt.Errorf("session %s: %w", sessionID, domain.ErrForbidden)
	}

	s.sessions.Delete(sessionID)
	return nil
}

// EndUserSessions drops every held session of userID, e.g. after its records were replaced
func (s *ReviewService) EndUserSessions(userID int64) int {
	dropped := s.sessions.DeleteForUser(userID)
	if dropped > 0 {
		s.logger.Info("Review sessions dropped", zap.Int64("user_id", userID), zap.Int("count", dropped))
	}
	return dropped
}

// ApplyAnswer applies a single answer outside any held session
func (s *ReviewService) ApplyAnswer(ctx context.Context, userID, progressID int64, q srs.Quality, mode domain.Mode) (*AnswerResult, error) {
	if progressID <= 0 {
		return nil, domain.NewValidationError("progress_id", "is required")
	}
	if !q.IsValid() {
		return nil, domain.NewValidationError("quality", "must be between 0 and 5")
	}

	return s.apply(ctx, userID, progressID, q, mode, s.clock())
}

func (s *ReviewService) apply(ctx context.Context, userID, progressID int64, q srs.Quality, mode domain.Mode, now time.Time) (*AnswerResult, error) {
	record, err := s.progressRepo.FindByID(ctx, progressID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to load progress", zap.Int64("progress_id", progressID), zap.Error(err))
		}
		return nil, fmt.Errorf("progress %d: %w", progressID, err)
	}

	if !record.OwnedBy(userID) {
		s.logger.Warn("Answer for another user's progress rejected",
			zap.Int64("user_id", userID),
			zap.Int64("owner_id", record.UserID),
			zap.Int64("progress_id", progressID))
		return nil, fmt.Errorf("progress %d: %w", progressID, domain.ErrForbidden)
	}

	result := &AnswerResult{
		ProgressID: progressID,
		Mode:       mode,
		Correct:    q.IsCorrect(),
	}
	if mode.IsPractice() {
		return result, nil
	}

	if !srs.ValidLevel(record.BucketLevel) {
		s.logger.Error("Progress record has invalid bucket level",
			zap.Int64("progress_id", progressID),
			zap.Int("bucket_level", record.BucketLevel))
		return nil, fmt.Errorf("progress %d: bucket level %d out of range", progressID, record.BucketLevel)
	}

	outcome := srs.Advance(record.BucketLevel, q, now)
	patch := record.Reviewed(q, outcome, now)

	if err := s.progressRepo.Update(ctx, progressID, userID, patch, record.UpdatedAt); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.logger.Warn("Concurrent answer lost the version check",
				zap.Int64("user_id", userID),
				zap.Int64("progress_id", progressID))
		} else {
			s.logger.Error("Failed to update progress", zap.Int64("progress_id", progressID), zap.Error(err))
		}
		return nil, fmt.Errorf("progress %d: %w", progressID, err)
	}

	result.NewBucketLevel = outcome.NewLevel
	result.NextReviewDue = &outcome.NextReviewDue
	return result, nil
}
