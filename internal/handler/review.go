package handler

import (
	"errors"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"vocabox/internal/domain"
	"vocabox/internal/srs"
)

const sessionGoneText = "This session has expired. Start a new one from the menu."

// handleReview starts a graded session over due cards
func (h *Handler) handleReview(c tele.Context) error {
	return h.startSession(c, domain.ModeGraded)
}

// handlePractice starts a practice session that leaves the schedule alone
func (h *Handler) handlePractice(c tele.Context) error {
	return h.startSession(c, domain.ModePractice)
}

func (h *Handler) startSession(c tele.Context, mode domain.Mode) error {
	userID := c.Sender().ID
	defer h.lockUser(userID)()

	ctx, cancel := requestContext()
	defer cancel()

	session, err := h.review.StartSession(ctx, userID, mode)
	if err != nil {
		h.logger.Error("Failed to start session", zap.Int64("user_id", userID), zap.Error(err))
		return h.show(c, genericErrorMsg, backMarkup())
	}

	card, ok := session.Current()
	if !ok {
		h.ResetState(userID)
		return h.show(c, formatNothingDue(mode), mainMenuMarkup())
	}

	state := &domain.StateData{
		State:     domain.StateReviewing,
		SessionID: session.ID,
		Mode:      mode,
		Card:      card,
		Position:  1,
		Total:     len(session.Candidates),
	}
	h.SetState(userID, state)

	return h.show(c, formatCardFront(state), cardFrontMarkup())
}

// handleReveal turns the current card over
func (h *Handler) handleReveal(c tele.Context) error {
	userID := c.Sender().ID
	defer h.lockUser(userID)()

	state := h.GetState(userID)
	if state.State != domain.StateReviewing {
		return h.sessionGone(c, userID)
	}

	return h.show(c, formatCardBack(state), cardBackMarkup())
}

// handleKnew records a remembered card
func (h *Handler) handleKnew(c tele.Context) error {
	return h.answer(c, true)
}

// handleForgot records a forgotten card
func (h *Handler) handleForgot(c tele.Context) error {
	return h.answer(c, false)
}

func (h *Handler) answer(c tele.Context, knew bool) error {
	userID := c.Sender().ID
	defer h.lockUser(userID)()

	state := h.GetState(userID)
	if state.State != domain.StateReviewing {
		return h.sessionGone(c, userID)
	}

	ctx, cancel := requestContext()
	defer cancel()

	result, err := h.review.AnswerSession(ctx, userID, state.SessionID, srs.QualityFromAnswer(knew))
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
		return h.sessionGone(c, userID)
	case errors.Is(err, domain.ErrConflict):
		// a duplicate tap while the first one was being saved
		return c.Respond()
	case err != nil:
		h.logger.Error("Failed to record answer",
			zap.Int64("user_id", userID),
			zap.Int64("progress_id", state.Card.ProgressID),
			zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Could not save the answer, try again"})
	}

	feedback := formatFeedback(state.Card, result, h.clock())

	if result.Complete {
		h.ResetState(userID)
		return h.show(c, feedback+"\n\n"+formatSummary(state.Mode, *result.Summary), mainMenuMarkup())
	}

	next := &domain.StateData{
		State:     domain.StateReviewing,
		SessionID: state.SessionID,
		Mode:      state.Mode,
		Card:      *result.Next,
		Position:  state.Position + 1,
		Total:     state.Total,
	}
	h.SetState(userID, next)

	return h.show(c, feedback+"\n\n"+formatCardFront(next), cardFrontMarkup())
}

// handleCancel stops the current session; answers already given are kept
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID
	defer h.lockUser(userID)()

	if state := h.GetState(userID); state.SessionID != "" {
		if err := h.review.EndSession(userID, state.SessionID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			h.logger.Warn("Failed to end session",
				zap.Int64("user_id", userID),
				zap.String("session_id", state.SessionID),
				zap.Error(err))
		}
	}

	h.ResetState(userID)
	return h.show(c, mainMenuText, mainMenuMarkup())
}

func (h *Handler) sessionGone(c tele.Context, userID int64) error {
	h.ResetState(userID)
	return h.show(c, sessionGoneText, mainMenuMarkup())
}
