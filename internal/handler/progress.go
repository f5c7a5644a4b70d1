package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"vocabox/internal/domain"
)

const resetPromptText = "♻️ Reset progress?\n\nAll your cards and statistics will be deleted and you will start over with a fresh set of words."

// handleStats shows the dashboard
func (h *Handler) handleStats(c tele.Context) error {
	userID := c.Sender().ID

	ctx, cancel := requestContext()
	defer cancel()

	stats, err := h.stats.Snapshot(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to load stats", zap.Int64("user_id", userID), zap.Error(err))
		return h.show(c, genericErrorMsg, backMarkup())
	}

	return h.show(c, formatStats(stats), backMarkup())
}

// handleWords lists the words the user is learning
func (h *Handler) handleWords(c tele.Context) error {
	userID := c.Sender().ID

	ctx, cancel := requestContext()
	defer cancel()

	entries, err := h.stats.Vocabulary(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to load vocabulary", zap.Int64("user_id", userID), zap.Error(err))
		return h.show(c, genericErrorMsg, backMarkup())
	}

	return h.show(c, formatVocabulary(entries, h.clock()), backMarkup())
}

// handleReset asks for confirmation before wiping progress
func (h *Handler) handleReset(c tele.Context) error {
	userID := c.Sender().ID
	h.SetState(userID, &domain.StateData{State: domain.StateResetting})

	return h.show(c, resetPromptText, resetConfirmMarkup())
}

// handleResetConfirm wipes progress and deals a new starter deck
func (h *Handler) handleResetConfirm(c tele.Context) error {
	userID := c.Sender().ID
	defer h.lockUser(userID)()

	if h.GetState(userID).State != domain.StateResetting {
		return h.handleMainMenu(c)
	}

	ctx, cancel := requestContext()
	defer cancel()

	created, err := h.assignments.ResetUser(ctx, userID)
	h.ResetState(userID)
	if err != nil {
		h.logger.Error("Failed to reset progress", zap.Int64("user_id", userID), zap.Error(err))
		return h.show(c, "Reset failed, your progress is unchanged. Please try again later.", mainMenuMarkup())
	}
	// sessions opened before the reset point at deleted records
	h.review.EndUserSessions(userID)

	return h.show(c, formatResetDone(created), mainMenuMarkup())
}
