package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// callbackKey returns the button a callback belongs to. Raw telebot payloads
// look like "\f<unique>|<data>".
func callbackKey(cb *tele.Callback) string {
	if cb.Unique != "" {
		return cb.Unique
	}
	key := cleanCallbackData(cb.Data)
	if i := strings.IndexByte(key, '|'); i >= 0 {
		key = key[:i]
	}
	return key
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Already edited by another callback
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// show edits the message behind a callback, or sends a new one for commands
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil // Message was already modified, just acknowledged
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleCallback handles callbacks that did not match a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	switch callbackKey(callback) {
	case btnReview.Unique:
		return h.handleReview(c)
	case btnPractice.Unique:
		return h.handlePractice(c)
	case btnReveal.Unique:
		return h.handleReveal(c)
	case btnKnew.Unique:
		return h.handleKnew(c)
	case btnForgot.Unique:
		return h.handleForgot(c)
	case btnStats.Unique:
		return h.handleStats(c)
	case btnWords.Unique:
		return h.handleWords(c)
	case btnReset.Unique:
		return h.handleReset(c)
	case btnResetConfirm.Unique:
		return h.handleResetConfirm(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	case btnMainMenu.Unique:
		return h.handleMainMenu(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", callback.Data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
