package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	mainMenuText    = "🏠 Main menu\n\nWhat would you like to do?"
	passwordPrompt  = "Hi! This bot is private. Send the password to continue:"
	genericErrorMsg = "Something went wrong. Please try again later."
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	ctx, cancel := requestContext()
	defer cancel()

	// Ensure user exists in database
	if err := h.authService.EnsureUserExists(ctx, userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(genericErrorMsg)
	}

	// Check if authorized
	authorized, err := h.authService.IsAuthorized(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(genericErrorMsg)
	}

	h.ResetState(userID)
	if !authorized {
		return c.Send(passwordPrompt)
	}

	return c.Send(mainMenuText, mainMenuMarkup())
}

// handleText handles password entry; authorized users are pointed at the menu
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()

	// Ensure user exists
	if err := h.authService.EnsureUserExists(ctx, userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	authorized, err := h.authService.IsAuthorized(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(genericErrorMsg)
	}

	if authorized {
		return c.Send(mainMenuText, mainMenuMarkup())
	}

	if !h.authService.CheckPassword(text) {
		h.logger.Warn("Wrong bot password", zap.Int64("user_id", userID))
		return c.Send("Wrong password.")
	}

	// Correct password: authorize and hand out the starter deck
	if err := h.authService.AuthorizeUser(ctx, userID); err != nil {
		h.logger.Error("Failed to authorize user", zap.Error(err))
		return c.Send(genericErrorMsg)
	}

	h.logger.Info("User authorized", zap.Int64("user_id", userID))
	h.ResetState(userID)
	return c.Send("✅ Access granted! Your first words are waiting.\n\n"+mainMenuText, mainMenuMarkup())
}

// handleMainMenu returns to the menu from anywhere
func (h *Handler) handleMainMenu(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.show(c, mainMenuText, mainMenuMarkup())
}
