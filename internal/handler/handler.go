package handler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"vocabox/internal/domain"
	"vocabox/internal/middleware"
	"vocabox/internal/service"
)

// requestTimeout bounds the store work behind one update
const requestTimeout = 10 * time.Second

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	review      *service.ReviewService
	stats       *service.StatsService
	assignments *service.AssignmentService
	clock       service.Clock
	logger      *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Per-user locks so double taps are handled one at a time
	callbackLocks map[int64]*sync.Mutex
	callbackMux   sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	review *service.ReviewService,
	stats *service.StatsService,
	assignments *service.AssignmentService,
	clock service.Clock,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:           bot,
		authService:   authService,
		review:        review,
		stats:         stats,
		assignments:   assignments,
		clock:         clock,
		logger:        logger,
		states:        make(map[int64]*domain.StateData),
		callbackLocks: make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands and password entry are open to everyone
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)

	// Everything else requires an authorized user
	authed := h.bot.Group()
	authed.Use(middleware.AuthMiddleware(h.authService, h.logger))

	authed.Handle("/review", h.handleReview)
	authed.Handle("/practice", h.handlePractice)
	authed.Handle("/stats", h.handleStats)
	authed.Handle("/words", h.handleWords)

	authed.Handle(&btnReview, h.handleReview)
	authed.Handle(&btnPractice, h.handlePractice)
	authed.Handle(&btnReveal, h.handleReveal)
	authed.Handle(&btnKnew, h.handleKnew)
	authed.Handle(&btnForgot, h.handleForgot)
	authed.Handle(&btnStats, h.handleStats)
	authed.Handle(&btnWords, h.handleWords)
	authed.Handle(&btnReset, h.handleReset)
	authed.Handle(&btnResetConfirm, h.handleResetConfirm)
	authed.Handle(&btnCancel, h.handleCancel)
	authed.Handle(&btnMainMenu, h.handleMainMenu)

	// Generic callback handler for buttons whose Unique was lost
	authed.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// lockUser serializes updates of one user and returns the unlock func
func (h *Handler) lockUser(userID int64) func() {
	h.callbackMux.Lock()
	lock, exists := h.callbackLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.callbackLocks[userID] = lock
	}
	h.callbackMux.Unlock()

	lock.Lock()
	return lock.Unlock
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// Inline keyboard buttons
var (
	btnReview = tele.Btn{
		Unique: "review",
		Text:   "📚 Review due",
	}
	btnPractice = tele.Btn{
		Unique: "practice",
		Text:   "🎯 Practice",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 Stats",
	}
	btnWords = tele.Btn{
		Unique: "words",
		Text:   "📖 My words",
	}
	btnReset = tele.Btn{
		Unique: "reset",
		Text:   "♻️ Reset progress",
	}
	btnResetConfirm = tele.Btn{
		Unique: "reset_confirm",
		Text:   "⚠️ Yes, start over",
	}
	btnReveal = tele.Btn{
		Unique: "reveal",
		Text:   "👀 Show answer",
	}
	btnKnew = tele.Btn{
		Unique: "knew",
		Text:   "✅ Knew it",
	}
	btnForgot = tele.Btn{
		Unique: "forgot",
		Text:   "❌ Didn't know",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "✖️ Stop",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnReview, btnPractice),
		menu.Row(btnStats, btnWords),
		menu.Row(btnReset),
	)
	return menu
}

func cardFrontMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnReveal),
		markup.Row(btnCancel),
	)
	return markup
}

func cardBackMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnKnew, btnForgot),
		markup.Row(btnCancel),
	)
	return markup
}

func backMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))
	return markup
}

func resetConfirmMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnResetConfirm),
		markup.Row(btnMainMenu),
	)
	return markup
}
