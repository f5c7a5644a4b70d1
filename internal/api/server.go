package api

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"vocabox/internal/domain"
	"vocabox/internal/service"
	"vocabox/internal/srs"
)

// ReviewService runs review sessions
type ReviewService interface {
	StartSession(ctx context.Context, userID int64, mode domain.Mode) (*domain.Session, error)
	AnswerSession(ctx context.Context, userID int64, sessionID string, q srs.Quality) (*service.AnswerResult, error)
	ApplyAnswer(ctx context.Context, userID, progressID int64, q srs.Quality, mode domain.Mode) (*service.AnswerResult, error)
	EndSession(userID int64, sessionID string) error
	EndUserSessions(userID int64) int
}

// StatsService builds dashboard snapshots
type StatsService interface {
	Snapshot(ctx context.Context, userID int64) (domain.Stats, error)
	Vocabulary(ctx context.Context, userID int64) ([]domain.VocabularyEntry, error)
}

// AssignmentService creates progress records
type AssignmentService interface {
	InitializeUser(ctx context.Context, userID int64) (int, error)
	ResetUser(ctx context.Context, userID int64) (int, error)
	Assign(ctx context.Context, userID int64, ids []int64) (int, error)
}

// UserChecker tells whether a user may use the API
type UserChecker interface {
	IsAuthorized(ctx context.Context, userID int64) (bool, error)
}

// Options configures the HTTP server
type Options struct {
	Address        string
	DisableReqLogs bool
	Review         ReviewService
	Stats          StatsService
	Assignments    AssignmentService
	Users          UserChecker
	Logger         *zap.Logger
}

// Server is the JSON API over the review core
type Server struct {
	opts     *Options
	app      *echo.Echo
	validate *validator.Validate
}

// NewServer creates a new server
func NewServer(opts *Options) *Server {
	s := &Server{
		opts:     opts,
		app:      echo.New(),
		validate: newValidator(),
	}
	s.setup()
	return s
}

func newValidator() *validator.Validate {
	validate := validator.New()
	// report fields by their json names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

func (s *Server) setup() {
	s.app.HideBanner = true
	s.app.HidePort = true

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(requestLogger(s.opts.Logger))
	}
	s.app.Use(middleware.Recover())
	s.app.HTTPErrorHandler = newHTTPErrorHandler(s.opts.Logger)

	s.app.GET("/health", health)

	v1 := s.app.Group("/v1", userMiddleware(s.opts.Users, s.opts.Logger))
	registerReviewAPI(v1, s.opts.Review, s.validate)
	registerProgressAPI(v1, s.opts.Stats, s.opts.Assignments, s.opts.Review, s.validate)
}

// Start serves until Stop is called
func (s *Server) Start() error {
	s.opts.Logger.Info("HTTP API listening", zap.String("address", s.opts.Address))
	if err := s.app.Start(s.opts.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

// ServeHTTP lets tests drive the server without a listener
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.app.ServeHTTP(w, r)
}

func health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
