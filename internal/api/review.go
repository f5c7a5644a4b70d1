package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"vocabox/internal/domain"
	"vocabox/internal/srs"
)

type reviewAPI struct {
	svc      ReviewService
	validate *validator.Validate
}

func registerReviewAPI(g *echo.Group, svc ReviewService, validate *validator.Validate) {
	api := reviewAPI{svc: svc, validate: validate}

	g.GET("/session", api.startSession)
	g.POST("/answer", api.answer)
	g.POST("/sessions/:id/answers", api.answerSession)
	g.DELETE("/sessions/:id", api.endSession)
}

// SessionResponse lists the cards of a new session
type SessionResponse struct {
	SessionID string             `json:"session_id,omitempty"`
	Mode      domain.Mode        `json:"mode"`
	Complete  bool               `json:"complete"`
	Items     []domain.Candidate `json:"items"`
}

// AnswerRequest is a stateless answer for one progress record
type AnswerRequest struct {
	ProgressID int64  `json:"progress_id" validate:"required,gt=0"`
	Quality    *int   `json:"quality" validate:"required,min=0,max=5"`
	Mode       string `json:"mode" validate:"omitempty,oneof=graded practice"`
}

// SessionAnswerRequest answers the current card of a session
type SessionAnswerRequest struct {
	Quality *int `json:"quality" validate:"required,min=0,max=5"`
}

func (api *reviewAPI) startSession(ctx echo.Context) error {
	mode, err := domain.ParseMode(ctx.QueryParam("mode"))
	if err != nil {
		return err
	}

	session, err := api.svc.StartSession(ctx.Request().Context(), contextUser(ctx), mode)
	if err != nil {
		return errors.Wrap(err, "starting session")
	}

	return ctx.JSON(http.StatusOK, SessionResponse{
		SessionID: session.ID,
		Mode:      session.Mode,
		Complete:  session.State() == domain.SessionComplete,
		Items:     session.Candidates,
	})
}

func (api *reviewAPI) answer(ctx echo.Context) error {
	var data AnswerRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AnswerRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}
	mode, err := domain.ParseMode(data.Mode)
	if err != nil {
		return err
	}

	result, err := api.svc.ApplyAnswer(ctx.Request().Context(), contextUser(ctx), data.ProgressID, srs.Quality(*data.Quality), mode)
	if err != nil {
		return errors.Wrap(err, "applying answer")
	}
	return ctx.JSON(http.StatusOK, result)
}

func (api *reviewAPI) answerSession(ctx echo.Context) error {
	var data SessionAnswerRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SessionAnswerRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	result, err := api.svc.AnswerSession(ctx.Request().Context(), contextUser(ctx), ctx.Param("id"), srs.Quality(*data.Quality))
	if err != nil {
		return errors.Wrap(err, "answering session")
	}
	return ctx.JSON(http.StatusOK, result)
}

func (api *reviewAPI) endSession(ctx echo.Context) error {
	if err := api.svc.EndSession(contextUser(ctx), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "ending session")
	}
	return ctx.NoContent(http.StatusNoContent)
}
