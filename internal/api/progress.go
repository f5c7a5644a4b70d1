package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"vocabox/internal/domain"
)

type progressAPI struct {
	stats       StatsService
	assignments AssignmentService
	review      ReviewService
	validate    *validator.Validate
}

func registerProgressAPI(g *echo.Group, stats StatsService, assignments AssignmentService, review ReviewService, validate *validator.Validate) {
	api := progressAPI{stats: stats, assignments: assignments, review: review, validate: validate}

	g.GET("/stats", api.snapshot)
	g.GET("/items", api.vocabulary)
	g.POST("/reset", api.reset)
	g.POST("/enroll", api.enroll)
	g.POST("/assignments", api.assign)
}

// AssignRequest lists items to add to the caller's deck
type AssignRequest struct {
	ItemIDs []int64 `json:"item_ids" validate:"required,min=1,max=100,dive,gt=0"`
}

// VocabularyResponse lists every item the caller is learning
type VocabularyResponse struct {
	Total int                      `json:"total"`
	Items []domain.VocabularyEntry `json:"items"`
}

// CreatedResponse reports how many progress records were created
type CreatedResponse struct {
	Created int `json:"created"`
}

func (api *progressAPI) snapshot(ctx echo.Context) error {
	stats, err := api.stats.Snapshot(ctx.Request().Context(), contextUser(ctx))
	if err != nil {
		return errors.Wrap(err, "building stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api *progressAPI) vocabulary(ctx echo.Context) error {
	entries, err := api.stats.Vocabulary(ctx.Request().Context(), contextUser(ctx))
	if err != nil {
		return errors.Wrap(err, "listing vocabulary")
	}
	return ctx.JSON(http.StatusOK, VocabularyResponse{Total: len(entries), Items: entries})
}

func (api *progressAPI) reset(ctx echo.Context) error {
	userID := contextUser(ctx)
	created, err := api.assignments.ResetUser(ctx.Request().Context(), userID)
	if err != nil {
		return errors.Wrap(err, "resetting progress")
	}
	// held sessions point at records that no longer exist
	api.review.EndUserSessions(userID)
	return ctx.JSON(http.StatusOK, CreatedResponse{Created: created})
}

func (api *progressAPI) enroll(ctx echo.Context) error {
	created, err := api.assignments.InitializeUser(ctx.Request().Context(), contextUser(ctx))
	if err != nil {
		return errors.Wrap(err, "initializing user")
	}
	return ctx.JSON(http.StatusOK, CreatedResponse{Created: created})
}

func (api *progressAPI) assign(ctx echo.Context) error {
	var data AssignRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AssignRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	created, err := api.assignments.Assign(ctx.Request().Context(), contextUser(ctx), data.ItemIDs)
	if err != nil {
		return errors.Wrap(err, "assigning items")
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{Created: created})
}
