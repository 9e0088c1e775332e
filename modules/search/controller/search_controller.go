package controller

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"timeslotfinder/core/config"
	"timeslotfinder/core/controller"
	"timeslotfinder/core/errors"
	"timeslotfinder/modules/search/dto"
	"timeslotfinder/modules/search/service"
	slotsEntity "timeslotfinder/modules/slots/entity"
	slotsService "timeslotfinder/modules/slots/service"
)

// SearchController handles saved slot searches
type SearchController struct {
	controller.BaseController
	Service      *service.SearchService
	WorkingHours *slotsEntity.WorkingHours
}

func NewSearchController(svc *service.SearchService, workingHours *slotsEntity.WorkingHours) *SearchController {
	return &SearchController{
		BaseController: controller.NewBaseController(),
		Service:        svc,
		WorkingHours:   workingHours,
	}
}

// Create handles POST /searches
// @Summary Create a saved slot search
// @Description Stores a search and computes its slots, inline or via the worker
// @Tags Search
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSearchRequest true "Search parameters"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} errors.AppError
// @Router /private/searches [post]
func (c *SearchController) Create(ctx echo.Context) error {
	var req dto.CreateSearchRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if len(req.Participants) == 0 {
		return c.BadRequest(errors.ErrInvalidInput, "At least one participant is required")
	}

	cfg := config.Get()

	emails := make([]string, 0, len(req.Participants))
	for _, p := range req.Participants {
		email, err := cfg.ResolveParticipant(p)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, err.Error())
		}
		emails = append(emails, email)
	}

	start, end, err := slotsService.ResolveSearchWindow(
		req.StartDate, req.EndDate,
		c.WorkingHours.Location(),
		cfg.Defaults.SearchDays,
	)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = cfg.Defaults.DurationMinutes
	}

	search, err := c.Service.Create(
		ctx.Request().Context(),
		emails, start, end,
		cfg.WorkingHours.Timezone,
		duration,
		req.Async,
	)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, dto.ToSearchResponse(search), "Search created")
}

// GetByID handles GET /searches/:id
// @Summary Get a search by ID
// @Tags Search
// @Security BearerAuth
// @Produce json
// @Param id path string true "Search ID"
// @Success 200 {object} dto.SearchResponse
// @Failure 404 {object} errors.AppError
// @Router /private/searches/{id} [get]
func (c *SearchController) GetByID(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid search ID")
	}

	search, err := c.Service.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, dto.ToSearchResponse(search), "Search retrieved")
}

// List handles GET /searches
// @Summary List recent searches
// @Tags Search
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} dto.ListSearchesResponse
// @Router /private/searches [get]
func (c *SearchController) List(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	searches, err := c.Service.List(ctx.Request().Context(), limit)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp := dto.ListSearchesResponse{Searches: make([]dto.SearchResponse, 0, len(searches))}
	for i := range searches {
		resp.Searches = append(resp.Searches, *dto.ToSearchResponse(&searches[i]))
	}
	return c.SuccessResponse(ctx, resp, "Searches retrieved")
}

// GetBySlug handles GET /public/searches/:slug. Share links carry no
// credentials, so this route skips auth.
// @Summary Get a shared search result
// @Tags Search
// @Produce json
// @Param slug path string true "Share slug"
// @Success 200 {object} dto.SearchResponse
// @Failure 404 {object} errors.AppError
// @Router /public/searches/{slug} [get]
func (c *SearchController) GetBySlug(ctx echo.Context) error {
	search, err := c.Service.GetBySlug(ctx.Request().Context(), ctx.Param("slug"))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, dto.ToSearchResponse(search), "Search retrieved")
}
