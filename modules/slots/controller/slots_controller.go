package controller

import (
	"timeslotfinder/core/config"
	"timeslotfinder/core/controller"
	"timeslotfinder/core/errors"
	"timeslotfinder/modules/slots/dto"
	"timeslotfinder/modules/slots/entity"
	"timeslotfinder/modules/slots/service"

	"github.com/labstack/echo/v4"
)

// SlotsController handles slot-finding HTTP requests
type SlotsController struct {
	controller.BaseController
	Finder       *service.TimeslotFinderService
	WorkingHours *entity.WorkingHours
}

func NewSlotsController(finder *service.TimeslotFinderService, workingHours *entity.WorkingHours) *SlotsController {
	return &SlotsController{
		BaseController: controller.NewBaseController(),
		Finder:         finder,
		WorkingHours:   workingHours,
	}
}

// FindSlots handles POST /slots/find
// @Summary Find shared free slots
// @Description Computes time slots in which all participants are free
// @Tags Slots
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.FindSlotsRequest true "Search parameters"
// @Success 200 {object} dto.FindSlotsResponse
// @Failure 400 {object} errors.AppError
// @Failure 502 {object} errors.AppError
// @Router /private/slots/find [post]
func (c *SlotsController) FindSlots(ctx echo.Context) error {
	var req dto.FindSlotsRequest
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

	start, end, err := service.ResolveSearchWindow(
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

	slots, err := c.Finder.FindSlots(
		ctx.Request().Context(),
		emails, start, end,
		cfg.WorkingHours.Timezone,
		duration,
	)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp := dto.ToFindSlotsResponse(emails, start, end, duration, cfg.WorkingHours.Timezone, slots)
	return c.SuccessResponse(ctx, resp, "Slots found")
}
