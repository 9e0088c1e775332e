package slots

import (
	"timeslotfinder/core/middleware"
	"timeslotfinder/modules/slots/controller"
	"timeslotfinder/modules/slots/entity"
	"timeslotfinder/modules/slots/router"
	"timeslotfinder/modules/slots/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the slots module and registers routes. It returns the
// finder service for modules that run searches outside a request (the
// async search worker).
func Init(
	e *echo.Echo,
	mw *middleware.Middleware,
	calendarClient service.CalendarClient,
	workingHours *entity.WorkingHours,
) *service.TimeslotFinderService {
	calculator := service.NewSlotCalculator(workingHours)
	finder := service.NewTimeslotFinderService(calendarClient, calculator)
	ctrl := controller.NewSlotsController(finder, workingHours)
	rtr := router.NewSlotsRouter(ctrl)

	rtr.Setup(e, mw)
	return finder
}
