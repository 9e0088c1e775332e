package router

import (
	"timeslotfinder/core/middleware"
	"timeslotfinder/modules/slots/controller"

	"github.com/labstack/echo/v4"
)

// SlotsRouter handles slot routes
type SlotsRouter struct {
	SlotsController *controller.SlotsController
}

func NewSlotsRouter(slotsController *controller.SlotsController) *SlotsRouter {
	return &SlotsRouter{
		SlotsController: slotsController,
	}
}

// Setup registers slot routes
func (r *SlotsRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	slotRoutes := privateRoutes.Group("/slots", mw.AuthMiddleware())
	slotRoutes.POST("/find", r.SlotsController.FindSlots)
}
