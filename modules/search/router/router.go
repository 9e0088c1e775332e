package router

import (
	"timeslotfinder/core/middleware"
	"timeslotfinder/modules/search/controller"

	"github.com/labstack/echo/v4"
)

// SearchRouter handles saved-search routes
type SearchRouter struct {
	SearchController *controller.SearchController
}

func NewSearchRouter(searchController *controller.SearchController) *SearchRouter {
	return &SearchRouter{
		SearchController: searchController,
	}
}

// Setup registers search routes. Share links are public; everything else
// requires auth.
func (r *SearchRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")
	publicRoutes := v1.Group("/public")

	searchRoutes := privateRoutes.Group("/searches", mw.AuthMiddleware())
	searchRoutes.POST("", r.SearchController.Create)
	searchRoutes.GET("", r.SearchController.List)
	searchRoutes.GET("/:id", r.SearchController.GetByID)

	publicRoutes.GET("/searches/:slug", r.SearchController.GetBySlug)
}
