package router

import (
	"github.com/labstack/echo/v4"

	"timeslotfinder/modules/auth/controller"
)

type AuthRouter struct {
	AuthController *controller.AuthController
}

func NewAuthRouter(authController *controller.AuthController) *AuthRouter {
	return &AuthRouter{
		AuthController: authController,
	}
}

// Setup registers auth routes. Token exchange is the entry point, so it
// lives under the public group.
func (r *AuthRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	publicRoutes := v1.Group("/public")

	authRoutes := publicRoutes.Group("/auth")
	authRoutes.POST("/token", r.AuthController.Token)
}
