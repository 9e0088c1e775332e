package auth

import (
	"github.com/labstack/echo/v4"

	"timeslotfinder/core/config"
	"timeslotfinder/modules/auth/controller"
	"timeslotfinder/modules/auth/router"
	"timeslotfinder/modules/auth/service"
)

func Init(e *echo.Echo, cfg *config.Config) {
	svc := service.NewAuthService(cfg)
	ctrl := controller.NewAuthController(svc)

	router.NewAuthRouter(ctrl).Setup(e)
}
