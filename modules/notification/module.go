package notification

import (
	"github.com/labstack/echo/v4"

	"timeslotfinder/core/database"
	"timeslotfinder/core/middleware"
	"timeslotfinder/modules/notification/controller"
	"timeslotfinder/modules/notification/repository"
	"timeslotfinder/modules/notification/router"
	"timeslotfinder/modules/notification/service"
)

func Init(e *echo.Group, db database.IDatabase, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(e, mw)

	return svc
}
