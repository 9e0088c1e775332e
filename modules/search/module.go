package search

import (
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"

	"timeslotfinder/core/constants"
	"timeslotfinder/core/database"
	"timeslotfinder/core/middleware"
	notificationService "timeslotfinder/modules/notification/service"
	"timeslotfinder/modules/search/controller"
	"timeslotfinder/modules/search/repository"
	"timeslotfinder/modules/search/router"
	"timeslotfinder/modules/search/service"
	slotsEntity "timeslotfinder/modules/slots/entity"
	slotsService "timeslotfinder/modules/slots/service"
)

// Init wires the search module and registers its routes and its task
// handler on the worker mux.
func Init(
	e *echo.Echo,
	db database.IDatabase,
	mw *middleware.Middleware,
	finder *slotsService.TimeslotFinderService,
	notifications *notificationService.NotificationService,
	workingHours *slotsEntity.WorkingHours,
	asynqClient *asynq.Client,
	asynqMux *asynq.ServeMux,
) *service.SearchService {
	repo := repository.NewSearchRepository(db)
	svc := service.NewSearchService(repo, finder, notifications, asynqClient)
	ctrl := controller.NewSearchController(svc, workingHours)

	router.NewSearchRouter(ctrl).Setup(e, mw)
	asynqMux.HandleFunc(constants.TaskTypeSearchRun, svc.HandleSearchRun)

	return svc
}
