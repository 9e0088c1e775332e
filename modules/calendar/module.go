package calendar

import (
	"time"

	"timeslotfinder/core/cache"
	"timeslotfinder/core/config"
	"timeslotfinder/core/logger"
	"timeslotfinder/modules/calendar/service"
)

// Init builds the calendar client stack: mock or real Graph client per
// configuration, wrapped with the Redis schedule cache when available.
func Init(cfg *config.Config, c cache.Cache) service.CalendarClient {
	var client service.CalendarClient

	if cfg.Graph.Mock {
		logger.Info("Calendar:UsingMockClient")
		client = service.NewMockCalendarClient()
	} else {
		auth := service.NewGraphAuthenticator(
			cfg.Graph.ClientID,
			cfg.Graph.TenantID,
			cfg.Graph.TokenCacheFile,
		)
		client = service.NewGraphClient(auth, time.Duration(cfg.Graph.TimeoutSeconds)*time.Second)
	}

	if c != nil {
		client = service.NewCachedCalendarClient(client, c)
	}
	return client
}
