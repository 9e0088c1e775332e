package main

import (
	"timeslotfinder/core/logger"
	"timeslotfinder/core/server"
)

// @title Timeslot Finder API
// @version 1.0
// @description Finds shared free time slots across Microsoft 365 calendars

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Fatal("run server error", "error", err)
	}
}
