package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"timeslotfinder/core/cache"
	"timeslotfinder/core/config"
	"timeslotfinder/core/database"
	"timeslotfinder/core/logger"
	"timeslotfinder/core/middleware"
	"timeslotfinder/modules/auth"
	"timeslotfinder/modules/calendar"
	"timeslotfinder/modules/notification"
	"timeslotfinder/modules/search"
	"timeslotfinder/modules/slots"
	slotsEntity "timeslotfinder/modules/slots/entity"
)

// Run starts the HTTP server and the background worker and blocks until
// shutdown.
func Run() error {
	logger.Init()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	}); err != nil {
		return fmt.Errorf("init database: %w", err)
	}

	redisCache := cache.New(cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisCache.Ping(context.Background()); err != nil {
		logger.Warn("Redis unreachable, schedule caching disabled", "error", err)
		redisCache = nil
	}

	workingHours, err := buildWorkingHours(cfg)
	if err != nil {
		return fmt.Errorf("working hours: %w", err)
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()

	asynqSrv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.Asynq.Concurrency,
	})
	asynqMux := asynq.NewServeMux()

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	mw := middleware.NewMiddleware(cfg.Auth.JWTSecret)
	e.Use(mw.RequestLogger())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Module wiring. The calendar client feeds the finder, which both the
	// slots API and the stored-search worker use.
	calendarClient := calendar.Init(cfg, redisCache)
	finder := slots.Init(e, mw, calendarClient, workingHours)

	privateGroup := e.Group("/api/v1/private")
	notificationSvc := notification.Init(privateGroup, database.GetDB(), mw)

	search.Init(e, database.GetDB(), mw, finder, notificationSvc, workingHours, asynqClient, asynqMux)
	auth.Init(e, cfg)

	go func() {
		if err := asynqSrv.Run(asynqMux); err != nil {
			logger.Error("asynq server error", "error", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("Starting HTTP server", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	asynqSrv.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

func buildWorkingHours(cfg *config.Config) (*slotsEntity.WorkingHours, error) {
	startHour, startMinute, err := cfg.WorkingHours.StartClock()
	if err != nil {
		return nil, err
	}
	endHour, endMinute, err := cfg.WorkingHours.EndClock()
	if err != nil {
		return nil, err
	}
	return slotsEntity.NewWorkingHours(
		startHour, startMinute,
		endHour, endMinute,
		cfg.WorkingHours.ExcludeWeekdays,
		cfg.WorkingHours.Timezone,
	)
}
