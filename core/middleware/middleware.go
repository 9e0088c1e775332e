package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"timeslotfinder/core/constants"
	"timeslotfinder/core/controller"
	"timeslotfinder/core/errors"
	"timeslotfinder/core/logger"
	"timeslotfinder/core/utils"
)

// Middleware bundles the request middlewares with their configuration
type Middleware struct {
	jwtSecret string
}

func NewMiddleware(jwtSecret string) *Middleware {
	return &Middleware{jwtSecret: jwtSecret}
}

// AuthMiddleware validates the Bearer token and stores its claims in context
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "Authorization header is required")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "Authorization header must be 'Bearer {token}'")
			}

			claims, err := utils.ParseToken(parts[1], m.jwtSecret)
			if err != nil {
				logger.Warn("AuthMiddleware:ParseToken failed", "error", err)
				return controller.NewErrorResponse(401, errors.ErrTokenExpired, "Invalid or expired token")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// RequestLogger logs method, path, status and latency for every request
func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			req := c.Request()
			res := c.Response()
			logger.Info("http request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"latency_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
			)
			return err
		}
	}
}
