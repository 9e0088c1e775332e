package controller

import (
	"github.com/labstack/echo/v4"

	"timeslotfinder/core/controller"
	"timeslotfinder/core/errors"
	"timeslotfinder/modules/auth/dto"
	"timeslotfinder/modules/auth/service"
)

type AuthController struct {
	controller.BaseController
	Service *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		Service:        svc,
	}
}

// Token handles POST /auth/token
// @Summary Exchange the API key for an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "API key"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.AppError
// @Router /public/auth/token [post]
func (c *AuthController) Token(ctx echo.Context) error {
	var req dto.TokenRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if req.APIKey == "" {
		return c.BadRequest(errors.ErrInvalidInput, "API key is required")
	}

	token, err := c.Service.ExchangeAPIKey(req.APIKey)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, token, "Token issued")
}
