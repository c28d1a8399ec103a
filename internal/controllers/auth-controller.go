package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gedoc/internal/dto"
	"gedoc/internal/services"
	apperrors "gedoc/pkg/errors"
	"gedoc/pkg/service"
	"gedoc/pkg/utils"
)

const refreshCookieName = "refresh_token"

type AuthController struct {
	service    services.AuthServiceInterface
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, jwtService service.JWTService, logger *zap.Logger) *AuthController {
	return &AuthController{service: authService, jwtService: jwtService, logger: logger}
}

// Login devolve o access token no corpo e o refresh token em cookie HttpOnly.
func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	tokens, refreshToken, err := c.service.Login(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.setRefreshCookie(ctx, refreshToken)
	return utils.SuccessResponse(ctx, tokens, "login realizado com sucesso", http.StatusOK)
}

func (c *AuthController) Register(ctx echo.Context) error {
	var payload dto.RegisterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	usuario, err := c.service.Register(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, usuario, "usuário cadastrado com sucesso", http.StatusCreated)
}

func (c *AuthController) Refresh(ctx echo.Context) error {
	cookie, err := ctx.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	tokens, refreshToken, err := c.service.Refresh(ctx.Request().Context(), cookie.Value)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.setRefreshCookie(ctx, refreshToken)
	return utils.SuccessResponse(ctx, tokens, "", http.StatusOK)
}

func (c *AuthController) Me(ctx echo.Context) error {
	claims, err := utils.GetClaimsFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	usuario, err := c.service.Me(ctx.Request().Context(), claims.UserID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, usuario, "", http.StatusOK)
}

func (c *AuthController) ChangePassword(ctx echo.Context) error {
	claims, err := utils.GetClaimsFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.ChangePasswordDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.ChangePassword(ctx.Request().Context(), claims.UserID, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "senha alterada com sucesso", http.StatusOK)
}

// Logout apenas descarta o cookie; o access token expira sozinho.
func (c *AuthController) Logout(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/auth",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	return utils.SuccessResponse(ctx, nil, "logout realizado com sucesso", http.StatusOK)
}

func (c *AuthController) setRefreshCookie(ctx echo.Context, refreshToken string) {
	ctx.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    refreshToken,
		Path:     "/auth",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Now().Add(c.jwtService.GetRefreshTokenTTL()),
	})
}
