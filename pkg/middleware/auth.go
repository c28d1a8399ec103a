package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gedoc/internal/dto"
	"gedoc/pkg/constants"
	"gedoc/pkg/contextkeys"
	apperrors "gedoc/pkg/errors"
	"gedoc/pkg/service"
	"gedoc/pkg/utils"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtSvc, logger: logger}
}

// Auth extrai o bearer token, verifica a assinatura e grava os claims no
// contexto da requisição. Token ausente ou inválido encerra com 401.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("token rejeitado", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		// Refresh token não dá acesso a rotas protegidas.
		if claims.IsRefreshToken {
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		userClaims := &dto.UserClaims{
			UserID:      claims.UserID,
			Username:    claims.Username,
			Roles:       claims.Roles,
			Permissions: claims.Permissions,
		}
		ctx := context.WithValue(c.Request().Context(), contextkeys.ClaimsKey, userClaims)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRoles libera a rota quando o usuário possui qualquer um dos papéis.
func (m *AuthMiddleware) RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := utils.GetClaimsFromContext(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
			}
			if !claims.HasAnyRole(roles...) {
				m.logger.Warn("acesso negado por papel",
					zap.Uint64("userID", claims.UserID),
					zap.Strings("papeisExigidos", roles),
				)
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}
			return next(c)
		}
	}
}

// RequirePermissions libera a rota quando o usuário possui qualquer uma das
// permissões. O papel admin passa direto.
func (m *AuthMiddleware) RequirePermissions(permissions ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := utils.GetClaimsFromContext(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
			}
			if claims.HasAnyRole(constants.RoleAdmin) {
				return next(c)
			}
			if !claims.HasAnyPermission(permissions...) {
				m.logger.Warn("acesso negado por permissão",
					zap.Uint64("userID", claims.UserID),
					zap.Strings("permissoesExigidas", permissions),
				)
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}
			return next(c)
		}
	}
}
