package utils

import (
	"context"

	"gedoc/internal/dto"
	"gedoc/pkg/contextkeys"
	apperrors "gedoc/pkg/errors"
)

func GetClaimsFromContext(ctx context.Context) (*dto.UserClaims, error) {
	claims, ok := ctx.Value(contextkeys.ClaimsKey).(*dto.UserClaims)
	if !ok || claims == nil {
		return nil, apperrors.ErrClaimsNotFoundInContext
	}
	return claims, nil
}

// UserIDFromContext devolve o id do usuário autenticado, ou 0 quando a
// requisição não passou pelo middleware de autenticação.
func UserIDFromContext(ctx context.Context) uint64 {
	claims, err := GetClaimsFromContext(ctx)
	if err != nil {
		return 0
	}
	return claims.UserID
}
