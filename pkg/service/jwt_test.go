package service

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gedoc/internal/dto"
	apperrors "gedoc/pkg/errors"
)

const testSecret = "segredo-de-teste-bem-longo"

func testClaims() dto.UserClaims {
	return dto.UserClaims{
		UserID:      42,
		Username:    "maria",
		Roles:       []string{"gestor"},
		Permissions: []string{"documentos:visualizar", "documentos:criar"},
	}
}

func TestGenerateTokens_AccessValido(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, 24*time.Hour)

	access, refresh, err := svc.GenerateTokens(testClaims())
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, []string{"gestor"}, claims.Roles)
	assert.False(t, claims.IsRefreshToken)
}

func TestGenerateTokens_RefreshMarcado(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, 24*time.Hour)

	_, refresh, err := svc.GenerateTokens(testClaims())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, claims.IsRefreshToken)
	// Refresh não carrega permissões.
	assert.Empty(t, claims.Permissions)
}

func TestValidateToken_Expirado(t *testing.T) {
	svc := NewJWTService(testSecret, -time.Minute, 24*time.Hour)

	access, _, err := svc.GenerateTokens(testClaims())
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateToken_AssinaturaErrada(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, 24*time.Hour)
	outro := NewJWTService("outro-segredo", time.Hour, 24*time.Hour)

	access, _, err := outro.GenerateTokens(testClaims())
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_MetodoNaoHMAC(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, 24*time.Hour)

	// alg=none assinado "manualmente" nunca pode passar.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &JwtCustomClaim{UserID: 1})
	assinado, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(assinado)
	require.Error(t, err)
}

func TestValidateToken_Lixo(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, 24*time.Hour)
	_, err := svc.ValidateToken("nao.e.um.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
