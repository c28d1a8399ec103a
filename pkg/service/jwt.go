package service

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"gedoc/internal/dto"
	apperrors "gedoc/pkg/errors"
)

// JwtCustomClaim embute a identidade do usuário no token. A assinatura é
// sempre verificada (HS512); tokens apenas decodificáveis não são aceitos.
type JwtCustomClaim struct {
	UserID         uint64   `json:"userId"`
	Username       string   `json:"username"`
	Roles          []string `json:"roles"`
	Permissions    []string `json:"permissions"`
	IsRefreshToken bool     `json:"isRefresh"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateTokens(claims dto.UserClaims) (accessToken string, refreshToken string, err error)
	ValidateToken(tokenString string) (*JwtCustomClaim, error)
	GetAccessTokenTTL() time.Duration
	GetRefreshTokenTTL() time.Duration
}

type jwtService struct {
	secretKey       string
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
}

func NewJWTService(secretKey string, accessTokenExp, refreshTokenExp time.Duration) JWTService {
	return &jwtService{
		secretKey:       secretKey,
		accessTokenExp:  accessTokenExp,
		refreshTokenExp: refreshTokenExp,
	}
}

func (s *jwtService) GenerateTokens(user dto.UserClaims) (string, string, error) {
	now := time.Now()

	accessClaims := &JwtCustomClaim{
		UserID:      user.UserID,
		Username:    user.Username,
		Roles:       user.Roles,
		Permissions: user.Permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenExp)),
		},
	}

	refreshClaims := &JwtCustomClaim{
		UserID:         user.UserID,
		Username:       user.Username,
		IsRefreshToken: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTokenExp)),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS512, accessClaims).SignedString([]byte(s.secretKey))
	if err != nil {
		return "", "", err
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS512, refreshClaims).SignedString([]byte(s.secretKey))
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *jwtService) ValidateToken(tokenString string) (*JwtCustomClaim, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaim{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, apperrors.ErrTokenExpired
		case errors.Is(err, apperrors.ErrInvalidSigningMethod):
			return nil, apperrors.ErrInvalidSigningMethod
		default:
			return nil, apperrors.ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*JwtCustomClaim)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

func (s *jwtService) GetAccessTokenTTL() time.Duration  { return s.accessTokenExp }
func (s *jwtService) GetRefreshTokenTTL() time.Duration { return s.refreshTokenExp }
