package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "gedoc/pkg/errors"
)

func TestNewPagination(t *testing.T) {
	casos := []struct {
		nome       string
		page       int
		limit      int
		total      uint64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"primeira página cheia", 1, 10, 25, 3, true, false},
		{"página do meio", 2, 10, 25, 3, true, true},
		{"última página", 3, 10, 25, 3, false, true},
		{"resultado vazio", 1, 10, 0, 0, false, false},
		{"total múltiplo do limite", 2, 10, 20, 2, false, true},
		{"página além do fim", 9, 10, 25, 3, false, true},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			p := NewPagination(caso.page, caso.limit, caso.total)
			assert.Equal(t, caso.totalPages, p.TotalPages)
			assert.Equal(t, caso.hasNext, p.HasNext)
			assert.Equal(t, caso.hasPrev, p.HasPrev)
			assert.Equal(t, caso.total, p.Total)
		})
	}
}

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/teste", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorResponse_HttpError(t *testing.T) {
	ctx, rec := newTestContext(t)

	err := ErrorResponse(ctx, apperrors.NewValidationError("dados inválidos", []string{"campo nome"}), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, apperrors.CodeValidation, envelope.Error.Code)
	assert.Equal(t, "dados inválidos", envelope.Error.Message)
	assert.NotNil(t, envelope.Error.Details)
}

func TestErrorResponse_NotFound(t *testing.T) {
	ctx, rec := newTestContext(t)

	require.NoError(t, ErrorResponse(ctx, apperrors.ErrNotFound, zap.NewNop()))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, apperrors.CodeNotFound, envelope.Error.Code)
}

func TestErrorResponse_ErrosDeAutenticacao(t *testing.T) {
	for _, err := range []error{
		apperrors.ErrInvalidToken,
		apperrors.ErrTokenExpired,
		apperrors.ErrInvalidCredentials,
		apperrors.ErrEmptyAuthHeader,
		// Claims ausentes significam requisição sem autenticação, nunca 500.
		apperrors.ErrClaimsNotFoundInContext,
	} {
		ctx, rec := newTestContext(t)
		require.NoError(t, ErrorResponse(ctx, err, zap.NewNop()))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "erro: %v", err)
	}
}

func TestErrorResponse_Forbidden(t *testing.T) {
	ctx, rec := newTestContext(t)
	require.NoError(t, ErrorResponse(ctx, apperrors.ErrForbidden, zap.NewNop()))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestErrorResponse_ErroInesperadoNaoVaza(t *testing.T) {
	ctx, rec := newTestContext(t)

	require.NoError(t, ErrorResponse(ctx, errors.New("pgx: conexão recusada em 10.0.0.5"), zap.NewNop()))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, apperrors.CodeInternal, envelope.Error.Code)
	assert.NotContains(t, envelope.Error.Message, "pgx")
}

func TestSuccessResponse_Envelope(t *testing.T) {
	ctx, rec := newTestContext(t)

	require.NoError(t, SuccessResponse(ctx, map[string]string{"nome": "RH"}, "criado", http.StatusCreated))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "criado", envelope["message"])
}
