package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Códigos de erro expostos no envelope de resposta.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "RESOURCE_NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
)

var (
	// JWT e tokens
	ErrInvalidSigningMethod = errors.New("método de assinatura do token inválido")
	ErrInvalidToken         = errors.New("token inválido")
	ErrTokenExpired         = errors.New("token expirado")
	ErrTokenIsNotRefresh    = errors.New("o token informado não é um refresh token")
	ErrTokenIsNotAccess     = errors.New("refresh token não pode ser usado para acesso")

	// Autenticação
	ErrEmptyAuthHeader    = errors.New("cabeçalho de autorização ausente")
	ErrInvalidAuthHeader  = errors.New("formato inválido do cabeçalho de autorização")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")

	// Contexto
	ErrClaimsNotFoundInContext = errors.New("claims não encontrados no contexto da requisição")

	// Gerais
	ErrNotFound = errors.New("registro não encontrado")
)

// HttpError carrega o status HTTP, o código de erro do envelope e a causa.
// É o único tipo que o handler terminal sabe mapear para a resposta JSON.
type HttpError struct {
	Code      int
	ErrorCode string
	Message   string
	Err       error
	Details   any
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, errorCode, message string, err error, details any) *HttpError {
	return &HttpError{Code: code, ErrorCode: errorCode, Message: message, Err: err, Details: details}
}

func NewValidationError(message string, details any) *HttpError {
	return NewHttpError(http.StatusBadRequest, CodeValidation, message, nil, details)
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, CodeValidation, message, nil, nil)
}

func NewUnauthorizedError(message string) *HttpError {
	return NewHttpError(http.StatusUnauthorized, CodeUnauthorized, message, nil, nil)
}

func NewForbiddenError(message string) *HttpError {
	return NewHttpError(http.StatusForbidden, CodeForbidden, message, nil, nil)
}

func NewNotFoundError(resource string) *HttpError {
	return NewHttpError(http.StatusNotFound, CodeNotFound, fmt.Sprintf("%s não encontrado", resource), ErrNotFound, nil)
}

func NewInternalError(err error) *HttpError {
	// A causa fica só no log; a mensagem para o cliente é genérica.
	return NewHttpError(http.StatusInternalServerError, CodeInternal, "erro interno do servidor", err, nil)
}
