package dto

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	Type     string                 `json:"type"`
	Title    string                 `json:"title"`
	Status   int                    `json:"status"`
	Detail   string                 `json:"detail,omitempty"`
	Instance string                 `json:"instance,omitempty"`
	Errors   []ValidationError      `json:"errors,omitempty"`
	Meta     map[string]interface{} `json:"meta,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// NewErrorResponseI18n cria uma resposta de erro RFC 7807 usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	title := T(c, titleKey, params...)
	detail := T(c, detailKey, params...)

	return ErrorResponse{
		Type:     baseURL + problemType,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.Request.URL.Path,
	}
}

// FieldErrors converte erros de binding do Gin em erros de campo.
// Payloads sem erros de campo identificáveis retornam nil.
func FieldErrors(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return nil
	}

	out := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: fieldErrorMessage(fe),
			Tag:     fe.Tag(),
		})
	}
	return out
}

// fieldErrorMessage produz uma mensagem curta e estável por tag
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "min":
		return "is too short (min " + fe.Param() + ")"
	case "max":
		return "is too long (max " + fe.Param() + ")"
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação,
// anexando os erros de campo quando disponíveis
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		"/problems/validation-error",
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	response.Errors = validationErrors
	return response
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, resource string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/not-found",
		"error.not_found.title",
		"error.not_found.detail",
		404,
		map[string]interface{}{"Resource": resource},
	)
}

// ConflictErrorResponseI18n cria uma resposta de erro 409
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/conflict",
		"error.conflict.title",
		detailKey,
		409,
		params...,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	if detailKey == "" {
		detailKey = "error.unauthorized.detail"
	}
	return NewErrorResponseI18n(
		c,
		"/problems/unauthorized",
		"error.unauthorized.title",
		detailKey,
		401,
	)
}

// ForbiddenErrorResponseI18n cria uma resposta de erro 403
func ForbiddenErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	if detailKey == "" {
		detailKey = "error.forbidden.detail"
	}
	return NewErrorResponseI18n(
		c,
		"/problems/forbidden",
		"error.forbidden.title",
		detailKey,
		403,
	)
}

// BadRequestErrorResponseI18n cria uma resposta de erro 400 genérica
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/bad-request",
		"error.bad_request.title",
		detailKey,
		400,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500.
// O detalhe real fica apenas nos logs do servidor.
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/internal-error",
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}
