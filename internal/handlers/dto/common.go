package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/imovelhub/imovelhub-backend/internal/domain/errors"
)

// Problem é o documento de erro RFC 7807 retornado pela API.
// Estende o problem padrão com a lista de erros de validação de campo.
type Problem struct {
	*problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// NewProblem cria um novo documento de erro RFC 7807
func NewProblem(c *gin.Context, problemType, title string, status int, detail string) *Problem {
	// Pegar base URL da configuração
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	p := problems.NewStatusProblem(status)
	p.Type = baseURL + problemType
	p.Title = title
	p.Detail = detail
	p.Instance = c.Request.URL.Path

	return &Problem{Problem: p}
}

// NewProblemI18n cria um documento de erro com título e detalhe traduzidos
func NewProblemI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) *Problem {
	title := T(c, titleKey, params...)
	detail := T(c, detailKey, params...)

	return NewProblem(c, problemType, title, status, detail)
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) *Problem {
	response := NewProblemI18n(
		c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	response.Errors = validationErrors
	return response
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, resource string) *Problem {
	return NewProblemI18n(
		c,
		errors.ProblemTypeNotFound,
		"error.not_found.title",
		"error.not_found.detail",
		404,
		map[string]interface{}{"Resource": resource},
	)
}

// ConflictErrorResponseI18n cria uma resposta de erro 409
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) *Problem {
	return NewProblemI18n(
		c,
		errors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		409,
		params...,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401.
// detailKey opcional substitui o detalhe padrão (conta congelada, etc.)
func UnauthorizedErrorResponseI18n(c *gin.Context, detailKeys ...string) *Problem {
	detailKey := "error.unauthorized.detail"
	if len(detailKeys) > 0 && detailKeys[0] != "" {
		detailKey = detailKeys[0]
	}

	return NewProblemI18n(
		c,
		errors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		detailKey,
		401,
	)
}

// ForbiddenErrorResponseI18n cria uma resposta de erro 403
func ForbiddenErrorResponseI18n(c *gin.Context) *Problem {
	return NewProblemI18n(
		c,
		errors.ProblemTypeForbidden,
		"error.forbidden.title",
		"error.forbidden.detail",
		403,
	)
}

// BadRequestErrorResponseI18n cria uma resposta de erro 400
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string) *Problem {
	return NewProblemI18n(
		c,
		errors.ProblemTypeBadRequest,
		"error.bad_request.title",
		detailKey,
		400,
	)
}

// UnavailableErrorResponseI18n cria uma resposta de erro 503
func UnavailableErrorResponseI18n(c *gin.Context, detailKey string) *Problem {
	return NewProblemI18n(
		c,
		errors.ProblemTypeUnavailable,
		"error.unavailable.title",
		detailKey,
		503,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) *Problem {
	return NewProblemI18n(
		c,
		errors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}
