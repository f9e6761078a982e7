package http

import (
	errs "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/imovelhub/imovelhub-backend/internal/domain/errors"
	"github.com/imovelhub/imovelhub-backend/internal/handlers/dto"
	"github.com/imovelhub/imovelhub-backend/internal/handlers/middleware"
	"github.com/imovelhub/imovelhub-backend/internal/services"
)

// AuthHandler lida com login, logout e identidade do usuário autenticado
type AuthHandler struct {
	authService  *services.AuthService
	secureCookie bool
}

// NewAuthHandler cria um novo AuthHandler.
// secureCookie deve ser true em produção (cookie só em HTTPS).
func NewAuthHandler(authService *services.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		secureCookie: secureCookie,
	}
}

// Login valida credenciais, emite o token e grava o cookie HTTP-only
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err)))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleLoginError(c, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	c.SetCookie(middleware.AccessTokenCookie, result.AccessToken, maxAge, "/", "", h.secureCookie, true)

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt.UTC().Format(time.RFC3339),
		User:        dto.ToIdentityResponse(result.Identity),
	})
}

// Logout expira o cookie de acesso
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": dto.T(c, "logged_out")})
}

// Me retorna a projeção do usuário autenticado
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToIdentityResponse(identity))
}

func (h *AuthHandler) handleLoginError(c *gin.Context, err error) {
	var frozen *errors.FrozenAccountError
	switch {
	case errs.Is(err, errors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.invalid_credentials"))

	case errs.Is(err, errors.ErrAccountInactive):
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.account_inactive"))

	case errs.As(err, &frozen):
		detailKey := "error.account_frozen"
		if frozen.Reason != "" {
			detailKey = frozen.Reason
		}
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, detailKey))

	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}
