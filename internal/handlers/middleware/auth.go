package middleware

import (
	goerrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
	"github.com/imovelhub/imovelhub-backend/internal/domain/errors"
	"github.com/imovelhub/imovelhub-backend/internal/handlers/dto"
	"github.com/imovelhub/imovelhub-backend/internal/infrastructure/auth"
	"github.com/imovelhub/imovelhub-backend/internal/services"
)

const (
	// AccessTokenCookie é o cookie HTTP-only usado por clientes browser
	AccessTokenCookie = "accessToken"
	// IdentityContextKey é a chave da identidade no contexto do Gin
	IdentityContextKey = "identity"
)

// AuthMiddleware autentica requisições via JWT e resolve a identidade
type AuthMiddleware struct {
	tokens      *auth.TokenManager
	authService *services.AuthService
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(tokens *auth.TokenManager, authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:      tokens,
		authService: authService,
	}
}

// Authenticate extrai e valida a credencial, resolvendo a identidade.
// O cookie accessToken tem prioridade sobre o header Authorization:
// clientes browser usam o cookie, clientes de API usam Bearer.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
			return
		}

		claims, err := m.tokens.ParseAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
			return
		}

		identity, err := m.authService.ResolveIdentity(c.Request.Context(), claims.Subject)
		if err != nil {
			abortIdentityError(c, err)
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

// RequireRoles autoriza apenas os papéis informados (após Authenticate)
func RequireRoles(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
	}
}

// GetIdentity retorna a identidade autenticada do contexto
func GetIdentity(c *gin.Context) (*services.Identity, bool) {
	value, exists := c.Get(IdentityContextKey)
	if !exists {
		return nil, false
	}

	identity, ok := value.(*services.Identity)
	return identity, ok
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func abortIdentityError(c *gin.Context, err error) {
	var frozen *errors.FrozenAccountError
	switch {
	case goerrors.As(err, &frozen):
		// O motivo armazenado substitui a mensagem padrão
		detailKey := "error.account_frozen"
		if frozen.Reason != "" {
			detailKey = frozen.Reason
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, detailKey))

	case goerrors.Is(err, errors.ErrAccountInactive):
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.account_inactive"))

	case goerrors.Is(err, errors.ErrUnauthorized):
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))

	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}
