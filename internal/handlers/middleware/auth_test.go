package middleware_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
	"github.com/imovelhub/imovelhub-backend/internal/domain/ports"
	"github.com/imovelhub/imovelhub-backend/internal/domain/repositories"
	"github.com/imovelhub/imovelhub-backend/internal/domain/valueobjects"
	"github.com/imovelhub/imovelhub-backend/internal/handlers/middleware"
	"github.com/imovelhub/imovelhub-backend/internal/infrastructure/auth"
	"github.com/imovelhub/imovelhub-backend/internal/infrastructure/config"
	"github.com/imovelhub/imovelhub-backend/internal/services"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

// stubUserRepo serve usuários fixos por id; só FindByID importa aqui
type stubUserRepo struct {
	users map[int64]*entities.User
}

func (r *stubUserRepo) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	return r.users[id], nil
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email.String() == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Create(ctx context.Context, user *entities.User) error { return nil }
func (r *stubUserRepo) Update(ctx context.Context, user *entities.User) error { return nil }
func (r *stubUserRepo) Delete(ctx context.Context, id int64) error            { return nil }
func (r *stubUserRepo) List(ctx context.Context, f repositories.UserFilters) ([]*entities.User, error) {
	return nil, nil
}
func (r *stubUserRepo) Count(ctx context.Context, f repositories.UserFilters) (int64, error) {
	return 0, nil
}
func (r *stubUserRepo) ListTenants(ctx context.Context, f repositories.TenantFilter) ([]*entities.User, error) {
	return nil, nil
}
func (r *stubUserRepo) ListBrokerIDs(ctx context.Context, managerID int64, agencyID *int64) ([]int64, error) {
	return nil, nil
}

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...any)    {}
func (nopLogger) Error(msg string, args ...any)   {}
func (nopLogger) Debug(msg string, args ...any)   {}
func (nopLogger) Warn(msg string, args ...any)    {}
func (l nopLogger) With(args ...any) ports.Logger { return l }

func testUser(id int64, email string, role entities.Role) *entities.User {
	addr, err := valueobjects.NewEmail(email)
	if err != nil {
		panic(err)
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	return &entities.User{
		ID:           id,
		Email:        addr,
		Name:         "Usuário " + email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       entities.StatusActive,
		CreatedAt:    time.Now(),
	}
}

// buildTestApp monta um app Gin mínimo com o middleware de autenticação
// e um handler que devolve a identidade resolvida.
func buildTestApp(t *testing.T, users ...*entities.User) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &stubUserRepo{users: make(map[int64]*entities.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}

	tokens := auth.NewTokenManager(&config.JWTConfig{
		Secret:       testJWTSecret,
		Issuer:       "imovelhub-test",
		AccessExpiry: time.Hour,
	})
	authService := services.NewAuthService(repo, tokens, nopLogger{})
	authMiddleware := middleware.NewAuthMiddleware(tokens, authService)

	router := gin.New()
	router.GET("/protected", authMiddleware.Authenticate(), func(c *gin.Context) {
		identity, _ := middleware.GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{
			"subjectId": identity.SubjectID,
			"role":      string(identity.Role),
		})
	})
	router.GET("/admin-only",
		authMiddleware.Authenticate(),
		middleware.RequireRoles(entities.RoleCEO, entities.RoleAdmin),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		},
	)

	return router, tokens
}

func doRequest(t *testing.T, router *gin.Engine, path string, configure func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if configure != nil {
		configure(req)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func tokenFor(t *testing.T, tokens *auth.TokenManager, user *entities.User) string {
	t.Helper()
	token, _, err := tokens.GenerateAccessToken(user.IDString(), string(user.Role))
	require.NoError(t, err)
	return token
}

func TestAuthenticate_CookieTemPrioridadeSobreHeader(t *testing.T) {
	cookieUser := testUser(1, "cookie@example.com", entities.RoleAdmin)
	headerUser := testUser(2, "header@example.com", entities.RoleBroker)
	router, tokens := buildTestApp(t, cookieUser, headerUser)

	resp := doRequest(t, router, "/protected", func(req *http.Request) {
		req.AddCookie(&http.Cookie{
			Name:  middleware.AccessTokenCookie,
			Value: tokenFor(t, tokens, cookieUser),
		})
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, tokens, headerUser))
	})

	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "1", body["subjectId"], "o cookie deve vencer o header")
}

func TestAuthenticate_AceitaBearerSemCookie(t *testing.T) {
	user := testUser(2, "header@example.com", entities.RoleBroker)
	router, tokens := buildTestApp(t, user)

	resp := doRequest(t, router, "/protected", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, tokens, user))
	})

	require.Equal(t, http.StatusOK, resp.Code)
}

func TestAuthenticate_SemCredencial(t *testing.T) {
	router, _ := buildTestApp(t)

	resp := doRequest(t, router, "/protected", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthenticate_TokenInvalido(t *testing.T) {
	router, _ := buildTestApp(t)

	resp := doRequest(t, router, "/protected", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer nao-e-um-jwt")
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthenticate_UsuarioInexistente(t *testing.T) {
	ghost := testUser(42, "ghost@example.com", entities.RoleBroker)
	router, tokens := buildTestApp(t) // repo vazio

	resp := doRequest(t, router, "/protected", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, tokens, ghost))
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthenticate_ContaInativa(t *testing.T) {
	user := testUser(3, "inactive@example.com", entities.RoleBroker)
	user.Status = entities.StatusInactive
	router, tokens := buildTestApp(t, user)

	resp := doRequest(t, router, "/protected", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, tokens, user))
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthenticate_ContaCongelada(t *testing.T) {
	t.Run("com motivo armazenado", func(t *testing.T) {
		reason := "Pagamento pendente"
		user := testUser(4, "frozen@example.com", entities.RoleBroker)
		user.IsFrozen = true
		user.FrozenReason = &reason
		router, tokens := buildTestApp(t, user)

		resp := doRequest(t, router, "/protected", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, tokens, user))
		})

		require.Equal(t, http.StatusUnauthorized, resp.Code)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), reason, "o motivo armazenado aparece na resposta")
	})

	t.Run("sem motivo usa a mensagem padrão", func(t *testing.T) {
		user := testUser(5, "frozen2@example.com", entities.RoleBroker)
		user.IsFrozen = true
		router, tokens := buildTestApp(t, user)

		resp := doRequest(t, router, "/protected", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, tokens, user))
		})

		require.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.Contains(t, resp.Body.String(), "error.account_frozen")
	})
}

func TestRequireRoles(t *testing.T) {
	admin := testUser(1, "admin@example.com", entities.RoleAdmin)
	broker := testUser(2, "broker@example.com", entities.RoleBroker)
	router, tokens := buildTestApp(t, admin, broker)

	t.Run("papel permitido passa", func(t *testing.T) {
		resp := doRequest(t, router, "/admin-only", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, tokens, admin))
		})
		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("papel fora da lista é proibido", func(t *testing.T) {
		resp := doRequest(t, router, "/admin-only", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, tokens, broker))
		})
		assert.Equal(t, http.StatusForbidden, resp.Code)
	})
}
