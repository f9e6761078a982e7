package services

import (
	"context"
	goerrors "errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
	"github.com/imovelhub/imovelhub-backend/internal/domain/errors"
	"github.com/imovelhub/imovelhub-backend/internal/infrastructure/auth"
	"github.com/imovelhub/imovelhub-backend/internal/infrastructure/config"
)

func newAuthService(repo *fakeUserRepo) *AuthService {
	tokens := auth.NewTokenManager(&config.JWTConfig{
		Secret:       "test-secret-key-for-unit-tests",
		Issuer:       "imovelhub-test",
		AccessExpiry: time.Hour,
	})
	return NewAuthService(repo, tokens, nopLogger{})
}

func activeUser(id int64, email, password string) *entities.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	agencyID := int64(2)
	return &entities.User{
		ID:           id,
		Email:        mustEmail(email),
		Name:         "Usuário Teste",
		PasswordHash: string(hash),
		Role:         entities.RoleBroker,
		Status:       entities.StatusActive,
		AgencyID:     &agencyID,
		CreatedAt:    time.Now(),
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Run("credenciais válidas emitem token e identidade", func(t *testing.T) {
		service := newAuthService(newFakeUserRepo(activeUser(7, "broker@example.com", "senha123")))

		result, err := service.Login(context.Background(), "broker@example.com", "senha123")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if result.AccessToken == "" {
			t.Error("token não pode ser vazio")
		}
		if result.Identity.SubjectID != "7" {
			t.Errorf("esperava subject '7', obteve '%s'", result.Identity.SubjectID)
		}
		if result.Identity.AgencyID != "2" {
			t.Errorf("esperava agencyId '2', obteve '%s'", result.Identity.AgencyID)
		}
	})

	t.Run("senha errada é credencial inválida", func(t *testing.T) {
		service := newAuthService(newFakeUserRepo(activeUser(7, "broker@example.com", "senha123")))

		_, err := service.Login(context.Background(), "broker@example.com", "outra")
		if err != errors.ErrInvalidCredentials {
			t.Fatalf("esperava ErrInvalidCredentials, obteve %v", err)
		}
	})

	t.Run("email desconhecido é credencial inválida", func(t *testing.T) {
		service := newAuthService(newFakeUserRepo())

		_, err := service.Login(context.Background(), "ghost@example.com", "x")
		if err != errors.ErrInvalidCredentials {
			t.Fatalf("esperava ErrInvalidCredentials, obteve %v", err)
		}
	})
}

func TestAuthService_ResolveIdentity(t *testing.T) {
	t.Run("usuário ativo resolve a projeção", func(t *testing.T) {
		service := newAuthService(newFakeUserRepo(activeUser(7, "broker@example.com", "x")))

		identity, err := service.ResolveIdentity(context.Background(), "7")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if identity.Role != entities.RoleBroker {
			t.Errorf("esperava role BROKER, obteve %s", identity.Role)
		}
	})

	t.Run("subject inexistente é não autorizado", func(t *testing.T) {
		service := newAuthService(newFakeUserRepo())

		_, err := service.ResolveIdentity(context.Background(), "99")
		if err != errors.ErrUnauthorized {
			t.Fatalf("esperava ErrUnauthorized, obteve %v", err)
		}
	})

	t.Run("subject não numérico é não autorizado", func(t *testing.T) {
		service := newAuthService(newFakeUserRepo())

		_, err := service.ResolveIdentity(context.Background(), "abc")
		if err != errors.ErrUnauthorized {
			t.Fatalf("esperava ErrUnauthorized, obteve %v", err)
		}
	})

	t.Run("status diferente de ACTIVE é não autorizado", func(t *testing.T) {
		user := activeUser(7, "broker@example.com", "x")
		user.Status = entities.StatusSuspended
		service := newAuthService(newFakeUserRepo(user))

		_, err := service.ResolveIdentity(context.Background(), "7")
		if err != errors.ErrAccountInactive {
			t.Fatalf("esperava ErrAccountInactive, obteve %v", err)
		}
	})

	t.Run("conta congelada carrega o motivo armazenado", func(t *testing.T) {
		reason := "Pagamento pendente"
		user := activeUser(7, "broker@example.com", "x")
		user.IsFrozen = true
		user.FrozenReason = &reason
		service := newAuthService(newFakeUserRepo(user))

		_, err := service.ResolveIdentity(context.Background(), "7")

		var frozen *errors.FrozenAccountError
		if !goerrors.As(err, &frozen) {
			t.Fatalf("esperava FrozenAccountError, obteve %v", err)
		}
		if frozen.Reason != reason {
			t.Errorf("esperava motivo '%s', obteve '%s'", reason, frozen.Reason)
		}
	})

	t.Run("conta congelada sem motivo usa mensagem padrão", func(t *testing.T) {
		user := activeUser(7, "broker@example.com", "x")
		user.IsFrozen = true
		service := newAuthService(newFakeUserRepo(user))

		_, err := service.ResolveIdentity(context.Background(), "7")

		var frozen *errors.FrozenAccountError
		if !goerrors.As(err, &frozen) {
			t.Fatalf("esperava FrozenAccountError, obteve %v", err)
		}
		if frozen.Reason != "" {
			t.Errorf("esperava motivo vazio (mensagem padrão), obteve '%s'", frozen.Reason)
		}
	})
}
