package services

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
	"github.com/imovelhub/imovelhub-backend/internal/domain/errors"
	"github.com/imovelhub/imovelhub-backend/internal/domain/ports"
	"github.com/imovelhub/imovelhub-backend/internal/domain/repositories"
	"github.com/imovelhub/imovelhub-backend/internal/infrastructure/auth"
)

// Identity é a projeção reduzida do usuário autenticado.
// Todos os ids estão em forma decimal canônica; AgencyID e CompanyID
// ficam vazios quando o usuário não pertence a uma imobiliária/grupo.
type Identity struct {
	SubjectID string
	Email     string
	Role      entities.Role
	AgencyID  string
	CompanyID string
}

// AuthService resolve credenciais em identidades e emite access tokens
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenManager,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// LoginResult agrega o token emitido e a identidade do usuário
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Identity    *Identity
}

// Login valida email/senha e emite um access token
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	if err := checkAccount(user); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(user.IDString(), string(user.Role))
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.IDString(), "role", string(user.Role))

	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Identity:    identityOf(user),
	}, nil
}

// ResolveIdentity carrega o usuário do subject do token e valida a conta.
// Falha com Unauthorized quando o usuário não existe, não está ativo ou
// está congelado (neste caso com o motivo armazenado).
func (s *AuthService) ResolveIdentity(ctx context.Context, subjectID string) (*Identity, error) {
	id, err := strconv.ParseInt(subjectID, 10, 64)
	if err != nil {
		return nil, errors.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUnauthorized
	}

	if err := checkAccount(user); err != nil {
		return nil, err
	}

	return identityOf(user), nil
}

// checkAccount aplica as regras de conta ativa/congelada
func checkAccount(user *entities.User) error {
	if user.Status != entities.StatusActive {
		return errors.ErrAccountInactive
	}

	if user.IsFrozen {
		reason := ""
		if user.FrozenReason != nil {
			reason = *user.FrozenReason
		}
		return &errors.FrozenAccountError{Reason: reason}
	}

	return nil
}

func identityOf(user *entities.User) *Identity {
	identity := &Identity{
		SubjectID: user.IDString(),
		Email:     user.Email.String(),
		Role:      user.Role,
	}

	if ref := entities.RefString(user.AgencyID); ref != nil {
		identity.AgencyID = *ref
	}
	if ref := entities.RefString(user.CompanyID); ref != nil {
		identity.CompanyID = *ref
	}

	return identity
}
