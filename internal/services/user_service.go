package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
	"github.com/imovelhub/imovelhub-backend/internal/domain/errors"
	"github.com/imovelhub/imovelhub-backend/internal/domain/ports"
	"github.com/imovelhub/imovelhub-backend/internal/domain/repositories"
	"github.com/imovelhub/imovelhub-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		uow:      uow,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Email        string
	Name         string
	Password     string
	Role         entities.Role
	AgencyID     *int64
	CompanyID    *int64
	OwnerID      *int64
	CreatedBy    *int64
	Phone        *string
	Document     *string
	BirthDate    *time.Time
	Address      *string
	CEP          *string
	Neighborhood *string
	City         *string
	State        *string
}

// UpdateUserInput representa os dados para atualização parcial.
// Campos nil permanecem inalterados; Password, quando presente, é
// re-hasheado.
type UpdateUserInput struct {
	Name         *string
	Password     *string
	Phone        *string
	Document     *string
	BirthDate    *time.Time
	Address      *string
	CEP          *string
	Neighborhood *string
	City         *string
	State        *string
	AgencyID     *int64
	OwnerID      *int64
}

// UserPage é o resultado paginado da listagem
type UserPage struct {
	Users []*entities.User
	Total int64
	Page  int
	Limit int
}

// CreateUser cria um novo usuário com senha hasheada
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	s.logger.Info("creating user", "email", input.Email, "role", string(input.Role))

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        email,
		Name:         input.Name,
		PasswordHash: string(hash),
		Role:         input.Role,
		Status:       entities.StatusActive,
		AgencyID:     input.AgencyID,
		CompanyID:    input.CompanyID,
		OwnerID:      input.OwnerID,
		CreatedBy:    input.CreatedBy,
		Phone:        input.Phone,
		Document:     input.Document,
		BirthDate:    input.BirthDate,
		Address:      input.Address,
		CEP:          input.CEP,
		Neighborhood: input.Neighborhood,
		City:         input.City,
		State:        input.State,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.userRepo.Create(txCtx, user)
	}); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários com filtros e total
func (s *UserService) ListUsers(ctx context.Context, filters repositories.UserFilters) (*UserPage, error) {
	users, err := s.userRepo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	total, err := s.userRepo.Count(ctx, filters)
	if err != nil {
		return nil, err
	}

	limit := filters.Take
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	page := filters.Skip/limit + 1

	return &UserPage{
		Users: users,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// UpdateUser aplica uma atualização parcial
func (s *UserService) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*entities.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Document != nil {
		user.Document = input.Document
	}
	if input.BirthDate != nil {
		user.BirthDate = input.BirthDate
	}
	if input.Address != nil {
		user.Address = input.Address
	}
	if input.CEP != nil {
		user.CEP = input.CEP
	}
	if input.Neighborhood != nil {
		user.Neighborhood = input.Neighborhood
	}
	if input.City != nil {
		user.City = input.City
	}
	if input.State != nil {
		user.State = input.State
	}
	if input.AgencyID != nil {
		user.AgencyID = input.AgencyID
	}
	if input.OwnerID != nil {
		user.OwnerID = input.OwnerID
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateStatus altera o status da conta
func (s *UserService) UpdateStatus(ctx context.Context, id int64, status entities.Status) (*entities.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Status = status

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user status updated", "user_id", user.IDString(), "status", string(status))
	return user, nil
}

// DeleteUser remove o usuário definitivamente
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}

// ChangePassword troca a senha após conferir a senha atual
func (s *UserService) ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.GetUser(txCtx, id)
		if err != nil {
			return err
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
			return errors.ErrPasswordMismatch
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user.PasswordHash = string(hash)
		return s.userRepo.Update(txCtx, user)
	})
}
