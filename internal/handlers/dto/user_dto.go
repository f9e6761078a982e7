package dto

import (
	"strconv"
	"time"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
)

// Formato de data (sem hora) usado em birthDate
const dateLayout = "2006-01-02"

// CreateUserRequest representa a requisição para criar um usuário
type CreateUserRequest struct {
	Email        string  `json:"email" binding:"required,email"`
	Name         string  `json:"name" binding:"required,min=2,max=100"`
	Password     string  `json:"password" binding:"required,min=8,max=72"`
	Role         string  `json:"role" binding:"required,oneof=CEO ADMIN AGENCY_ADMIN AGENCY_MANAGER BROKER PROPRIETARIO INQUILINO"`
	AgencyID     *string `json:"agencyId" binding:"omitempty,number"`
	CompanyID    *string `json:"companyId" binding:"omitempty,number"`
	OwnerID      *string `json:"ownerId" binding:"omitempty,number"`
	Phone        *string `json:"phone" binding:"omitempty,max=30"`
	Document     *string `json:"document" binding:"omitempty,max=20"`
	BirthDate    *string `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	Address      *string `json:"address" binding:"omitempty,max=500"`
	CEP          *string `json:"cep" binding:"omitempty,max=10"`
	Neighborhood *string `json:"neighborhood" binding:"omitempty,max=200"`
	City         *string `json:"city" binding:"omitempty,max=200"`
	State        *string `json:"state" binding:"omitempty,len=2"`
}

// UpdateUserRequest representa a requisição de atualização parcial
type UpdateUserRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=2,max=100"`
	Password     *string `json:"password" binding:"omitempty,min=8,max=72"`
	Phone        *string `json:"phone" binding:"omitempty,max=30"`
	Document     *string `json:"document" binding:"omitempty,max=20"`
	BirthDate    *string `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	Address      *string `json:"address" binding:"omitempty,max=500"`
	CEP          *string `json:"cep" binding:"omitempty,max=10"`
	Neighborhood *string `json:"neighborhood" binding:"omitempty,max=200"`
	City         *string `json:"city" binding:"omitempty,max=200"`
	State        *string `json:"state" binding:"omitempty,len=2"`
	AgencyID     *string `json:"agencyId" binding:"omitempty,number"`
	OwnerID      *string `json:"ownerId" binding:"omitempty,number"`
}

// UpdateStatusRequest representa a requisição de mudança de status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE INACTIVE SUSPENDED"`
}

// ChangePasswordRequest representa a requisição de troca de senha
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=72"`
}

// UserResponse representa a resposta de um usuário.
// Ids são strings decimais; números largos não sobrevivem como número
// JSON.
type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Status    string  `json:"status"`
	AgencyID  *string `json:"agencyId,omitempty"`
	CompanyID *string `json:"companyId,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// TenantResponse é a projeção de um inquilino visível ao chamador.
// Senha e chaves relacionais internas nunca aparecem aqui.
type TenantResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Phone        *string `json:"phone"`
	Document     *string `json:"document"`
	BirthDate    *string `json:"birthDate"`
	Address      *string `json:"address"`
	CEP          *string `json:"cep"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	CreatedAt    *string `json:"createdAt"`
}

// PagedUsersResponse é a resposta paginada da listagem de usuários
type PagedUsersResponse struct {
	Data  []UserResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.IDString(),
		Email:     user.Email.String(),
		Name:      user.Name,
		Role:      string(user.Role),
		Status:    string(user.Status),
		AgencyID:  entities.RefString(user.AgencyID),
		CompanyID: entities.RefString(user.CompanyID),
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// ToTenantResponse converte uma entidade User para a projeção de inquilino
func ToTenantResponse(user *entities.User) TenantResponse {
	var birthDate *string
	if user.BirthDate != nil {
		s := user.BirthDate.Format(dateLayout)
		birthDate = &s
	}

	var createdAt *string
	if !user.CreatedAt.IsZero() {
		s := user.CreatedAt.UTC().Format(time.RFC3339)
		createdAt = &s
	}

	return TenantResponse{
		ID:           user.IDString(),
		Email:        user.Email.String(),
		Name:         user.Name,
		Phone:        user.Phone,
		Document:     user.Document,
		BirthDate:    birthDate,
		Address:      user.Address,
		CEP:          user.CEP,
		Neighborhood: user.Neighborhood,
		City:         user.City,
		State:        user.State,
		CreatedAt:    createdAt,
	}
}

// ToTenantResponses converte uma lista de inquilinos
func ToTenantResponses(users []*entities.User) []TenantResponse {
	responses := make([]TenantResponse, len(users))
	for i, user := range users {
		responses[i] = ToTenantResponse(user)
	}
	return responses
}

// ParseRef converte um id decimal opcional vindo do JSON para *int64
func ParseRef(value *string) (*int64, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(*value, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ParseDate converte uma data opcional "2006-01-02" para *time.Time
func ParseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
