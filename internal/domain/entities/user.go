package entities

import (
	"errors"
	"strconv"
	"time"

	"github.com/imovelhub/imovelhub-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário do sistema (staff, proprietário ou inquilino).
// Os campos AgencyID, CompanyID, OwnerID e CreatedBy são referências
// opcionais que formam a cadeia de escopo usada na listagem de inquilinos.
type User struct {
	ID           int64
	Email        valueobjects.Email
	Name         string
	PasswordHash string
	Role         Role
	Status       Status
	IsFrozen     bool
	FrozenReason *string
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
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive verifica se a conta está ativa (status ACTIVE e não congelada)
func (u *User) IsActive() bool {
	return u.Status == StatusActive && !u.IsFrozen
}

// IsTenant verifica se o usuário é um inquilino (cliente final)
func (u *User) IsTenant() bool {
	return u.Role == RoleInquilino
}

// IDString retorna o id em forma decimal canônica.
// Ids trafegam como string na borda HTTP para evitar perda de precisão
// de inteiros largos em JSON.
func (u *User) IDString() string {
	return strconv.FormatInt(u.ID, 10)
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if len(u.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	if !u.Status.IsValid() {
		return errors.New("invalid status")
	}

	return nil
}

// RefString converte uma referência opcional para forma decimal canônica.
// Retorna nil quando a referência está ausente.
func RefString(id *int64) *string {
	if id == nil {
		return nil
	}
	s := strconv.FormatInt(*id, 10)
	return &s
}
