package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleCEO           Role = "CEO"
	RoleAdmin         Role = "ADMIN"
	RoleAgencyAdmin   Role = "AGENCY_ADMIN"
	RoleAgencyManager Role = "AGENCY_MANAGER"
	RoleBroker        Role = "BROKER"
	RoleProprietario  Role = "PROPRIETARIO"
	RoleInquilino     Role = "INQUILINO"
)

// Status representa o estado da conta
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusSuspended Status = "SUSPENDED"
)

// IsValid verifica se o role é um dos valores conhecidos
func (r Role) IsValid() bool {
	switch r {
	case RoleCEO, RoleAdmin, RoleAgencyAdmin, RoleAgencyManager,
		RoleBroker, RoleProprietario, RoleInquilino:
		return true
	}
	return false
}

// IsPlatformAdmin verifica se o role tem autoridade global na plataforma
func (r Role) IsPlatformAdmin() bool {
	return r == RoleCEO || r == RoleAdmin
}

// IsValid verifica se o status é um dos valores conhecidos
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}
