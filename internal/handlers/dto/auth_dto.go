package dto

import "github.com/imovelhub/imovelhub-backend/internal/services"

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse devolve o token também no corpo para clientes de API;
// clientes browser usam o cookie HTTP-only.
type LoginResponse struct {
	AccessToken string           `json:"accessToken"`
	ExpiresAt   string           `json:"expiresAt"`
	User        IdentityResponse `json:"user"`
}

// IdentityResponse é a projeção do usuário autenticado
type IdentityResponse struct {
	SubjectID string  `json:"subjectId"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	AgencyID  *string `json:"agencyId,omitempty"`
	CompanyID *string `json:"companyId,omitempty"`
}

// ToIdentityResponse converte a identidade do serviço de auth
func ToIdentityResponse(identity *services.Identity) IdentityResponse {
	response := IdentityResponse{
		SubjectID: identity.SubjectID,
		Email:     identity.Email,
		Role:      string(identity.Role),
	}

	if identity.AgencyID != "" {
		v := identity.AgencyID
		response.AgencyID = &v
	}
	if identity.CompanyID != "" {
		v := identity.CompanyID
		response.CompanyID = &v
	}

	return response
}
