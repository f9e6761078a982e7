package dto

import (
	"time"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
)

// UpdateSettingRequest representa a escrita de uma configuração
type UpdateSettingRequest struct {
	Value       string  `json:"value" binding:"required"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// SettingResponse representa uma configuração chave/valor
type SettingResponse struct {
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
	UpdatedAt   string  `json:"updatedAt"`
}

// PaymentConfigRequest valida os percentuais na faixa 0–100
type PaymentConfigRequest struct {
	PlatformFee *float64 `json:"platformFee" binding:"required,gte=0,lte=100"`
	AgencyFee   *float64 `json:"agencyFee" binding:"required,gte=0,lte=100"`
}

// PaymentConfigResponse representa os percentuais vigentes
type PaymentConfigResponse struct {
	PlatformFee float64 `json:"platformFee"`
	AgencyFee   float64 `json:"agencyFee"`
}

// ToSettingResponse converte uma entidade Setting
func ToSettingResponse(setting *entities.Setting) SettingResponse {
	return SettingResponse{
		Key:         setting.Key,
		Value:       setting.Value,
		Description: setting.Description,
		UpdatedAt:   setting.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToPaymentConfigResponse converte a configuração de pagamento
func ToPaymentConfigResponse(config *entities.PaymentConfig) PaymentConfigResponse {
	return PaymentConfigResponse{
		PlatformFee: config.PlatformFee,
		AgencyFee:   config.AgencyFee,
	}
}
