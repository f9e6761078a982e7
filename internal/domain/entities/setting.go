package entities

import "time"

// Setting é uma linha chave/valor de configuração da plataforma.
// Linhas são criadas sob demanda na primeira escrita (upsert).
type Setting struct {
	Key         string
	Value       string
	Description *string
	UpdatedAt   time.Time
}

// Chaves usadas pela configuração de pagamento
const (
	SettingPlatformFee = "payment.platform_fee"
	SettingAgencyFee   = "payment.agency_fee"
)

// Percentuais padrão aplicados quando a chave está ausente ou ilegível
const (
	DefaultPlatformFee = 2.0
	DefaultAgencyFee   = 8.0
)

// PaymentConfig agrega os percentuais cobrados por aluguel processado
type PaymentConfig struct {
	PlatformFee float64
	AgencyFee   float64
}
