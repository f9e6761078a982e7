package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrEmailAlreadyExists = errors.New("error.email_already_exists")
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrUnauthorized       = errors.New("error.unauthorized")
	ErrForbidden          = errors.New("error.forbidden")
	ErrAccountInactive    = errors.New("error.account_inactive")
	ErrPasswordMismatch   = errors.New("error.password_mismatch")
)

// Settings / catalog errors
var (
	ErrSettingNotFound     = errors.New("error.setting_not_found")
	ErrSettingsUnavailable = errors.New("error.settings_unavailable")
	ErrTemplateNotFound    = errors.New("error.template_not_found")
	ErrInvalidTemplateType = errors.New("error.invalid_template_type")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
	ProblemTypeUnavailable  = "/problems/service-unavailable"
)

// FrozenAccountError indica conta congelada; carrega o motivo armazenado
// (ou a mensagem padrão) para a resposta 401.
type FrozenAccountError struct {
	Reason string
}

func (e *FrozenAccountError) Error() string {
	return "error.account_frozen"
}
