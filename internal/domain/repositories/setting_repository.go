package repositories

import (
	"context"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
)

// SettingRepository define a interface para persistência de configurações.
//
// A tabela de settings pode ainda não existir (schema não migrado); as
// implementações devem sinalizar essa condição com
// errors.ErrSettingsUnavailable em escritas e tratá-la como "sem dados"
// em leituras. Qualquer outro erro do gateway propaga inalterado.
type SettingRepository interface {
	Get(ctx context.Context, key string) (*entities.Setting, error)
	GetAll(ctx context.Context) ([]*entities.Setting, error)
	Upsert(ctx context.Context, setting *entities.Setting) error
}
