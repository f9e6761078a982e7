package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
	domainerrors "github.com/imovelhub/imovelhub-backend/internal/domain/errors"
	"github.com/imovelhub/imovelhub-backend/internal/domain/repositories"
)

// Código SQLSTATE para undefined_table
const pgUndefinedTable = "42P01"

// SettingRepository implementa repositories.SettingRepository.
// A tabela settings é migrada separadamente das demais; enquanto a
// migração não roda, leituras respondem "sem dados" e escritas falham
// com ErrSettingsUnavailable.
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository cria um novo SettingRepository
func NewSettingRepository(db *gorm.DB) repositories.SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Get(ctx context.Context, key string) (*entities.Setting, error) {
	var model SettingModel

	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || isUndefinedTable(err) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *SettingRepository) GetAll(ctx context.Context) ([]*entities.Setting, error) {
	var models []*SettingModel

	if err := r.db.WithContext(ctx).Order("key").Find(&models).Error; err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, err
	}

	settings := make([]*entities.Setting, 0, len(models))
	for _, model := range models {
		settings = append(settings, r.toEntity(model))
	}
	return settings, nil
}

func (r *SettingRepository) Upsert(ctx context.Context, setting *entities.Setting) error {
	model := &SettingModel{
		Key:         setting.Key,
		Value:       setting.Value,
		Description: setting.Description,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "description", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		if isUndefinedTable(err) {
			return domainerrors.ErrSettingsUnavailable
		}
		return err
	}

	setting.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

// isUndefinedTable detecta schema não migrado (42P01)
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable
}

func (r *SettingRepository) toEntity(model *SettingModel) *entities.Setting {
	return &entities.Setting{
		Key:         model.Key,
		Value:       model.Value,
		Description: model.Description,
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}
}
