package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
	domainerrors "github.com/imovelhub/imovelhub-backend/internal/domain/errors"
	"github.com/imovelhub/imovelhub-backend/internal/domain/repositories"
	"github.com/imovelhub/imovelhub-backend/internal/domain/valueobjects"
)

// Código SQLSTATE para unique_violation
const pgUniqueViolation = "23505"

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		// A checagem de duplicata no serviço é check-then-create; uma
		// inserção concorrente ainda esbarra no índice único do email.
		if isUniqueViolation(err) {
			return domainerrors.ErrEmailAlreadyExists
		}
		return err
	}

	user.ID = model.ID
	user.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	if err := db.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := r.getDB(ctx)
	return db.Save(model).Error
}

// Delete remove o registro definitivamente (não há soft delete)
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	db := r.getDB(ctx)
	return db.Delete(&UserModel{}, id).Error
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	var models []*UserModel

	query := r.filteredQuery(ctx, filters)

	take := filters.Take
	if take < 1 {
		take = 20
	}
	if take > 100 {
		take = 100
	}
	skip := filters.Skip
	if skip < 0 {
		skip = 0
	}

	query = query.Order("created_at DESC").Limit(take).Offset(skip)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UserRepository) Count(ctx context.Context, filters repositories.UserFilters) (int64, error) {
	var total int64
	if err := r.filteredQuery(ctx, filters).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// ListTenants executa uma variante de filtro de visibilidade sobre os
// inquilinos. O switch é exaustivo sobre as variantes conhecidas; uma
// variante nova sem tratamento é um erro de programação.
func (r *UserRepository) ListTenants(ctx context.Context, filter repositories.TenantFilter) ([]*entities.User, error) {
	db := r.getDB(ctx)
	query := db.Model(&UserModel{}).Where("role = ?", string(entities.RoleInquilino))

	switch f := filter.(type) {
	case repositories.AllTenants:
		// sem restrição de posse

	case repositories.TenantsOwnedBy:
		query = query.Where("owner_id = ?", f.OwnerID)

	case repositories.TenantsOfAgency:
		query = query.Where("agency_id = ?", f.AgencyID)

	case repositories.TenantsCreatedBy:
		query = query.Where("created_by IN ?", f.CreatorIDs)
		if f.AgencyID != nil {
			query = query.Where("agency_id = ?", *f.AgencyID)
		}

	default:
		return nil, fmt.Errorf("unsupported tenant filter %T", filter)
	}

	var models []*UserModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UserRepository) ListBrokerIDs(ctx context.Context, managerID int64, agencyID *int64) ([]int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&UserModel{}).
		Where("role = ?", string(entities.RoleBroker)).
		Where("created_by = ?", managerID)

	if agencyID != nil {
		query = query.Where("agency_id = ?", *agencyID)
	}

	var ids []int64
	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *UserRepository) filteredQuery(ctx context.Context, filters repositories.UserFilters) *gorm.DB {
	db := r.getDB(ctx)
	query := db.Model(&UserModel{})

	if filters.Role != nil {
		query = query.Where("role = ?", string(*filters.Role))
	}
	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}
	if filters.AgencyID != nil {
		query = query.Where("agency_id = ?", *filters.AgencyID)
	}

	return query
}

// isUniqueViolation detecta violação de índice único (23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// getDB extrai DB do contexto (para suportar transações)
func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	model := &UserModel{
		ID:           user.ID,
		Email:        user.Email.String(),
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Status:       string(user.Status),
		IsFrozen:     user.IsFrozen,
		FrozenReason: user.FrozenReason,
		AgencyID:     user.AgencyID,
		CompanyID:    user.CompanyID,
		OwnerID:      user.OwnerID,
		CreatedBy:    user.CreatedBy,
		Phone:        user.Phone,
		Document:     user.Document,
		BirthDate:    user.BirthDate,
		Address:      user.Address,
		CEP:          user.CEP,
		Neighborhood: user.Neighborhood,
		City:         user.City,
		State:        user.State,
	}

	if !user.CreatedAt.IsZero() {
		model.CreatedAt = user.CreatedAt.Unix()
	}
	if !user.UpdatedAt.IsZero() {
		model.UpdatedAt = user.UpdatedAt.Unix()
	}

	return model
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:           model.ID,
		Email:        email,
		Name:         model.Name,
		PasswordHash: model.PasswordHash,
		Role:         entities.Role(model.Role),
		Status:       entities.Status(model.Status),
		IsFrozen:     model.IsFrozen,
		FrozenReason: model.FrozenReason,
		AgencyID:     model.AgencyID,
		CompanyID:    model.CompanyID,
		OwnerID:      model.OwnerID,
		CreatedBy:    model.CreatedBy,
		Phone:        model.Phone,
		Document:     model.Document,
		BirthDate:    model.BirthDate,
		Address:      model.Address,
		CEP:          model.CEP,
		Neighborhood: model.Neighborhood,
		City:         model.City,
		State:        model.State,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	result := make([]*entities.User, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}

	return result, nil
}
