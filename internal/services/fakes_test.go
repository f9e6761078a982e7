package services

import (
	"context"
	"sort"
	"time"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
	"github.com/imovelhub/imovelhub-backend/internal/domain/errors"
	"github.com/imovelhub/imovelhub-backend/internal/domain/ports"
	"github.com/imovelhub/imovelhub-backend/internal/domain/repositories"
	"github.com/imovelhub/imovelhub-backend/internal/domain/valueobjects"
)

// nopLogger descarta tudo; implementa ports.Logger
type nopLogger struct{}

func (nopLogger) Info(msg string, args ...any)    {}
func (nopLogger) Error(msg string, args ...any)   {}
func (nopLogger) Debug(msg string, args ...any)   {}
func (nopLogger) Warn(msg string, args ...any)    {}
func (l nopLogger) With(args ...any) ports.Logger { return l }

// fakeUnitOfWork executa a função sem transação real
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(ctx context.Context) error                   { return nil }
func (fakeUnitOfWork) Rollback(ctx context.Context) error                 { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// fakeUserRepo é um gateway em memória que reproduz a semântica dos
// filtros do gateway real, incluindo a ordenação por criação decrescente.
type fakeUserRepo struct {
	users      []*entities.User
	nextID     int64
	err        error
	lastFilter repositories.TenantFilter
}

func newFakeUserRepo(users ...*entities.User) *fakeUserRepo {
	repo := &fakeUserRepo{nextID: 1}
	for _, user := range users {
		if user.ID >= repo.nextID {
			repo.nextID = user.ID + 1
		}
		repo.users = append(repo.users, user)
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	if r.err != nil {
		return r.err
	}
	user.ID = r.nextID
	r.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.Email.String() == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entities.User) error {
	if r.err != nil {
		return r.err
	}
	for i, existing := range r.users {
		if existing.ID == user.ID {
			r.users[i] = user
			return nil
		}
	}
	return errors.ErrUserNotFound
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	for i, user := range r.users {
		if user.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	if r.err != nil {
		return nil, r.err
	}

	matched := r.matching(filters)
	sortByCreatedDesc(matched)

	take := filters.Take
	if take < 1 {
		take = 20
	}
	skip := filters.Skip
	if skip > len(matched) {
		skip = len(matched)
	}
	end := skip + take
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], nil
}

func (r *fakeUserRepo) Count(ctx context.Context, filters repositories.UserFilters) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.matching(filters))), nil
}

func (r *fakeUserRepo) ListTenants(ctx context.Context, filter repositories.TenantFilter) ([]*entities.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.lastFilter = filter

	var matched []*entities.User
	for _, user := range r.users {
		if !user.IsTenant() {
			continue
		}
		if tenantMatches(user, filter) {
			matched = append(matched, user)
		}
	}

	sortByCreatedDesc(matched)
	return matched, nil
}

func (r *fakeUserRepo) ListBrokerIDs(ctx context.Context, managerID int64, agencyID *int64) ([]int64, error) {
	if r.err != nil {
		return nil, r.err
	}

	var ids []int64
	for _, user := range r.users {
		if user.Role != entities.RoleBroker {
			continue
		}
		if user.CreatedBy == nil || *user.CreatedBy != managerID {
			continue
		}
		if agencyID != nil && (user.AgencyID == nil || *user.AgencyID != *agencyID) {
			continue
		}
		ids = append(ids, user.ID)
	}
	return ids, nil
}

func (r *fakeUserRepo) matching(filters repositories.UserFilters) []*entities.User {
	var matched []*entities.User
	for _, user := range r.users {
		if filters.Role != nil && user.Role != *filters.Role {
			continue
		}
		if filters.Status != nil && user.Status != *filters.Status {
			continue
		}
		if filters.AgencyID != nil && (user.AgencyID == nil || *user.AgencyID != *filters.AgencyID) {
			continue
		}
		matched = append(matched, user)
	}
	return matched
}

func tenantMatches(user *entities.User, filter repositories.TenantFilter) bool {
	switch f := filter.(type) {
	case repositories.AllTenants:
		return true
	case repositories.TenantsOwnedBy:
		return user.OwnerID != nil && *user.OwnerID == f.OwnerID
	case repositories.TenantsOfAgency:
		return user.AgencyID != nil && *user.AgencyID == f.AgencyID
	case repositories.TenantsCreatedBy:
		if f.AgencyID != nil && (user.AgencyID == nil || *user.AgencyID != *f.AgencyID) {
			return false
		}
		if user.CreatedBy == nil {
			return false
		}
		for _, creator := range f.CreatorIDs {
			if *user.CreatedBy == creator {
				return true
			}
		}
	}
	return false
}

func sortByCreatedDesc(users []*entities.User) {
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
}

// fakeSettingRepo reproduz o contrato do gateway de settings, inclusive
// a condição de tabela não migrada.
type fakeSettingRepo struct {
	settings     map[string]*entities.Setting
	tableMissing bool
	err          error
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{settings: make(map[string]*entities.Setting)}
}

func (r *fakeSettingRepo) Get(ctx context.Context, key string) (*entities.Setting, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.tableMissing {
		return nil, nil
	}
	return r.settings[key], nil
}

func (r *fakeSettingRepo) GetAll(ctx context.Context) ([]*entities.Setting, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.tableMissing {
		return nil, nil
	}
	all := make([]*entities.Setting, 0, len(r.settings))
	for _, setting := range r.settings {
		all = append(all, setting)
	}
	return all, nil
}

func (r *fakeSettingRepo) Upsert(ctx context.Context, setting *entities.Setting) error {
	if r.err != nil {
		return r.err
	}
	if r.tableMissing {
		return errors.ErrSettingsUnavailable
	}
	stored := *setting
	stored.UpdatedAt = time.Now()
	r.settings[setting.Key] = &stored
	return nil
}

// Helpers de construção de usuários

func mustEmail(s string) valueobjects.Email {
	email, err := valueobjects.NewEmail(s)
	if err != nil {
		panic(err)
	}
	return email
}

func ref(v int64) *int64 { return &v }

func newTenant(id int64, email string, createdAt time.Time) *entities.User {
	return &entities.User{
		ID:        id,
		Email:     mustEmail(email),
		Name:      "Inquilino " + email,
		Role:      entities.RoleInquilino,
		Status:    entities.StatusActive,
		CreatedAt: createdAt,
	}
}

func newBroker(id int64, email string, createdBy, agencyID *int64) *entities.User {
	return &entities.User{
		ID:        id,
		Email:     mustEmail(email),
		Name:      "Corretor " + email,
		Role:      entities.RoleBroker,
		Status:    entities.StatusActive,
		CreatedBy: createdBy,
		AgencyID:  agencyID,
		CreatedAt: time.Now(),
	}
}
