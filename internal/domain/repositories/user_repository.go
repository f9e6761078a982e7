package repositories

import (
	"context"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id int64) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filters UserFilters) ([]*entities.User, error)
	Count(ctx context.Context, filters UserFilters) (int64, error)

	// ListTenants executa um filtro de visibilidade sobre os registros
	// de inquilinos (role INQUILINO), ordenados por criação decrescente.
	ListTenants(ctx context.Context, filter TenantFilter) ([]*entities.User, error)

	// ListBrokerIDs retorna os ids dos corretores criados pelo gestor
	// informado, opcionalmente restritos a uma imobiliária.
	ListBrokerIDs(ctx context.Context, managerID int64, agencyID *int64) ([]int64, error)
}

// UserFilters contém filtros para listagem de usuários
type UserFilters struct {
	Role     *entities.Role
	Status   *entities.Status
	AgencyID *int64
	Skip     int // Registros a pular
	Take     int // Itens por página (default: 20, max: 100)
}

// TenantFilter é a expressão de filtro discriminada construída pelo
// resolvedor de escopo. Cada variante corresponde a exatamente um ramo
// da regra de visibilidade; o gateway só precisa saber executá-las.
type TenantFilter interface {
	isTenantFilter()
}

// AllTenants libera todos os inquilinos (autoridade de plataforma)
type AllTenants struct{}

// TenantsOwnedBy restringe aos inquilinos com OwnerID igual ao informado
type TenantsOwnedBy struct {
	OwnerID int64
}

// TenantsOfAgency restringe aos inquilinos da imobiliária informada
type TenantsOfAgency struct {
	AgencyID int64
}

// TenantsCreatedBy restringe aos inquilinos criados por qualquer um dos
// ids informados; AgencyID, quando presente, restringe adicionalmente
// à imobiliária.
type TenantsCreatedBy struct {
	CreatorIDs []int64
	AgencyID   *int64
}

func (AllTenants) isTenantFilter()       {}
func (TenantsOwnedBy) isTenantFilter()   {}
func (TenantsOfAgency) isTenantFilter()  {}
func (TenantsCreatedBy) isTenantFilter() {}
