package services

import (
	"context"
	"strconv"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
	"github.com/imovelhub/imovelhub-backend/internal/domain/errors"
	"github.com/imovelhub/imovelhub-backend/internal/domain/ports"
	"github.com/imovelhub/imovelhub-backend/internal/domain/repositories"
)

// Scope é a restrição de visibilidade derivada do papel do chamador.
// No uso normal apenas um entre OwnerID, BrokerID e ManagerID vem
// preenchido, mas o resolvedor tolera combinações.
type Scope struct {
	OwnerID   *int64
	AgencyID  *int64
	BrokerID  *int64
	ManagerID *int64
}

// IsEmpty indica autoridade de plataforma (nenhuma restrição)
func (s Scope) IsEmpty() bool {
	return s.OwnerID == nil && s.AgencyID == nil && s.BrokerID == nil && s.ManagerID == nil
}

// TenantService resolve qual conjunto de inquilinos um chamador enxerga
type TenantService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewTenantService cria um novo TenantService
func NewTenantService(userRepo repositories.UserRepository, logger ports.Logger) *TenantService {
	return &TenantService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ScopeForIdentity deriva o Scope do papel do usuário autenticado.
// Inquilinos não listam inquilinos. Papéis de imobiliária exigem o
// vínculo com uma agência: sem ele o escopo viraria autoridade de
// plataforma, e a derivação falha com ErrForbidden.
func (s *TenantService) ScopeForIdentity(identity *Identity) (Scope, error) {
	selfID, err := strconv.ParseInt(identity.SubjectID, 10, 64)
	if err != nil {
		return Scope{}, errors.ErrUnauthorized
	}

	var agencyID *int64
	if identity.AgencyID != "" {
		id, err := strconv.ParseInt(identity.AgencyID, 10, 64)
		if err != nil {
			return Scope{}, errors.ErrUnauthorized
		}
		agencyID = &id
	}

	switch identity.Role {
	case entities.RoleCEO, entities.RoleAdmin:
		return Scope{}, nil
	case entities.RoleProprietario:
		return Scope{OwnerID: &selfID}, nil
	case entities.RoleAgencyAdmin:
		if agencyID == nil {
			return Scope{}, errors.ErrForbidden
		}
		return Scope{AgencyID: agencyID}, nil
	case entities.RoleAgencyManager:
		if agencyID == nil {
			return Scope{}, errors.ErrForbidden
		}
		return Scope{ManagerID: &selfID, AgencyID: agencyID}, nil
	case entities.RoleBroker:
		return Scope{BrokerID: &selfID, AgencyID: agencyID}, nil
	default:
		return Scope{}, errors.ErrForbidden
	}
}

// ListVisibleTenants resolve o filtro do escopo e o executa.
// Ordem dos ramos (fixa):
//  1. escopo vazio         -> todos os inquilinos
//  2. ownerId              -> inquilinos do proprietário
//  3. agencyId sozinho     -> inquilinos da imobiliária
//  4. brokerId             -> inquilinos criados pelo corretor
//  5. managerId            -> inquilinos do gestor e dos corretores dele
//
// O ramo 4 vem antes do 5 e ignora agencyId mesmo quando presente.
func (s *TenantService) ListVisibleTenants(ctx context.Context, scope Scope) ([]*entities.User, error) {
	filter, err := s.buildFilter(ctx, scope)
	if err != nil {
		return nil, err
	}

	tenants, err := s.userRepo.ListTenants(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.logger.Info("tenant scope resolved",
		"owner_id", refLog(scope.OwnerID),
		"agency_id", refLog(scope.AgencyID),
		"broker_id", refLog(scope.BrokerID),
		"manager_id", refLog(scope.ManagerID),
		"count", len(tenants),
	)

	return tenants, nil
}

func (s *TenantService) buildFilter(ctx context.Context, scope Scope) (repositories.TenantFilter, error) {
	switch {
	case scope.IsEmpty():
		return repositories.AllTenants{}, nil

	case scope.OwnerID != nil:
		return repositories.TenantsOwnedBy{OwnerID: *scope.OwnerID}, nil

	case scope.AgencyID != nil && scope.BrokerID == nil && scope.ManagerID == nil:
		return repositories.TenantsOfAgency{AgencyID: *scope.AgencyID}, nil

	case scope.BrokerID != nil:
		return repositories.TenantsCreatedBy{CreatorIDs: []int64{*scope.BrokerID}}, nil

	case scope.ManagerID != nil:
		// Hierarquia de dois níveis: o gestor vê os próprios inquilinos
		// e os criados pelos corretores que ele cadastrou.
		brokerIDs, err := s.userRepo.ListBrokerIDs(ctx, *scope.ManagerID, scope.AgencyID)
		if err != nil {
			return nil, err
		}

		creators := append([]int64{*scope.ManagerID}, brokerIDs...)
		return repositories.TenantsCreatedBy{CreatorIDs: creators, AgencyID: scope.AgencyID}, nil
	}

	return nil, errors.ErrForbidden
}

func refLog(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
