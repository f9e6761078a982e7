package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
	"github.com/imovelhub/imovelhub-backend/internal/domain/errors"
	"github.com/imovelhub/imovelhub-backend/internal/domain/repositories"
	"github.com/imovelhub/imovelhub-backend/internal/handlers/dto"
	"github.com/imovelhub/imovelhub-backend/internal/handlers/middleware"
	"github.com/imovelhub/imovelhub-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService   *services.UserService
	tenantService *services.TenantService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, tenantService *services.TenantService) *UserHandler {
	return &UserHandler{
		userService:   userService,
		tenantService: tenantService,
	}
}

// CreateUser cria um novo usuário. O criador registrado é sempre o
// usuário autenticado: created_by alimenta a cadeia de visibilidade de
// corretores e gestores.
func (h *UserHandler) CreateUser(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	creatorID, err := strconv.ParseInt(identity.SubjectID, 10, 64)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err)))
		return
	}

	input, err := h.toCreateInput(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_reference"))
		return
	}
	input.CreatedBy = &creatorID

	user, err := h.userService.CreateUser(c.Request.Context(), input)
	if err != nil {
		if errs.Is(err, errors.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.email_already_exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// GetUser busca um usuário por ID
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers lista usuários com paginação (skip/take) e filtros
func (h *UserHandler) ListUsers(c *gin.Context) {
	filters, ok := h.parseFilters(c)
	if !ok {
		return
	}

	page, err := h.userService.ListUsers(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.PagedUsersResponse{
		Data:  dto.ToUserResponses(page.Users),
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}

// UpdateUser aplica uma atualização parcial
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err)))
		return
	}

	input, err := h.toUpdateInput(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_reference"))
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, input)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateStatus altera o status da conta
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err)))
		return
	}

	user, err := h.userService.UpdateStatus(c.Request.Context(), id, entities.Status(req.Status))
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser remove o usuário definitivamente
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		h.handleUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": dto.T(c, "user_deleted")})
}

// ChangePassword troca a senha após conferir a atual
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err)))
		return
	}

	err := h.userService.ChangePassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errs.Is(err, errors.ErrPasswordMismatch) {
			c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.password_mismatch"))
			return
		}
		h.handleUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": dto.T(c, "password_changed")})
}

// ListTenants lista os inquilinos visíveis ao chamador.
// O escopo é derivado do papel do usuário autenticado, nunca do cliente.
func (h *UserHandler) ListTenants(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	scope, err := h.tenantService.ScopeForIdentity(identity)
	if err != nil {
		if errs.Is(err, errors.ErrForbidden) {
			c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
			return
		}
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	tenants, err := h.tenantService.ListVisibleTenants(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToTenantResponses(tenants))
}

func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	if errs.Is(err, errors.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
}

func (h *UserHandler) toCreateInput(req *dto.CreateUserRequest) (services.CreateUserInput, error) {
	agencyID, err := dto.ParseRef(req.AgencyID)
	if err != nil {
		return services.CreateUserInput{}, err
	}
	companyID, err := dto.ParseRef(req.CompanyID)
	if err != nil {
		return services.CreateUserInput{}, err
	}
	ownerID, err := dto.ParseRef(req.OwnerID)
	if err != nil {
		return services.CreateUserInput{}, err
	}
	birthDate, err := dto.ParseDate(req.BirthDate)
	if err != nil {
		return services.CreateUserInput{}, err
	}

	return services.CreateUserInput{
		Email:        req.Email,
		Name:         req.Name,
		Password:     req.Password,
		Role:         entities.Role(req.Role),
		AgencyID:     agencyID,
		CompanyID:    companyID,
		OwnerID:      ownerID,
		Phone:        req.Phone,
		Document:     req.Document,
		BirthDate:    birthDate,
		Address:      req.Address,
		CEP:          req.CEP,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
	}, nil
}

func (h *UserHandler) toUpdateInput(req *dto.UpdateUserRequest) (services.UpdateUserInput, error) {
	agencyID, err := dto.ParseRef(req.AgencyID)
	if err != nil {
		return services.UpdateUserInput{}, err
	}
	ownerID, err := dto.ParseRef(req.OwnerID)
	if err != nil {
		return services.UpdateUserInput{}, err
	}
	birthDate, err := dto.ParseDate(req.BirthDate)
	if err != nil {
		return services.UpdateUserInput{}, err
	}

	return services.UpdateUserInput{
		Name:         req.Name,
		Password:     req.Password,
		Phone:        req.Phone,
		Document:     req.Document,
		BirthDate:    birthDate,
		Address:      req.Address,
		CEP:          req.CEP,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		AgencyID:     agencyID,
		OwnerID:      ownerID,
	}, nil
}

func (h *UserHandler) parseFilters(c *gin.Context) (repositories.UserFilters, bool) {
	filters := repositories.UserFilters{}

	if v := c.Query("skip"); v != "" {
		skip, err := strconv.Atoi(v)
		if err != nil || skip < 0 {
			c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_pagination"))
			return filters, false
		}
		filters.Skip = skip
	}
	if v := c.Query("take"); v != "" {
		take, err := strconv.Atoi(v)
		if err != nil || take < 1 {
			c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_pagination"))
			return filters, false
		}
		filters.Take = take
	}
	if v := c.Query("role"); v != "" {
		role := entities.Role(v)
		if !role.IsValid() {
			c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_role"))
			return filters, false
		}
		filters.Role = &role
	}
	if v := c.Query("status"); v != "" {
		status := entities.Status(v)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_status"))
			return filters, false
		}
		filters.Status = &status
	}
	if v := c.Query("agencyId"); v != "" {
		agencyID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_reference"))
			return filters, false
		}
		filters.AgencyID = &agencyID
	}

	return filters, true
}

// parseID lê o parâmetro :id como inteiro decimal
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_id"))
		return 0, false
	}
	return id, true
}
