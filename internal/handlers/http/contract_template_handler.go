package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imovelhub/imovelhub-backend/internal/domain/entities"
	"github.com/imovelhub/imovelhub-backend/internal/domain/errors"
	"github.com/imovelhub/imovelhub-backend/internal/handlers/dto"
	"github.com/imovelhub/imovelhub-backend/internal/services"
)

// ContractTemplateHandler expõe o catálogo de modelos de documento
type ContractTemplateHandler struct {
	templateService *services.ContractTemplateService
}

// NewContractTemplateHandler cria um novo ContractTemplateHandler
func NewContractTemplateHandler(templateService *services.ContractTemplateService) *ContractTemplateHandler {
	return &ContractTemplateHandler{
		templateService: templateService,
	}
}

// List retorna todos os modelos
func (h *ContractTemplateHandler) List(c *gin.Context) {
	templates := h.templateService.List()
	c.JSON(http.StatusOK, dto.ToContractTemplateResponses(templates))
}

// GetByID busca um modelo pelo id
func (h *ContractTemplateHandler) GetByID(c *gin.Context) {
	template, err := h.templateService.GetByID(c.Param("id"))
	if err != nil {
		if errs.Is(err, errors.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "ContractTemplate"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToContractTemplateResponse(template))
}

// ListByType filtra por tipo (CTR, ACD ou VST)
func (h *ContractTemplateHandler) ListByType(c *gin.Context) {
	templates, err := h.templateService.ListByType(entities.TemplateType(c.Param("type")))
	if err != nil {
		if errs.Is(err, errors.ErrInvalidTemplateType) {
			c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_template_type"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToContractTemplateResponses(templates))
}
