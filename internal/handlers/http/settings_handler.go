package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imovelhub/imovelhub-backend/internal/domain/errors"
	"github.com/imovelhub/imovelhub-backend/internal/handlers/dto"
	"github.com/imovelhub/imovelhub-backend/internal/services"
)

// SettingsHandler lida com a configuração chave/valor da plataforma
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler cria um novo SettingsHandler
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetAll retorna o mapeamento chave→valor completo
func (h *SettingsHandler) GetAll(c *gin.Context) {
	values, err := h.settingsService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, values)
}

// Get retorna a configuração de uma chave
func (h *SettingsHandler) Get(c *gin.Context) {
	setting, err := h.settingsService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errs.Is(err, errors.ErrSettingNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Setting"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingResponse(setting))
}

// Set grava (upsert) a configuração de uma chave
func (h *SettingsHandler) Set(c *gin.Context) {
	var req dto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err)))
		return
	}

	setting, err := h.settingsService.Set(c.Request.Context(), c.Param("key"), req.Value, req.Description)
	if err != nil {
		h.handleWriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingResponse(setting))
}

// GetPaymentConfig retorna os percentuais de pagamento vigentes
func (h *SettingsHandler) GetPaymentConfig(c *gin.Context) {
	config, err := h.settingsService.GetPaymentConfig(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentConfigResponse(config))
}

// UpdatePaymentConfig grava os percentuais (0–100) e retorna a
// configuração relida
func (h *SettingsHandler) UpdatePaymentConfig(c *gin.Context) {
	var req dto.PaymentConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err)))
		return
	}

	config, err := h.settingsService.UpdatePaymentConfig(c.Request.Context(), *req.PlatformFee, *req.AgencyFee)
	if err != nil {
		h.handleWriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentConfigResponse(config))
}

func (h *SettingsHandler) handleWriteError(c *gin.Context, err error) {
	if errs.Is(err, errors.ErrSettingsUnavailable) {
		c.JSON(http.StatusServiceUnavailable, dto.UnavailableErrorResponseI18n(c, "error.settings_unavailable"))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
}
