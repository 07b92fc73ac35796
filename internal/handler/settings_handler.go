package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/bank-bukti-api/internal/dto"
	appErrors "github.com/noah-isme/bank-bukti-api/pkg/errors"
	"github.com/noah-isme/bank-bukti-api/pkg/response"
)

type settingsService interface {
	WarningDays() int
	SetWarningDays(days int) int
}

// SettingsHandler exposes the adjustable warning window.
type SettingsHandler struct {
	service settingsService
}

// NewSettingsHandler constructs the handler.
func NewSettingsHandler(service settingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// GetWarningDays godoc
// @Summary Current warning window
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings/warning-days [get]
func (h *SettingsHandler) GetWarningDays(c *gin.Context) {
	days := h.service.WarningDays()
	response.JSON(c, http.StatusOK, dto.WarningDaysSetting{WarningDays: &days})
}

// UpdateWarningDays godoc
// @Summary Adjust the warning window
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body dto.WarningDaysSetting true "Warning window"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /settings/warning-days [put]
func (h *SettingsHandler) UpdateWarningDays(c *gin.Context) {
	var req dto.WarningDaysSetting
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid settings payload"))
		return
	}
	if req.WarningDays == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "warningDays is required"))
		return
	}
	days := h.service.SetWarningDays(*req.WarningDays)
	response.JSON(c, http.StatusOK, dto.WarningDaysSetting{WarningDays: &days})
}
