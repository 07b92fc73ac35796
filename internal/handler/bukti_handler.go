package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/bank-bukti-api/internal/dto"
	"github.com/noah-isme/bank-bukti-api/internal/models"
	appErrors "github.com/noah-isme/bank-bukti-api/pkg/errors"
	"github.com/noah-isme/bank-bukti-api/pkg/response"
)

type evidenceService interface {
	List(ctx context.Context) ([]dto.EvidenceRow, error)
	Get(ctx context.Context, id string) (*models.EvidenceItem, error)
	Create(ctx context.Context, payload dto.EvidencePayload) (*models.EvidenceItem, error)
	Update(ctx context.Context, id string, payload dto.EvidencePayload) (*models.EvidenceItem, error)
	Delete(ctx context.Context, id string) error
}

// EvidenceHandler exposes evidence bank (bukti) endpoints.
type EvidenceHandler struct {
	service evidenceService
}

// NewEvidenceHandler constructs the handler.
func NewEvidenceHandler(service evidenceService) *EvidenceHandler {
	return &EvidenceHandler{service: service}
}

// List godoc
// @Summary List evidence items
// @Tags Bukti
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /bukti [get]
func (h *EvidenceHandler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, map[string]interface{}{"total": len(rows)})
}

// Get godoc
// @Summary Get evidence item
// @Tags Bukti
// @Produce json
// @Param id path string true "Evidence ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /bukti/{id} [get]
func (h *EvidenceHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Create godoc
// @Summary Create evidence item
// @Tags Bukti
// @Accept json
// @Produce json
// @Param payload body dto.EvidencePayload true "Evidence payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /bukti [post]
func (h *EvidenceHandler) Create(c *gin.Context) {
	var payload dto.EvidencePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid bukti payload"))
		return
	}
	item, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Update evidence item
// @Tags Bukti
// @Accept json
// @Produce json
// @Param id path string true "Evidence ID"
// @Param payload body dto.EvidencePayload true "Evidence payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /bukti/{id} [put]
func (h *EvidenceHandler) Update(c *gin.Context) {
	var payload dto.EvidencePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid bukti payload"))
		return
	}
	item, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Delete godoc
// @Summary Delete evidence item
// @Tags Bukti
// @Param id path string true "Evidence ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /bukti/{id} [delete]
func (h *EvidenceHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
