package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/bank-bukti-api/internal/dto"
	"github.com/noah-isme/bank-bukti-api/internal/models"
	"github.com/noah-isme/bank-bukti-api/internal/service"
	appErrors "github.com/noah-isme/bank-bukti-api/pkg/errors"
	"github.com/noah-isme/bank-bukti-api/pkg/response"
)

type requestService interface {
	List(ctx context.Context) ([]dto.RequestRow, error)
	Get(ctx context.Context, id string) (*models.EvidenceRequest, error)
	Create(ctx context.Context, payload dto.RequestPayload) (*models.EvidenceRequest, error)
	Update(ctx context.Context, id string, payload dto.RequestPayload) (*models.EvidenceRequest, error)
	Delete(ctx context.Context, id string) error
}

type fulfilledExporter interface {
	FulfilledRequests(ctx context.Context, format string) (*service.ExportFile, error)
}

// RequestHandler exposes evidence request (permintaan) endpoints.
type RequestHandler struct {
	service  requestService
	exporter fulfilledExporter
}

// NewRequestHandler constructs the handler.
func NewRequestHandler(service requestService, exporter fulfilledExporter) *RequestHandler {
	return &RequestHandler{service: service, exporter: exporter}
}

// List godoc
// @Summary List evidence requests
// @Tags Permintaan
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /permintaan [get]
func (h *RequestHandler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, map[string]interface{}{"total": len(rows)})
}

// Get godoc
// @Summary Get evidence request
// @Tags Permintaan
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /permintaan/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	req, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, req)
}

// Create godoc
// @Summary Create evidence request
// @Tags Permintaan
// @Accept json
// @Produce json
// @Param payload body dto.RequestPayload true "Request payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /permintaan [post]
func (h *RequestHandler) Create(c *gin.Context) {
	var payload dto.RequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid permintaan payload"))
		return
	}
	req, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, req)
}

// Update godoc
// @Summary Update evidence request
// @Tags Permintaan
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param payload body dto.RequestPayload true "Request payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /permintaan/{id} [put]
func (h *RequestHandler) Update(c *gin.Context) {
	var payload dto.RequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid permintaan payload"))
		return
	}
	req, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, req)
}

// Delete godoc
// @Summary Delete evidence request
// @Tags Permintaan
// @Param id path string true "Request ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /permintaan/{id} [delete]
func (h *RequestHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Export godoc
// @Summary Download fulfilled requests
// @Tags Permintaan
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /permintaan/export [get]
func (h *RequestHandler) Export(c *gin.Context) {
	if h.exporter == nil {
		response.Error(c, appErrors.ErrDisabled)
		return
	}
	file, err := h.exporter.FulfilledRequests(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}
