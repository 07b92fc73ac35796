package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/bank-bukti-api/internal/dto"
	"github.com/noah-isme/bank-bukti-api/internal/middleware"
	appErrors "github.com/noah-isme/bank-bukti-api/pkg/errors"
	"github.com/noah-isme/bank-bukti-api/pkg/response"
)

type dashboardService interface {
	Stats(ctx context.Context, date time.Time, warningDays *int) (*dto.DashboardResponse, bool, error)
	Deadline(dueDate string, date time.Time, warningDays *int) dto.DeadlineResponse
}

// DashboardHandler wires the dashboard service to HTTP endpoints.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats godoc
// @Summary Fulfillment dashboard statistics
// @Tags Dashboard
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD). Defaults to today"
// @Param warningDays query int false "Warning window override in days"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	date, err := dateQuery(c, "date")
	if err != nil {
		response.Error(c, err)
		return
	}
	warningDays, err := intQuery(c, "warningDays")
	if err != nil {
		response.Error(c, err)
		return
	}
	summary, cacheHit, err := h.service.Stats(c.Request.Context(), date, warningDays)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, summary, middleware.ExtractMeta(c))
}

// Deadline godoc
// @Summary Classify a single due date
// @Tags Dashboard
// @Produce json
// @Param tenggat query string true "Due date (YYYY-MM-DD)"
// @Param date query string false "Reference date (YYYY-MM-DD). Defaults to today"
// @Param warningDays query int false "Warning window override in days"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /deadline [get]
func (h *DashboardHandler) Deadline(c *gin.Context) {
	dueDate := strings.TrimSpace(c.Query("tenggat"))
	if dueDate == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "tenggat is required"))
		return
	}
	date, err := dateQuery(c, "date")
	if err != nil {
		response.Error(c, err)
		return
	}
	warningDays, err := intQuery(c, "warningDays")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, h.service.Deadline(dueDate, date, warningDays))
}
