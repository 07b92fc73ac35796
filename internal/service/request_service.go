package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/bank-bukti-api/internal/dto"
	"github.com/noah-isme/bank-bukti-api/internal/models"
	appErrors "github.com/noah-isme/bank-bukti-api/pkg/errors"
)

type requestRepository interface {
	List(ctx context.Context) ([]models.EvidenceRequest, error)
	GetByID(ctx context.Context, id string) (*models.EvidenceRequest, error)
	Create(ctx context.Context, req *models.EvidenceRequest) error
	Update(ctx context.Context, req *models.EvidenceRequest) error
	Delete(ctx context.Context, id string) error
}

type evidenceLister interface {
	List(ctx context.Context) ([]models.EvidenceItem, error)
}

type warningWindow interface {
	WarningDays() int
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context, pattern string) error
}

// RequestService manages evidence requests (permintaan).
type RequestService struct {
	requests  requestRepository
	evidence  evidenceLister
	settings  warningWindow
	cache     cacheInvalidator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// RequestServiceParams groups constructor dependencies.
type RequestServiceParams struct {
	Requests  requestRepository
	Evidence  evidenceLister
	Settings  warningWindow
	Cache     cacheInvalidator
	Validator *validator.Validate
	Logger    *zap.Logger
}

// NewRequestService constructs a RequestService.
func NewRequestService(params RequestServiceParams) *RequestService {
	validate := params.Validator
	if validate == nil {
		validate = NewValidator()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestService{
		requests:  params.Requests,
		evidence:  params.Evidence,
		settings:  params.Settings,
		cache:     params.Cache,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// List returns every request with its deadline classification and resolved evidence links.
func (s *RequestService) List(ctx context.Context) ([]dto.RequestRow, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, repositoryError(err, "failed to list permintaan")
	}
	evidence, err := s.evidence.List(ctx)
	if err != nil {
		return nil, repositoryError(err, "failed to list bukti")
	}
	byID := make(map[string]models.EvidenceItem, len(evidence))
	for _, item := range evidence {
		byID[item.ID] = item
	}

	now := s.now()
	warningDays := s.warningDays()
	rows := make([]dto.RequestRow, 0, len(requests))
	for _, req := range requests {
		row := dto.RequestRow{EvidenceRequest: req, LinkedEvidence: make([]dto.LinkedEvidence, 0, len(req.EvidenceIDs))}
		if req.Status == models.RequestStatusPending && strings.TrimSpace(req.DueDate) != "" {
			deadline := ClassifyDueDate(req.DueDate, warningDays, now)
			row.Deadline = &deadline
		}
		for _, id := range req.EvidenceIDs {
			link := dto.LinkedEvidence{ID: id}
			if item, ok := byID[id]; ok {
				link.Found = true
				link.Description = item.Description
				link.Link = item.Link
				link.Validity = item.Validity
			}
			row.LinkedEvidence = append(row.LinkedEvidence, link)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Fulfilled returns fulfilled requests in collection order.
func (s *RequestService) Fulfilled(ctx context.Context) ([]models.EvidenceRequest, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, repositoryError(err, "failed to list permintaan")
	}
	out := make([]models.EvidenceRequest, 0, len(requests))
	for _, req := range requests {
		if req.IsFulfilled() {
			out = append(out, req)
		}
	}
	return out, nil
}

// Get returns a single request.
func (s *RequestService) Get(ctx context.Context, id string) (*models.EvidenceRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, repositoryError(err, "failed to get permintaan")
	}
	return req, nil
}

// Create registers a new request. Missing ids are assigned sequentially by the store.
func (s *RequestService) Create(ctx context.Context, payload dto.RequestPayload) (*models.EvidenceRequest, error) {
	req, err := s.buildRequest(payload)
	if err != nil {
		return nil, err
	}
	req.ID = strings.TrimSpace(payload.ID)
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, repositoryError(err, "failed to create permintaan")
	}
	invalidateDashboard(ctx, s.cache, s.logger)
	s.logger.Info("permintaan created", zap.String("id", req.ID), zap.String("status", string(req.Status)))
	return req, nil
}

// Update replaces an existing request. Omitted status, tanggal and pemenuhan keep their stored
// values, so a partial edit never reopens a fulfilled request.
func (s *RequestService) Update(ctx context.Context, id string, payload dto.RequestPayload) (*models.EvidenceRequest, error) {
	if trimmed := strings.TrimSpace(payload.ID); trimmed != "" && trimmed != id {
		return nil, appErrors.Clone(appErrors.ErrValidation, "id cannot be changed")
	}
	existing, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, repositoryError(err, "failed to load permintaan")
	}
	carryOverRequest(&payload, existing)
	req, err := s.buildRequest(payload)
	if err != nil {
		return nil, err
	}
	req.ID = id
	if err := s.requests.Update(ctx, req); err != nil {
		return nil, repositoryError(err, "failed to update permintaan")
	}
	invalidateDashboard(ctx, s.cache, s.logger)
	return req, nil
}

// Delete removes a request. Evidence pointing at it is left untouched.
func (s *RequestService) Delete(ctx context.Context, id string) error {
	if err := s.requests.Delete(ctx, id); err != nil {
		return repositoryError(err, "failed to delete permintaan")
	}
	invalidateDashboard(ctx, s.cache, s.logger)
	s.logger.Info("permintaan deleted", zap.String("id", id))
	return nil
}

func (s *RequestService) buildRequest(payload dto.RequestPayload) (*models.EvidenceRequest, error) {
	payload.Date = strings.TrimSpace(payload.Date)
	payload.DueDate = strings.TrimSpace(payload.DueDate)
	if payload.FulfilledDate != nil && strings.TrimSpace(*payload.FulfilledDate) == "" {
		payload.FulfilledDate = nil
	}
	if err := s.validator.Struct(payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid permintaan payload")
	}

	now := s.now()
	req := &models.EvidenceRequest{
		Date:          payload.Date,
		Unit:          payload.Unit,
		Description:   payload.Description,
		DueDate:       payload.DueDate,
		PIC:           payload.PIC,
		EvidenceIDs:   normalizeIDs(payload.EvidenceIDs),
		Status:        payload.Status,
		FulfilledDate: payload.FulfilledDate,
	}
	if req.Date == "" {
		req.Date = now.Format(models.DateLayout)
	}
	if req.Status == "" {
		req.Status = models.RequestStatusPending
	}
	req.NormalizeFulfillment(now)
	return req, nil
}

// carryOverRequest fills the fields a PUT may omit from the stored request.
func carryOverRequest(payload *dto.RequestPayload, existing *models.EvidenceRequest) {
	if payload.Status == "" {
		payload.Status = existing.Status
	}
	if strings.TrimSpace(payload.Date) == "" {
		payload.Date = existing.Date
	}
	if payload.FulfilledDate == nil && existing.FulfilledDate != nil {
		date := *existing.FulfilledDate
		payload.FulfilledDate = &date
	}
}

func (s *RequestService) warningDays() int {
	if s.settings == nil {
		return DefaultWarningDays
	}
	return s.settings.WarningDays()
}

// invalidateDashboard drops cached dashboard payloads after a write. Keys embed store revisions,
// so a failure here only leaves unreachable entries behind until they expire.
func invalidateDashboard(ctx context.Context, cache cacheInvalidator, logger *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, dashboardCachePattern); err != nil {
		logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}

// normalizeIDs trims ids and drops blanks, keeping order.
func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// repositoryError passes typed errors through and wraps anything else as internal.
func repositoryError(err error, message string) error {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
