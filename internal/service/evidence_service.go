package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/bank-bukti-api/internal/dto"
	"github.com/noah-isme/bank-bukti-api/internal/models"
	appErrors "github.com/noah-isme/bank-bukti-api/pkg/errors"
)

type evidenceRepository interface {
	List(ctx context.Context) ([]models.EvidenceItem, error)
	GetByID(ctx context.Context, id string) (*models.EvidenceItem, error)
	Create(ctx context.Context, item *models.EvidenceItem) error
	Update(ctx context.Context, item *models.EvidenceItem) error
	Delete(ctx context.Context, id string) error
}

type requestLister interface {
	List(ctx context.Context) ([]models.EvidenceRequest, error)
}

// EvidenceService manages evidence items (bukti).
type EvidenceService struct {
	evidence  evidenceRepository
	requests  requestLister
	cache     cacheInvalidator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// EvidenceServiceParams groups constructor dependencies.
type EvidenceServiceParams struct {
	Evidence  evidenceRepository
	Requests  requestLister
	Cache     cacheInvalidator
	Validator *validator.Validate
	Logger    *zap.Logger
}

// NewEvidenceService constructs an EvidenceService.
func NewEvidenceService(params EvidenceServiceParams) *EvidenceService {
	validate := params.Validator
	if validate == nil {
		validate = NewValidator()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvidenceService{
		evidence:  params.Evidence,
		requests:  params.Requests,
		cache:     params.Cache,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// List returns every evidence item with its related request resolved.
func (s *EvidenceService) List(ctx context.Context) ([]dto.EvidenceRow, error) {
	items, err := s.evidence.List(ctx)
	if err != nil {
		return nil, repositoryError(err, "failed to list bukti")
	}
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, repositoryError(err, "failed to list permintaan")
	}
	byID := make(map[string]models.EvidenceRequest, len(requests))
	for _, req := range requests {
		byID[req.ID] = req
	}

	rows := make([]dto.EvidenceRow, 0, len(items))
	for _, item := range items {
		row := dto.EvidenceRow{EvidenceItem: item}
		if item.RelatedRequestID != "" {
			related := &dto.RelatedRequest{ID: item.RelatedRequestID}
			if req, ok := byID[item.RelatedRequestID]; ok {
				related.Found = true
				related.Description = req.Description
				related.Status = req.Status
			}
			row.RelatedRequest = related
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Get returns a single evidence item.
func (s *EvidenceService) Get(ctx context.Context, id string) (*models.EvidenceItem, error) {
	item, err := s.evidence.GetByID(ctx, id)
	if err != nil {
		return nil, repositoryError(err, "failed to get bukti")
	}
	return item, nil
}

// Create registers a new evidence item.
func (s *EvidenceService) Create(ctx context.Context, payload dto.EvidencePayload) (*models.EvidenceItem, error) {
	item, err := s.buildItem(payload)
	if err != nil {
		return nil, err
	}
	item.ID = strings.TrimSpace(payload.ID)
	if err := s.evidence.Create(ctx, item); err != nil {
		return nil, repositoryError(err, "failed to create bukti")
	}
	invalidateDashboard(ctx, s.cache, s.logger)
	s.logger.Info("bukti created", zap.String("id", item.ID), zap.String("unit", item.Unit))
	return item, nil
}

// Update replaces an existing evidence item. Omitted tglDiterima and validitas keep their
// stored values.
func (s *EvidenceService) Update(ctx context.Context, id string, payload dto.EvidencePayload) (*models.EvidenceItem, error) {
	if trimmed := strings.TrimSpace(payload.ID); trimmed != "" && trimmed != id {
		return nil, appErrors.Clone(appErrors.ErrValidation, "id cannot be changed")
	}
	existing, err := s.evidence.GetByID(ctx, id)
	if err != nil {
		return nil, repositoryError(err, "failed to load bukti")
	}
	if strings.TrimSpace(payload.ReceivedDate) == "" {
		payload.ReceivedDate = existing.ReceivedDate
	}
	if payload.Validity == "" {
		payload.Validity = existing.Validity
	}
	item, err := s.buildItem(payload)
	if err != nil {
		return nil, err
	}
	item.ID = id
	if err := s.evidence.Update(ctx, item); err != nil {
		return nil, repositoryError(err, "failed to update bukti")
	}
	invalidateDashboard(ctx, s.cache, s.logger)
	return item, nil
}

// Delete removes an evidence item. Requests listing it keep the id and resolve it as not found.
func (s *EvidenceService) Delete(ctx context.Context, id string) error {
	if err := s.evidence.Delete(ctx, id); err != nil {
		return repositoryError(err, "failed to delete bukti")
	}
	invalidateDashboard(ctx, s.cache, s.logger)
	s.logger.Info("bukti deleted", zap.String("id", id))
	return nil
}

func (s *EvidenceService) buildItem(payload dto.EvidencePayload) (*models.EvidenceItem, error) {
	payload.ReceivedDate = strings.TrimSpace(payload.ReceivedDate)
	payload.Link = strings.TrimSpace(payload.Link)
	payload.RelatedRequestID = strings.TrimSpace(payload.RelatedRequestID)
	if err := s.validator.Struct(payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid bukti payload")
	}
	item := &models.EvidenceItem{
		Category:         payload.Category,
		Description:      payload.Description,
		Link:             payload.Link,
		Unit:             payload.Unit,
		PIC:              payload.PIC,
		ReceivedDate:     payload.ReceivedDate,
		Validity:         payload.Validity,
		Notes:            payload.Notes,
		RelatedRequestID: payload.RelatedRequestID,
	}
	if item.ReceivedDate == "" {
		item.ReceivedDate = s.now().Format(models.DateLayout)
	}
	if item.Validity == "" {
		item.Validity = models.EvidenceValid
	}
	return item, nil
}
