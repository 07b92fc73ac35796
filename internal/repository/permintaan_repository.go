package repository

import (
	"context"

	"github.com/noah-isme/bank-bukti-api/internal/models"
)

// RequestIDPrefix prefixes generated evidence request ids.
const RequestIDPrefix = "PRM-"

// RequestRepository keeps evidence requests (permintaan) in memory, in insertion order.
type RequestRepository struct {
	store *recordStore[models.EvidenceRequest]
}

// NewRequestRepository constructs the repository pre-populated with seed records.
func NewRequestRepository(seed []models.EvidenceRequest) *RequestRepository {
	return &RequestRepository{store: newRecordStore(
		RequestIDPrefix,
		"permintaan",
		func(r models.EvidenceRequest) string { return r.ID },
		func(r *models.EvidenceRequest, id string) { r.ID = id },
		models.EvidenceRequest.Clone,
		seed,
	)}
}

// List returns copies of every request in collection order.
func (r *RequestRepository) List(ctx context.Context) ([]models.EvidenceRequest, error) {
	return r.store.list(), nil
}

// GetByID returns a single request.
func (r *RequestRepository) GetByID(ctx context.Context, id string) (*models.EvidenceRequest, error) {
	return r.store.get(id)
}

// Create appends a request, assigning the next id when none is given.
func (r *RequestRepository) Create(ctx context.Context, req *models.EvidenceRequest) error {
	created, err := r.store.create(req.Clone())
	if err != nil {
		return err
	}
	req.ID = created.ID
	return nil
}

// Update replaces the stored request with the same id.
func (r *RequestRepository) Update(ctx context.Context, req *models.EvidenceRequest) error {
	_, err := r.store.update(req.ID, req.Clone())
	return err
}

// Delete removes a request.
func (r *RequestRepository) Delete(ctx context.Context, id string) error {
	return r.store.delete(id)
}

// Revision increases on every successful write.
func (r *RequestRepository) Revision() uint64 {
	return r.store.currentRevision()
}
