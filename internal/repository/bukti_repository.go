package repository

import (
	"context"

	"github.com/noah-isme/bank-bukti-api/internal/models"
)

// EvidenceIDPrefix prefixes generated evidence item ids.
const EvidenceIDPrefix = "BKT-"

// EvidenceRepository keeps evidence items (bukti) in memory, in insertion order.
type EvidenceRepository struct {
	store *recordStore[models.EvidenceItem]
}

// NewEvidenceRepository constructs the repository pre-populated with seed records.
func NewEvidenceRepository(seed []models.EvidenceItem) *EvidenceRepository {
	return &EvidenceRepository{store: newRecordStore(
		EvidenceIDPrefix,
		"bukti",
		func(e models.EvidenceItem) string { return e.ID },
		func(e *models.EvidenceItem, id string) { e.ID = id },
		func(e models.EvidenceItem) models.EvidenceItem { return e },
		seed,
	)}
}

// List returns copies of every evidence item in collection order.
func (r *EvidenceRepository) List(ctx context.Context) ([]models.EvidenceItem, error) {
	return r.store.list(), nil
}

// GetByID returns a single evidence item.
func (r *EvidenceRepository) GetByID(ctx context.Context, id string) (*models.EvidenceItem, error) {
	return r.store.get(id)
}

// Create appends an evidence item, assigning the next id when none is given.
func (r *EvidenceRepository) Create(ctx context.Context, item *models.EvidenceItem) error {
	created, err := r.store.create(*item)
	if err != nil {
		return err
	}
	item.ID = created.ID
	return nil
}

// Update replaces the stored evidence item with the same id.
func (r *EvidenceRepository) Update(ctx context.Context, item *models.EvidenceItem) error {
	_, err := r.store.update(item.ID, *item)
	return err
}

// Delete removes an evidence item.
func (r *EvidenceRepository) Delete(ctx context.Context, id string) error {
	return r.store.delete(id)
}

// Revision increases on every successful write.
func (r *EvidenceRepository) Revision() uint64 {
	return r.store.currentRevision()
}
