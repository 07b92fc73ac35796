package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/bank-bukti-api/internal/models"
	appErrors "github.com/noah-isme/bank-bukti-api/pkg/errors"
)

func seededRequests() []models.EvidenceRequest {
	fulfilled := "2025-10-02"
	return []models.EvidenceRequest{
		{ID: "PRM-001", Unit: "Kepatuhan", Status: models.RequestStatusFulfilled, DueDate: "2025-10-04", EvidenceIDs: []string{"BKT-001"}, FulfilledDate: &fulfilled},
		{ID: "PRM-002", Unit: "TI", Status: models.RequestStatusPending, DueDate: "2025-10-10", EvidenceIDs: []string{}},
	}
}

func TestRequestRepositoryCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestRepository(seededRequests())

	req := &models.EvidenceRequest{Unit: "Operasional", Status: models.RequestStatusPending}
	require.NoError(t, repo.Create(ctx, req))
	assert.Equal(t, "PRM-003", req.ID)

	require.NoError(t, repo.Delete(ctx, "PRM-003"))

	next := &models.EvidenceRequest{Unit: "TI"}
	require.NoError(t, repo.Create(ctx, next))
	assert.Equal(t, "PRM-004", next.ID, "deleted ids are not reissued")

	items, err := repo.List(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"PRM-001", "PRM-002", "PRM-004"}, ids)
}

func TestRequestRepositorySequenceFollowsHighestSeedID(t *testing.T) {
	repo := NewRequestRepository([]models.EvidenceRequest{{ID: "PRM-010"}, {ID: "custom"}, {ID: "PRM-002"}})

	req := &models.EvidenceRequest{}
	require.NoError(t, repo.Create(context.Background(), req))
	assert.Equal(t, "PRM-011", req.ID)
}

func TestRequestRepositoryRejectsDuplicateID(t *testing.T) {
	repo := NewRequestRepository(seededRequests())

	err := repo.Create(context.Background(), &models.EvidenceRequest{ID: "PRM-001"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	assert.Equal(t, uint64(0), repo.Revision())
}

func TestRequestRepositoryListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestRepository(seededRequests())

	items, err := repo.List(ctx)
	require.NoError(t, err)
	items[0].Unit = "changed"
	items[0].EvidenceIDs[0] = "changed"
	*items[0].FulfilledDate = "changed"

	stored, err := repo.GetByID(ctx, "PRM-001")
	require.NoError(t, err)
	assert.Equal(t, "Kepatuhan", stored.Unit)
	assert.Equal(t, []string{"BKT-001"}, stored.EvidenceIDs)
	assert.Equal(t, "2025-10-02", *stored.FulfilledDate)
}

func TestRequestRepositoryUpdateAndRevision(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestRepository(seededRequests())
	assert.Equal(t, uint64(0), repo.Revision())

	req, err := repo.GetByID(ctx, "PRM-002")
	require.NoError(t, err)
	req.PIC = "Budi"
	require.NoError(t, repo.Update(ctx, req))
	assert.Equal(t, uint64(1), repo.Revision())

	stored, err := repo.GetByID(ctx, "PRM-002")
	require.NoError(t, err)
	assert.Equal(t, "Budi", stored.PIC)

	err = repo.Update(ctx, &models.EvidenceRequest{ID: "PRM-404"})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, "PRM-404"), appErrors.ErrNotFound))
	assert.Equal(t, uint64(1), repo.Revision())
}

func TestEvidenceRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewEvidenceRepository([]models.EvidenceItem{{ID: "BKT-001", Unit: "TI"}})

	item := &models.EvidenceItem{Unit: "Kepatuhan", Validity: models.EvidenceValid}
	require.NoError(t, repo.Create(ctx, item))
	assert.Equal(t, "BKT-002", item.ID)

	item.Notes = "lengkap"
	require.NoError(t, repo.Update(ctx, item))
	stored, err := repo.GetByID(ctx, "BKT-002")
	require.NoError(t, err)
	assert.Equal(t, "lengkap", stored.Notes)

	require.NoError(t, repo.Delete(ctx, "BKT-001"))
	_, err = repo.GetByID(ctx, "BKT-001")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.Equal(t, uint64(3), repo.Revision())
}

func TestRequestRepositoryConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestRepository(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &models.EvidenceRequest{Unit: "TI"})
			_, _ = repo.List(ctx)
		}()
	}
	wg.Wait()

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 50)
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		seen[item.ID] = struct{}{}
	}
	assert.Len(t, seen, 50)
	assert.Equal(t, uint64(50), repo.Revision())
}
