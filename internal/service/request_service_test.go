package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/bank-bukti-api/internal/dto"
	"github.com/noah-isme/bank-bukti-api/internal/models"
	"github.com/noah-isme/bank-bukti-api/internal/repository"
	appErrors "github.com/noah-isme/bank-bukti-api/pkg/errors"
)

type fakeInvalidator struct {
	patterns []string
	err      error
}

func (f *fakeInvalidator) Invalidate(_ context.Context, pattern string) error {
	f.patterns = append(f.patterns, pattern)
	return f.err
}

type failingRequestRepo struct {
	requestRepository
	err error
}

func (f failingRequestRepo) List(context.Context) ([]models.EvidenceRequest, error) {
	return nil, f.err
}

func newRequestServiceFixture(t *testing.T) (*RequestService, *repository.RequestRepository, *fakeInvalidator) {
	t.Helper()
	fulfilled := "2025-10-02"
	requests := repository.NewRequestRepository([]models.EvidenceRequest{
		{ID: "PRM-001", Unit: "Kepatuhan", DueDate: "2025-10-04", Status: models.RequestStatusFulfilled, FulfilledDate: &fulfilled, EvidenceIDs: []string{"BKT-001"}},
		{ID: "PRM-002", Unit: "TI", DueDate: "2025-10-06", Status: models.RequestStatusPending, EvidenceIDs: []string{"BKT-001", "BKT-404"}},
		{ID: "PRM-003", Unit: "TI", DueDate: "", Status: models.RequestStatusPending, EvidenceIDs: []string{}},
		{ID: "PRM-004", Unit: "TI", DueDate: "2025-10-30", Status: models.RequestStatusPending},
	})
	evidence := repository.NewEvidenceRepository([]models.EvidenceItem{
		{ID: "BKT-001", Unit: "TI", Description: "Kebijakan", Link: "https://example.com/kebijakan.pdf", Validity: models.EvidenceValid},
	})
	cache := &fakeInvalidator{}
	svc := NewRequestService(RequestServiceParams{
		Requests: requests,
		Evidence: evidence,
		Settings: NewSettingsService(7, nil),
		Cache:    cache,
	})
	svc.now = func() time.Time { return time.Date(2025, 10, 8, 14, 0, 0, 0, time.Local) }
	return svc, requests, cache
}

func TestRequestServiceListEnrichesRows(t *testing.T) {
	svc, _, _ := newRequestServiceFixture(t)

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Nil(t, rows[0].Deadline, "fulfilled requests are not classified")
	require.Len(t, rows[0].LinkedEvidence, 1)
	assert.True(t, rows[0].LinkedEvidence[0].Found)
	assert.Equal(t, "https://example.com/kebijakan.pdf", rows[0].LinkedEvidence[0].Link)

	require.NotNil(t, rows[1].Deadline)
	assert.Equal(t, models.DeadlineStatus{DaysRemaining: 2, Label: "Terlambat 2 hari", Tier: models.UrgencyOverdue}, *rows[1].Deadline)
	assert.Equal(t, []dto.LinkedEvidence{
		{ID: "BKT-001", Found: true, Description: "Kebijakan", Link: "https://example.com/kebijakan.pdf", Validity: models.EvidenceValid},
		{ID: "BKT-404"},
	}, rows[1].LinkedEvidence)

	assert.Nil(t, rows[2].Deadline, "requests without a due date carry no tag")
	assert.NotNil(t, rows[2].LinkedEvidence)

	require.NotNil(t, rows[3].Deadline)
	assert.Equal(t, models.UrgencySafe, rows[3].Deadline.Tier)
	assert.NotNil(t, rows[3].LinkedEvidence)
}

func TestRequestServiceListUsesCurrentWarningWindow(t *testing.T) {
	svc, _, _ := newRequestServiceFixture(t)
	settings := NewSettingsService(30, nil)
	svc.settings = settings

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.UrgencyApproaching, rows[3].Deadline.Tier)
}

func TestRequestServiceCreateDefaultsAndStamps(t *testing.T) {
	svc, _, cache := newRequestServiceFixture(t)

	created, err := svc.Create(context.Background(), dto.RequestPayload{
		Unit:        "Operasional",
		DueDate:     "2025-10-20",
		Status:      models.RequestStatusFulfilled,
		EvidenceIDs: []string{" BKT-001 ", "", "BKT-002"},
	})
	require.NoError(t, err)

	assert.Equal(t, "PRM-005", created.ID)
	assert.Equal(t, "2025-10-08", created.Date)
	require.NotNil(t, created.FulfilledDate)
	assert.Equal(t, "2025-10-08", *created.FulfilledDate)
	assert.Equal(t, []string{"BKT-001", "BKT-002"}, created.EvidenceIDs)
	assert.Equal(t, []string{dashboardCachePattern}, cache.patterns)
}

func TestRequestServiceCreatePendingDropsFulfillmentDate(t *testing.T) {
	svc, _, _ := newRequestServiceFixture(t)
	date := "2025-10-01"

	created, err := svc.Create(context.Background(), dto.RequestPayload{Unit: "TI", FulfilledDate: &date})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, created.Status)
	assert.Nil(t, created.FulfilledDate)
	assert.NotNil(t, created.EvidenceIDs)
}

func TestRequestServiceCreateValidation(t *testing.T) {
	svc, _, cache := newRequestServiceFixture(t)
	empty := ""
	badDate := "10/08/2025"

	tests := []struct {
		name    string
		payload dto.RequestPayload
		wantErr bool
	}{
		{name: "bad status", payload: dto.RequestPayload{Status: "Selesai"}, wantErr: true},
		{name: "bad due date", payload: dto.RequestPayload{DueDate: "besok"}, wantErr: true},
		{name: "bad request date", payload: dto.RequestPayload{Date: "2025-02-30"}, wantErr: true},
		{name: "bad fulfillment date", payload: dto.RequestPayload{Status: models.RequestStatusFulfilled, FulfilledDate: &badDate}, wantErr: true},
		{name: "blank fulfillment date is stamped", payload: dto.RequestPayload{Status: models.RequestStatusFulfilled, FulfilledDate: &empty}},
		{name: "free text may be empty", payload: dto.RequestPayload{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.payload)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, appErrors.ErrValidation))
				return
			}
			require.NoError(t, err)
		})
	}
	assert.Len(t, cache.patterns, 2)
}

func TestRequestServiceCreateDuplicateID(t *testing.T) {
	svc, _, _ := newRequestServiceFixture(t)

	_, err := svc.Create(context.Background(), dto.RequestPayload{ID: "PRM-001"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
}

func TestRequestServiceUpdateKeepsFulfillmentDate(t *testing.T) {
	svc, repo, _ := newRequestServiceFixture(t)

	updated, err := svc.Update(context.Background(), "PRM-001", dto.RequestPayload{
		Unit:    "Kepatuhan",
		DueDate: "2025-10-04",
		Status:  models.RequestStatusFulfilled,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.FulfilledDate)
	assert.Equal(t, "2025-10-02", *updated.FulfilledDate)

	reopened, err := svc.Update(context.Background(), "PRM-001", dto.RequestPayload{Unit: "Kepatuhan", Status: models.RequestStatusPending})
	require.NoError(t, err)
	assert.Nil(t, reopened.FulfilledDate)

	stored, err := repo.GetByID(context.Background(), "PRM-001")
	require.NoError(t, err)
	assert.Nil(t, stored.FulfilledDate)
	assert.Equal(t, models.RequestStatusPending, stored.Status)
}

func TestRequestServiceUpdateKeepsOmittedStatus(t *testing.T) {
	svc, repo, _ := newRequestServiceFixture(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "PRM-001", dto.RequestPayload{Date: "2025-10-02", Unit: "Kepatuhan", DueDate: "2025-10-04", Status: models.RequestStatusFulfilled})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "PRM-001", dto.RequestPayload{Unit: "Kepatuhan", Description: "Minta kebijakan keamanan informasi v2"})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusFulfilled, updated.Status)
	require.NotNil(t, updated.FulfilledDate)
	assert.Equal(t, "2025-10-02", *updated.FulfilledDate)
	assert.Equal(t, "2025-10-02", updated.Date)

	stored, err := repo.GetByID(ctx, "PRM-001")
	require.NoError(t, err)
	assert.True(t, stored.IsFulfilled())
	assert.Equal(t, "Minta kebijakan keamanan informasi v2", stored.Description)

	pending, err := svc.Update(ctx, "PRM-004", dto.RequestPayload{Unit: "TI", DueDate: "2025-10-30"})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, pending.Status)
	assert.Nil(t, pending.FulfilledDate)
}

func TestRequestServiceUpdateErrors(t *testing.T) {
	svc, _, _ := newRequestServiceFixture(t)

	_, err := svc.Update(context.Background(), "PRM-404", dto.RequestPayload{})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	_, err = svc.Update(context.Background(), "PRM-001", dto.RequestPayload{ID: "PRM-002"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestRequestServiceDelete(t *testing.T) {
	svc, _, cache := newRequestServiceFixture(t)

	require.NoError(t, svc.Delete(context.Background(), "PRM-002"))
	_, err := svc.Get(context.Background(), "PRM-002")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.True(t, errors.Is(svc.Delete(context.Background(), "PRM-002"), appErrors.ErrNotFound))
	assert.Len(t, cache.patterns, 1)
}

func TestRequestServiceFulfilled(t *testing.T) {
	svc, _, _ := newRequestServiceFixture(t)

	fulfilled, err := svc.Fulfilled(context.Background())
	require.NoError(t, err)
	require.Len(t, fulfilled, 1)
	assert.Equal(t, "PRM-001", fulfilled[0].ID)
}

func TestRequestServiceWrapsUntypedErrors(t *testing.T) {
	svc, _, _ := newRequestServiceFixture(t)
	svc.requests = failingRequestRepo{err: errors.New("boom")}

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
}

func TestRequestServiceInvalidationFailureIsNotFatal(t *testing.T) {
	svc, _, cache := newRequestServiceFixture(t)
	cache.err = errors.New("redis down")

	_, err := svc.Create(context.Background(), dto.RequestPayload{Unit: "TI"})
	assert.NoError(t, err)
}
