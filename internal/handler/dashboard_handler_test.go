package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/bank-bukti-api/internal/dto"
	"github.com/noah-isme/bank-bukti-api/internal/middleware"
	"github.com/noah-isme/bank-bukti-api/internal/models"
)

type fakeDashboardSrv struct {
	resp *dto.DashboardResponse
	hit  bool
	err  error

	lastDate        time.Time
	lastWarningDays *int
	lastDueDate     string
}

func (f *fakeDashboardSrv) Stats(_ context.Context, date time.Time, warningDays *int) (*dto.DashboardResponse, bool, error) {
	f.lastDate = date
	f.lastWarningDays = warningDays
	return f.resp, f.hit, f.err
}

func (f *fakeDashboardSrv) Deadline(dueDate string, date time.Time, warningDays *int) dto.DeadlineResponse {
	f.lastDueDate = dueDate
	f.lastDate = date
	f.lastWarningDays = warningDays
	return dto.DeadlineResponse{
		DueDate:  dueDate,
		Deadline: models.DeadlineStatus{Tier: models.UrgencyDueToday, Label: "Hari ini"},
	}
}

func TestDashboardHandlerStatsSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeDashboardSrv{
		resp: &dto.DashboardResponse{Date: "2025-10-08", WarningDays: 7, Stats: dto.DashboardStats{TotalRequests: 3}},
		hit:  true,
	}
	handler := NewDashboardHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard?date=2025-10-08&warningDays=3", nil)

	handler.Stats(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope.Meta["cache_hit"])
	assert.Equal(t, "2025-10-08", envelope.Data["date"])
	stats := envelope.Data["stats"].(map[string]interface{})
	assert.EqualValues(t, 3, stats["totalRequests"])

	assert.Equal(t, "2025-10-08", srv.lastDate.Format(models.DateLayout))
	require.NotNil(t, srv.lastWarningDays)
	assert.Equal(t, 3, *srv.lastWarningDays)
}

func TestDashboardHandlerStatsDefaultsToToday(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeDashboardSrv{resp: &dto.DashboardResponse{}}
	handler := NewDashboardHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	handler.Stats(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, srv.lastDate.IsZero())
	assert.Nil(t, srv.lastWarningDays)
}

func TestDashboardHandlerStatsInvalidQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := map[string]string{
		"bad date":         "/dashboard?date=08-10-2025",
		"bad warning days": "/dashboard?warningDays=seven",
	}
	for name, target := range cases {
		t.Run(name, func(t *testing.T) {
			handler := NewDashboardHandler(&fakeDashboardSrv{})
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, target, nil)

			handler.Stats(c)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDashboardHandlerStatsServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{err: errors.New("store unavailable")})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	handler.Stats(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDashboardHandlerStatsStampsProcessingTime(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.WithResponseMeta())
	r.GET("/dashboard", NewDashboardHandler(&fakeDashboardSrv{resp: &dto.DashboardResponse{}}).Stats)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, false, envelope.Meta["cache_hit"])
	assert.Contains(t, envelope.Meta, "processing_time_ms")
}

func TestDashboardHandlerDeadlineRequiresDueDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/deadline", nil)

	handler.Deadline(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardHandlerDeadlineSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeDashboardSrv{}
	handler := NewDashboardHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/deadline?tenggat=2025-10-08&date=2025-10-08", nil)

	handler.Deadline(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-10-08", srv.lastDueDate)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	deadline := envelope.Data["deadline"].(map[string]interface{})
	assert.Equal(t, "due_today", deadline["tier"])
	assert.Equal(t, "Hari ini", deadline["label"])
}

type responseEnvelope struct {
	Data  map[string]interface{} `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}
