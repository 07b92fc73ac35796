package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/bank-bukti-api/internal/models"
	appErrors "github.com/noah-isme/bank-bukti-api/pkg/errors"
	"github.com/noah-isme/bank-bukti-api/pkg/export"
)

// Supported export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

var fulfilledExportHeaders = []string{"ID", "Tanggal", "Unit", "Deskripsi", "Tenggat", "PIC", "Bukti Terkait", "Pemenuhan"}

type fulfilledLister interface {
	Fulfilled(ctx context.Context) ([]models.EvidenceRequest, error)
}

type datasetRenderer interface {
	ContentType() string
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	Enabled bool
	Title   string
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
	Rows        int
}

// ExportService renders the "Download Terpenuhi" report of fulfilled requests.
type ExportService struct {
	requests  fulfilledLister
	renderers map[string]datasetRenderer
	logger    *zap.Logger
	now       func() time.Time
	cfg       ExportConfig
}

// NewExportService constructs an ExportService with CSV and PDF renderers.
func NewExportService(requests fulfilledLister, cfg ExportConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(cfg.Title) == "" {
		cfg.Title = "Permintaan Terpenuhi"
	}
	return &ExportService{
		requests: requests,
		renderers: map[string]datasetRenderer{
			ExportFormatCSV: export.NewCSVExporter(','),
			ExportFormatPDF: export.NewPDFExporter("Instrument Bank Bukti & Permintaan Audit"),
		},
		logger: logger,
		now:    time.Now,
		cfg:    cfg,
	}
}

// FulfilledRequests renders fulfilled requests in the given format (csv when empty).
func (s *ExportService) FulfilledRequests(ctx context.Context, format string) (*ExportFile, error) {
	if !s.cfg.Enabled {
		return nil, appErrors.Clone(appErrors.ErrDisabled, "exports are disabled")
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	requests, err := s.requests.Fulfilled(ctx)
	if err != nil {
		return nil, err
	}
	payload, err := renderer.Render(buildFulfilledDataset(requests), s.cfg.Title)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	s.logger.Info("fulfilled export rendered", zap.String("format", format), zap.Int("rows", len(requests)))
	return &ExportFile{
		Filename:    fmt.Sprintf("permintaan-terpenuhi-%s.%s", s.now().Format("20060102"), format),
		ContentType: renderer.ContentType(),
		Payload:     payload,
		Rows:        len(requests),
	}, nil
}

func buildFulfilledDataset(requests []models.EvidenceRequest) export.Dataset {
	rows := make([]map[string]string, 0, len(requests))
	for _, req := range requests {
		fulfilled := "-"
		if req.FulfilledDate != nil && *req.FulfilledDate != "" {
			fulfilled = *req.FulfilledDate
		}
		rows = append(rows, map[string]string{
			"ID":            req.ID,
			"Tanggal":       req.Date,
			"Unit":          req.Unit,
			"Deskripsi":     req.Description,
			"Tenggat":       req.DueDate,
			"PIC":           req.PIC,
			"Bukti Terkait": strings.Join(req.EvidenceIDs, ", "),
			"Pemenuhan":     fulfilled,
		})
	}
	return export.Dataset{Headers: fulfilledExportHeaders, Rows: rows}
}
