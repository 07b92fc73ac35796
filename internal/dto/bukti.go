package dto

import "github.com/noah-isme/bank-bukti-api/internal/models"

// EvidencePayload is the body accepted when creating or updating an evidence item. Link is a
// free-form location (URL, share path or physical shelf); the length caps only guard size.
type EvidencePayload struct {
	ID               string                  `json:"id" validate:"omitempty,max=64"`
	Category         string                  `json:"kategori" validate:"max=500"`
	Description      string                  `json:"deskripsi" validate:"max=10000"`
	Link             string                  `json:"link" validate:"max=2048"`
	Unit             string                  `json:"unit" validate:"max=500"`
	PIC              string                  `json:"pic" validate:"max=500"`
	ReceivedDate     string                  `json:"tglDiterima" validate:"omitempty,isodate"`
	Validity         models.EvidenceValidity `json:"validitas" validate:"omitempty,validity"`
	Notes            string                  `json:"catatan" validate:"max=10000"`
	RelatedRequestID string                  `json:"prmTerkait" validate:"omitempty,max=64"`
}

// EvidenceRow is an evidence item enriched for listing.
type EvidenceRow struct {
	models.EvidenceItem
	RelatedRequest *RelatedRequest `json:"relatedRequest,omitempty"`
}

// RelatedRequest resolves prmTerkait. Found is false when the request no longer exists.
type RelatedRequest struct {
	ID          string               `json:"id"`
	Found       bool                 `json:"found"`
	Description string               `json:"deskripsi,omitempty"`
	Status      models.RequestStatus `json:"status,omitempty"`
}
