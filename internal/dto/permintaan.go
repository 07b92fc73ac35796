package dto

import "github.com/noah-isme/bank-bukti-api/internal/models"

// RequestPayload is the body accepted when creating or updating an evidence request. Length caps
// only guard payload size.
type RequestPayload struct {
	ID            string               `json:"id" validate:"omitempty,max=64"`
	Date          string               `json:"tanggal" validate:"omitempty,isodate"`
	Unit          string               `json:"unit" validate:"max=500"`
	Description   string               `json:"deskripsi" validate:"max=10000"`
	DueDate       string               `json:"tenggat" validate:"omitempty,isodate"`
	PIC           string               `json:"pic" validate:"max=500"`
	EvidenceIDs   []string             `json:"buktiTerkait" validate:"omitempty,dive,max=64"`
	Status        models.RequestStatus `json:"status" validate:"omitempty,reqstatus"`
	FulfilledDate *string              `json:"pemenuhan" validate:"omitempty,isodate"`
}

// RequestRow is an evidence request enriched for listing.
type RequestRow struct {
	models.EvidenceRequest
	// Deadline is only set for pending requests with a due date.
	Deadline       *models.DeadlineStatus `json:"deadline,omitempty"`
	LinkedEvidence []LinkedEvidence       `json:"linkedEvidence"`
}

// LinkedEvidence resolves one id listed in buktiTerkait. Found is false for dangling ids.
type LinkedEvidence struct {
	ID          string                  `json:"id"`
	Found       bool                    `json:"found"`
	Description string                  `json:"deskripsi,omitempty"`
	Link        string                  `json:"link,omitempty"`
	Validity    models.EvidenceValidity `json:"validitas,omitempty"`
}
