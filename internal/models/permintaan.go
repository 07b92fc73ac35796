package models

import "time"

// DateLayout is the ISO-8601 calendar-date layout used by every date field.
const DateLayout = "2006-01-02"

// RequestStatus is the fulfillment status of an evidence request.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "Belum"
	RequestStatusFulfilled RequestStatus = "Terpenuhi"
)

// Valid reports whether the status is one of the two known values.
func (s RequestStatus) Valid() bool {
	return s == RequestStatusPending || s == RequestStatusFulfilled
}

// EvidenceRequest (Permintaan) is a single ask for audit evidence.
type EvidenceRequest struct {
	ID            string        `json:"id"`
	Date          string        `json:"tanggal"`
	Unit          string        `json:"unit"`
	Description   string        `json:"deskripsi"`
	DueDate       string        `json:"tenggat"`
	PIC           string        `json:"pic"`
	EvidenceIDs   []string      `json:"buktiTerkait"`
	Status        RequestStatus `json:"status"`
	FulfilledDate *string       `json:"pemenuhan,omitempty"`
}

// IsFulfilled reports whether the request has been fulfilled.
func (r EvidenceRequest) IsFulfilled() bool {
	return r.Status == RequestStatusFulfilled
}

// NormalizeFulfillment keeps the fulfillment date in lockstep with the status: a fulfilled request
// without a date is stamped with today's date, a pending request never carries one.
func (r *EvidenceRequest) NormalizeFulfillment(now time.Time) {
	switch r.Status {
	case RequestStatusFulfilled:
		if r.FulfilledDate == nil || *r.FulfilledDate == "" {
			today := now.Format(DateLayout)
			r.FulfilledDate = &today
		}
	default:
		r.FulfilledDate = nil
	}
	if r.EvidenceIDs == nil {
		r.EvidenceIDs = []string{}
	}
}

// Clone returns a deep copy so callers cannot alias stored slices or pointers.
func (r EvidenceRequest) Clone() EvidenceRequest {
	out := r
	if r.EvidenceIDs != nil {
		out.EvidenceIDs = append([]string(nil), r.EvidenceIDs...)
	}
	if r.FulfilledDate != nil {
		date := *r.FulfilledDate
		out.FulfilledDate = &date
	}
	return out
}
