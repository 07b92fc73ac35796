package models

// EvidenceValidity classifies submitted evidence.
type EvidenceValidity string

const (
	EvidenceValid            EvidenceValidity = "Valid"
	EvidenceNeedsImprovement EvidenceValidity = "Perlu Perbaikan"
)

// Valid reports whether the validity is a known value.
func (v EvidenceValidity) Valid() bool {
	return v == EvidenceValid || v == EvidenceNeedsImprovement
}

// EvidenceItem (Bukti) is a single piece of submitted evidence.
type EvidenceItem struct {
	ID               string           `json:"id"`
	Category         string           `json:"kategori"`
	Description      string           `json:"deskripsi"`
	Link             string           `json:"link"`
	Unit             string           `json:"unit"`
	PIC              string           `json:"pic"`
	ReceivedDate     string           `json:"tglDiterima"`
	Validity         EvidenceValidity `json:"validitas"`
	Notes            string           `json:"catatan"`
	RelatedRequestID string           `json:"prmTerkait,omitempty"`
}
