package models

// UrgencyTier classifies a due date relative to today and the warning window.
type UrgencyTier string

const (
	UrgencyOverdue     UrgencyTier = "overdue"
	UrgencyDueToday    UrgencyTier = "due_today"
	UrgencyApproaching UrgencyTier = "approaching"
	UrgencySafe        UrgencyTier = "safe"
	// UrgencyUnknown is returned for due dates that cannot be parsed.
	UrgencyUnknown UrgencyTier = "unknown"
)

// DeadlineStatus is the result of classifying one due date.
type DeadlineStatus struct {
	DaysRemaining int         `json:"daysRemaining"`
	Label         string      `json:"label"`
	Tier          UrgencyTier `json:"tier"`
}

// Snapshot is a point-in-time copy of both record collections.
type Snapshot struct {
	Requests []EvidenceRequest `json:"permintaan"`
	Evidence []EvidenceItem    `json:"bukti"`
}
