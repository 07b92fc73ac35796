package dto

import "github.com/noah-isme/bank-bukti-api/internal/models"

// DashboardStats is the aggregated fulfillment summary shown on the dashboard.
type DashboardStats struct {
	TotalRequests         int            `json:"totalRequests"`
	Fulfilled             int            `json:"fulfilled"`
	ApproachingDeadline   int            `json:"approachingDeadline"`
	Overdue               int            `json:"overdue"`
	FulfillmentPercentage int            `json:"fulfillmentPercentage"`
	StatusDistribution    []StatusBucket `json:"statusDistribution"`
	RequestsPerUnit       []UnitCount    `json:"requestsPerUnit"`
	EvidencePerUnit       []UnitCount    `json:"evidencePerUnit"`
}

// StatusBucket is one slice of the status distribution chart.
type StatusBucket struct {
	Status models.RequestStatus `json:"status"`
	Count  int                  `json:"count"`
}

// UnitCount pairs a unit name with a record count.
type UnitCount struct {
	Unit  string `json:"unit"`
	Count int    `json:"count"`
}

// DashboardResponse wraps the stats with the inputs they were computed for.
type DashboardResponse struct {
	Date        string         `json:"date"`
	WarningDays int            `json:"warningDays"`
	Stats       DashboardStats `json:"stats"`
}

// DeadlineResponse echoes a single classification request.
type DeadlineResponse struct {
	DueDate     string                `json:"tenggat"`
	Date        string                `json:"date"`
	WarningDays int                   `json:"warningDays"`
	Deadline    models.DeadlineStatus `json:"deadline"`
}
