package service

import (
	"math"
	"time"

	"github.com/noah-isme/bank-bukti-api/internal/dto"
	"github.com/noah-isme/bank-bukti-api/internal/models"
)

// AggregateStats computes the dashboard summary for the given collections. It reads its inputs
// only; identical arguments always yield identical output.
func AggregateStats(requests []models.EvidenceRequest, evidence []models.EvidenceItem, warningDays int, now time.Time) dto.DashboardStats {
	stats := dto.DashboardStats{TotalRequests: len(requests)}

	for _, req := range requests {
		if req.IsFulfilled() {
			stats.Fulfilled++
			continue
		}
		if req.Status != models.RequestStatusPending {
			continue
		}
		switch ClassifyDueDate(req.DueDate, warningDays, now).Tier {
		case models.UrgencyApproaching:
			stats.ApproachingDeadline++
		case models.UrgencyOverdue:
			stats.Overdue++
		}
	}

	if stats.TotalRequests > 0 {
		stats.FulfillmentPercentage = int(math.Round(float64(stats.Fulfilled) / float64(stats.TotalRequests) * 100))
	}

	// the open bucket is the complement of fulfilled, not a count of Belum
	stats.StatusDistribution = []dto.StatusBucket{
		{Status: models.RequestStatusPending, Count: stats.TotalRequests - stats.Fulfilled},
		{Status: models.RequestStatusFulfilled, Count: stats.Fulfilled},
	}
	stats.RequestsPerUnit = countByUnit(requests, func(r models.EvidenceRequest) string { return r.Unit })
	stats.EvidencePerUnit = countByUnit(evidence, func(e models.EvidenceItem) string { return e.Unit })
	return stats
}

// countByUnit tallies records per unit in first-seen order. Unit names are kept verbatim.
func countByUnit[T any](items []T, unitOf func(T) string) []dto.UnitCount {
	counts := make([]dto.UnitCount, 0)
	index := make(map[string]int)
	for _, item := range items {
		unit := unitOf(item)
		if i, ok := index[unit]; ok {
			counts[i].Count++
			continue
		}
		index[unit] = len(counts)
		counts = append(counts, dto.UnitCount{Unit: unit, Count: 1})
	}
	return counts
}
