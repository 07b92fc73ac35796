// Package seed provides the demo collections loaded when SEED_DEMO_DATA is enabled.
package seed

import (
	"time"

	"github.com/noah-isme/bank-bukti-api/internal/models"
)

// DemoSnapshot returns the sample requests and evidence. PRM-004 is always two days overdue
// relative to now so a fresh dashboard shows a late request.
func DemoSnapshot(now time.Time) models.Snapshot {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(models.DateLayout)
	}
	fulfilledOn := func(date string) *string { return &date }

	return models.Snapshot{
		Requests: []models.EvidenceRequest{
			{
				ID:            "PRM-001",
				Date:          "2025-10-02",
				Unit:          "Kepatuhan",
				Description:   "Minta kebijakan keamanan informasi",
				DueDate:       "2025-10-04",
				PIC:           "Rina",
				EvidenceIDs:   []string{"BKT-001"},
				Status:        models.RequestStatusFulfilled,
				FulfilledDate: fulfilledOn("2025-10-02"),
			},
			{
				ID:            "PRM-002",
				Date:          "2025-10-03",
				Unit:          "TI",
				Description:   "Minta SOP dan log backup",
				DueDate:       "2025-10-06",
				PIC:           "Andi",
				EvidenceIDs:   []string{"BKT-002", "BKT-003"},
				Status:        models.RequestStatusFulfilled,
				FulfilledDate: fulfilledOn("2025-10-05"),
			},
			{
				ID:          "PRM-003",
				Date:        "2025-10-07",
				Unit:        "Operasional",
				Description: "Checklist harian DC",
				DueDate:     "2025-10-10",
				PIC:         "Budi",
				EvidenceIDs: []string{},
				Status:      models.RequestStatusPending,
			},
			{
				ID:          "PRM-004",
				Date:        day(-10),
				Unit:        "TI",
				Description: "Laporan penetrasi testing Q3",
				DueDate:     day(-2),
				PIC:         "Terlambat",
				EvidenceIDs: []string{},
				Status:      models.RequestStatusPending,
			},
		},
		Evidence: []models.EvidenceItem{
			{
				ID:               "BKT-001",
				Category:         "Kebijakan",
				Description:      "Kebijakan Keamanan Informasi",
				Link:             "https://example.com/kebijakan.pdf",
				Unit:             "TI",
				PIC:              "Andi",
				ReceivedDate:     "2025-10-01",
				Validity:         models.EvidenceValid,
				Notes:            "Dokumen final",
				RelatedRequestID: "PRM-001",
			},
			{
				ID:               "BKT-002",
				Category:         "Prosedur",
				Description:      "SOP Backup Rutin",
				Link:             "https://example.com/sop-backup.pdf",
				Unit:             "TI",
				PIC:              "Sari",
				ReceivedDate:     "2025-10-03",
				Validity:         models.EvidenceNeedsImprovement,
				Notes:            "Perlu tanda tangan terbaru",
				RelatedRequestID: "PRM-002",
			},
			{
				ID:               "BKT-003",
				Category:         "Catatan",
				Description:      "Log Backup Sept 2025",
				Link:             "https://example.com/log-sept25.xlsx",
				Unit:             "TI",
				PIC:              "Budi",
				ReceivedDate:     "2025-10-05",
				Validity:         models.EvidenceValid,
				RelatedRequestID: "PRM-002",
			},
		},
	}
}
