package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/bank-bukti-api/internal/models"
)

var jakarta = time.FixedZone("WIB", 7*3600)

func TestClassifyDeadlineTiers(t *testing.T) {
	now := time.Date(2025, 10, 4, 9, 15, 0, 0, jakarta)

	tests := []struct {
		name     string
		due      time.Time
		warning  int
		expected models.DeadlineStatus
	}{
		{name: "same day", due: time.Date(2025, 10, 4, 0, 0, 0, 0, jakarta), warning: 7, expected: models.DeadlineStatus{Label: "Hari ini", Tier: models.UrgencyDueToday}},
		{name: "overdue five days", due: now.AddDate(0, 0, -5), warning: 7, expected: models.DeadlineStatus{DaysRemaining: 5, Label: "Terlambat 5 hari", Tier: models.UrgencyOverdue}},
		{name: "overdue one day", due: now.AddDate(0, 0, -1), warning: 7, expected: models.DeadlineStatus{DaysRemaining: 1, Label: "Terlambat 1 hari", Tier: models.UrgencyOverdue}},
		{name: "tomorrow approaching", due: now.AddDate(0, 0, 1), warning: 7, expected: models.DeadlineStatus{DaysRemaining: 1, Label: "1 hari lagi", Tier: models.UrgencyApproaching}},
		{name: "window edge approaching", due: now.AddDate(0, 0, 7), warning: 7, expected: models.DeadlineStatus{DaysRemaining: 7, Label: "7 hari lagi", Tier: models.UrgencyApproaching}},
		{name: "past window safe", due: now.AddDate(0, 0, 8), warning: 7, expected: models.DeadlineStatus{DaysRemaining: 8, Label: "8 hari lagi", Tier: models.UrgencySafe}},
		{name: "zero window makes future safe", due: now.AddDate(0, 0, 1), warning: 0, expected: models.DeadlineStatus{DaysRemaining: 1, Label: "1 hari lagi", Tier: models.UrgencySafe}},
		{name: "zero window keeps today", due: now, warning: 0, expected: models.DeadlineStatus{Label: "Hari ini", Tier: models.UrgencyDueToday}},
		{name: "negative window behaves as zero", due: now.AddDate(0, 0, 2), warning: -3, expected: models.DeadlineStatus{DaysRemaining: 2, Label: "2 hari lagi", Tier: models.UrgencySafe}},
		{name: "negative window still overdue", due: now.AddDate(0, 0, -2), warning: -3, expected: models.DeadlineStatus{DaysRemaining: 2, Label: "Terlambat 2 hari", Tier: models.UrgencyOverdue}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyDeadline(tc.due, tc.warning, now))
		})
	}
}

func TestClassifyDeadlineIgnoresTimeOfDay(t *testing.T) {
	times := []time.Time{
		time.Date(2025, 10, 4, 0, 0, 0, 0, jakarta),
		time.Date(2025, 10, 4, 0, 0, 1, 0, jakarta),
		time.Date(2025, 10, 4, 12, 0, 0, 0, jakarta),
		time.Date(2025, 10, 4, 23, 59, 59, 999, jakarta),
	}
	for _, due := range times {
		for _, now := range times {
			status := ClassifyDeadline(due, 7, now)
			assert.Equal(t, models.UrgencyDueToday, status.Tier, "due=%s now=%s", due, now)
			assert.Zero(t, status.DaysRemaining)
		}
	}

	late := time.Date(2025, 10, 4, 23, 59, 0, 0, jakarta)
	early := time.Date(2025, 10, 5, 0, 1, 0, 0, jakarta)
	assert.Equal(t, models.DeadlineStatus{DaysRemaining: 1, Label: "1 hari lagi", Tier: models.UrgencyApproaching}, ClassifyDeadline(early, 7, late))
	assert.Equal(t, models.DeadlineStatus{DaysRemaining: 1, Label: "Terlambat 1 hari", Tier: models.UrgencyOverdue}, ClassifyDeadline(late, 7, early))
}

func TestClassifyDeadlineReadsDueInNowLocation(t *testing.T) {
	now := time.Date(2025, 10, 4, 8, 0, 0, 0, jakarta)
	// 2025-10-03T20:00Z is already 2025-10-04 in UTC+7
	due := time.Date(2025, 10, 3, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, models.UrgencyDueToday, ClassifyDeadline(due, 7, now).Tier)
}

func TestClassifyDeadlineAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// clocks move back on 2025-10-26, making that day 25 hours long
	now := time.Date(2025, 10, 25, 23, 30, 0, 0, loc)
	due := time.Date(2025, 10, 27, 0, 0, 0, 0, loc)
	status := ClassifyDeadline(due, 7, now)
	assert.Equal(t, 2, status.DaysRemaining)

	// clocks move forward on 2025-03-30, making that day 23 hours long
	now = time.Date(2025, 3, 29, 0, 30, 0, 0, loc)
	due = time.Date(2025, 3, 31, 0, 0, 0, 0, loc)
	assert.Equal(t, 2, ClassifyDeadline(due, 7, now).DaysRemaining)
}

func TestClassifyDeadlineWindowPartition(t *testing.T) {
	now := time.Date(2025, 10, 4, 10, 0, 0, 0, jakarta)
	for warning := 0; warning <= 10; warning++ {
		for diff := 1; diff <= 15; diff++ {
			status := ClassifyDeadline(now.AddDate(0, 0, diff), warning, now)
			require.Equal(t, diff, status.DaysRemaining)
			if diff <= warning {
				assert.Equal(t, models.UrgencyApproaching, status.Tier, "warning=%d diff=%d", warning, diff)
			} else {
				assert.Equal(t, models.UrgencySafe, status.Tier, "warning=%d diff=%d", warning, diff)
			}
		}
	}
}

func TestClassifyDueDate(t *testing.T) {
	now := time.Date(2025, 10, 4, 16, 0, 0, 0, jakarta)

	assert.Equal(t, models.DeadlineStatus{Label: "Hari ini", Tier: models.UrgencyDueToday}, ClassifyDueDate("2025-10-04", 7, now))
	assert.Equal(t, models.DeadlineStatus{DaysRemaining: 5, Label: "Terlambat 5 hari", Tier: models.UrgencyOverdue}, ClassifyDueDate("2025-09-29", 7, now))
	assert.Equal(t, models.UrgencyApproaching, ClassifyDueDate(" 2025-10-10 ", 7, now).Tier)
	assert.Equal(t, models.UrgencyDueToday, ClassifyDueDate("2025-10-04T23:00:00+07:00", 7, now).Tier)
	assert.Equal(t, models.UrgencySafe, ClassifyDueDate("2025-10-20T08:00:00", 7, now).Tier)

	for _, raw := range []string{"", "   ", "10/04/2025", "2025-13-01", "besok"} {
		status := ClassifyDueDate(raw, 7, now)
		assert.Equal(t, models.DeadlineStatus{Tier: models.UrgencyUnknown}, status, "raw=%q", raw)
	}
}

func TestParseCalendarDate(t *testing.T) {
	parsed, err := ParseCalendarDate("2025-10-04", jakarta)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 4, 0, 0, 0, 0, jakarta), parsed)

	parsed, err = ParseCalendarDate("2025-10-04T01:00:00Z", jakarta)
	require.NoError(t, err)
	assert.Equal(t, 8, parsed.Hour())

	_, err = ParseCalendarDate("", jakarta)
	assert.Error(t, err)

	_, err = ParseCalendarDate("04-10-2025", nil)
	assert.Error(t, err)
}
