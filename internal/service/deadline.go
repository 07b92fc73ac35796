package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/bank-bukti-api/internal/models"
)

const (
	labelDueToday = "Hari ini"
	day           = 24 * time.Hour
)

var errEmptyDate = errors.New("empty date")

// ClassifyDeadline places a due date into an urgency tier relative to now. Only the calendar dates
// of due and now matter; both are read in now's location. It never fails.
func ClassifyDeadline(due time.Time, warningDays int, now time.Time) models.DeadlineStatus {
	diffDays := daysBetween(now, due)
	switch {
	case diffDays < 0:
		overdue := -diffDays
		return models.DeadlineStatus{
			DaysRemaining: overdue,
			Label:         fmt.Sprintf("Terlambat %d hari", overdue),
			Tier:          models.UrgencyOverdue,
		}
	case diffDays == 0:
		return models.DeadlineStatus{Label: labelDueToday, Tier: models.UrgencyDueToday}
	case diffDays <= warningDays:
		return models.DeadlineStatus{
			DaysRemaining: diffDays,
			Label:         fmt.Sprintf("%d hari lagi", diffDays),
			Tier:          models.UrgencyApproaching,
		}
	default:
		return models.DeadlineStatus{
			DaysRemaining: diffDays,
			Label:         fmt.Sprintf("%d hari lagi", diffDays),
			Tier:          models.UrgencySafe,
		}
	}
}

// ClassifyDueDate classifies a stored due-date string. Missing or malformed dates degrade to
// UrgencyUnknown instead of failing so a single bad record cannot break a listing or aggregate.
func ClassifyDueDate(raw string, warningDays int, now time.Time) models.DeadlineStatus {
	due, err := ParseCalendarDate(raw, now.Location())
	if err != nil {
		return models.DeadlineStatus{Tier: models.UrgencyUnknown}
	}
	return ClassifyDeadline(due, warningDays, now)
}

// ParseCalendarDate parses an ISO-8601 date (YYYY-MM-DD) or date-time into a time in loc.
// Date-only values are interpreted as midnight in loc.
func ParseCalendarDate(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, errEmptyDate
	}
	if t, err := time.ParseInLocation(models.DateLayout, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: expected YYYY-MM-DD", raw)
	}
	return t, nil
}

// daysBetween counts calendar days from -> to, reading both in from's location. Counting on
// UTC midnights keeps 23h/25h DST days from skewing the result.
func daysBetween(from, to time.Time) int {
	loc := from.Location()
	fy, fm, fd := from.Date()
	ty, tm, td := to.In(loc).Date()
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start) / day)
}
