package dto

// WarningDaysSetting carries the warning window in days.
type WarningDaysSetting struct {
	WarningDays *int `json:"warningDays" validate:"required"`
}
