package service

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// DefaultWarningDays is the warning window used when none is configured.
const DefaultWarningDays = 7

// SettingsService holds the user-adjustable warning window. The value lives in memory only.
type SettingsService struct {
	warningDays atomic.Int64
	logger      *zap.Logger
}

// NewSettingsService constructs the service with the initial warning window.
func NewSettingsService(initialWarningDays int, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SettingsService{logger: logger}
	s.warningDays.Store(int64(initialWarningDays))
	return s
}

// WarningDays returns the current warning window.
func (s *SettingsService) WarningDays() int {
	return int(s.warningDays.Load())
}

// SetWarningDays replaces the warning window. Any integer is accepted; values <= 0 leave the
// approaching tier empty.
func (s *SettingsService) SetWarningDays(days int) int {
	previous := s.warningDays.Swap(int64(days))
	if previous != int64(days) {
		s.logger.Info("warning window changed", zap.Int64("from", previous), zap.Int("to", days))
	}
	return days
}
