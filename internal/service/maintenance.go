package service

import (
	"context"
	"time"

	"familiaconnect/internal/repository"

	"go.uber.org/zap"
)

// MaintenanceService removes stale calendar data
type MaintenanceService struct {
	eventRepo     repository.EventRepository
	retentionDays int
	logger        *zap.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(eventRepo repository.EventRepository, retentionDays int, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		eventRepo:     eventRepo,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// CleanupOldEvents removes events that ended before the retention window
func (s *MaintenanceService) CleanupOldEvents() (int64, error) {
	s.logger.Info("Starting cleanup of old events", zap.Int("retention_days", s.retentionDays))

	removed, err := s.eventRepo.CleanOldEvents(s.retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup old events", zap.Error(err))
		return 0, err
	}

	s.logger.Info("Cleanup completed successfully", zap.Int64("removed", removed))
	return removed, nil
}

// Run cleans up once, then on every tick until ctx is done
func (s *MaintenanceService) Run(ctx context.Context, interval time.Duration) {
	// Errors are logged by CleanupOldEvents
	_, _ = s.CleanupOldEvents()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			_, _ = s.CleanupOldEvents()
		}
	}
}
