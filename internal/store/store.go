// Package store persists the report generation history.
package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"booking-report-backend/internal/model"
)

// Store defines the report log operations the API layer needs.
type Store interface {
	SaveReportLog(ctx context.Context, entry model.ReportLog) error
	ListReportLogs(ctx context.Context, limit int) ([]model.ReportLog, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) SaveReportLog(ctx context.Context, entry model.ReportLog) error {
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to save report log %s: %w", entry.ID, err)
	}
	return nil
}

func (s *gormStore) ListReportLogs(ctx context.Context, limit int) ([]model.ReportLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []model.ReportLog
	if err := s.db.WithContext(ctx).Order("generated_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list report logs: %w", err)
	}
	return logs, nil
}
