package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"booking-report-backend/internal/model"
)

func newTestStore(t *testing.T) Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ReportLog{}))
	return NewGormStore(db)
}

func TestGormStore_SaveAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		require.NoError(t, s.SaveReportLog(ctx, model.ReportLog{
			ID:          id,
			TargetDate:  "2024-05-17",
			AuthSource:  "stored",
			Bookings:    i + 1,
			GeneratedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	logs, err := s.ListReportLogs(ctx, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "third", logs[0].ID, "newest first")
	assert.Equal(t, "second", logs[1].ID)
}

func TestGormStore_ListEmpty(t *testing.T) {
	s := newTestStore(t)
	logs, err := s.ListReportLogs(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
