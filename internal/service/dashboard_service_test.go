package service

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tilemart/tilemart/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func seedConsultationAt(t *testing.T, db *gorm.DB, status models.ConsultationStatus, createdAt time.Time) {
	t.Helper()

	row := models.Consultation{
		ID:        ulid.Make().String(),
		Name:      "김철수",
		Phone:     "010-1234-5678",
		SpaceType: models.SpaceResidential,
		Status:    status,
		Source:    models.SourceWebsite,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&row).Error)
}

func TestDashboardStatsCounts(t *testing.T) {
	db := newTestDB(t)
	s := NewDashboardService(zap.NewNop(), db)
	ctx := context.Background()

	now := time.Now()
	seedConsultationAt(t, db, models.StatusPending, now)
	seedConsultationAt(t, db, models.StatusPending, now)
	seedConsultationAt(t, db, models.StatusContacted, now)
	seedConsultationAt(t, db, models.StatusContracted, now)

	require.NoError(t, db.Create(&models.Portfolio{ID: ulid.Make().String(), Title: "시공", Slug: "s", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Customer{ID: ulid.Make().String(), Name: "김철수", Phone: "010"}).Error)

	stats, err := s.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalConsultations)
	assert.EqualValues(t, 2, stats.PendingConsultations)
	assert.EqualValues(t, 1, stats.ContactedConsultations)
	assert.EqualValues(t, 1, stats.ContractedConsultations)
	assert.EqualValues(t, 1, stats.TotalPortfolios)
	assert.EqualValues(t, 1, stats.TotalCustomers)
	assert.Len(t, stats.RecentConsultations, 4)
	assert.Len(t, stats.MonthlyStats, monthlyStatsMonths)
}

func TestDashboardMonthlyStatsFillsEmptyMonths(t *testing.T) {
	db := newTestDB(t)
	s := NewDashboardService(zap.NewNop(), db)
	ctx := context.Background()

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	seedConsultationAt(t, db, models.StatusPending, now)                     // 2026-08
	seedConsultationAt(t, db, models.StatusContracted, now.AddDate(0, 0, -3)) // 2026-08
	seedConsultationAt(t, db, models.StatusPending, now.AddDate(0, -2, 0))    // 2026-06
	// 집계 범위 밖
	seedConsultationAt(t, db, models.StatusPending, now.AddDate(0, -7, 0))

	monthly, err := s.monthlyStats(ctx, now)
	require.NoError(t, err)
	require.Len(t, monthly, monthlyStatsMonths)

	byMonth := make(map[string]MonthlyCount)
	for _, m := range monthly {
		byMonth[m.Month] = m
	}
	assert.EqualValues(t, 2, byMonth["2026-08"].Count)
	assert.EqualValues(t, 1, byMonth["2026-08"].Contracted)
	assert.EqualValues(t, 1, byMonth["2026-06"].Count)
	assert.EqualValues(t, 0, byMonth["2026-06"].Contracted)
	assert.EqualValues(t, 0, byMonth["2026-07"].Count)
	assert.EqualValues(t, 0, byMonth["2026-03"].Count)
	assert.Equal(t, "2026-03", monthly[0].Month)
	assert.Equal(t, "2026-08", monthly[len(monthly)-1].Month)
}
