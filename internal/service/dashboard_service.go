package service

import (
	"context"
	"time"

	"github.com/tilemart/tilemart/internal/models"
	"github.com/tilemart/tilemart/internal/repo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 대시보드 최근 상담 노출 건수
const recentConsultationLimit = 5

// 월별 통계 집계 범위(개월)
const monthlyStatsMonths = 6

// DashboardService 관리자 대시보드 집계 서비스
type DashboardService struct {
	logger *zap.Logger

	consultationRepo *repo.ConsultationRepo
	portfolioRepo    *repo.PortfolioRepo
	customerRepo     *repo.CustomerRepo
}

// NewDashboardService 대시보드 서비스 생성
func NewDashboardService(logger *zap.Logger, db *gorm.DB) *DashboardService {
	return &DashboardService{
		logger:           logger,
		consultationRepo: repo.NewConsultationRepo(db),
		portfolioRepo:    repo.NewPortfolioRepo(db),
		customerRepo:     repo.NewCustomerRepo(db),
	}
}

// MonthlyCount 월별 상담 건수와 계약 건수
type MonthlyCount struct {
	Month      string `json:"month"` // YYYY-MM
	Count      int64  `json:"count"`
	Contracted int64  `json:"contracted"`
}

// DashboardStats 대시보드 요약
type DashboardStats struct {
	TotalConsultations      int64                          `json:"total_consultations"`
	PendingConsultations    int64                          `json:"pending_consultations"`
	ContactedConsultations  int64                          `json:"contacted_consultations"`
	ContractedConsultations int64                          `json:"contracted_consultations"`
	TotalPortfolios         int64                          `json:"total_portfolios"`
	TotalCustomers          int64                          `json:"total_customers"`
	RecentConsultations     []models.ConsultationWithAdmin `json:"recent_consultations"`
	MonthlyStats            []MonthlyCount                 `json:"monthly_stats"`
}

// GetStats 대시보드 요약 조회
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	counts, err := s.consultationRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	portfolioCount, err := s.portfolioRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	customerCount, err := s.customerRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.consultationRepo.FindRecent(ctx, recentConsultationLimit)
	if err != nil {
		return nil, err
	}

	monthly, err := s.monthlyStats(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalConsultations:      counts.Total,
		PendingConsultations:    counts.Pending,
		ContactedConsultations:  counts.Contacted,
		ContractedConsultations: counts.Contracted,
		TotalPortfolios:         portfolioCount,
		TotalCustomers:          customerCount,
		RecentConsultations:     recent,
		MonthlyStats:            monthly,
	}, nil
}

// monthlyStats 최근 N개월 상담 건수를 월 단위로 집계한다.
// DB 방언별 날짜 함수 차이를 피하려고 집계는 애플리케이션에서 한다.
// 상담이 없는 달도 0으로 채워서 반환한다.
func (s *DashboardService) monthlyStats(ctx context.Context, now time.Time) ([]MonthlyCount, error) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(monthlyStatsMonths - 1), 0)

	rows, err := s.consultationRepo.FindCreatedSince(ctx, first)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]int64)
	contractedByMonth := make(map[string]int64)
	for _, row := range rows {
		month := row.CreatedAt.Format("2006-01")
		byMonth[month]++
		if row.Status == models.StatusContracted {
			contractedByMonth[month]++
		}
	}

	stats := make([]MonthlyCount, 0, monthlyStatsMonths)
	for i := 0; i < monthlyStatsMonths; i++ {
		month := first.AddDate(0, i, 0).Format("2006-01")
		stats = append(stats, MonthlyCount{
			Month:      month,
			Count:      byMonth[month],
			Contracted: contractedByMonth[month],
		})
	}
	return stats, nil
}
