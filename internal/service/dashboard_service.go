package service

import (
	"time"

	"go-repair-pos/internal/apperr"
	"go-repair-pos/internal/repository"
)

// DefaultReportDays is the window the daily report falls back to when the
// caller gives no range.
const DefaultReportDays = 30

type DashboardService interface {
	GetDashboardStats() (*repository.DashboardStats, error)
	GetDailyReport(startDate, endDate *time.Time) ([]repository.DailyReportRow, error)
}

type dashboardService struct {
	txRepo repository.TransactionRepository
}

func NewDashboardService(txRepo repository.TransactionRepository) DashboardService {
	return &dashboardService{txRepo: txRepo}
}

func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	stats, err := s.txRepo.GetDashboardStats()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return stats, nil
}

// GetDailyReport recomputes the day buckets on every call; at this data
// scale there is no materialization.
func (s *dashboardService) GetDailyReport(startDate, endDate *time.Time) ([]repository.DailyReportRow, error) {
	end := time.Now()
	if endDate != nil {
		end = *endDate
	}
	start := end.AddDate(0, 0, -DefaultReportDays)
	if startDate != nil {
		start = *startDate
	}

	rows, err := s.txRepo.GetDailyReport(start, end)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rows, nil
}
