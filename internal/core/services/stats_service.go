package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/srgjo27/villa_booking/internal/core/domain"
	"github.com/srgjo27/villa_booking/internal/core/ports"
)

// Dashboard is what the stats page shows for one month.
type Dashboard struct {
	Filter                domain.StatsFilter `json:"filter"`
	Bookings              domain.Stats       `json:"bookings"`
	Checkins              domain.Stats       `json:"checkins"`
	MonthlyConversionRate float64            `json:"monthlyConversionRate"`
	DailyConversionRates  []float64          `json:"dailyConversionRates"`
}

type StatsService struct {
	statsRepo ports.StatsRepository
	logger    *zap.Logger
}

func NewStatsService(statsRepo ports.StatsRepository, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{statsRepo: statsRepo, logger: logger}
}

func (s *StatsService) Dashboard(ctx context.Context, filter domain.StatsFilter) (*Dashboard, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	bookings, err := s.statsRepo.BookingStats(ctx, filter)
	if err != nil {
		s.logger.Error("booking stats failed", zap.Int("month", filter.Month), zap.Int("year", filter.Year), zap.Error(err))
		return nil, err
	}
	checkins, err := s.statsRepo.CheckinStats(ctx, filter)
	if err != nil {
		s.logger.Error("checkin stats failed", zap.Int("month", filter.Month), zap.Int("year", filter.Year), zap.Error(err))
		return nil, err
	}

	daily := make([]float64, len(bookings.Daily))
	for i, bucket := range bookings.Daily {
		daily[i] = domain.ConversionRate(bucket)
	}

	return &Dashboard{
		Filter:                filter,
		Bookings:              bookings,
		Checkins:              checkins,
		MonthlyConversionRate: domain.ConversionRate(bookings.Monthly),
		DailyConversionRates:  daily,
	}, nil
}
