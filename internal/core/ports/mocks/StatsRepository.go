package mocks

import (
	"context"

	"github.com/srgjo27/villa_booking/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// StatsRepository is a mock type for the ports.StatsRepository type
type StatsRepository struct {
	mock.Mock
}

func (_m *StatsRepository) BookingStats(ctx context.Context, filter domain.StatsFilter) (domain.Stats, error) {
	ret := _m.Called(ctx, filter)
	return ret.Get(0).(domain.Stats), ret.Error(1)
}

func (_m *StatsRepository) CheckinStats(ctx context.Context, filter domain.StatsFilter) (domain.Stats, error) {
	ret := _m.Called(ctx, filter)
	return ret.Get(0).(domain.Stats), ret.Error(1)
}

// NewStatsRepository creates a new instance of StatsRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStatsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsRepository {
	m := &StatsRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
