package mocks

import (
	"context"

	"github.com/srgjo27/villa_booking/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// HistoryCache is a mock type for the ports.HistoryCache type
type HistoryCache struct {
	mock.Mock
}

func (_m *HistoryCache) Get(ctx context.Context, bookingID int64) ([]domain.Booking, bool, error) {
	ret := _m.Called(ctx, bookingID)

	var r0 []domain.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Booking)
	}
	return r0, ret.Bool(1), ret.Error(2)
}

func (_m *HistoryCache) Set(ctx context.Context, bookingID int64, history []domain.Booking) error {
	ret := _m.Called(ctx, bookingID, history)
	return ret.Error(0)
}

func (_m *HistoryCache) Invalidate(ctx context.Context, bookingID int64) error {
	ret := _m.Called(ctx, bookingID)
	return ret.Error(0)
}

// NewHistoryCache creates a new instance of HistoryCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewHistoryCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *HistoryCache {
	m := &HistoryCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
