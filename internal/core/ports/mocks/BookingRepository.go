package mocks

import (
	"context"

	"github.com/srgjo27/villa_booking/internal/core/domain"
	"github.com/srgjo27/villa_booking/internal/core/ports"
	"github.com/stretchr/testify/mock"
)

// BookingRepository is a mock type for the ports.BookingRepository type
type BookingRepository struct {
	mock.Mock
}

func (_m *BookingRepository) LoadHistory(ctx context.Context, bookingID int64) ([]domain.Booking, error) {
	ret := _m.Called(ctx, bookingID)

	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]domain.Booking, error)); ok {
		return rf(ctx, bookingID)
	}

	var r0 []domain.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Booking)
	}
	return r0, ret.Error(1)
}

func (_m *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (int64, error) {
	ret := _m.Called(ctx, booking)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Booking) (int64, error)); ok {
		return rf(ctx, booking)
	}
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	ret := _m.Called(ctx, booking)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Booking) error); ok {
		return rf(ctx, booking)
	}
	return ret.Error(0)
}

func (_m *BookingRepository) Delete(ctx context.Context, bookingID int64) error {
	ret := _m.Called(ctx, bookingID)
	return ret.Error(0)
}

func (_m *BookingRepository) List(ctx context.Context, filter ports.ListFilter) ([]domain.Booking, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Booking)
	}
	return r0, ret.Error(1)
}

// NewBookingRepository creates a new instance of BookingRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewBookingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *BookingRepository {
	m := &BookingRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
