package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/villa_booking/internal/core/domain"
)

func TestNumOfDays(t *testing.T) {
	b := domain.NewBooking()
	assert.Equal(t, 0, domain.NumOfDays(b))

	b.StartDateTime = "2024-06-01T10:00:00.000Z"
	b.EndDateTime = "2024-06-03T09:00:00.000Z"
	assert.Equal(t, 2, domain.NumOfDays(b))

	b.EndDateTime = "2024-06-03T11:00:00.000Z"
	assert.Equal(t, 3, domain.NumOfDays(b))

	b.EndDateTime = "2024-05-30T10:00:00.000Z"
	assert.Equal(t, 0, domain.NumOfDays(b))

	b.EndDateTime = b.StartDateTime
	assert.Equal(t, 0, domain.NumOfDays(b))
}

func TestAllProperties(t *testing.T) {
	b := domain.NewBooking()
	b.Properties = []domain.Property{domain.Castle, domain.Bluehouse}
	e := domain.NewEvent()
	e.Properties = []domain.Property{domain.Bluehouse, domain.MeadowLane}
	b.Events = []domain.Event{e}

	assert.Equal(t, []domain.Property{domain.Bluehouse, domain.MeadowLane, domain.Castle}, domain.AllProperties(b))
	assert.Equal(t, []string{"bluehouse", "meadowlane", "castle"}, domain.PropertyDBKeys(domain.AllProperties(b)))
}

func TestLocalDate_BusinessZone(t *testing.T) {
	// 20:00 UTC is already the next day in India.
	assert.Equal(t, "2024-06-02", domain.LocalDate("2024-06-01T20:00:00.000Z"))
	assert.Equal(t, "", domain.LocalDate(""))
}

func TestGroupByStartDate(t *testing.T) {
	a := domain.NewBooking()
	a.StartDateTime = "2024-06-01T05:00:00.000Z"
	b := domain.NewBooking()
	b.StartDateTime = "2024-06-01T10:00:00.000Z"
	c := domain.NewBooking()
	c.StartDateTime = "2024-06-01T19:00:00.000Z"

	groups := domain.GroupByStartDate([]domain.Booking{a, b, c})

	assert.Len(t, groups["2024-06-01"], 2)
	assert.Len(t, groups["2024-06-02"], 1)
}
