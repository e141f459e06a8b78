package ports

import (
	"context"

	"github.com/srgjo27/villa_booking/internal/core/domain"
)

// ListFilter narrows the list of current snapshots. Zero values mean no
// filter; From/To compare against the booking start date.
type ListFilter struct {
	Status  domain.BookingStatus
	Starred *bool
	From    string
	To      string
	Limit   int
}

// BookingRepository stores each booking as an append-only list of snapshots.
type BookingRepository interface {
	LoadHistory(ctx context.Context, bookingID int64) ([]domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (int64, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, bookingID int64) error
	List(ctx context.Context, filter ListFilter) ([]domain.Booking, error)
}

type StatsRepository interface {
	BookingStats(ctx context.Context, filter domain.StatsFilter) (domain.Stats, error)
	CheckinStats(ctx context.Context, filter domain.StatsFilter) (domain.Stats, error)
}

type NoteRepository interface {
	Insert(ctx context.Context, note domain.Note) error
}

// HistoryCache keeps recently loaded histories. A miss is (nil, false, nil).
type HistoryCache interface {
	Get(ctx context.Context, bookingID int64) ([]domain.Booking, bool, error)
	Set(ctx context.Context, bookingID int64, history []domain.Booking) error
	Invalidate(ctx context.Context, bookingID int64) error
}
