package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/villa_booking/internal/core/domain"
	"github.com/srgjo27/villa_booking/internal/core/ports"
	"github.com/srgjo27/villa_booking/internal/platform/clock"
)

type SaveBookingRequest struct {
	Booking    domain.Booking `json:"booking"`
	TaxEnabled bool           `json:"taxEnabled"`
}

type SaveBookingResponse struct {
	BookingID int64 `json:"bookingId"`
	Created   bool  `json:"created"`
}

type PreviewRequest struct {
	Booking    domain.Booking
	TaxEnabled bool
	Submitted  bool
	Edits      []domain.Edit
	Event      *domain.Event
}

type PreviewResponse struct {
	Booking     domain.Booking          `json:"booking"`
	TaxEnabled  bool                    `json:"taxEnabled"`
	Errors      domain.ValidationErrors `json:"errors"`
	EventErrors domain.ValidationErrors `json:"eventErrors,omitempty"`
	NumOfDays   int                     `json:"numOfDays"`
}

type BookingService struct {
	bookingRepo ports.BookingRepository
	cache       ports.HistoryCache
	clock       clock.Clock
	logger      *zap.Logger
}

func NewBookingService(bookingRepo ports.BookingRepository, cache ports.HistoryCache, clk clock.Clock, logger *zap.Logger) *BookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingService{
		bookingRepo: bookingRepo,
		cache:       cache,
		clock:       clk,
		logger:      logger,
	}
}

// New returns the booking a blank form opens with.
func (s *BookingService) New() domain.Booking {
	b := domain.NewBooking()
	return domain.Derive(b, b, domain.DeriveOptions{})
}

// History loads every stored version of a booking. Id 0 yields a one-element
// history holding a fresh booking.
func (s *BookingService) History(ctx context.Context, bookingID int64) (domain.History, error) {
	if bookingID == 0 {
		return domain.NewHistory([]domain.Booking{s.New()}), nil
	}
	if bookingID < 0 {
		return domain.History{}, domain.ErrInvalidBookingID
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, bookingID)
		if err != nil {
			s.logger.Warn("history cache read failed", zap.Int64("booking_id", bookingID), zap.Error(err))
		} else if ok && len(cached) > 0 {
			return domain.NewHistory(cached), nil
		}
	}

	snapshots, err := s.bookingRepo.LoadHistory(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return domain.History{}, err
		}
		return domain.History{}, &domain.PersistenceError{Op: "load", Err: err}
	}
	if len(snapshots) == 0 {
		return domain.History{}, domain.ErrBookingNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, bookingID, snapshots); err != nil {
			s.logger.Warn("history cache write failed", zap.Int64("booking_id", bookingID), zap.Error(err))
		}
	}
	return domain.NewHistory(snapshots), nil
}

// Current returns the last version of a booking.
func (s *BookingService) Current(ctx context.Context, bookingID int64) (domain.Booking, error) {
	h, err := s.History(ctx, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	b, _ := h.Latest()
	return b, nil
}

// Version returns one element of the history, 0 being the first save.
func (s *BookingService) Version(ctx context.Context, bookingID int64, version int) (domain.Booking, error) {
	h, err := s.History(ctx, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	b, ok := h.At(version)
	if !ok {
		return domain.Booking{}, domain.ErrVersionNotFound
	}
	return b, nil
}

// Preview replays edits on a snapshot the way the form does and returns the
// derived booking with its validation state. Nothing is stored.
func (s *BookingService) Preview(req PreviewRequest) PreviewResponse {
	session := domain.NewSession(req.Booking)
	session.Apply(domain.SetTax{Enabled: req.TaxEnabled})
	if req.Submitted {
		session.MarkSubmitted()
	}

	var eventErrs domain.ValidationErrors
	if req.Event != nil {
		eventErrs = session.SubmitEvent(*req.Event)
	}
	session.Apply(req.Edits...)

	b := session.Booking()
	return PreviewResponse{
		Booking:     b,
		TaxEnabled:  session.TaxEnabled(),
		Errors:      session.Errors(),
		EventErrors: eventErrs,
		NumOfDays:   domain.NumOfDays(b),
	}
}

// Save validates and stores a booking. A booking without id is created,
// otherwise a new version is appended to its history. Validation failures are
// returned as domain.ValidationErrors and never reach the repository.
func (s *BookingService) Save(ctx context.Context, req SaveBookingRequest, actor domain.Employee) (*SaveBookingResponse, error) {
	if req.Booking.BookingID < 0 {
		return nil, domain.ErrInvalidBookingID
	}

	b := applyDefaults(req.Booking)
	b = domain.Derive(b, b, domain.DeriveOptions{TaxEnabled: req.TaxEnabled})

	if errs := domain.Validate(b); !errs.Valid() {
		return nil, errs
	}

	now := domain.FormatInstant(s.clock.Now())
	b.UpdatedDateTime = now
	b.UpdatedBy = &actor

	if !b.IsPersisted() {
		return s.create(ctx, b, actor, now)
	}
	return s.update(ctx, b, actor, now)
}

func (s *BookingService) create(ctx context.Context, b domain.Booking, actor domain.Employee, now string) (*SaveBookingResponse, error) {
	b.CreatedDateTime = now
	b.CreatedBy = &actor
	b.ClientViewID = uuid.NewString()
	if b.Status == domain.StatusConfirmed {
		b.ConfirmedDateTime = now
		b.ConfirmedBy = &actor
	}

	id, err := s.bookingRepo.Create(ctx, &b)
	if err != nil {
		s.logger.Error("create booking failed", zap.Error(err))
		return nil, &domain.PersistenceError{Op: "create", Err: err}
	}

	s.logger.Info("booking created",
		zap.Int64("booking_id", id),
		zap.String("type", string(b.BookingType)),
		zap.String("status", string(b.Status)),
		zap.String("by", actor.ID),
	)
	return &SaveBookingResponse{BookingID: id, Created: true}, nil
}

func (s *BookingService) update(ctx context.Context, b domain.Booking, actor domain.Employee, now string) (*SaveBookingResponse, error) {
	prev, err := s.Current(ctx, b.BookingID)
	if err != nil {
		return nil, err
	}

	b.CreatedDateTime = prev.CreatedDateTime
	b.CreatedBy = prev.CreatedBy
	if b.ClientViewID == "" {
		b.ClientViewID = prev.ClientViewID
	}
	b.ConfirmedDateTime = prev.ConfirmedDateTime
	b.ConfirmedBy = prev.ConfirmedBy
	if b.Status == domain.StatusConfirmed && prev.Status != domain.StatusConfirmed {
		b.ConfirmedDateTime = now
		b.ConfirmedBy = &actor
	}

	if err := s.bookingRepo.Update(ctx, &b); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return nil, err
		}
		s.logger.Error("update booking failed", zap.Int64("booking_id", b.BookingID), zap.Error(err))
		return nil, &domain.PersistenceError{Op: "update", Err: err}
	}
	s.invalidate(ctx, b.BookingID)

	s.logger.Info("booking updated",
		zap.Int64("booking_id", b.BookingID),
		zap.String("status", string(b.Status)),
		zap.String("by", actor.ID),
	)
	return &SaveBookingResponse{BookingID: b.BookingID}, nil
}

// Delete removes the whole history of a booking.
func (s *BookingService) Delete(ctx context.Context, bookingID int64) error {
	if bookingID <= 0 {
		return domain.ErrInvalidBookingID
	}
	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return err
		}
		return &domain.PersistenceError{Op: "delete", Err: err}
	}
	s.invalidate(ctx, bookingID)
	s.logger.Info("booking deleted", zap.Int64("booking_id", bookingID))
	return nil
}

func (s *BookingService) List(ctx context.Context, filter ports.ListFilter) ([]domain.Booking, error) {
	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = 100
	}
	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list", Err: err}
	}
	return bookings, nil
}

func (s *BookingService) invalidate(ctx context.Context, bookingID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, bookingID); err != nil {
		s.logger.Warn("history cache invalidate failed", zap.Int64("booking_id", bookingID), zap.Error(err))
	}
}

func applyDefaults(b domain.Booking) domain.Booking {
	b = b.Clone()
	if b.BookingType == "" {
		b.BookingType = domain.BookingStay
	}
	if b.Status == "" {
		b.Status = domain.StatusInquiry
	}
	if b.PaymentMethod == "" {
		b.PaymentMethod = domain.PaymentCash
	}
	if b.EncodingVersion == 0 {
		b.EncodingVersion = domain.EncodingVersion
	}
	if b.Properties == nil {
		b.Properties = []domain.Property{}
	}
	if b.Events == nil {
		b.Events = []domain.Event{}
	}
	if b.Costs == nil {
		b.Costs = []domain.Cost{}
	}
	if b.Payments == nil {
		b.Payments = []domain.Payment{}
	}
	for i := range b.Payments {
		if b.Payments[i].PaymentMethod == "" {
			b.Payments[i].PaymentMethod = domain.PaymentCash
		}
	}
	domain.ClampAmounts(&b)
	return b
}
