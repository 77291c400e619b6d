package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/rail-booking/internal/model"
	"github.com/iliyamo/rail-booking/internal/queue"
	"github.com/iliyamo/rail-booking/internal/repository"
)

// BookingStore is the bookings ledger.  GetDetail returns
// repository.ErrBookingNotFound for an unknown id.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	GetDetail(ctx context.Context, id uint64) (*model.BookingDetail, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.BookingDetail, error)
}

// EventPublisher receives booking.created events.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error
}

// CreateBookingInput carries a booking request.  TravelDate is the raw
// client value; it is parsed by Create.
type CreateBookingInput struct {
	UserID        uint64
	PassengerName string
	Age           int
	Class         string
	TravelDate    string
	FromStationID uint64
	ToStationID   uint64
}

// BookingService runs the booking transaction: validate, price, insert,
// read back.
type BookingService struct {
	fares    *FareService
	bookings BookingStore
	events   EventPublisher // optional
	loc      *time.Location
	log      *zap.Logger
	now      func() time.Time
	inflight sync.WaitGroup
}

// publishTimeout bounds one booking.created hand-off to the broker.
const publishTimeout = 5 * time.Second

// NewBookingService wires a BookingService.  loc defines which calendar day
// counts as "today"; events and log may be nil.
func NewBookingService(fares *FareService, bookings BookingStore, events EventPublisher, loc *time.Location, log *zap.Logger) *BookingService {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BookingService{
		fares:    fares,
		bookings: bookings,
		events:   events,
		loc:      loc,
		log:      log,
		now:      time.Now,
	}
}

// Create books one passenger.  Exactly one ledger row is written on success
// and none on any validation or pricing failure.  Store failures are not
// retried.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (*model.BookingDetail, error) {
	in.PassengerName = strings.TrimSpace(in.PassengerName)
	in.Class = strings.TrimSpace(in.Class)
	in.TravelDate = strings.TrimSpace(in.TravelDate)
	if in.UserID == 0 || in.PassengerName == "" || in.Age == 0 || in.Class == "" ||
		in.TravelDate == "" || in.FromStationID == 0 || in.ToStationID == 0 {
		return nil, ErrMissingFields
	}
	if in.Age < 0 {
		return nil, fmt.Errorf("%w: age must be positive", ErrInvalidInput)
	}

	travel, err := parseTravelDate(in.TravelDate, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	if travel.Before(calendarDay(s.now(), s.loc)) {
		return nil, ErrInvalidDate
	}

	amount, err := s.fares.Resolve(ctx, in.FromStationID, in.ToStationID, in.Class)
	if err != nil {
		return nil, err
	}

	b := &model.Booking{
		UserID:        in.UserID,
		PassengerName: in.PassengerName,
		Age:           in.Age,
		Class:         in.Class,
		TravelDate:    travel,
		FromStationID: in.FromStationID,
		ToStationID:   in.ToStationID,
		Amount:        amount,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("%w: insert booking: %w", ErrPersistence, err)
	}

	d, err := s.bookings.GetDetail(ctx, b.ID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: booking %d created but could not be read back", ErrPersistence, b.ID)
		}
		return nil, fmt.Errorf("%w: read back booking %d: %w", ErrPersistence, b.ID, err)
	}
	if d.FromStation == "" {
		d.FromStation = fmt.Sprintf("Station %d", in.FromStationID)
	}
	if d.ToStation == "" {
		d.ToStation = fmt.Sprintf("Station %d", in.ToStationID)
	}

	s.publish(ctx, b.UserID, d)
	return d, nil
}

// publish emits booking.created in the background so a slow or absent
// broker never delays the response.  Failures are logged only; the booking
// is already committed.
func (s *BookingService) publish(ctx context.Context, userID uint64, d *model.BookingDetail) {
	if s.events == nil {
		return
	}
	ev := queue.BookingCreatedEvent{
		BookingID:     d.ID,
		UserID:        userID,
		PassengerName: d.PassengerName,
		Class:         d.Class,
		TravelDate:    d.TravelDate.Format(time.DateOnly),
		FromStationID: d.FromStationID,
		FromStation:   d.FromStation,
		ToStationID:   d.ToStationID,
		ToStation:     d.ToStation,
		Amount:        d.Amount.StringFixed(2),
		CreatedAt:     s.now().UTC().Format(time.RFC3339),
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		// the request context ends with the response
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()
		if err := s.events.PublishBookingCreated(ctx, ev); err != nil {
			s.log.Warn("booking event not published", zap.Uint64("booking_id", ev.BookingID), zap.Error(err))
		}
	}()
}

// Wait blocks until every booking event started so far has been handed to
// the publisher or given up on.  Call it before closing the publisher.
func (s *BookingService) Wait() {
	s.inflight.Wait()
}

// ListForUser returns the user's bookings, newest first.
func (s *BookingService) ListForUser(ctx context.Context, userID uint64) ([]model.BookingDetail, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	out, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list bookings: %w", ErrStoreUnavailable, err)
	}
	return out, nil
}

// parseTravelDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns
// the calendar day at UTC midnight.  Timestamps are read in loc.
func parseTravelDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date %q", s)
	}
	return calendarDay(t, loc), nil
}

// calendarDay truncates t to its date in loc, expressed as UTC midnight so
// dates compare by day only.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
