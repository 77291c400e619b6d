package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/iliyamo/rail-booking/internal/model"
	"github.com/iliyamo/rail-booking/internal/queue"
	"github.com/iliyamo/rail-booking/internal/repository"
)

func money(v int64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromInt(v), Valid: true}
}

type memStations struct {
	rows []model.Station
	err  error
}

func (m *memStations) ListAll(context.Context) ([]model.Station, error) {
	return m.rows, m.err
}

type pair struct{ from, to uint64 }

type memFares struct {
	rows    map[pair]model.FareRow
	err     error
	lookups []pair
}

func (m *memFares) GetByPair(_ context.Context, fromID, toID uint64) (*model.FareRow, error) {
	m.lookups = append(m.lookups, pair{fromID, toID})
	if m.err != nil {
		return nil, m.err
	}
	r, ok := m.rows[pair{fromID, toID}]
	if !ok {
		return nil, repository.ErrFareNotFound
	}
	return &r, nil
}

// memLedger is an in-memory bookings table joined against a station map.
type memLedger struct {
	mu        sync.RWMutex
	stations  map[uint64]string
	rows      []model.Booking
	createErr error
	loseReads bool
}

func (m *memLedger) Create(_ context.Context, b *model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	b.ID = uint64(len(m.rows) + 1)
	b.CreatedAt = time.Unix(int64(b.ID), 0)
	m.rows = append(m.rows, *b)
	return nil
}

func (m *memLedger) detail(b model.Booking) model.BookingDetail {
	return model.BookingDetail{
		ID: b.ID, PassengerName: b.PassengerName, Age: b.Age, Class: b.Class,
		TravelDate: b.TravelDate, Amount: b.Amount,
		FromStationID: b.FromStationID, ToStationID: b.ToStationID,
		FromStation: m.stations[b.FromStationID], ToStation: m.stations[b.ToStationID],
	}
}

func (m *memLedger) GetDetail(_ context.Context, id uint64) (*model.BookingDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.loseReads {
		return nil, repository.ErrBookingNotFound
	}
	for _, b := range m.rows {
		if b.ID == id {
			d := m.detail(b)
			return &d, nil
		}
	}
	return nil, repository.ErrBookingNotFound
}

func (m *memLedger) ListByUser(_ context.Context, userID uint64) ([]model.BookingDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []model.BookingDetail{}
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].UserID == userID {
			out = append(out, m.detail(m.rows[i]))
		}
	}
	return out, nil
}

func (m *memLedger) count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rows)
}

type memUsers struct {
	mu   sync.Mutex
	rows []model.User
	err  error
}

func (m *memUsers) Create(_ context.Context, name, email, hash string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	for _, u := range m.rows {
		if u.Email == email {
			return 0, repository.ErrEmailExists
		}
	}
	u := model.User{ID: uint64(len(m.rows) + 1), Name: name, Email: email, PasswordHash: hash}
	m.rows = append(m.rows, u)
	return u.ID, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return model.User{}, m.err
	}
	for _, u := range m.rows {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, sql.ErrNoRows
}

type recordingPublisher struct {
	mu      sync.Mutex
	events  []queue.BookingCreatedEvent
	err     error
	release chan struct{} // when set, publishing blocks until it is closed
	ctxErrs []error       // ctx.Err() seen after release
}

func (p *recordingPublisher) PublishBookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error {
	if p.release != nil {
		<-p.release
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	p.ctxErrs = append(p.ctxErrs, ctx.Err())
	return p.err
}

func (p *recordingPublisher) published() []queue.BookingCreatedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]queue.BookingCreatedEvent(nil), p.events...)
}

var errStoreDown = errors.New("dial tcp: connection refused")

// fixture builds the two-station network used across booking tests:
// stations 1 and 2 with a single fare row (1,2) ac=500 sleeper=300 passenger=100.
func fixture() (*memFares, *memLedger) {
	fares := &memFares{rows: map[pair]model.FareRow{
		{1, 2}: {FromStationID: 1, ToStationID: 2, AC: money(500), Sleeper: money(300), Passenger: money(100)},
	}}
	ledger := &memLedger{stations: map[uint64]string{1: "A", 2: "B"}}
	return fares, ledger
}

func newBookingService(fares *memFares, ledger *memLedger, pub EventPublisher, now time.Time) *BookingService {
	svc := NewBookingService(NewFareService(fares), ledger, pub, time.UTC, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}
