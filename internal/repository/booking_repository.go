package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/rail-booking/internal/model"
)

// BookingRepo appends to and reads from the bookings ledger.  Bookings are
// never updated or deleted, so a row read after insert is final.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create inserts a booking and populates its generated ID.  travel_date is
// written as a plain calendar date so no time zone conversion applies.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings (user_id, passenger_name, age, class, travel_date, from_station_id, to_station_id, amount)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		b.UserID, b.PassengerName, b.Age, b.Class, b.TravelDate.Format("2006-01-02"),
		b.FromStationID, b.ToStationID, b.Amount.StringFixed(2))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

const bookingDetailSelect = `SELECT b.id, b.passenger_name, b.age, b.class, b.travel_date, b.amount,
                                    b.from_station_id, b.to_station_id, fs.name, ts.name
                             FROM bookings b
                             LEFT JOIN stations fs ON fs.id = b.from_station_id
                             LEFT JOIN stations ts ON ts.id = b.to_station_id`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanDetail reads one joined row.  Station names are empty when the join
// finds no station.
func scanDetail(s rowScanner) (model.BookingDetail, error) {
	var (
		d        model.BookingDetail
		from, to sql.NullString
	)
	err := s.Scan(&d.ID, &d.PassengerName, &d.Age, &d.Class, &d.TravelDate, &d.Amount,
		&d.FromStationID, &d.ToStationID, &from, &to)
	if err != nil {
		return d, err
	}
	d.FromStation = from.String
	d.ToStation = to.String
	return d, nil
}

// GetDetail returns a booking joined with its station names.  It returns
// ErrBookingNotFound if the id does not exist.
func (r *BookingRepo) GetDetail(ctx context.Context, id uint64) (*model.BookingDetail, error) {
	const q = bookingDetailSelect + ` WHERE b.id = ? LIMIT 1`
	d, err := scanDetail(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListByUser returns all bookings of a user, newest first.  An unknown user
// yields an empty slice.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.BookingDetail, error) {
	const q = bookingDetailSelect + ` WHERE b.user_id = ? ORDER BY b.created_at DESC, b.id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.BookingDetail{}
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
