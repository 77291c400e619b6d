package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/rail-booking/internal/model"
)

// FareRepo reads the fares table.  It only knows about ordered pairs;
// reverse-direction fallback is a policy of the fare service.
type FareRepo struct {
	db *sql.DB
}

func NewFareRepo(db *sql.DB) *FareRepo { return &FareRepo{db: db} }

// GetByPair returns the fares row stored for (fromID, toID).  It returns
// ErrFareNotFound when the pair has no row.
func (r *FareRepo) GetByPair(ctx context.Context, fromID, toID uint64) (*model.FareRow, error) {
	const q = `SELECT from_station_id, to_station_id, fare_ac, fare_sleeper, fare_passenger
	           FROM fares WHERE from_station_id = ? AND to_station_id = ? LIMIT 1`
	var f model.FareRow
	err := r.db.QueryRowContext(ctx, q, fromID, toID).Scan(
		&f.FromStationID, &f.ToStationID, &f.AC, &f.Sleeper, &f.Passenger,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFareNotFound
		}
		return nil, err
	}
	return &f, nil
}
