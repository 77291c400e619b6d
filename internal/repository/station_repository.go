package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/rail-booking/internal/model"
)

// StationRepo reads the stations table.  Stations are seeded out of band and
// never modified by the API.
type StationRepo struct {
	db *sql.DB
}

func NewStationRepo(db *sql.DB) *StationRepo { return &StationRepo{db: db} }

// ListAll returns every station ordered by name.  An empty table yields an
// empty slice and no error.
func (r *StationRepo) ListAll(ctx context.Context) ([]model.Station, error) {
	const q = `SELECT id, name, code FROM stations ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Station{}
	for rows.Next() {
		var s model.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.Code); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
