package service

import (
	"context"
	"fmt"

	"github.com/iliyamo/rail-booking/internal/model"
)

// StationStore is the read side of the station directory.
type StationStore interface {
	ListAll(ctx context.Context) ([]model.Station, error)
}

// StationService serves the station directory.
type StationService struct {
	stations StationStore
}

func NewStationService(stations StationStore) *StationService {
	return &StationService{stations: stations}
}

// List returns stations ordered by name, or the built-in fallback list when
// the store has none.  The result is never empty.
func (s *StationService) List(ctx context.Context) ([]model.Station, error) {
	rows, err := s.stations.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list stations: %w", ErrStoreUnavailable, err)
	}
	if len(rows) == 0 {
		out := make([]model.Station, len(model.FallbackStations))
		copy(out, model.FallbackStations)
		return out, nil
	}
	return rows, nil
}
