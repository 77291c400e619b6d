package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/rail-booking/internal/model"
	"github.com/iliyamo/rail-booking/internal/repository"
)

// FareStore looks up a fares row for an ordered station pair and returns
// repository.ErrFareNotFound when there is none.
type FareStore interface {
	GetByPair(ctx context.Context, fromID, toID uint64) (*model.FareRow, error)
}

// FareService resolves fares.  Fares are treated as direction-symmetric: a
// row stored for (B,A) answers a request for (A,B).
type FareService struct {
	fares FareStore
}

func NewFareService(fares FareStore) *FareService {
	return &FareService{fares: fares}
}

// Resolve returns the fare for travelling from fromID to toID in class.
// The forward row wins when present, even if its column for class is NULL;
// the reverse row is consulted only when no forward row exists.  Classes
// other than "ac" and "sleeper" (any case) get the passenger fare.
func (s *FareService) Resolve(ctx context.Context, fromID, toID uint64, class string) (decimal.Decimal, error) {
	if fromID == 0 || toID == 0 || strings.TrimSpace(class) == "" {
		return decimal.Zero, fmt.Errorf("%w: from, to and class are required", ErrInvalidInput)
	}
	if fromID == toID {
		return decimal.Zero, ErrSameStation
	}

	row, err := s.fares.GetByPair(ctx, fromID, toID)
	if errors.Is(err, repository.ErrFareNotFound) {
		row, err = s.fares.GetByPair(ctx, toID, fromID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrFareNotFound) {
			return decimal.Zero, ErrFareNotFound
		}
		return decimal.Zero, fmt.Errorf("%w: fare lookup: %w", ErrStoreUnavailable, err)
	}

	amount, ok := row.ForClass(class)
	if !ok {
		return decimal.Zero, ErrFareNotFound
	}
	return amount, nil
}
