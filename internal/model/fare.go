package model

import (
    "strings"

    "github.com/shopspring/decimal"
)

// Travel classes understood by the fare table.  Any other value selects the
// unreserved (passenger) fare.
const (
    ClassAC      = "ac"
    ClassSleeper = "sleeper"
)

// FareRow models a row in the `fares` table.  Rows are stored per ordered
// station pair, but a row for (B,A) is an acceptable answer for (A,B).
// Each fare column is nullable.
//
// Fields:
//  FromStationID – fares.from_station_id
//  ToStationID   – fares.to_station_id
//  AC            – fares.fare_ac (premium, air-conditioned)
//  Sleeper       – fares.fare_sleeper
//  Passenger     – fares.fare_passenger (unreserved)
type FareRow struct {
    FromStationID uint64
    ToStationID   uint64
    AC            decimal.NullDecimal
    Sleeper       decimal.NullDecimal
    Passenger     decimal.NullDecimal
}

// ForClass picks the fare column for a travel class.  Matching is
// case-insensitive; "ac" and "sleeper" select their columns and every other
// string falls back to the passenger fare.  ok is false when the selected
// column is NULL.
func (f FareRow) ForClass(class string) (amount decimal.Decimal, ok bool) {
    var col decimal.NullDecimal
    switch strings.ToLower(class) {
    case ClassAC:
        col = f.AC
    case ClassSleeper:
        col = f.Sleeper
    default:
        col = f.Passenger
    }
    if !col.Valid {
        return decimal.Zero, false
    }
    return col.Decimal, true
}
