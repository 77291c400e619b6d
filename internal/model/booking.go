package model

import (
    "time"

    "github.com/shopspring/decimal"
)

// Booking is an append-only row of the `bookings` table.  Amount is the
// fare snapshot taken when the booking was created and is never recomputed.
type Booking struct {
    ID            uint64          // bookings.id
    UserID        uint64          // bookings.user_id
    PassengerName string          // bookings.passenger_name
    Age           int             // bookings.age
    Class         string          // bookings.class (as submitted, e.g. "AC")
    TravelDate    time.Time       // bookings.travel_date (calendar day)
    FromStationID uint64          // bookings.from_station_id
    ToStationID   uint64          // bookings.to_station_id
    Amount        decimal.Decimal // bookings.amount
    CreatedAt     time.Time       // bookings.created_at
}

// BookingDetail is a booking joined with the names of its stations, as
// returned to clients.
type BookingDetail struct {
    ID            uint64
    PassengerName string
    Age           int
    Class         string
    TravelDate    time.Time
    Amount        decimal.Decimal
    FromStationID uint64
    ToStationID   uint64
    FromStation   string
    ToStation     string
}
