// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published after a booking has been written and
// read back.  It carries enough information for downstream consumers to
// log or notify without querying the primary database.
type BookingCreatedEvent struct {
    BookingID     uint64 `json:"booking_id"`
    UserID        uint64 `json:"user_id"`
    PassengerName string `json:"passenger_name"`
    Class         string `json:"class"`
    TravelDate    string `json:"travel_date"`
    FromStationID uint64 `json:"from_station_id"`
    FromStation   string `json:"from_station"`
    ToStationID   uint64 `json:"to_station_id"`
    ToStation     string `json:"to_station"`
    Amount        string `json:"amount"`
    CreatedAt     string `json:"created_at"`
}
