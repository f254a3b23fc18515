// Package queue defines booking event payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// Event kinds carried in BookingEvent.Kind.
const (
    EventBookingCreated   = "booking.created"
    EventBookingCancelled = "booking.cancelled"
)

// BookingEvent is published whenever the coordinator creates or cancels a
// booking. It carries enough information for downstream consumers to log
// or notify without querying the service.
type BookingEvent struct {
    Kind            string   `json:"kind"`
    BookingID       string   `json:"booking_id"`
    VenueID         string   `json:"venue_id"`
    VenueName       string   `json:"venue_name"`
    ReservationCode string   `json:"reservation_code,omitempty"`
    UserIDs         []string `json:"user_ids,omitempty"`
    PartySize       int      `json:"party_size"`
    InterestCount   int      `json:"interest_count"`
    OccurredAt      string   `json:"occurred_at"`
}
