package model

import "time"

// Booking status values. A booking is created active and transitions to
// cancelled exactly once, when the venue's interest count drops below the
// trigger threshold. Cancelled bookings are kept for history and never
// reactivated; a later threshold crossing installs a fresh booking.
const (
    BookingStatusActive    = "active"
    BookingStatusCancelled = "cancelled"
)

// Booking records an automatically triggered group reservation for a
// venue. At most one booking per venue may be active at any time.
//
// Fields:
//  ID              – unique booking identifier.
//  VenueID         – venue the reservation was made for.
//  UserIDs         – users that were interested when the booking fired.
//  ReservationCode – code returned by the reservation collaborator.
//  CreatedAt       – when the booking was created.
//  Status          – BookingStatusActive or BookingStatusCancelled.
type Booking struct {
    ID              string    `json:"id"`
    VenueID         string    `json:"venue_id"`
    UserIDs         []string  `json:"user_ids"`
    ReservationCode string    `json:"reservation_code"`
    CreatedAt       time.Time `json:"created_at"`
    Status          string    `json:"status"`
}

// Active reports whether the booking is still live.
func (b Booking) Active() bool { return b.Status == BookingStatusActive }

// PartySize returns the number of users covered by the booking.
func (b Booking) PartySize() int { return len(b.UserIDs) }
