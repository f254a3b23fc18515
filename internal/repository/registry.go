package repository

import (
    "sync"

    "github.com/lunaapp/luna-backend/internal/model"
)

// BookingRegistry holds every booking ever made during the process
// lifetime, including cancelled ones, which are kept for history. The
// interest coordinator is the only writer; it performs all mutations
// while holding the relevant venue lock, so the invariant of at most one
// active booking per venue is maintained there. The registry's own mutex
// only guards the slice for concurrent readers.
type BookingRegistry struct {
    mu       sync.RWMutex
    bookings []model.Booking // append-only; status flips in place
}

// NewBookingRegistry returns an empty registry.
func NewBookingRegistry() *BookingRegistry {
    return &BookingRegistry{}
}

// Install appends a new booking. The caller must hold the venue lock and
// have verified that no active booking exists for the venue.
func (r *BookingRegistry) Install(b model.Booking) {
    r.mu.Lock()
    defer r.mu.Unlock()
    r.bookings = append(r.bookings, b)
}

// ActiveForVenue returns the active booking for a venue, if any.
func (r *BookingRegistry) ActiveForVenue(venueID string) (model.Booking, bool) {
    r.mu.RLock()
    defer r.mu.RUnlock()
    for _, b := range r.bookings {
        if b.VenueID == venueID && b.Active() {
            return b, true
        }
    }
    return model.Booking{}, false
}

// CancelActive flips the active booking for a venue to cancelled and
// returns it. It reports false when the venue has no active booking.
func (r *BookingRegistry) CancelActive(venueID string) (model.Booking, bool) {
    r.mu.Lock()
    defer r.mu.Unlock()
    for i := range r.bookings {
        if r.bookings[i].VenueID == venueID && r.bookings[i].Active() {
            r.bookings[i].Status = model.BookingStatusCancelled
            return r.bookings[i], true
        }
    }
    return model.Booking{}, false
}

// ActiveForUser returns all active bookings that include the user,
// ordered by creation time (registry insertion order).
func (r *BookingRegistry) ActiveForUser(userID string) []model.Booking {
    r.mu.RLock()
    defer r.mu.RUnlock()
    var out []model.Booking
    for _, b := range r.bookings {
        if !b.Active() {
            continue
        }
        for _, id := range b.UserIDs {
            if id == userID {
                out = append(out, b)
                break
            }
        }
    }
    return out
}

// Snapshot returns a copy of every booking, active and cancelled, in
// creation order. The booking trigger scans this when deciding whether a
// venue already has a live reservation.
func (r *BookingRegistry) Snapshot() []model.Booking {
    r.mu.RLock()
    defer r.mu.RUnlock()
    out := make([]model.Booking, len(r.bookings))
    copy(out, r.bookings)
    return out
}
