package core

import (
    "context"
    "fmt"
    "time"

    "github.com/google/uuid"
    "github.com/rs/zerolog"

    "github.com/lunaapp/luna-backend/internal/model"
    "github.com/lunaapp/luna-backend/internal/repository"
)

// OutcomeKind tags the result of a toggle. Each toggle maps to exactly
// one of these.
type OutcomeKind int

const (
    // InterestRecorded: interest added, threshold not reached (or the
    // reservation collaborator failed and the outcome degraded).
    InterestRecorded OutcomeKind = iota
    // InterestRemoved: interest removed, no booking was affected.
    InterestRemoved
    // BookingCreated: interest added and a new booking was installed.
    BookingCreated
    // BookingAlreadyActive: interest added, the venue already has a
    // live booking.
    BookingAlreadyActive
    // BookingCancelled: interest removed and the venue's booking was
    // cancelled because the count dropped below the threshold.
    BookingCancelled
)

// Outcome is the tagged result of ToggleInterest. ReservationCode is set
// for BookingCreated and BookingAlreadyActive; Booking for every
// booking-affecting kind.
type Outcome struct {
    Kind            OutcomeKind
    ReservationCode string
    Booking         *model.Booking
}

// Coordinator is the orchestrating state machine. It owns all writes to
// the ledger and the registry and performs them under the venue's lock,
// so no concurrent toggle for the same venue ever observes a half-applied
// transition.
type Coordinator struct {
    dir      *repository.Directory
    ledger   *repository.InterestLedger
    registry *repository.BookingRegistry
    locks    *repository.VenueLocks
    trigger  Trigger
    codes    ReservationCodes
    log      zerolog.Logger

    now func() time.Time // injectable clock for tests
}

// NewCoordinator wires the state machine. All dependencies must be
// non-nil; the constructor panics otherwise, mirroring how handlers are
// wired once at startup.
func NewCoordinator(dir *repository.Directory, ledger *repository.InterestLedger, registry *repository.BookingRegistry, locks *repository.VenueLocks, trigger Trigger, codes ReservationCodes, log zerolog.Logger) *Coordinator {
    if dir == nil || ledger == nil || registry == nil || locks == nil || codes == nil {
        panic("nil dependency passed to NewCoordinator")
    }
    return &Coordinator{
        dir:      dir,
        ledger:   ledger,
        registry: registry,
        locks:    locks,
        trigger:  trigger,
        codes:    codes,
        log:      log,
        now:      time.Now,
    }
}

// ToggleInterest flips the interest fact for (userID, venueID) and
// applies the booking consequences. There is no "set" form: repeated
// identical calls strictly alternate between on and off.
//
// The whole read-decide-mutate sequence runs under the venue's lock.
// Mutation order guarantees that a partial failure can only ever leave
// extra information behind (an interest without its booking), never a
// booking without the backing interest count: if the reservation
// collaborator fails, the interest stands, the fault is logged, and the
// outcome degrades to InterestRecorded.
func (c *Coordinator) ToggleInterest(ctx context.Context, userID, venueID string) (Outcome, error) {
    if _, err := c.dir.UserByID(userID); err != nil {
        return Outcome{}, fmt.Errorf("toggle interest: %w", err)
    }
    venue, err := c.dir.VenueByID(venueID)
    if err != nil {
        return Outcome{}, fmt.Errorf("toggle interest: %w", err)
    }

    mu := c.locks.Get(venueID)
    mu.Lock()
    defer mu.Unlock()

    if c.ledger.Has(userID, venueID) {
        return c.toggleOff(userID, venueID), nil
    }
    return c.toggleOn(ctx, userID, venue), nil
}

// toggleOff removes the interest and cancels the venue's booking when the
// count drops below the threshold. Caller holds the venue lock.
func (c *Coordinator) toggleOff(userID, venueID string) Outcome {
    c.ledger.Remove(userID, venueID)
    count := c.ledger.CountForVenue(venueID)
    c.log.Info().Str("user", userID).Str("venue", venueID).Int("count", count).Msg("interest removed")

    if count < c.trigger.Threshold {
        if cancelled, ok := c.registry.CancelActive(venueID); ok {
            c.log.Info().Str("venue", venueID).Str("booking", cancelled.ID).Int("count", count).Msg("booking cancelled, interest dropped below threshold")
            return Outcome{Kind: BookingCancelled, Booking: &cancelled}
        }
    }
    return Outcome{Kind: InterestRemoved}
}

// toggleOn records the interest, consults the trigger and installs a new
// booking when told to. Caller holds the venue lock.
func (c *Coordinator) toggleOn(ctx context.Context, userID string, venue model.Venue) Outcome {
    c.ledger.Add(userID, venue.ID, c.now())
    count := c.ledger.CountForVenue(venue.ID)
    c.log.Info().Str("user", userID).Str("venue", venue.ID).Int("count", count).Msg("interest recorded")

    decision := c.trigger.Decide(venue.ID, count, c.registry.Snapshot())
    switch decision.Action {
    case TriggerAlreadyActive:
        existing := decision.Existing
        return Outcome{Kind: BookingAlreadyActive, ReservationCode: existing.ReservationCode, Booking: &existing}

    case TriggerCreate:
        code, err := c.codes.GenerateReservationCode(ctx, venue.ID)
        if err != nil {
            // The interest mutation stands; booking creation must never
            // block interest recording.
            c.log.Error().Err(err).Str("venue", venue.ID).Msg("reservation collaborator failed, interest kept without booking")
            return Outcome{Kind: InterestRecorded}
        }
        booking := model.Booking{
            ID:              uuid.NewString(),
            VenueID:         venue.ID,
            UserIDs:         c.ledger.UsersForVenue(venue.ID),
            ReservationCode: code,
            CreatedAt:       c.now(),
            Status:          model.BookingStatusActive,
        }
        c.registry.Install(booking)
        c.log.Info().Str("venue", venue.ID).Str("booking", booking.ID).Str("code", code).Int("party_size", booking.PartySize()).Msg("booking created")
        return Outcome{Kind: BookingCreated, ReservationCode: code, Booking: &booking}

    default:
        return Outcome{Kind: InterestRecorded}
    }
}

// ActiveBookingFor returns the venue's active booking, if any. It
// validates the venue id against the directory.
func (c *Coordinator) ActiveBookingFor(venueID string) (model.Booking, bool, error) {
    if _, err := c.dir.VenueByID(venueID); err != nil {
        return model.Booking{}, false, err
    }
    b, ok := c.registry.ActiveForVenue(venueID)
    return b, ok, nil
}

// ActiveBookingsFor returns the user's active bookings in creation order.
func (c *Coordinator) ActiveBookingsFor(userID string) ([]model.Booking, error) {
    if _, err := c.dir.UserByID(userID); err != nil {
        return nil, err
    }
    return c.registry.ActiveForUser(userID), nil
}
