// Package core implements the interest-aggregation and booking state
// machine: the interest coordinator that serializes toggles per venue,
// the pure booking trigger, and the recommendation scorer.
package core

import "github.com/lunaapp/luna-backend/internal/model"

// DefaultThreshold is the number of concurrently interested users that
// triggers a group booking.
const DefaultThreshold = 3

// TriggerAction enumerates the decisions the booking trigger can make.
type TriggerAction int

const (
    // TriggerNone means the interest count is below the threshold.
    TriggerNone TriggerAction = iota
    // TriggerAlreadyActive means the venue already has a live booking.
    TriggerAlreadyActive
    // TriggerCreate means the caller should mint a fresh booking.
    TriggerCreate
)

// TriggerDecision is the trigger's verdict. Existing is populated only
// for TriggerAlreadyActive.
type TriggerDecision struct {
    Action   TriggerAction
    Existing model.Booking
}

// Trigger decides whether a toggle-on should create a booking. It is a
// pure function of its inputs and never mutates anything.
type Trigger struct {
    Threshold int
}

// NewTrigger returns a Trigger with the given threshold; values below 1
// fall back to DefaultThreshold.
func NewTrigger(threshold int) Trigger {
    if threshold < 1 {
        threshold = DefaultThreshold
    }
    return Trigger{Threshold: threshold}
}

// Decide applies the trigger rule: below the threshold nothing happens;
// at or above it, an existing active booking for the venue is reported,
// otherwise the caller is told to create one. The threshold check and
// the duplicate-booking check are independent: a venue can sit at or
// above the threshold indefinitely, answering AlreadyActive on every
// subsequent toggle-on until the booking is cancelled.
func (t Trigger) Decide(venueID string, interestCount int, existing []model.Booking) TriggerDecision {
    if interestCount < t.Threshold {
        return TriggerDecision{Action: TriggerNone}
    }
    for _, b := range existing {
        if b.VenueID == venueID && b.Active() {
            return TriggerDecision{Action: TriggerAlreadyActive, Existing: b}
        }
    }
    return TriggerDecision{Action: TriggerCreate}
}
