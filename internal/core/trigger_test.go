package core

import (
    "testing"

    "github.com/lunaapp/luna-backend/internal/model"
)

func TestTriggerDecide(t *testing.T) {
    active := model.Booking{ID: "b1", VenueID: "venue_1", ReservationCode: "LUNA-venue_1-1234", Status: model.BookingStatusActive}
    cancelled := model.Booking{ID: "b0", VenueID: "venue_1", Status: model.BookingStatusCancelled}
    otherVenue := model.Booking{ID: "b2", VenueID: "venue_2", Status: model.BookingStatusActive}

    tests := []struct {
        name     string
        count    int
        existing []model.Booking
        want     TriggerAction
    }{
        {"below threshold", 2, nil, TriggerNone},
        {"below threshold ignores existing booking", 1, []model.Booking{active}, TriggerNone},
        {"at threshold creates", 3, nil, TriggerCreate},
        {"above threshold creates", 7, nil, TriggerCreate},
        {"active booking reported", 3, []model.Booking{active}, TriggerAlreadyActive},
        {"cancelled booking does not block", 3, []model.Booking{cancelled}, TriggerCreate},
        {"other venue booking does not block", 3, []model.Booking{otherVenue}, TriggerCreate},
        {"cancelled then active", 4, []model.Booking{cancelled, active}, TriggerAlreadyActive},
    }

    tr := NewTrigger(3)
    for _, tc := range tests {
        t.Run(tc.name, func(t *testing.T) {
            d := tr.Decide("venue_1", tc.count, tc.existing)
            if d.Action != tc.want {
                t.Fatalf("Decide(count=%d) = %v, want %v", tc.count, d.Action, tc.want)
            }
            if tc.want == TriggerAlreadyActive && d.Existing.ID != active.ID {
                t.Fatalf("Existing = %q, want %q", d.Existing.ID, active.ID)
            }
        })
    }
}

func TestNewTriggerDefaultsThreshold(t *testing.T) {
    if got := NewTrigger(0).Threshold; got != DefaultThreshold {
        t.Fatalf("NewTrigger(0).Threshold = %d, want %d", got, DefaultThreshold)
    }
    if got := NewTrigger(5).Threshold; got != 5 {
        t.Fatalf("NewTrigger(5).Threshold = %d, want 5", got)
    }
}
