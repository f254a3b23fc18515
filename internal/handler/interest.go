package handler

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/rs/zerolog"

    "github.com/lunaapp/luna-backend/internal/core"
    "github.com/lunaapp/luna-backend/internal/model"
    "github.com/lunaapp/luna-backend/internal/queue"
    "github.com/lunaapp/luna-backend/internal/repository"
)

// EventPublisher sends a booking event to the broker. It matches
// queue_publisher.PublishBookingEvent; tests substitute their own.
type EventPublisher func(ctx context.Context, ev queue.BookingEvent) error

// InterestHandler serves POST /interests, the single write endpoint of
// the API. It owns response shaping and event publication; the toggle
// itself happens in the coordinator.
type InterestHandler struct {
    Core    *core.Coordinator
    Dir     *repository.Directory
    Ledger  *repository.InterestLedger
    Publish EventPublisher // may be nil when no broker is configured
    Log     zerolog.Logger
}

// NewInterestHandler constructs an InterestHandler. Core, Dir and Ledger
// must be non-nil.
func NewInterestHandler(c *core.Coordinator, dir *repository.Directory, ledger *repository.InterestLedger, publish EventPublisher, log zerolog.Logger) *InterestHandler {
    if c == nil || dir == nil || ledger == nil {
        panic("nil dependency passed to NewInterestHandler")
    }
    return &InterestHandler{Core: c, Dir: dir, Ledger: ledger, Publish: publish, Log: log}
}

// interestRequest is the POST /interests body.
type interestRequest struct {
    UserID  string `json:"user_id"`
    VenueID string `json:"venue_id"`
}

// interestResponse mirrors the response shape the mobile client consumes.
type interestResponse struct {
    Success          bool   `json:"success"`
    AgentTriggered   bool   `json:"agent_triggered"`
    Message          string `json:"message"`
    ReservationCode  string `json:"reservation_code,omitempty"`
    BookingCancelled bool   `json:"booking_cancelled"`
}

// ToggleInterest handles POST /interests. Expressing interest twice
// toggles it off again; there is no "set" form. Booking creation and
// cancellation happen as side effects of crossing the threshold.
func (h *InterestHandler) ToggleInterest(c echo.Context) error {
    var req interestRequest
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    userID, err := validateID(req.UserID)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id: " + err.Error()})
    }
    venueID, err := validateID(req.VenueID)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "venue_id: " + err.Error()})
    }

    outcome, err := h.Core.ToggleInterest(c.Request().Context(), userID, venueID)
    if err != nil {
        if errors.Is(err, repository.ErrUserNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": fmt.Sprintf("User with id '%s' not found", userID)})
        }
        if errors.Is(err, repository.ErrVenueNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": fmt.Sprintf("Venue with id '%s' not found", venueID)})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
    }

    venue, _ := h.Dir.VenueByID(venueID)

    switch outcome.Kind {
    case core.InterestRemoved:
        return c.JSON(http.StatusOK, interestResponse{
            Success: true,
            Message: fmt.Sprintf("Interest removed for %s", venue.Name),
        })

    case core.BookingCancelled:
        h.publishCancelled(outcome, venue)
        return c.JSON(http.StatusOK, interestResponse{
            Success:          true,
            BookingCancelled: true,
            Message:          "Interest removed. Booking cancelled due to insufficient interest.",
        })

    case core.BookingCreated:
        h.publishCreated(outcome, venue)
        return c.JSON(http.StatusOK, interestResponse{
            Success:         true,
            AgentTriggered:  true,
            Message:         fmt.Sprintf("Reserved table for %d at %s", outcome.Booking.PartySize(), venue.Name),
            ReservationCode: outcome.ReservationCode,
        })

    case core.BookingAlreadyActive:
        return c.JSON(http.StatusOK, interestResponse{
            Success:         true,
            Message:         fmt.Sprintf("Interest recorded. Active booking already exists for %s", venue.Name),
            ReservationCode: outcome.ReservationCode,
        })

    default: // core.InterestRecorded
        return c.JSON(http.StatusOK, interestResponse{
            Success: true,
            Message: "Interest recorded successfully",
        })
    }
}

// publishCreated fires a booking.created event. Publication is
// fire-and-forget: a broker failure never affects the HTTP response.
func (h *InterestHandler) publishCreated(outcome core.Outcome, venue model.Venue) {
    if h.Publish == nil || outcome.Booking == nil {
        return
    }
    b := *outcome.Booking
    go func() {
        ev := queue.BookingEvent{
            Kind:            queue.EventBookingCreated,
            BookingID:       b.ID,
            VenueID:         b.VenueID,
            VenueName:       venue.Name,
            ReservationCode: b.ReservationCode,
            UserIDs:         b.UserIDs,
            PartySize:       b.PartySize(),
            OccurredAt:      b.CreatedAt.UTC().Format(time.RFC3339),
        }
        if err := h.Publish(context.Background(), ev); err != nil {
            h.Log.Warn().Err(err).Str("booking", b.ID).Msg("booking.created event not published")
        }
    }()
}

// publishCancelled fires a booking.cancelled event.
func (h *InterestHandler) publishCancelled(outcome core.Outcome, venue model.Venue) {
    if h.Publish == nil || outcome.Booking == nil {
        return
    }
    b := *outcome.Booking
    count := h.Ledger.CountForVenue(b.VenueID)
    go func() {
        ev := queue.BookingEvent{
            Kind:          queue.EventBookingCancelled,
            BookingID:     b.ID,
            VenueID:       b.VenueID,
            VenueName:     venue.Name,
            InterestCount: count,
            OccurredAt:    time.Now().UTC().Format(time.RFC3339),
        }
        if err := h.Publish(context.Background(), ev); err != nil {
            h.Log.Warn().Err(err).Str("booking", b.ID).Msg("booking.cancelled event not published")
        }
    }()
}
