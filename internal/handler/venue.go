package handler

import (
    "errors"
    "fmt"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/lunaapp/luna-backend/internal/core"
    "github.com/lunaapp/luna-backend/internal/repository"
)

// VenueHandler serves the venue browse endpoints: listing, detail with
// interested users, and the venue's active booking.
type VenueHandler struct {
    Dir    *repository.Directory
    Ledger *repository.InterestLedger
    Core   *core.Coordinator
}

// NewVenueHandler constructs a VenueHandler. All dependencies must be
// non-nil.
func NewVenueHandler(dir *repository.Directory, ledger *repository.InterestLedger, c *core.Coordinator) *VenueHandler {
    if dir == nil || ledger == nil || c == nil {
        panic("nil dependency passed to NewVenueHandler")
    }
    return &VenueHandler{Dir: dir, Ledger: ledger, Core: c}
}

// venueSummary is the listing shape: no description or address, but with
// the live interested count attached.
type venueSummary struct {
    ID              string `json:"id"`
    Name            string `json:"name"`
    Category        string `json:"category"`
    Image           string `json:"image"`
    InterestedCount int    `json:"interested_count"`
}

// interestedUser is the trimmed user shape on the venue detail page.
type interestedUser struct {
    ID     string `json:"id"`
    Name   string `json:"name"`
    Avatar string `json:"avatar"`
}

// ListVenues handles GET /venues.
func (h *VenueHandler) ListVenues(c echo.Context) error {
    venues := h.Dir.Venues()
    out := make([]venueSummary, 0, len(venues))
    for _, v := range venues {
        out = append(out, venueSummary{
            ID:              v.ID,
            Name:            v.Name,
            Category:        v.Category,
            Image:           v.Image,
            InterestedCount: h.Ledger.CountForVenue(v.ID),
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"venues": out})
}

// GetVenue handles GET /venues/:id, returning the full venue record plus
// the users currently interested in it (in interest order).
func (h *VenueHandler) GetVenue(c echo.Context) error {
    id := c.Param("id")
    venue, err := h.Dir.VenueByID(id)
    if err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": fmt.Sprintf("Venue with id '%s' not found", id)})
    }

    userIDs := h.Ledger.UsersForVenue(id)
    users := make([]interestedUser, 0, len(userIDs))
    for _, uid := range userIDs {
        u, err := h.Dir.UserByID(uid)
        if err != nil {
            continue
        }
        users = append(users, interestedUser{ID: u.ID, Name: u.Name, Avatar: u.Avatar})
    }

    return c.JSON(http.StatusOK, echo.Map{
        "venue":            venue,
        "interested_users": users,
    })
}

// bookingSummary is the booking shape returned by the booking endpoints.
type bookingSummary struct {
    ID              string    `json:"id"`
    ReservationCode string    `json:"reservation_code"`
    CreatedAt       time.Time `json:"created_at"`
    PartySize       int       `json:"party_size"`
}

// GetVenueBooking handles GET /venues/:id/booking, reporting whether the
// venue currently has an active booking.
func (h *VenueHandler) GetVenueBooking(c echo.Context) error {
    id := c.Param("id")
    booking, ok, err := h.Core.ActiveBookingFor(id)
    if err != nil {
        if errors.Is(err, repository.ErrVenueNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": fmt.Sprintf("Venue with id '%s' not found", id)})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
    }
    if !ok {
        return c.JSON(http.StatusOK, echo.Map{"has_booking": false, "booking": nil})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "has_booking": true,
        "booking": bookingSummary{
            ID:              booking.ID,
            ReservationCode: booking.ReservationCode,
            CreatedAt:       booking.CreatedAt,
            PartySize:       booking.PartySize(),
        },
    })
}
