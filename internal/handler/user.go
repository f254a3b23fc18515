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

// UserHandler serves user profiles and per-user booking listings.
type UserHandler struct {
    Dir    *repository.Directory
    Ledger *repository.InterestLedger
    Core   *core.Coordinator
}

// NewUserHandler constructs a UserHandler. All dependencies must be
// non-nil.
func NewUserHandler(dir *repository.Directory, ledger *repository.InterestLedger, c *core.Coordinator) *UserHandler {
    if dir == nil || ledger == nil || c == nil {
        panic("nil dependency passed to NewUserHandler")
    }
    return &UserHandler{Dir: dir, Ledger: ledger, Core: c}
}

// venueWithCount is the full venue shape plus the live interested count,
// used on profile pages and in recommendations.
type venueWithCount struct {
    ID              string `json:"id"`
    Name            string `json:"name"`
    Category        string `json:"category"`
    Description     string `json:"description"`
    Image           string `json:"image"`
    Address         string `json:"address"`
    InterestedCount int    `json:"interested_count"`
}

// GetUser handles GET /users/:id, returning the profile and the venues
// the user is interested in (in interest order).
func (h *UserHandler) GetUser(c echo.Context) error {
    id := c.Param("id")
    user, err := h.Dir.UserByID(id)
    if err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": fmt.Sprintf("User with id '%s' not found", id)})
    }

    venueIDs := h.Ledger.VenuesForUser(id)
    venues := make([]venueWithCount, 0, len(venueIDs))
    for _, vid := range venueIDs {
        v, err := h.Dir.VenueByID(vid)
        if err != nil {
            continue
        }
        venues = append(venues, venueWithCount{
            ID:              v.ID,
            Name:            v.Name,
            Category:        v.Category,
            Description:     v.Description,
            Image:           v.Image,
            Address:         v.Address,
            InterestedCount: h.Ledger.CountForVenue(v.ID),
        })
    }

    return c.JSON(http.StatusOK, echo.Map{
        "user":              user,
        "interested_venues": venues,
    })
}

// userBooking is one entry of GET /bookings/:user_id.
type userBooking struct {
    ID    string `json:"id"`
    Venue struct {
        ID       string `json:"id"`
        Name     string `json:"name"`
        Category string `json:"category"`
        Image    string `json:"image"`
        Address  string `json:"address"`
    } `json:"venue"`
    ReservationCode string    `json:"reservation_code"`
    CreatedAt       time.Time `json:"created_at"`
    PartySize       int       `json:"party_size"`
}

// GetUserBookings handles GET /bookings/:user_id, listing the user's
// active bookings with a venue summary attached.
func (h *UserHandler) GetUserBookings(c echo.Context) error {
    id := c.Param("user_id")
    bookings, err := h.Core.ActiveBookingsFor(id)
    if err != nil {
        if errors.Is(err, repository.ErrUserNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": fmt.Sprintf("User with id '%s' not found", id)})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
    }

    out := make([]userBooking, 0, len(bookings))
    for _, b := range bookings {
        v, err := h.Dir.VenueByID(b.VenueID)
        if err != nil {
            continue
        }
        ub := userBooking{
            ID:              b.ID,
            ReservationCode: b.ReservationCode,
            CreatedAt:       b.CreatedAt,
            PartySize:       b.PartySize(),
        }
        ub.Venue.ID = v.ID
        ub.Venue.Name = v.Name
        ub.Venue.Category = v.Category
        ub.Venue.Image = v.Image
        ub.Venue.Address = v.Address
        out = append(out, ub)
    }
    return c.JSON(http.StatusOK, echo.Map{"bookings": out})
}
