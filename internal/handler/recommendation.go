package handler

import (
    "fmt"
    "math"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/lunaapp/luna-backend/internal/core"
)

// RecommendationHandler serves GET /recommendations. Scores come from the
// core scorer and depend only on other users' interests, so a venue's
// position never moves when the viewer toggles their own interest.
type RecommendationHandler struct {
    Scorer *core.Scorer
}

// NewRecommendationHandler constructs a RecommendationHandler.
func NewRecommendationHandler(s *core.Scorer) *RecommendationHandler {
    if s == nil {
        panic("nil scorer passed to NewRecommendationHandler")
    }
    return &RecommendationHandler{Scorer: s}
}

// recommendation is one ranked entry.
type recommendation struct {
    Venue             venueWithCount `json:"venue"`
    Score             float64        `json:"score"`
    Reason            string         `json:"reason"`
    AlreadyInterested bool           `json:"already_interested"`
    FriendsInterested int            `json:"friends_interested"`
    TotalInterested   int            `json:"total_interested"`
}

// GetRecommendations handles GET /recommendations?user_id=...
func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
    userID, err := validateID(c.QueryParam("user_id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id: " + err.Error()})
    }

    recs, err := h.Scorer.RankForUser(userID)
    if err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": fmt.Sprintf("User with id '%s' not found", userID)})
    }

    out := make([]recommendation, 0, len(recs))
    for _, r := range recs {
        out = append(out, recommendation{
            Venue: venueWithCount{
                ID:              r.Venue.ID,
                Name:            r.Venue.Name,
                Category:        r.Venue.Category,
                Description:     r.Venue.Description,
                Image:           r.Venue.Image,
                Address:         r.Venue.Address,
                InterestedCount: r.TotalInterested,
            },
            Score:             math.Round(r.Score*10) / 10,
            Reason:            r.Reason(),
            AlreadyInterested: r.AlreadyInterested,
            FriendsInterested: r.FriendsInterested,
            TotalInterested:   r.TotalInterested,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"recommendations": out})
}
