// Package router wires HTTP routes onto the Echo instance.
package router

import (
    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"
    "github.com/redis/go-redis/v9"

    "github.com/lunaapp/luna-backend/internal/config"
    "github.com/lunaapp/luna-backend/internal/handler"
    "github.com/lunaapp/luna-backend/internal/middleware"
)

// Handlers bundles every handler the router needs.
type Handlers struct {
    Venues          *handler.VenueHandler
    Users           *handler.UserHandler
    Interests       *handler.InterestHandler
    Recommendations *handler.RecommendationHandler
}

// Register sets up middleware and all API routes. CORS is permissive
// because the mobile client is served from a different origin. Rate
// limiting applies everywhere; the response cache only to the browse
// endpoints, so toggles are always reflected immediately in
// recommendations and booking views.
func Register(e *echo.Echo, h Handlers, rdb *redis.Client, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig) {
    e.Use(echomw.Recover())
    e.Use(echomw.CORS())
    e.Use(middleware.RateLimit(rlCfg, rdb))

    cache := middleware.ResponseCache(cacheCfg, rdb)

    e.GET("/", handler.Root)
    e.GET("/healthz", handler.Health)

    e.GET("/venues", h.Venues.ListVenues, cache)
    e.GET("/venues/:id", h.Venues.GetVenue, cache)
    e.GET("/venues/:id/booking", h.Venues.GetVenueBooking)

    e.POST("/interests", h.Interests.ToggleInterest)

    e.GET("/users/:id", h.Users.GetUser)
    e.GET("/bookings/:user_id", h.Users.GetUserBookings)

    e.GET("/recommendations", h.Recommendations.GetRecommendations)
}
