// Package handler exposes the HTTP handlers of the venue discovery API.
// Handlers stay thin: they validate input, call into the core and shape
// JSON responses; all interest/booking decisions live in internal/core.
package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// Version reported by the root banner.
const Version = "1.0.0"

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok")
}

// Root returns the service banner at GET /.
func Root(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{
        "message": "Luna Venue Discovery API",
        "status":  "running",
        "version": Version,
    })
}
