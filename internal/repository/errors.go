// Package repository owns the process-lifetime state of the service: the
// interest ledger, the booking registry, the per-venue lock table and the
// read-only user/venue directory. This file defines sentinel errors shared
// across repositories so that higher layers such as handlers can map
// failure scenarios onto HTTP responses with errors.Is.
package repository

import "errors"

// ErrUserNotFound is returned when a user id does not resolve in the
// directory. Handlers should translate this into an HTTP 404 response.
var ErrUserNotFound = errors.New("user not found")

// ErrVenueNotFound is returned when a venue id does not resolve in the
// directory. Handlers should translate this into an HTTP 404 response.
var ErrVenueNotFound = errors.New("venue not found")
