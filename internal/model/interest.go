package model

import "time"

// Interest records that a user wants to visit a venue. It is the join
// between users and venues: at most one Interest may exist per
// (UserID, VenueID) pair at any time. Toggling interest on creates the
// record with the current timestamp and toggling off removes it; there
// is no update path.
//
// Fields:
//  UserID    – user expressing the interest.
//  VenueID   – venue the interest refers to.
//  Timestamp – when the interest was expressed.
type Interest struct {
    UserID    string    `json:"user_id"`
    VenueID   string    `json:"venue_id"`
    Timestamp time.Time `json:"timestamp"`
}
