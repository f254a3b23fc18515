package repository

import (
    "sort"
    "sync"
    "time"

    "github.com/lunaapp/luna-backend/internal/model"
)

// InterestLedger is the source of truth for (user, venue) interest facts.
// It lives only for the lifetime of the process; a real deployment would
// back it with a durable store.
//
// The internal RWMutex makes individual reads and writes memory-safe so
// the recommendation scorer can read without taking any venue lock. It is
// NOT what serializes toggles: the end-to-end read-decide-mutate sequence
// for a venue is protected by the per-venue lock in VenueLocks, held by
// the interest coordinator.
type InterestLedger struct {
    mu      sync.RWMutex
    byVenue map[string]map[string]model.Interest // venue id -> user id -> interest
}

// NewInterestLedger returns an empty ledger.
func NewInterestLedger() *InterestLedger {
    return &InterestLedger{byVenue: make(map[string]map[string]model.Interest)}
}

// Has reports whether an interest exists for the pair.
func (l *InterestLedger) Has(userID, venueID string) bool {
    l.mu.RLock()
    defer l.mu.RUnlock()
    _, ok := l.byVenue[venueID][userID]
    return ok
}

// Add records an interest with the given timestamp. Adding an already
// present pair overwrites the timestamp; callers enforce toggle semantics
// by checking Has first under the venue lock.
func (l *InterestLedger) Add(userID, venueID string, at time.Time) model.Interest {
    in := model.Interest{UserID: userID, VenueID: venueID, Timestamp: at}
    l.mu.Lock()
    defer l.mu.Unlock()
    m, ok := l.byVenue[venueID]
    if !ok {
        m = make(map[string]model.Interest)
        l.byVenue[venueID] = m
    }
    m[userID] = in
    return in
}

// Remove deletes the interest for the pair, reporting whether one existed.
func (l *InterestLedger) Remove(userID, venueID string) bool {
    l.mu.Lock()
    defer l.mu.Unlock()
    m, ok := l.byVenue[venueID]
    if !ok {
        return false
    }
    if _, ok := m[userID]; !ok {
        return false
    }
    delete(m, userID)
    return true
}

// CountForVenue returns the number of active interests for a venue.
func (l *InterestLedger) CountForVenue(venueID string) int {
    l.mu.RLock()
    defer l.mu.RUnlock()
    return len(l.byVenue[venueID])
}

// CountForVenueExcluding counts active interests for a venue from users
// other than exclude. The scorer uses this so a user's own toggle can
// never move their own score.
func (l *InterestLedger) CountForVenueExcluding(venueID, exclude string) int {
    l.mu.RLock()
    defer l.mu.RUnlock()
    m := l.byVenue[venueID]
    n := len(m)
    if _, ok := m[exclude]; ok {
        n--
    }
    return n
}

// UsersForVenue returns the ids of users interested in a venue, ordered by
// interest timestamp (user id breaks ties for determinism).
func (l *InterestLedger) UsersForVenue(venueID string) []string {
    l.mu.RLock()
    ins := make([]model.Interest, 0, len(l.byVenue[venueID]))
    for _, in := range l.byVenue[venueID] {
        ins = append(ins, in)
    }
    l.mu.RUnlock()

    sortInterests(ins)
    out := make([]string, len(ins))
    for i, in := range ins {
        out[i] = in.UserID
    }
    return out
}

// VenuesForUser returns the ids of venues a user is interested in, ordered
// by interest timestamp.
func (l *InterestLedger) VenuesForUser(userID string) []string {
    l.mu.RLock()
    var ins []model.Interest
    for _, m := range l.byVenue {
        if in, ok := m[userID]; ok {
            ins = append(ins, in)
        }
    }
    l.mu.RUnlock()

    sortInterests(ins)
    out := make([]string, len(ins))
    for i, in := range ins {
        out[i] = in.VenueID
    }
    return out
}

func sortInterests(ins []model.Interest) {
    sort.Slice(ins, func(i, j int) bool {
        if !ins[i].Timestamp.Equal(ins[j].Timestamp) {
            return ins[i].Timestamp.Before(ins[j].Timestamp)
        }
        if ins[i].UserID != ins[j].UserID {
            return ins[i].UserID < ins[j].UserID
        }
        return ins[i].VenueID < ins[j].VenueID
    })
}
