package repository

import "sync"

// VenueLocks provides the per-venue mutual exclusion used to serialize
// interest toggles. Two toggles on different venues proceed concurrently;
// two toggles on the same venue are serialized end to end.
//
// The table is pre-populated with every venue known to the directory at
// startup, so the common path never touches the guard mutex. For ids that
// show up later the guard mutex protects the get-or-create step itself;
// two concurrent first references to the same id always end up sharing
// one lock object.
type VenueLocks struct {
    guard sync.Mutex
    locks map[string]*sync.Mutex
}

// NewVenueLocks builds a lock table pre-populated for the given venue ids.
func NewVenueLocks(venueIDs []string) *VenueLocks {
    vl := &VenueLocks{locks: make(map[string]*sync.Mutex, len(venueIDs))}
    for _, id := range venueIDs {
        vl.locks[id] = &sync.Mutex{}
    }
    return vl
}

// Get returns the lock for a venue, creating it under the guard mutex on
// first reference. The guard is held only for the map access, never for
// the venue critical section.
func (vl *VenueLocks) Get(venueID string) *sync.Mutex {
    vl.guard.Lock()
    defer vl.guard.Unlock()
    mu, ok := vl.locks[venueID]
    if !ok {
        mu = &sync.Mutex{}
        vl.locks[venueID] = mu
    }
    return mu
}
