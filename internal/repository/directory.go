package repository

import (
    "github.com/lunaapp/luna-backend/internal/model"
)

// Directory is the read-only lookup of users and venues. It is built once
// at startup (from seed fixtures or from MySQL, see LoadDirectory) and is
// never mutated afterwards, which is what makes lock-free reads from the
// scorer and handlers safe. Venue and user iteration order is the load
// order, so rankings and listings are deterministic across requests.
type Directory struct {
    users      map[string]model.User
    venues     map[string]model.Venue
    userOrder  []string
    venueOrder []string
}

// NewDirectory builds a Directory from the given reference data. Input
// order is preserved for Users() and Venues(); duplicate ids keep the
// first occurrence.
func NewDirectory(users []model.User, venues []model.Venue) *Directory {
    d := &Directory{
        users:  make(map[string]model.User, len(users)),
        venues: make(map[string]model.Venue, len(venues)),
    }
    for _, u := range users {
        if _, ok := d.users[u.ID]; ok {
            continue
        }
        d.users[u.ID] = u
        d.userOrder = append(d.userOrder, u.ID)
    }
    for _, v := range venues {
        if _, ok := d.venues[v.ID]; ok {
            continue
        }
        d.venues[v.ID] = v
        d.venueOrder = append(d.venueOrder, v.ID)
    }
    return d
}

// UserByID resolves a user id. It returns ErrUserNotFound for unknown ids.
func (d *Directory) UserByID(id string) (model.User, error) {
    u, ok := d.users[id]
    if !ok {
        return model.User{}, ErrUserNotFound
    }
    return u, nil
}

// VenueByID resolves a venue id. It returns ErrVenueNotFound for unknown ids.
func (d *Directory) VenueByID(id string) (model.Venue, error) {
    v, ok := d.venues[id]
    if !ok {
        return model.Venue{}, ErrVenueNotFound
    }
    return v, nil
}

// Users returns all users in load order.
func (d *Directory) Users() []model.User {
    out := make([]model.User, 0, len(d.userOrder))
    for _, id := range d.userOrder {
        out = append(out, d.users[id])
    }
    return out
}

// Venues returns all venues in load order.
func (d *Directory) Venues() []model.Venue {
    out := make([]model.Venue, 0, len(d.venueOrder))
    for _, id := range d.venueOrder {
        out = append(out, d.venues[id])
    }
    return out
}

// VenueIDs returns the ids of all venues in load order. The lock table is
// pre-populated from this set at startup.
func (d *Directory) VenueIDs() []string {
    out := make([]string, len(d.venueOrder))
    copy(out, d.venueOrder)
    return out
}
