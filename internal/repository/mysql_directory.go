package repository

import (
    "context"
    "database/sql"
    "fmt"
    "strings"

    "github.com/lunaapp/luna-backend/internal/model"
)

// LoadDirectoryFromDB reads the users and venues tables once and builds a
// Directory from them. The core never touches the database afterwards;
// reference data is immutable for the lifetime of the process. Interest
// tags are stored as a comma-separated list in users.interests.
//
// Row order follows the primary key so the directory's iteration order is
// stable across restarts.
func LoadDirectoryFromDB(ctx context.Context, db *sql.DB) (*Directory, error) {
    users, err := loadUsers(ctx, db)
    if err != nil {
        return nil, fmt.Errorf("load users: %w", err)
    }
    venues, err := loadVenues(ctx, db)
    if err != nil {
        return nil, fmt.Errorf("load venues: %w", err)
    }
    return NewDirectory(users, venues), nil
}

func loadUsers(ctx context.Context, db *sql.DB) ([]model.User, error) {
    rows, err := db.QueryContext(ctx,
        `SELECT id, name, avatar, bio, interests FROM users ORDER BY id`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var users []model.User
    for rows.Next() {
        var u model.User
        var tags string
        if err := rows.Scan(&u.ID, &u.Name, &u.Avatar, &u.Bio, &tags); err != nil {
            return nil, err
        }
        u.Interests = splitTags(tags)
        users = append(users, u)
    }
    return users, rows.Err()
}

func loadVenues(ctx context.Context, db *sql.DB) ([]model.Venue, error) {
    rows, err := db.QueryContext(ctx,
        `SELECT id, name, category, description, image, address FROM venues ORDER BY id`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var venues []model.Venue
    for rows.Next() {
        var v model.Venue
        if err := rows.Scan(&v.ID, &v.Name, &v.Category, &v.Description, &v.Image, &v.Address); err != nil {
            return nil, err
        }
        venues = append(venues, v)
    }
    return venues, rows.Err()
}

// splitTags parses a comma-separated tag list, dropping empty entries.
func splitTags(s string) []string {
    var out []string
    for _, p := range strings.Split(s, ",") {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    return out
}
