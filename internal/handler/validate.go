package handler

import (
    "errors"
    "strings"
)

const maxIDLength = 100

// validateID checks an identifier before the core is invoked: non-empty
// after trimming, at most 100 characters, alphanumeric and underscore
// only. It returns the trimmed id.
func validateID(raw string) (string, error) {
    id := strings.TrimSpace(raw)
    if id == "" {
        return "", errors.New("ID cannot be empty")
    }
    if len(id) > maxIDLength {
        return "", errors.New("ID too long (max 100 characters)")
    }
    for _, r := range id {
        switch {
        case r >= 'a' && r <= 'z':
        case r >= 'A' && r <= 'Z':
        case r >= '0' && r <= '9':
        case r == '_':
        default:
            return "", errors.New("ID contains invalid characters")
        }
    }
    return id, nil
}
