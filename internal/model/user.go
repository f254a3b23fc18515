package model

// User represents a person using the venue discovery app. Users are
// immutable reference data loaded into the directory at startup; the
// core state machine only ever refers to them by ID.
//
// Fields:
//  ID        – unique identifier of the user (e.g. "user_1").
//  Name      – full display name.
//  Avatar    – URL of the user's avatar image.
//  Bio       – short free-form biography.
//  Interests – interest tags (e.g. "coffee", "food") matched against
//              venue categories by the recommendation scorer.
type User struct {
    ID        string   `json:"id"`
    Name      string   `json:"name"`
    Avatar    string   `json:"avatar"`
    Bio       string   `json:"bio"`
    Interests []string `json:"interests"`
}
