package model

// Venue represents a place users can discover and visit. Like User it
// is read-only reference data owned by the directory.
//
// Fields:
//  ID          – unique identifier of the venue (e.g. "venue_1").
//  Name        – display name of the venue.
//  Category    – category label (e.g. "Coffee Shop", "Restaurant").
//  Description – longer free-form description.
//  Image       – URL of the venue's image.
//  Address     – physical street address.
type Venue struct {
    ID          string `json:"id"`
    Name        string `json:"name"`
    Category    string `json:"category"`
    Description string `json:"description"`
    Image       string `json:"image"`
    Address     string `json:"address"`
}
