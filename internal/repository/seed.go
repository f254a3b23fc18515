package repository

import "github.com/lunaapp/luna-backend/internal/model"

// Seed fixtures used when no database is configured. They stand in for a
// small city's worth of venues and a handful of users with interest tags
// so the service is usable out of the box.

// SeedUsers returns the built-in user set.
func SeedUsers() []model.User {
    return []model.User{
        {ID: "user_1", Name: "Maya Chen", Avatar: "https://i.pravatar.cc/150?u=user_1", Bio: "Third-wave coffee hunter", Interests: []string{"coffee", "art"}},
        {ID: "user_2", Name: "Jonas Weber", Avatar: "https://i.pravatar.cc/150?u=user_2", Bio: "Eats his way through every neighborhood", Interests: []string{"food", "wine"}},
        {ID: "user_3", Name: "Priya Nair", Avatar: "https://i.pravatar.cc/150?u=user_3", Bio: "Weekend gallery crawler", Interests: []string{"art", "music"}},
        {ID: "user_4", Name: "Tom Okafor", Avatar: "https://i.pravatar.cc/150?u=user_4", Bio: "Craft beer and live shows", Interests: []string{"beer", "music"}},
        {ID: "user_5", Name: "Sofia Ruiz", Avatar: "https://i.pravatar.cc/150?u=user_5", Bio: "Brunch is a lifestyle", Interests: []string{"food", "coffee"}},
        {ID: "user_6", Name: "Erik Lund", Avatar: "https://i.pravatar.cc/150?u=user_6", Bio: "New in town, open to anything", Interests: []string{"cocktails"}},
    }
}

// SeedVenues returns the built-in venue set. The order here is the
// deterministic iteration order used by listings and rankings.
func SeedVenues() []model.Venue {
    return []model.Venue{
        {ID: "venue_1", Name: "Blue Bottle Coffee", Category: "Coffee Shop", Description: "Minimalist cafe pouring single-origin espresso and slow-drip coffee.", Image: "https://images.luna.app/venues/venue_1.jpg", Address: "300 Webster St"},
        {ID: "venue_2", Name: "Nopa", Category: "Restaurant", Description: "Wood-fired Californian food served past midnight.", Image: "https://images.luna.app/venues/venue_2.jpg", Address: "560 Divisadero St"},
        {ID: "venue_3", Name: "Trick Dog", Category: "Cocktail Bar", Description: "Inventive cocktails with a menu that reinvents itself twice a year.", Image: "https://images.luna.app/venues/venue_3.jpg", Address: "3010 20th St"},
        {ID: "venue_4", Name: "Gray Area", Category: "Art Gallery", Description: "Digital art exhibitions and experimental audio-visual shows.", Image: "https://images.luna.app/venues/venue_4.jpg", Address: "2665 Mission St"},
        {ID: "venue_5", Name: "Tartine Bakery", Category: "Bakery & Coffee", Description: "Legendary morning buns and country bread, expect a line.", Image: "https://images.luna.app/venues/venue_5.jpg", Address: "600 Guerrero St"},
        {ID: "venue_6", Name: "Cellarmaker", Category: "Brewery", Description: "Rotating small-batch hoppy beers in a no-frills taproom.", Image: "https://images.luna.app/venues/venue_6.jpg", Address: "1150 Howard St"},
        {ID: "venue_7", Name: "The Chapel", Category: "Music Venue", Description: "1914 chapel turned intimate concert hall.", Image: "https://images.luna.app/venues/venue_7.jpg", Address: "777 Valencia St"},
        {ID: "venue_8", Name: "Foreign Cinema", Category: "Restaurant & Bar", Description: "Courtyard dining with films projected on the back wall.", Image: "https://images.luna.app/venues/venue_8.jpg", Address: "2534 Mission St"},
    }
}

// SeedDirectory builds a Directory from the built-in fixtures.
func SeedDirectory() *Directory {
    return NewDirectory(SeedUsers(), SeedVenues())
}
