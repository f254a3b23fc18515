package core

import (
    "fmt"
    "sort"
    "strings"

    "github.com/lunaapp/luna-backend/internal/model"
    "github.com/lunaapp/luna-backend/internal/repository"
)

// ScoreResult carries a venue's relevance for a user. Score is a function
// of OTHER users' interest facts only, never the viewer's own, so it does
// not move when the viewer toggles their interest in the venue.
type ScoreResult struct {
    Score             float64
    Reasons           []string
    FriendsInterested int
    TotalInterested   int
}

// Reason joins the reason fragments in the format the clients render.
func (s ScoreResult) Reason() string {
    if len(s.Reasons) == 0 {
        return "New venue to explore"
    }
    return strings.Join(s.Reasons, ", ")
}

// Recommendation pairs a venue with its score for one user. The
// AlreadyInterested flag is derived from the viewer's own ledger facts,
// separately from the score, and never influences ranking order.
type Recommendation struct {
    Venue             model.Venue
    ScoreResult
    AlreadyInterested bool
}

// Scorer computes recommendation scores from the directory and the
// ledger. It takes no locks: it reads a momentarily consistent snapshot,
// which is acceptable for advisory rankings.
type Scorer struct {
    dir    *repository.Directory
    ledger *repository.InterestLedger
}

// NewScorer returns a scorer over the given reference data and ledger.
func NewScorer(dir *repository.Directory, ledger *repository.InterestLedger) *Scorer {
    if dir == nil || ledger == nil {
        panic("nil dependency passed to NewScorer")
    }
    return &Scorer{dir: dir, ledger: ledger}
}

// Score computes the three-factor score for one user/venue pair:
//
//	popularity   = min(others/3, 3)   continuous, capped at 3
//	category     = 4 when any user tag substring-matches the venue
//	               category case-insensitively in either direction
//	friend bonus = min(others, 3)     all other users count as friends
//
// for a maximum of 10. It has no side effects and is callable at any
// time, independent of toggles.
func (s *Scorer) Score(userID, venueID string) (ScoreResult, error) {
    user, err := s.dir.UserByID(userID)
    if err != nil {
        return ScoreResult{}, err
    }
    venue, err := s.dir.VenueByID(venueID)
    if err != nil {
        return ScoreResult{}, err
    }

    others := s.ledger.CountForVenueExcluding(venueID, userID)
    res := ScoreResult{
        FriendsInterested: others,
        TotalInterested:   s.ledger.CountForVenue(venueID),
    }

    popularity := float64(others) / 3
    if popularity > 3 {
        popularity = 3
    }
    res.Score += popularity
    if others > 0 {
        res.Reasons = append(res.Reasons, "Popular venue")
    }

    if categoryMatches(user.Interests, venue.Category) {
        res.Score += 4
        res.Reasons = append(res.Reasons, "Matches your interests")
    }

    friendBonus := others
    if friendBonus > 3 {
        friendBonus = 3
    }
    res.Score += float64(friendBonus)
    if others > 0 {
        plural := ""
        if others > 1 {
            plural = "s"
        }
        res.Reasons = append(res.Reasons, fmt.Sprintf("%d friend%s interested", others, plural))
    }

    return res, nil
}

// RankForUser scores every venue in the directory for the user and sorts
// strictly by score descending. The sort is stable over the directory's
// deterministic venue order, and AlreadyInterested plays no part in it:
// venues the user already likes keep their position.
func (s *Scorer) RankForUser(userID string) ([]Recommendation, error) {
    if _, err := s.dir.UserByID(userID); err != nil {
        return nil, err
    }

    venues := s.dir.Venues()
    recs := make([]Recommendation, 0, len(venues))
    for _, v := range venues {
        res, err := s.Score(userID, v.ID)
        if err != nil {
            return nil, err
        }
        recs = append(recs, Recommendation{
            Venue:             v,
            ScoreResult:       res,
            AlreadyInterested: s.ledger.Has(userID, v.ID),
        })
    }

    sort.SliceStable(recs, func(i, j int) bool {
        return recs[i].Score > recs[j].Score
    })
    return recs, nil
}

// categoryMatches reports whether any tag substring-matches the category,
// in either direction, ignoring case.
func categoryMatches(tags []string, category string) bool {
    cat := strings.ToLower(category)
    for _, t := range tags {
        tag := strings.ToLower(t)
        if tag == "" {
            continue
        }
        if strings.Contains(cat, tag) || strings.Contains(tag, cat) {
            return true
        }
    }
    return false
}
