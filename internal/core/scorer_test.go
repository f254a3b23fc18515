package core

import (
    "context"
    "math"
    "reflect"
    "testing"
    "time"

    "github.com/rs/zerolog"

    "github.com/lunaapp/luna-backend/internal/model"
    "github.com/lunaapp/luna-backend/internal/repository"
)

func scorerFixture() (*Scorer, *repository.InterestLedger, *repository.Directory) {
    dir := repository.NewDirectory(
        []model.User{
            {ID: "user_1", Name: "Viewer", Interests: []string{"coffee", "art"}},
            {ID: "user_2", Name: "Other A", Interests: []string{"food"}},
            {ID: "user_3", Name: "Other B", Interests: []string{"wine"}},
            {ID: "user_4", Name: "Other C", Interests: []string{"beer"}},
            {ID: "user_5", Name: "Other D", Interests: []string{"music"}},
        },
        []model.Venue{
            {ID: "venue_1", Name: "Blue Bottle", Category: "Coffee Shop"},
            {ID: "venue_2", Name: "Nopa", Category: "Restaurant"},
            {ID: "venue_3", Name: "Gray Area", Category: "Art Gallery"},
        },
    )
    ledger := repository.NewInterestLedger()
    return NewScorer(dir, ledger), ledger, dir
}

func TestScoreFormula(t *testing.T) {
    s, ledger, _ := scorerFixture()
    now := time.Now()

    // No interest anywhere: only the category match for venue_1.
    res, err := s.Score("user_1", "venue_1")
    if err != nil {
        t.Fatalf("Score: %v", err)
    }
    if res.Score != 4 {
        t.Fatalf("score = %v, want 4 (category match only)", res.Score)
    }
    if got := res.Reason(); got != "Matches your interests" {
        t.Fatalf("reason = %q", got)
    }

    // Two other users interested: popularity 2/3, category 4, friends 2.
    ledger.Add("user_2", "venue_1", now)
    ledger.Add("user_3", "venue_1", now)
    res, _ = s.Score("user_1", "venue_1")
    want := 2.0/3 + 4 + 2
    if math.Abs(res.Score-want) > 1e-9 {
        t.Fatalf("score = %v, want %v", res.Score, want)
    }
    if res.FriendsInterested != 2 || res.TotalInterested != 2 {
        t.Fatalf("counts = (%d, %d), want (2, 2)", res.FriendsInterested, res.TotalInterested)
    }
    if got := res.Reason(); got != "Popular venue, Matches your interests, 2 friends interested" {
        t.Fatalf("reason = %q", got)
    }

    // Venue with no signal at all falls back to the default reason.
    res, _ = s.Score("user_1", "venue_2")
    if res.Score != 0 || res.Reason() != "New venue to explore" {
        t.Fatalf("venue_2 = (%v, %q), want (0, default reason)", res.Score, res.Reason())
    }
}

func TestScoreCapsAtTen(t *testing.T) {
    s, ledger, _ := scorerFixture()
    now := time.Now()
    // Every other user interested: popularity capped via min(4/3, 3),
    // friend bonus capped at 3, category 4.
    for _, u := range []string{"user_2", "user_3", "user_4", "user_5"} {
        ledger.Add(u, "venue_1", now)
    }
    res, _ := s.Score("user_1", "venue_1")
    want := 4.0/3 + 4 + 3
    if math.Abs(res.Score-want) > 1e-9 {
        t.Fatalf("score = %v, want %v", res.Score, want)
    }
    if res.Score > 10 {
        t.Fatalf("score = %v, must never exceed 10", res.Score)
    }
}

func TestScoreSingularFriendReason(t *testing.T) {
    s, ledger, _ := scorerFixture()
    ledger.Add("user_2", "venue_2", time.Now())
    res, _ := s.Score("user_1", "venue_2")
    if got := res.Reason(); got != "Popular venue, 1 friend interested" {
        t.Fatalf("reason = %q", got)
    }
}

func TestCategoryMatchIsCaseInsensitiveSubstring(t *testing.T) {
    tests := []struct {
        tags     []string
        category string
        want     bool
    }{
        {[]string{"coffee"}, "Coffee Shop", true},   // tag inside category
        {[]string{"art"}, "Art Gallery", true},      // case-insensitive
        {[]string{"Bakery & Coffee"}, "coffee", true}, // category inside tag
        {[]string{"food"}, "Coffee Shop", false},
        {[]string{}, "Coffee Shop", false},
        {[]string{""}, "Coffee Shop", false},
    }
    for _, tc := range tests {
        if got := categoryMatches(tc.tags, tc.category); got != tc.want {
            t.Errorf("categoryMatches(%v, %q) = %v, want %v", tc.tags, tc.category, got, tc.want)
        }
    }
}

// TestScoreInvariantUnderSelfToggle is the critical correctness property:
// a user's own toggle must never move their own score for that venue.
func TestScoreInvariantUnderSelfToggle(t *testing.T) {
    s, ledger, _ := scorerFixture()
    now := time.Now()
    ledger.Add("user_2", "venue_1", now)
    ledger.Add("user_3", "venue_1", now)

    before, err := s.Score("user_1", "venue_1")
    if err != nil {
        t.Fatalf("Score: %v", err)
    }

    ledger.Add("user_1", "venue_1", now) // self toggle on
    after, _ := s.Score("user_1", "venue_1")
    if before.Score != after.Score || before.FriendsInterested != after.FriendsInterested {
        t.Fatalf("score moved on self toggle: before %+v, after %+v", before, after)
    }
    if after.TotalInterested != before.TotalInterested+1 {
        t.Fatalf("TotalInterested = %d, want %d", after.TotalInterested, before.TotalInterested+1)
    }

    ledger.Remove("user_1", "venue_1") // self toggle off
    again, _ := s.Score("user_1", "venue_1")
    if again.Score != before.Score {
        t.Fatalf("score moved on self toggle off: %v != %v", again.Score, before.Score)
    }
}

func TestRankForUserOrdering(t *testing.T) {
    s, ledger, _ := scorerFixture()
    now := time.Now()
    // venue_2 is the most popular but matches no tag of user_1;
    // venue_1 matches "coffee", venue_3 matches "art".
    ledger.Add("user_2", "venue_2", now)
    ledger.Add("user_3", "venue_2", now)
    ledger.Add("user_4", "venue_2", now)
    ledger.Add("user_2", "venue_3", now)

    recs, err := s.RankForUser("user_1")
    if err != nil {
        t.Fatalf("RankForUser: %v", err)
    }
    got := make([]string, len(recs))
    for i, r := range recs {
        got[i] = r.Venue.ID
    }
    // venue_3: 1/3 + 4 + 1 ≈ 5.33; venue_1: 4; venue_2: 1 + 3 = 4.
    // venue_1 precedes venue_2 on the tie via stable directory order.
    want := []string{"venue_3", "venue_1", "venue_2"}
    if !reflect.DeepEqual(got, want) {
        t.Fatalf("order = %v, want %v", got, want)
    }
    for i := 1; i < len(recs); i++ {
        if recs[i-1].Score < recs[i].Score {
            t.Fatalf("not sorted descending at %d: %v < %v", i, recs[i-1].Score, recs[i].Score)
        }
    }
}

// TestRankStableUnderSelfToggle checks that toggling one venue only flips
// that venue's AlreadyInterested flag and leaves every position alone.
func TestRankStableUnderSelfToggle(t *testing.T) {
    dir := testDirectory()
    ledger := repository.NewInterestLedger()
    registry := repository.NewBookingRegistry()
    locks := repository.NewVenueLocks(dir.VenueIDs())
    coord := NewCoordinator(dir, ledger, registry, locks, NewTrigger(3), &stubCodes{}, zerolog.Nop())
    s := NewScorer(dir, ledger)

    mustToggleRaw(t, coord, "user_2", "venue_1")
    mustToggleRaw(t, coord, "user_3", "venue_2")

    before, err := s.RankForUser("user_1")
    if err != nil {
        t.Fatalf("RankForUser: %v", err)
    }

    mustToggleRaw(t, coord, "user_1", "venue_2")
    after, _ := s.RankForUser("user_1")

    if len(before) != len(after) {
        t.Fatalf("length changed: %d != %d", len(before), len(after))
    }
    for i := range before {
        if before[i].Venue.ID != after[i].Venue.ID {
            t.Fatalf("position %d changed: %s -> %s", i, before[i].Venue.ID, after[i].Venue.ID)
        }
        if before[i].Score != after[i].Score {
            t.Fatalf("score for %s changed: %v -> %v", before[i].Venue.ID, before[i].Score, after[i].Score)
        }
        wantFlag := before[i].AlreadyInterested
        if before[i].Venue.ID == "venue_2" {
            wantFlag = true
        }
        if after[i].AlreadyInterested != wantFlag {
            t.Fatalf("flag for %s = %v, want %v", after[i].Venue.ID, after[i].AlreadyInterested, wantFlag)
        }
    }
}

func TestScorerUnknownIDs(t *testing.T) {
    s, _, _ := scorerFixture()
    if _, err := s.Score("ghost", "venue_1"); err == nil {
        t.Fatal("expected error for unknown user")
    }
    if _, err := s.Score("user_1", "nowhere"); err == nil {
        t.Fatal("expected error for unknown venue")
    }
    if _, err := s.RankForUser("ghost"); err == nil {
        t.Fatal("expected error for unknown user")
    }
}

func mustToggleRaw(t *testing.T, coord *Coordinator, user, venue string) {
    t.Helper()
    if _, err := coord.ToggleInterest(context.Background(), user, venue); err != nil {
        t.Fatalf("ToggleInterest(%s, %s): %v", user, venue, err)
    }
}
