package repository

import (
    "fmt"
    "reflect"
    "sync"
    "testing"
    "time"
)

func TestLedgerToggleBasics(t *testing.T) {
    l := NewInterestLedger()
    now := time.Now()

    if l.Has("user_1", "venue_1") {
        t.Fatal("empty ledger reports interest")
    }
    l.Add("user_1", "venue_1", now)
    if !l.Has("user_1", "venue_1") {
        t.Fatal("interest missing after Add")
    }
    if got := l.CountForVenue("venue_1"); got != 1 {
        t.Fatalf("count = %d, want 1", got)
    }

    // Same pair again must not create a duplicate.
    l.Add("user_1", "venue_1", now.Add(time.Minute))
    if got := l.CountForVenue("venue_1"); got != 1 {
        t.Fatalf("count after re-add = %d, want 1", got)
    }

    if !l.Remove("user_1", "venue_1") {
        t.Fatal("Remove reported no interest")
    }
    if l.Remove("user_1", "venue_1") {
        t.Fatal("Remove of absent interest reported true")
    }
    if got := l.CountForVenue("venue_1"); got != 0 {
        t.Fatalf("count after remove = %d, want 0", got)
    }
}

func TestLedgerCountExcluding(t *testing.T) {
    l := NewInterestLedger()
    now := time.Now()
    l.Add("user_1", "venue_1", now)
    l.Add("user_2", "venue_1", now)

    if got := l.CountForVenueExcluding("venue_1", "user_1"); got != 1 {
        t.Fatalf("excluding present user = %d, want 1", got)
    }
    if got := l.CountForVenueExcluding("venue_1", "user_9"); got != 2 {
        t.Fatalf("excluding absent user = %d, want 2", got)
    }
}

func TestLedgerOrderedViews(t *testing.T) {
    l := NewInterestLedger()
    base := time.Now()
    l.Add("user_3", "venue_1", base.Add(3*time.Second))
    l.Add("user_1", "venue_1", base.Add(1*time.Second))
    l.Add("user_2", "venue_1", base.Add(2*time.Second))
    l.Add("user_1", "venue_2", base.Add(5*time.Second))

    if got, want := l.UsersForVenue("venue_1"), []string{"user_1", "user_2", "user_3"}; !reflect.DeepEqual(got, want) {
        t.Fatalf("UsersForVenue = %v, want %v", got, want)
    }
    if got, want := l.VenuesForUser("user_1"), []string{"venue_1", "venue_2"}; !reflect.DeepEqual(got, want) {
        t.Fatalf("VenuesForUser = %v, want %v", got, want)
    }
    if got := l.UsersForVenue("empty"); len(got) != 0 {
        t.Fatalf("UsersForVenue(empty) = %v, want none", got)
    }
}

func TestLedgerTimestampTieBreak(t *testing.T) {
    l := NewInterestLedger()
    at := time.Now()
    l.Add("user_b", "venue_1", at)
    l.Add("user_a", "venue_1", at)
    if got, want := l.UsersForVenue("venue_1"), []string{"user_a", "user_b"}; !reflect.DeepEqual(got, want) {
        t.Fatalf("tie order = %v, want %v", got, want)
    }
}

// TestLedgerConcurrentAccess exercises reads racing with writes; run with
// -race to verify the internal locking.
func TestLedgerConcurrentAccess(t *testing.T) {
    l := NewInterestLedger()
    var wg sync.WaitGroup
    for i := 0; i < 20; i++ {
        wg.Add(2)
        go func(i int) {
            defer wg.Done()
            l.Add(fmt.Sprintf("user_%d", i), "venue_1", time.Now())
        }(i)
        go func() {
            defer wg.Done()
            _ = l.CountForVenue("venue_1")
            _ = l.UsersForVenue("venue_1")
        }()
    }
    wg.Wait()
    if got := l.CountForVenue("venue_1"); got != 20 {
        t.Fatalf("count = %d, want 20", got)
    }
}
