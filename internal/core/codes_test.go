package core

import (
    "context"
    "regexp"
    "testing"
)

func TestMockReservationCodeFormat(t *testing.T) {
    m := NewMockReservations(42)
    re := regexp.MustCompile(`^LUNA-venue_1-\d{4}$`)
    seen := map[string]bool{}
    for i := 0; i < 20; i++ {
        code, err := m.GenerateReservationCode(context.Background(), "venue_1")
        if err != nil {
            t.Fatalf("GenerateReservationCode: %v", err)
        }
        if !re.MatchString(code) {
            t.Fatalf("code %q does not match LUNA-<venue>-NNNN", code)
        }
        seen[code] = true
    }
    if len(seen) < 2 {
        t.Fatal("codes never vary")
    }
}
