package core

import (
    "context"
    "fmt"
    "math/rand"
    "sync"
)

// ReservationCodes is the external booking collaborator. Implementations
// must be fast and side-effect-free from the core's point of view beyond
// producing a code; in production this would call a real reservation API
// (OpenTable, Resy). A failure here never aborts the interest mutation
// that preceded it.
type ReservationCodes interface {
    GenerateReservationCode(ctx context.Context, venueID string) (string, error)
}

// MockReservations produces codes in the form LUNA-<venue_id>-NNNN, the
// shape the mobile client expects from the demo backend.
type MockReservations struct {
    mu  sync.Mutex
    rng *rand.Rand
}

// NewMockReservations seeds a mock collaborator.
func NewMockReservations(seed int64) *MockReservations {
    return &MockReservations{rng: rand.New(rand.NewSource(seed))}
}

// GenerateReservationCode returns a fresh mock code. It never fails.
func (m *MockReservations) GenerateReservationCode(_ context.Context, venueID string) (string, error) {
    m.mu.Lock()
    n := 1000 + m.rng.Intn(9000)
    m.mu.Unlock()
    return fmt.Sprintf("LUNA-%s-%d", venueID, n), nil
}
