package connections

import (
	"math/rand"
	"sync"
	"time"
)

// StatusSource decides the initial status of a dealer the viewer has not
// seen before
type StatusSource interface {
	Initial(dealerID int) Status
}

// FixedSource assigns the same status to every dealer
type FixedSource struct {
	Status Status
}

// Initial returns the fixed status, or none when unset
func (f FixedSource) Initial(int) Status {
	if !f.Status.Valid() {
		return StatusNone
	}
	return f.Status
}

// RandomSource draws a uniform status per dealer. It stands in until the
// marketplace API exposes real connection state.
type RandomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource creates a RandomSource; seed 0 seeds from the clock
func NewRandomSource(seed int64) *RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Initial returns a random status
func (r *RandomSource) Initial(int) Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return AllStatuses[r.rng.Intn(len(AllStatuses))]
}
