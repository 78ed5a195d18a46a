// Package market owns the rotating pool of contract offers and the single
// active mission.
package market

import (
	"errors"
	"fmt"

	"github.com/contada-dev/contada/internal/model"
)

// Rand is the injected random source; Float64 returns a value in [0, 1).
type Rand interface {
	Float64() float64
}

// ErrNoSuchOffer is returned when accepting an unknown or hidden offer.
var ErrNoSuchOffer = errors.New("market: no such offer")

// ErrMissionActive is returned when accepting while a mission is running.
var ErrMissionActive = errors.New("market: a mission is already active")

// Market rotates offers drawn from a static event catalog and tracks the
// active mission. At most one mission is active at a time.
type Market struct {
	catalog  []model.MarketEvent
	pool     []model.MarketEvent
	active   *model.MarketEvent
	poolSize int
	rng      Rand
	bankrupt func() bool
}

// New creates a Market. bankrupt gates offer refreshes: while it reports
// true no new offers appear.
func New(catalog []model.MarketEvent, poolSize int, rng Rand, bankrupt func() bool) *Market {
	if poolSize <= 0 {
		poolSize = 3
	}
	if bankrupt == nil {
		bankrupt = func() bool { return false }
	}
	return &Market{catalog: catalog, poolSize: poolSize, rng: rng, bankrupt: bankrupt}
}

// RefreshOffers tops the pool up to its size with distinct catalog entries
// drawn uniformly without replacement. Blocked entirely while bankrupt.
func (m *Market) RefreshOffers() {
	if m.bankrupt() {
		return
	}
	for len(m.pool) < m.poolSize {
		ev, ok := m.draw()
		if !ok {
			return
		}
		m.pool = append(m.pool, ev)
	}
}

// draw picks a catalog entry not already pooled or active.
func (m *Market) draw() (model.MarketEvent, bool) {
	var candidates []model.MarketEvent
	for _, ev := range m.catalog {
		if m.inPool(ev.ID) || (m.active != nil && m.active.ID == ev.ID) {
			continue
		}
		candidates = append(candidates, ev)
	}
	if len(candidates) == 0 {
		return model.MarketEvent{}, false
	}
	i := int(m.rng.Float64() * float64(len(candidates)))
	if i >= len(candidates) {
		i = len(candidates) - 1
	}
	return candidates[i], true
}

func (m *Market) inPool(id string) bool {
	for _, ev := range m.pool {
		if ev.ID == id {
			return true
		}
	}
	return false
}

// Offers returns the visible offers. While a mission is active the market
// shows nothing; the remaining offers stay in the rotation.
func (m *Market) Offers() []model.MarketEvent {
	if m.active != nil {
		return nil
	}
	out := make([]model.MarketEvent, len(m.pool))
	copy(out, m.pool)
	return out
}

// Active returns a copy of the active mission, or nil.
func (m *Market) Active() *model.MarketEvent {
	if m.active == nil {
		return nil
	}
	ev := *m.active
	return &ev
}

// Accept activates an offered mission by ID and removes it from the pool.
func (m *Market) Accept(id string) error {
	if m.active != nil {
		return ErrMissionActive
	}
	for i, ev := range m.pool {
		if ev.ID == id {
			accepted := ev
			m.pool = append(m.pool[:i], m.pool[i+1:]...)
			m.active = &accepted
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNoSuchOffer, id)
}

// ResolveCompletion clears the active mission. On success one offer is
// rotated out of the pool and a freshly drawn one replaces it, keeping the
// pool stable; on failure the mission is simply cleared as breached and the
// caller applies the penalty.
func (m *Market) ResolveCompletion(satisfied bool) {
	if m.active == nil {
		return
	}
	m.active = nil

	if !satisfied {
		return
	}
	if len(m.pool) > 0 {
		m.pool = m.pool[1:]
	}
	m.RefreshOffers()
}
