package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contada-dev/contada/internal/model"
)

// Definition is one known account: the template a dealt card is stamped from.
type Definition struct {
	Name        string
	Type        model.AccountType
	Value       decimal.Decimal // default value on deal
	IsPersonal  bool
	RequiresIVA bool
	IsReadonly  bool
	Description string
}

// Service provides in-memory lookup over the account catalog.
type Service struct {
	defs   []Definition
	byName map[string]Definition
}

// NewService creates a Service from a slice of definitions.
func NewService(defs []Definition) *Service {
	byName := make(map[string]Definition, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}
	return &Service{defs: defs, byName: byName}
}

// All returns all definitions.
func (s *Service) All() []Definition {
	return s.defs
}

// Get returns a definition by account name.
func (s *Service) Get(name string) (Definition, bool) {
	d, ok := s.byName[name]
	return d, ok
}

// Exists reports whether an account name is known.
func (s *Service) Exists(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// ByType returns all definitions of the given type.
func (s *Service) ByType(accountType model.AccountType) []Definition {
	var result []Definition
	for _, d := range s.defs {
		if d.Type == accountType {
			result = append(result, d)
		}
	}
	return result
}

// Rand is the random source used for dealing. Implementations return a
// float in [0, 1); tests inject fixed sequences.
type Rand interface {
	Float64() float64
}

// Deal stamps up to slotCount fresh card instances from the catalog,
// drawn without replacement. With slotCount >= len(catalog) the whole
// roster is dealt in catalog order.
func (s *Service) Deal(rng Rand, slotCount int) []model.Card {
	picked := make([]Definition, 0, slotCount)
	if slotCount >= len(s.defs) {
		picked = append(picked, s.defs...)
	} else {
		remaining := make([]Definition, len(s.defs))
		copy(remaining, s.defs)
		for len(picked) < slotCount {
			i := int(rng.Float64() * float64(len(remaining)))
			if i >= len(remaining) {
				i = len(remaining) - 1
			}
			picked = append(picked, remaining[i])
			remaining = append(remaining[:i], remaining[i+1:]...)
		}
	}

	cards := make([]model.Card, 0, len(picked))
	for _, d := range picked {
		cards = append(cards, model.Card{
			ID:          uuid.NewString(),
			Name:        d.Name,
			Type:        d.Type,
			Value:       d.Value,
			IsPersonal:  d.IsPersonal,
			RequiresIVA: d.RequiresIVA,
			IsReadonly:  d.IsReadonly,
			Zone:        model.ZoneDeck,
		})
	}
	return cards
}
