package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contada-dev/contada/internal/model"
)

// stubRand returns a fixed sequence of floats, repeating the last one.
type stubRand struct {
	vals []float64
	i    int
}

func (r *stubRand) Float64() float64 {
	if r.i < len(r.vals) {
		v := r.vals[r.i]
		r.i++
		return v
	}
	if len(r.vals) == 0 {
		return 0
	}
	return r.vals[len(r.vals)-1]
}

func TestGetExists(t *testing.T) {
	svc := NewService(DefaultCatalog())

	def, ok := svc.Get("Caja")
	assert.True(t, ok)
	assert.Equal(t, model.AccountTypeAsset, def.Type)

	_, ok = svc.Get("No Existe")
	assert.False(t, ok)

	assert.True(t, svc.Exists("Capital Social"))
	assert.False(t, svc.Exists("No Existe"))
}

func TestByType(t *testing.T) {
	svc := NewService(DefaultCatalog())

	for _, d := range svc.ByType(model.AccountTypeExpense) {
		assert.Equal(t, model.AccountTypeExpense, d.Type)
	}
	assert.Len(t, svc.ByType(model.AccountTypeEquity), 1)
}

func TestDealFullRoster(t *testing.T) {
	svc := NewService(DefaultCatalog())
	cards := svc.Deal(&stubRand{}, len(svc.All()))

	require.Len(t, cards, len(svc.All()))
	for _, c := range cards {
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, model.ZoneDeck, c.Zone)
	}
}

func TestDealWithoutReplacement(t *testing.T) {
	svc := NewService(DefaultCatalog())
	cards := svc.Deal(&stubRand{vals: []float64{0, 0, 0}}, 3)

	require.Len(t, cards, 3)
	seen := map[string]bool{}
	for _, c := range cards {
		assert.False(t, seen[c.Name], "dealt %q twice", c.Name)
		seen[c.Name] = true
	}
}

func TestDealDeterministic(t *testing.T) {
	svc := NewService(DefaultCatalog())
	a := svc.Deal(&stubRand{vals: []float64{0.1, 0.5, 0.9}}, 3)
	b := svc.Deal(&stubRand{vals: []float64{0.1, 0.5, 0.9}}, 3)

	require.Len(t, b, 3)
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
	}
}
