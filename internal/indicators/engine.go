// Package indicators derives the 0..100 health metrics from game state.
// Liquidity and solidity are recomputed from scratch on every change;
// prestige only ever moves through explicit penalties.
package indicators

import (
	"github.com/shopspring/decimal"

	"github.com/contada-dev/contada/internal/model"
)

const (
	// StartingPrestige is where a fresh session begins.
	StartingPrestige = 50
	maxIndicator     = 100
)

// Engine recomputes indicators against configured denominators.
type Engine struct {
	liquidityBase decimal.Decimal // cash level that maps to liquidity 100
	solidityBase  decimal.Decimal // equity level that maps to solidity 100
}

// New creates an Engine. Non-positive bases fall back to the defaults
// (2000 cash, 10000 equity).
func New(liquidityBase, solidityBase decimal.Decimal) *Engine {
	if liquidityBase.LessThanOrEqual(decimal.Zero) {
		liquidityBase = decimal.NewFromInt(2000)
	}
	if solidityBase.LessThanOrEqual(decimal.Zero) {
		solidityBase = decimal.NewFromInt(10000)
	}
	return &Engine{liquidityBase: liquidityBase, solidityBase: solidityBase}
}

// Recompute derives liquidity and solidity from the financial position.
// Prestige is left alone.
func (e *Engine) Recompute(s *model.GameState) {
	s.Liquidity = ratio(s.CompanyCash, e.liquidityBase)
	s.Solidity = ratio(s.Capital.Add(s.AccumulatedResults), e.solidityBase)
}

// Penalize lowers prestige by the given points, never below zero.
func (e *Engine) Penalize(s *model.GameState, points int) {
	s.Prestige -= points
	if s.Prestige < 0 {
		s.Prestige = 0
	}
}

// Bankrupt reports whether the company is out of cash. The market uses
// this to suppress new offers until cash recovers above zero.
func (e *Engine) Bankrupt(s model.GameState) bool {
	return s.CompanyCash.LessThanOrEqual(decimal.Zero)
}

func ratio(value, base decimal.Decimal) int {
	pct := value.Div(base).Mul(decimal.NewFromInt(100))
	n := int(pct.IntPart())
	if n < 0 {
		return 0
	}
	if n > maxIndicator {
		return maxIndicator
	}
	return n
}
