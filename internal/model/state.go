package model

import "github.com/shopspring/decimal"

// GameState is the single session-wide financial record. It is owned by the
// engine; everything outside reads snapshot copies.
type GameState struct {
	CompanyCash        decimal.Decimal `json:"company_cash"`
	Capital            decimal.Decimal `json:"capital"`
	TaxCredit          decimal.Decimal `json:"tax_credit"`      // IVA CF
	TaxObligation      decimal.Decimal `json:"tax_obligation"`  // IVA DF + IT
	AccumulatedResults decimal.Decimal `json:"accumulated_results"`

	Liquidity int `json:"liquidity"` // 0..100, derived
	Solidity  int `json:"solidity"`  // 0..100, derived
	Prestige  int `json:"prestige"`  // 0..100, penalty-driven

	CurrentDay      int `json:"current_day"` // 1..days-per-month
	CurrentMonth    int `json:"current_month"`
	ActionPoints    int `json:"action_points"`
	MaxActionPoints int `json:"max_action_points"`
}
