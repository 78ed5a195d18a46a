// Package tax computes the fiscal side-effects of a posted card. All
// functions are pure; accrual into game state happens in the ledger
// executor, never during validation.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/contada-dev/contada/internal/model"
)

// Policy holds the illustrative tax rates. These are teaching constants,
// not real tax law.
type Policy struct {
	VATRate      decimal.Decimal // IVA, applied rounded to the unit
	TurnoverRate decimal.Decimal // IT, applied unrounded
}

// DefaultPolicy returns the standard rates: 13% VAT, 3% turnover tax.
func DefaultPolicy() Policy {
	return Policy{
		VATRate:      decimal.NewFromFloat(0.13),
		TurnoverRate: decimal.NewFromFloat(0.03),
	}
}

// VATOutput is the VAT obligation (IVA DF) generated by a revenue value,
// rounded half-up to the unit.
func (p Policy) VATOutput(value decimal.Decimal) decimal.Decimal {
	return value.Mul(p.VATRate).Round(0)
}

// VATCredit is the VAT credit (IVA CF) generated by a qualifying purchase,
// rounded half-up to the unit.
func (p Policy) VATCredit(value decimal.Decimal) decimal.Decimal {
	return value.Mul(p.VATRate).Round(0)
}

// Turnover is the turnover-tax obligation (IT) on a revenue value. It is
// deliberately left unrounded.
func (p Policy) Turnover(value decimal.Decimal) decimal.Decimal {
	return value.Mul(p.TurnoverRate)
}

// Effect is the accrual a single posted card produces.
type Effect struct {
	Obligation decimal.Decimal
	Credit     decimal.Decimal
}

// IsZero reports whether the effect changes nothing.
func (e Effect) IsZero() bool {
	return e.Obligation.IsZero() && e.Credit.IsZero()
}

// ForCard returns the tax effect of posting a card to the given zone.
// Revenue on the credit side generates VAT output plus turnover tax;
// an IVA-qualifying expense on the debit side generates VAT credit.
// Every other combination is tax-neutral.
func (p Policy) ForCard(card model.Card, zone model.Zone) Effect {
	switch {
	case card.Type == model.AccountTypeRevenue && zone == model.ZoneHaber:
		return Effect{Obligation: p.VATOutput(card.Value).Add(p.Turnover(card.Value))}
	case card.Type == model.AccountTypeExpense && card.RequiresIVA && zone == model.ZoneDebe:
		return Effect{Credit: p.VATCredit(card.Value)}
	}
	return Effect{}
}
