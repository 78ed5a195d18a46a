package model

import "github.com/shopspring/decimal"

// EventKind classifies market events.
type EventKind string

const (
	KindPurchase EventKind = "purchase"
	KindSale     EventKind = "sale"
	KindEvent    EventKind = "event"
)

// MustSettle reports whether an active mission of this kind has to be
// resolved before the day ends. Trading contracts settle same-day; generic
// events may carry over.
func (k EventKind) MustSettle() bool {
	return k == KindPurchase || k == KindSale
}

// Effect names the accounts a mission expects on each side of the seal.
type Effect struct {
	Debe  []string `json:"debe"`
	Haber []string `json:"haber"`
}

// MarketEvent is a contract offer: a required transaction amount plus the
// account names expected on each side. At most one is active at a time.
type MarketEvent struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Kind            EventKind       `json:"kind"`
	Amount          decimal.Decimal `json:"amount"`
	RequiresInvoice bool            `json:"requires_invoice"`
	Effect          Effect          `json:"effect"`
}
