package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Zone is the board position of a card. Zone assignment is the only card
// mutation that drives validation.
type Zone string

const (
	ZoneDeck    Zone = "DECK"
	ZoneDebe    Zone = "DEBE"
	ZoneHaber   Zone = "HABER"
	ZoneReserve Zone = "RESERVE"
)

// ParseZone converts a string to a Zone.
func ParseZone(s string) (Zone, error) {
	switch Zone(s) {
	case ZoneDeck, ZoneDebe, ZoneHaber, ZoneReserve:
		return Zone(s), nil
	}
	return "", fmt.Errorf("unknown zone %q", s)
}

// Card is one account card in play. Cards are created fresh on each deal
// and destroyed on seal or redeal; only Zone and Value change in between.
type Card struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        AccountType     `json:"type"`
	Value       decimal.Decimal `json:"value"`
	IsPersonal  bool            `json:"is_personal"`
	RequiresIVA bool            `json:"requires_iva"`
	IsReadonly  bool            `json:"is_readonly"`
	Zone        Zone            `json:"zone"`
}
