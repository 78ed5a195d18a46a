package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is one posted account on either side of a journal entry.
type Line struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// JournalEntry is one sealed transaction. Entries are append-only and
// immutable once created; the journal is the only persisted history.
type JournalEntry struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Debe        []Line    `json:"debe"`
	Haber       []Line    `json:"haber"`
}
