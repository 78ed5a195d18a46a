package ledger

import "github.com/contada-dev/contada/internal/model"

// Journal is the in-memory, append-only book of sealed entries. Nothing is
// ever rewritten or removed; export is a one-way dump.
type Journal struct {
	entries []model.JournalEntry
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Append adds an entry. Entries are immutable once appended.
func (j *Journal) Append(e model.JournalEntry) {
	j.entries = append(j.entries, e)
}

// Entries returns a copy of all entries in seal order.
func (j *Journal) Entries() []model.JournalEntry {
	out := make([]model.JournalEntry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of sealed entries.
func (j *Journal) Len() int {
	return len(j.entries)
}
