package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/contada-dev/contada/internal/model"
)

// Header is the CSV header for a journal export.
const Header = "entry_id,timestamp,description,side,account,value"

// WriteEntries dumps journal entries as CSV, one row per posted line. The
// export is write-only: it is never read back into a session.
func WriteEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, e := range entries {
		for _, l := range e.Debe {
			if err := writeLine(cw, e, "debe", l); err != nil {
				return err
			}
		}
		for _, l := range e.Haber {
			if err := writeLine(cw, e, "haber", l); err != nil {
				return err
			}
		}
	}
	return cw.Error()
}

func writeLine(cw *csv.Writer, e model.JournalEntry, side string, l model.Line) error {
	row := []string{
		e.ID,
		e.Timestamp.Format(time.RFC3339),
		e.Description,
		side,
		l.Name,
		l.Value.StringFixed(2),
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("writing entry %s: %w", e.ID, err)
	}
	return nil
}
