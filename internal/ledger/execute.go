package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contada-dev/contada/internal/catalog"
	"github.com/contada-dev/contada/internal/indicators"
	"github.com/contada-dev/contada/internal/model"
	"github.com/contada-dev/contada/internal/tax"
)

// Canonical account names with direct cash/capital effects.
const (
	AccountCash    = "Caja"
	AccountCapital = "Capital Social"
)

// Programmer errors: these mean the caller broke the contract, not that the
// player did something wrong.
var (
	ErrNilOutcome          = errors.New("ledger: nil outcome")
	ErrOutcomeConsumed     = errors.New("ledger: outcome already executed")
	ErrConfirmationPending = errors.New("ledger: outcome still awaiting entity-principle confirmation")
	ErrOutcomeUnbalanced   = errors.New("ledger: outcome is not balanced, was it validated?")
)

// Executor applies validated outcomes to the game state. It also keeps the
// per-account posted balances that make a real month close possible.
type Executor struct {
	policy   tax.Policy
	ind      *indicators.Engine
	catalog  *catalog.Service
	journal  *Journal
	balances map[string]decimal.Decimal
	now      func() time.Time
}

// NewExecutor creates an Executor. Opening balances seed the account
// ledger (typically Caja and Capital Social).
func NewExecutor(policy tax.Policy, ind *indicators.Engine, cat *catalog.Service, journal *Journal, opening map[string]decimal.Decimal) *Executor {
	balances := make(map[string]decimal.Decimal, len(opening))
	for name, v := range opening {
		balances[name] = v
	}
	return &Executor{
		policy:   policy,
		ind:      ind,
		catalog:  cat,
		journal:  journal,
		balances: balances,
		now:      time.Now,
	}
}

// Execute applies a validated outcome: cash/capital deltas, tax accrual,
// account-balance posting, journal append, one action point spent, and a
// synchronous indicator recompute. Each outcome may be executed at most
// once; a second call returns ErrOutcomeConsumed.
func (x *Executor) Execute(out *Outcome, s *model.GameState, description string) (model.JournalEntry, error) {
	if out == nil {
		return model.JournalEntry{}, ErrNilOutcome
	}
	if out.consumed {
		return model.JournalEntry{}, ErrOutcomeConsumed
	}
	if out.NeedsConfirmation {
		return model.JournalEntry{}, ErrConfirmationPending
	}
	if !sumValues(out.Debe).Equal(sumValues(out.Haber)) {
		return model.JournalEntry{}, ErrOutcomeUnbalanced
	}
	out.consumed = true

	for _, c := range out.Debe {
		x.applyCard(c, model.ZoneDebe, s)
	}
	for _, c := range out.Haber {
		x.applyCard(c, model.ZoneHaber, s)
	}

	entry := model.JournalEntry{
		ID:          uuid.NewString(),
		Timestamp:   x.now(),
		Description: description,
		Debe:        lines(out.Debe),
		Haber:       lines(out.Haber),
	}
	x.journal.Append(entry)

	// One point per sealed transaction, regardless of mission outcome.
	s.ActionPoints--

	x.ind.Recompute(s)
	return entry, nil
}

func (x *Executor) applyCard(c model.Card, zone model.Zone, s *model.GameState) {
	isDebe := zone == model.ZoneDebe

	switch c.Name {
	case AccountCash:
		if isDebe {
			s.CompanyCash = s.CompanyCash.Add(c.Value)
		} else {
			s.CompanyCash = s.CompanyCash.Sub(c.Value)
		}
	case AccountCapital:
		// Equity convention is inverted: credit increases capital.
		if isDebe {
			s.Capital = s.Capital.Sub(c.Value)
		} else {
			s.Capital = s.Capital.Add(c.Value)
		}
	}

	eff := x.policy.ForCard(c, zone)
	s.TaxObligation = s.TaxObligation.Add(eff.Obligation)
	s.TaxCredit = s.TaxCredit.Add(eff.Credit)

	// Post to the account ledger, signed by nature: a card on its
	// increasing side adds, on the opposite side subtracts.
	signed := c.Value
	increasesOnDebit := model.NatureOf(c.Type) == model.NatureDebit
	if increasesOnDebit != isDebe {
		signed = signed.Neg()
	}
	x.balances[c.Name] = x.balances[c.Name].Add(signed)
}

// Balance returns the posted balance of an account name.
func (x *Executor) Balance(name string) decimal.Decimal {
	return x.balances[name]
}

// NominalResult is the net result of the month so far: posted revenue
// balances minus posted expense balances.
func (x *Executor) NominalResult() decimal.Decimal {
	net := decimal.Zero
	for name, bal := range x.balances {
		def, ok := x.catalog.Get(name)
		if !ok {
			continue
		}
		switch def.Type {
		case model.AccountTypeRevenue:
			net = net.Add(bal)
		case model.AccountTypeExpense:
			net = net.Sub(bal)
		}
	}
	return net
}

// SettleMonth closes the nominal accounts: the net result rolls into
// accumulated results and every Revenue/Expense balance is zeroed.
// Returns the net result that was rolled.
func (x *Executor) SettleMonth(s *model.GameState) decimal.Decimal {
	net := x.NominalResult()
	s.AccumulatedResults = s.AccumulatedResults.Add(net)

	for name := range x.balances {
		def, ok := x.catalog.Get(name)
		if !ok {
			continue
		}
		if model.CategoryOf(def.Type) == model.CategoryNominal {
			x.balances[name] = decimal.Zero
		}
	}

	x.ind.Recompute(s)
	return net
}

func lines(cards []model.Card) []model.Line {
	out := make([]model.Line, 0, len(cards))
	for _, c := range cards {
		out = append(out, model.Line{Name: c.Name, Value: c.Value})
	}
	return out
}
