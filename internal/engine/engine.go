// Package engine is the session facade: it owns the game state and exposes
// the operations the presentation layer drives. All mutation goes through
// here, one operation at a time.
package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/contada-dev/contada/internal/catalog"
	"github.com/contada-dev/contada/internal/config"
	"github.com/contada-dev/contada/internal/indicators"
	"github.com/contada-dev/contada/internal/ledger"
	"github.com/contada-dev/contada/internal/market"
	"github.com/contada-dev/contada/internal/model"
	"github.com/contada-dev/contada/internal/tax"
	"github.com/contada-dev/contada/internal/turn"
)

var (
	// ErrUnknownCard means a proposal referenced a card not on the board.
	ErrUnknownCard = errors.New("engine: unknown card")
	// ErrCardReadonly means a value edit hit a readonly card.
	ErrCardReadonly = errors.New("engine: card value is readonly")
	// ErrNegativeValue means a value edit went below zero.
	ErrNegativeValue = errors.New("engine: card value must be non-negative")
	// ErrConfirmationOutstanding blocks new actions while a personal-account
	// confirmation is pending.
	ErrConfirmationOutstanding = errors.New("engine: a confirmation is outstanding")
	// ErrNoPendingConfirmation means Confirm was called with nothing pending.
	ErrNoPendingConfirmation = errors.New("engine: no pending confirmation")
)

// Status classifies a proposal result.
type Status string

const (
	StatusSealed   Status = "sealed"
	StatusRejected Status = "rejected"
	StatusPending  Status = "pending_confirmation"
)

// Result is what a seal attempt returns to the caller.
type Result struct {
	Status           Status              `json:"status"`
	Reason           ledger.RejectCode   `json:"reason,omitempty"`
	Message          string              `json:"message,omitempty"`
	Missing          []string            `json:"missing,omitempty"`
	Entry            *model.JournalEntry `json:"entry,omitempty"`
	MissionCompleted bool                `json:"mission_completed,omitempty"`
}

// Engine owns a single game session. All methods are safe for concurrent
// callers; internally every operation runs to completion under one lock,
// preserving the single-writer model.
type Engine struct {
	mu sync.Mutex

	cfg *config.Config
	log *zap.Logger

	state   model.GameState
	catalog *catalog.Service
	ind     *indicators.Engine
	journal *ledger.Journal
	exec    *ledger.Executor
	market  *market.Market
	sched   *turn.Scheduler
	rng     *rand.Rand

	hand    []model.Card
	pending *ledger.Outcome
}

// New builds a session from config. A zero seed means time-based dealing;
// any other seed makes hands and offers reproducible.
func New(cfg *config.Config, log *zap.Logger) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}

	seed := cfg.Market.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:     cfg,
		log:     log,
		catalog: catalog.NewService(catalog.DefaultCatalog()),
		ind:     indicators.New(decimal.NewFromFloat(cfg.Indicators.LiquidityBase), decimal.NewFromFloat(cfg.Indicators.SolidityBase)),
		journal: ledger.NewJournal(),
		rng:     rand.New(rand.NewSource(seed)),
	}

	e.state = model.GameState{
		CompanyCash:     decimal.NewFromFloat(cfg.Start.Cash),
		Capital:         decimal.NewFromFloat(cfg.Start.Capital),
		Prestige:        indicators.StartingPrestige,
		CurrentDay:      1,
		CurrentMonth:    1,
		ActionPoints:    cfg.Turn.MaxActionPoints,
		MaxActionPoints: cfg.Turn.MaxActionPoints,
	}

	policy := tax.Policy{
		VATRate:      decimal.NewFromFloat(cfg.Tax.VATRate),
		TurnoverRate: decimal.NewFromFloat(cfg.Tax.TurnoverRate),
	}
	opening := map[string]decimal.Decimal{
		ledger.AccountCash:    e.state.CompanyCash,
		ledger.AccountCapital: e.state.Capital,
	}
	e.exec = ledger.NewExecutor(policy, e.ind, e.catalog, e.journal, opening)
	e.market = market.New(market.DefaultEvents(), cfg.Market.OfferPoolSize, e.rng, func() bool {
		return e.ind.Bankrupt(e.state)
	})
	e.sched = turn.New(e.market, e.exec, e.ind, cfg.Turn.DaysPerMonth, cfg.Penalties.Breach, log)

	e.ind.Recompute(&e.state)
	e.hand = e.catalog.Deal(e.rng, len(e.catalog.All()))
	e.market.RefreshOffers()

	log.Info("session started",
		zap.Int64("seed", seed),
		zap.Int("hand", len(e.hand)),
		zap.Int("action_points", e.state.ActionPoints),
	)
	return e
}

// State returns a snapshot of the game state.
func (e *Engine) State() model.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Journal returns the sealed entries in order.
func (e *Engine) Journal() []model.JournalEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.journal.Entries()
}

// Hand returns a copy of the cards on the board.
func (e *Engine) Hand() []model.Card {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.Card, len(e.hand))
	copy(out, e.hand)
	return out
}

// Offers returns the visible market offers.
func (e *Engine) Offers() []model.MarketEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.market.Offers()
}

// ActiveMission returns the active mission, or nil.
func (e *Engine) ActiveMission() *model.MarketEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.market.Active()
}

// AcceptMission activates an offered mission.
func (e *Engine) AcceptMission(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.market.Accept(id); err != nil {
		return err
	}
	e.log.Info("mission accepted", zap.String("mission", id))
	return nil
}

// ReassignCard moves a card to a zone. Blocked while a confirmation is
// outstanding so a seal in flight cannot be mutated under.
func (e *Engine) ReassignCard(id string, zone model.Zone) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pending != nil {
		return ErrConfirmationOutstanding
	}
	c := e.findCard(id)
	if c == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCard, id)
	}
	c.Zone = zone
	return nil
}

// EditCardValue sets a card's value unless the card is readonly.
func (e *Engine) EditCardValue(id string, value decimal.Decimal) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pending != nil {
		return ErrConfirmationOutstanding
	}
	c := e.findCard(id)
	if c == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCard, id)
	}
	if c.IsReadonly {
		return fmt.Errorf("%w: %s", ErrCardReadonly, id)
	}
	if value.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeValue, value)
	}
	c.Value = value
	return nil
}

// Propose attempts to seal the given Debe/Haber card assignment. Personal
// accounts make the result pending; Confirm resolves it.
func (e *Engine) Propose(debeIDs, haberIDs []string) (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pending != nil {
		return nil, ErrConfirmationOutstanding
	}

	debe, err := e.collect(debeIDs)
	if err != nil {
		return nil, err
	}
	haber, err := e.collect(haberIDs)
	if err != nil {
		return nil, err
	}

	out, rej := ledger.Validate(debe, haber, e.market.Active(), e.state.ActionPoints)
	if rej != nil {
		return e.reject(rej), nil
	}

	if out.NeedsConfirmation {
		e.pending = out
		e.log.Info("seal pending entity-principle confirmation")
		return &Result{
			Status:  StatusPending,
			Message: "personal accounts posted: confirm to override the entity principle",
		}, nil
	}

	return e.seal(out)
}

// Confirm resolves a pending entity-principle warning. Refusal aborts the
// seal; acceptance executes it.
func (e *Engine) Confirm(accept bool) (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pending == nil {
		return nil, ErrNoPendingConfirmation
	}
	out := e.pending
	e.pending = nil

	if !accept {
		e.log.Info("entity-principle override declined")
		return e.reject(&ledger.RejectError{Code: ledger.RejectEntityDeclined}), nil
	}

	out.ConfirmPersonal()
	return e.seal(out)
}

// EndDay runs end-of-day settlement: a pending confirmation is abandoned,
// reserve cards are cleared, the clock advances and a fresh hand is dealt.
func (e *Engine) EndDay() turn.DaySummary {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pending = nil
	summary := e.sched.EndDay(&e.state)
	e.redeal(false)
	return summary
}

// DealHand discards the board (reserve cards included) and deals a fresh
// hand of slotCount cards; non-positive means the full roster.
func (e *Engine) DealHand(slotCount int) []model.Card {
	e.mu.Lock()
	defer e.mu.Unlock()
	if slotCount <= 0 || slotCount > len(e.catalog.All()) {
		slotCount = len(e.catalog.All())
	}
	e.hand = e.catalog.Deal(e.rng, slotCount)
	out := make([]model.Card, len(e.hand))
	copy(out, e.hand)
	return out
}

// ExportJournalCSV dumps the journal as CSV. Write-only; never reloaded.
func (e *Engine) ExportJournalCSV(w io.Writer) error {
	e.mu.Lock()
	entries := e.journal.Entries()
	e.mu.Unlock()
	return ledger.WriteEntries(w, entries)
}

// seal executes a validated outcome and settles mission completion.
func (e *Engine) seal(out *ledger.Outcome) (*Result, error) {
	active := e.market.Active()
	desc := "Asiento manual"
	if out.MissionSatisfied && active != nil {
		desc = active.Title
	}

	entry, err := e.exec.Execute(out, &e.state, desc)
	if err != nil {
		// Contract breach by the caller, not player feedback.
		return nil, err
	}

	completed := false
	if out.MissionSatisfied && active != nil {
		e.market.ResolveCompletion(true)
		completed = true
	}

	e.log.Info("entry sealed",
		zap.String("entry", entry.ID),
		zap.String("description", desc),
		zap.Bool("mission_completed", completed),
		zap.Int("action_points", e.state.ActionPoints),
	)

	// Sealed cards leave the board; reserve cards carry over until end of
	// day.
	e.redeal(true)

	return &Result{
		Status:           StatusSealed,
		Entry:            &entry,
		MissionCompleted: completed,
	}, nil
}

// reject maps a reject reason to its prestige penalty and result.
func (e *Engine) reject(rej *ledger.RejectError) *Result {
	switch rej.Code {
	case ledger.RejectUnbalanced:
		e.ind.Penalize(&e.state, e.cfg.Penalties.Unbalanced)
	case ledger.RejectMissionAmount, ledger.RejectMissionAccounts:
		e.ind.Penalize(&e.state, e.cfg.Penalties.MissionMismatch)
	}

	e.log.Info("seal rejected",
		zap.String("reason", string(rej.Code)),
		zap.Int("prestige", e.state.Prestige),
	)
	return &Result{
		Status:  StatusRejected,
		Reason:  rej.Code,
		Message: rej.Error(),
		Missing: rej.Missing,
	}
}

// redeal replaces the board with a fresh full deal. With keepReserve set,
// cards parked in the reserve zone survive.
func (e *Engine) redeal(keepReserve bool) {
	var kept []model.Card
	if keepReserve {
		for _, c := range e.hand {
			if c.Zone == model.ZoneReserve {
				kept = append(kept, c)
			}
		}
	}
	e.hand = append(kept, e.catalog.Deal(e.rng, len(e.catalog.All()))...)
}

func (e *Engine) findCard(id string) *model.Card {
	for i := range e.hand {
		if e.hand[i].ID == id {
			return &e.hand[i]
		}
	}
	return nil
}

func (e *Engine) collect(ids []string) ([]model.Card, error) {
	cards := make([]model.Card, 0, len(ids))
	for _, id := range ids {
		c := e.findCard(id)
		if c == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCard, id)
		}
		cards = append(cards, *c)
	}
	return cards, nil
}
