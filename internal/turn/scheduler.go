// Package turn owns the day/month clock and the action-point budget.
package turn

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/contada-dev/contada/internal/indicators"
	"github.com/contada-dev/contada/internal/ledger"
	"github.com/contada-dev/contada/internal/market"
	"github.com/contada-dev/contada/internal/model"
)

// Scheduler advances the clock and runs end-of-day and end-of-month
// settlement. It is the only writer of day/month/action-point state.
type Scheduler struct {
	market        *market.Market
	exec          *ledger.Executor
	ind           *indicators.Engine
	daysPerMonth  int
	breachPenalty int
	log           *zap.Logger
}

// New creates a Scheduler.
func New(m *market.Market, exec *ledger.Executor, ind *indicators.Engine, daysPerMonth, breachPenalty int, log *zap.Logger) *Scheduler {
	if daysPerMonth <= 0 {
		daysPerMonth = 7
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		market:        m,
		exec:          exec,
		ind:           ind,
		daysPerMonth:  daysPerMonth,
		breachPenalty: breachPenalty,
		log:           log,
	}
}

// CanSeal reports whether the action-point budget still allows sealing.
func (sc *Scheduler) CanSeal(s model.GameState) bool {
	return s.ActionPoints > 0
}

// DaySummary reports what end-of-day settlement did.
type DaySummary struct {
	Day             int             `json:"day"`
	Month           int             `json:"month"`
	MissionBreached bool            `json:"mission_breached"`
	MonthClosed     bool            `json:"month_closed"`
	NetResult       decimal.Decimal `json:"net_result"`
}

// EndDay settles the day: an unresolved must-settle mission is breached
// (prestige penalty, force-cleared), the day advances, action points
// refill, and past the last day the month closes. The market re-arms
// afterwards.
func (sc *Scheduler) EndDay(s *model.GameState) DaySummary {
	summary := DaySummary{NetResult: decimal.Zero}

	if active := sc.market.Active(); active != nil && active.Kind.MustSettle() {
		sc.ind.Penalize(s, sc.breachPenalty)
		sc.market.ResolveCompletion(false)
		summary.MissionBreached = true
		sc.log.Info("mission breached at end of day",
			zap.String("mission", active.ID),
			zap.Int("prestige", s.Prestige),
		)
	}

	s.CurrentDay++
	s.ActionPoints = s.MaxActionPoints

	if s.CurrentDay > sc.daysPerMonth {
		summary.NetResult = sc.closeMonth(s)
		summary.MonthClosed = true
	}

	sc.market.RefreshOffers()

	summary.Day = s.CurrentDay
	summary.Month = s.CurrentMonth
	return summary
}

// closeMonth is the "Gran Cierre": nominal balances are summed for real,
// the net result rolls into accumulated results, and the clock wraps.
func (sc *Scheduler) closeMonth(s *model.GameState) decimal.Decimal {
	net := sc.exec.SettleMonth(s)
	s.CurrentDay = 1
	s.CurrentMonth++

	sc.log.Info("month closed",
		zap.Int("month", s.CurrentMonth),
		zap.String("net_result", net.StringFixed(2)),
		zap.String("accumulated_results", s.AccumulatedResults.StringFixed(2)),
	)
	return net
}
