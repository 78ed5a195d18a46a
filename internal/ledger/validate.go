package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/contada-dev/contada/internal/model"
)

// RejectCode classifies why a proposal was refused. Rejections are user
// feedback, never fatal faults.
type RejectCode string

const (
	RejectExhausted       RejectCode = "exhausted"
	RejectEmpty           RejectCode = "empty"
	RejectMissionAmount   RejectCode = "mission_amount_mismatch"
	RejectMissionAccounts RejectCode = "mission_accounts_missing"
	RejectUnbalanced      RejectCode = "unbalanced"
	RejectEntityDeclined  RejectCode = "entity_principle_declined"
)

// RejectError carries the reject reason plus whatever the UI needs to
// explain it: the signed difference for an unbalanced seal, the expected
// amount for a mission mismatch, the missing account names.
type RejectError struct {
	Code     RejectCode
	Diff     decimal.Decimal
	Expected decimal.Decimal
	Missing  []string
}

func (e *RejectError) Error() string {
	switch e.Code {
	case RejectExhausted:
		return "no action points left today"
	case RejectEmpty:
		return "nothing to seal"
	case RejectMissionAmount:
		return fmt.Sprintf("mission requires a total of %s", e.Expected.StringFixed(2))
	case RejectMissionAccounts:
		return fmt.Sprintf("mission accounts missing: %s", strings.Join(e.Missing, ", "))
	case RejectUnbalanced:
		return fmt.Sprintf("entry does not balance, difference %s", e.Diff.StringFixed(2))
	case RejectEntityDeclined:
		return "entity principle: personal accounts declined"
	}
	return string(e.Code)
}

// Outcome is the result of a successful validation. It is the only value
// Execute accepts; callers must not build one by hand.
type Outcome struct {
	Debe             []model.Card
	Haber            []model.Card
	MissionSatisfied bool

	// NeedsConfirmation is set when personal accounts are posted and the
	// entity-principle override has not been given yet.
	NeedsConfirmation bool

	consumed bool
}

// ConfirmPersonal records the entity-principle override.
func (o *Outcome) ConfirmPersonal() {
	o.NeedsConfirmation = false
}

// Validate checks a proposed Debe/Haber assignment. Rules run fail-fast:
// action-point budget, emptiness, active-mission conformance, balance
// equality, entity principle. Validation has no side effects.
func Validate(debe, haber []model.Card, mission *model.MarketEvent, actionPoints int) (*Outcome, *RejectError) {
	if actionPoints <= 0 {
		return nil, &RejectError{Code: RejectExhausted}
	}

	if len(debe) == 0 && len(haber) == 0 {
		return nil, &RejectError{Code: RejectEmpty}
	}

	sumDebe := sumValues(debe)
	sumHaber := sumValues(haber)

	if mission != nil {
		if !sumDebe.Equal(mission.Amount) {
			return nil, &RejectError{Code: RejectMissionAmount, Expected: mission.Amount}
		}
		if missing := missingAccounts(mission.Effect, debe, haber); len(missing) > 0 {
			return nil, &RejectError{Code: RejectMissionAccounts, Missing: missing}
		}
	}

	if !sumDebe.Equal(sumHaber) {
		return nil, &RejectError{Code: RejectUnbalanced, Diff: sumDebe.Sub(sumHaber)}
	}

	out := &Outcome{
		Debe:             debe,
		Haber:            haber,
		MissionSatisfied: mission != nil,
	}
	for _, c := range append(append([]model.Card{}, debe...), haber...) {
		if c.IsPersonal {
			out.NeedsConfirmation = true
			break
		}
	}
	return out, nil
}

func sumValues(cards []model.Card) decimal.Decimal {
	total := decimal.Zero
	for _, c := range cards {
		total = total.Add(c.Value)
	}
	return total
}

// missingAccounts lists mission-required account names absent from the
// posted side they belong on, in mission order.
func missingAccounts(effect model.Effect, debe, haber []model.Card) []string {
	var missing []string
	for _, name := range effect.Debe {
		if !hasCard(debe, name) {
			missing = append(missing, name)
		}
	}
	for _, name := range effect.Haber {
		if !hasCard(haber, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

func hasCard(cards []model.Card, name string) bool {
	for _, c := range cards {
		if c.Name == name {
			return true
		}
	}
	return false
}
