package commands

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/contada-dev/contada/internal/engine"
)

func newSimulateCommand() *cobra.Command {
	var configPath string
	var days int
	var seed int64

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scripted headless session",
		Long:  "Plays a session without a UI: accepts offered missions, seals matching entries, and ends each day, printing the settlement summaries.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(configPath, "", seed)
			if err != nil {
				return err
			}
			eng := engine.New(cfg, zap.NewNop())
			return runSimulation(eng, days, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to contada.yaml (defaults built in)")
	cmd.Flags().IntVar(&days, "days", 7, "number of days to play")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed (0 = time-based)")

	return cmd
}

// runSimulation plays days of scripted turns against the engine: take the
// first offer, stage exactly what it asks for, seal, repeat until the
// action points run out, then end the day.
func runSimulation(eng *engine.Engine, days int, out io.Writer) error {
	for day := 0; day < days; day++ {
		for eng.State().ActionPoints > 0 {
			if eng.ActiveMission() == nil {
				offers := eng.Offers()
				if len(offers) == 0 {
					break
				}
				if err := eng.AcceptMission(offers[0].ID); err != nil {
					return fmt.Errorf("accepting mission: %w", err)
				}
			}

			res, err := sealActiveMission(eng)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  seal: %s", res.Status)
			if res.MissionCompleted {
				fmt.Fprint(out, " (mission completed)")
			}
			fmt.Fprintln(out)
			if res.Status != engine.StatusSealed {
				break
			}
		}

		sum := eng.EndDay()
		fmt.Fprintf(out, "day %d, month %d", sum.Day, sum.Month)
		if sum.MissionBreached {
			fmt.Fprint(out, " (mission breached)")
		}
		if sum.MonthClosed {
			fmt.Fprintf(out, " (month closed, net result %s)", sum.NetResult.StringFixed(2))
		}
		fmt.Fprintln(out)
	}

	s := eng.State()
	fmt.Fprintf(out, "final: cash %s, capital %s, results %s, prestige %d, %d entries\n",
		s.CompanyCash.StringFixed(2), s.Capital.StringFixed(2),
		s.AccumulatedResults.StringFixed(2), s.Prestige, len(eng.Journal()))
	return nil
}

// sealActiveMission stages the active mission's required accounts at the
// mission amount and proposes the seal, confirming any entity-principle
// warning.
func sealActiveMission(eng *engine.Engine) (*engine.Result, error) {
	mission := eng.ActiveMission()
	if mission == nil {
		return nil, fmt.Errorf("no active mission to seal")
	}

	debe, err := stageSide(eng, mission.Effect.Debe, mission.Amount)
	if err != nil {
		return nil, err
	}
	haber, err := stageSide(eng, mission.Effect.Haber, mission.Amount)
	if err != nil {
		return nil, err
	}

	res, err := eng.Propose(debe, haber)
	if err != nil {
		return nil, fmt.Errorf("proposing seal: %w", err)
	}
	if res.Status == engine.StatusPending {
		return eng.Confirm(true)
	}
	return res, nil
}

// stageSide assigns one side's cards: the first required account carries
// the full amount, the rest are zeroed so the side sums exactly.
func stageSide(eng *engine.Engine, names []string, amount decimal.Decimal) ([]string, error) {
	ids := make([]string, 0, len(names))
	for i, name := range names {
		id, ok := findCard(eng, name)
		if !ok {
			return nil, fmt.Errorf("card %q not in hand", name)
		}
		value := decimal.Zero
		if i == 0 {
			value = amount
		}
		if err := eng.EditCardValue(id, value); err != nil {
			return nil, fmt.Errorf("staging %q: %w", name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func findCard(eng *engine.Engine, name string) (string, bool) {
	for _, c := range eng.Hand() {
		if c.Name == name {
			return c.ID, true
		}
	}
	return "", false
}
