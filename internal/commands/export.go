package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/contada-dev/contada/internal/engine"
)

func newExportCommand() *cobra.Command {
	var configPath string
	var days int
	var seed int64
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Simulate a session and dump its journal as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(configPath, "", seed)
			if err != nil {
				return err
			}
			eng := engine.New(cfg, zap.NewNop())
			if err := runSimulation(eng, days, io.Discard); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}
			return eng.ExportJournalCSV(out)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to contada.yaml (defaults built in)")
	cmd.Flags().IntVar(&days, "days", 7, "number of days to simulate")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed (0 = time-based)")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	return cmd
}
