package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contada-dev/contada/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "contada",
		Short:   "Double-entry bookkeeping as a turn-based game",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newSimulateCommand())
	rootCmd.AddCommand(newCatalogCommand())
	rootCmd.AddCommand(newExportCommand())

	return rootCmd
}

