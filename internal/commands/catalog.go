package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/contada-dev/contada/internal/catalog"
	"github.com/contada-dev/contada/internal/market"
)

func newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the account roster and the mission catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Accounts:")
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTYPE\tVALUE\tFLAGS")
			for _, d := range catalog.DefaultCatalog() {
				flags := ""
				if d.IsPersonal {
					flags += "personal "
				}
				if d.RequiresIVA {
					flags += "iva "
				}
				if d.IsReadonly {
					flags += "readonly"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Name, d.Type, d.Value.StringFixed(2), flags)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Missions:")
			tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tKIND\tAMOUNT\tDEBE\tHABER")
			for _, ev := range market.DefaultEvents() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%v\t%v\n", ev.ID, ev.Kind, ev.Amount.StringFixed(2), ev.Effect.Debe, ev.Effect.Haber)
			}
			return tw.Flush()
		},
	}
}
