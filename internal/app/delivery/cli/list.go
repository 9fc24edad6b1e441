package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available calculators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tNAME\tCATEGORY\tFIELDS\tDURATION")
			for _, config := range a.catalog.List() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					config.Type, config.Name, config.Category, len(config.Fields), config.EstimatedDuration)
			}
			return w.Flush()
		},
	}
}
