package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func countCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print how many distinct houses received presents",
		Args:  cobra.NoArgs,
		RunE:  runCount,
	}
	cmd.Flags().StringVar(&report, "report", "", "write a JSON run report to this path")
	return cmd
}

func runCount(cmd *cobra.Command, args []string) error {
	r, err := appCtx.Deliver()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Santa and his Robo had visited & delivered presents to %d houses\n", r.Houses)
	return nil
}
