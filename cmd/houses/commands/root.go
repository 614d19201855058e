package commands

import (
	"github.com/spf13/cobra"

	"houses/internal/app"
)

var (
	input  string
	report string
	appCtx *app.App
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "houses",
		Short:        "Count houses visited by Santa and his Robo",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			appCtx = app.New(app.Config{Input: input, Report: report})
			return nil
		},
		RunE: runCount,
	}

	root.PersistentFlags().StringVarP(&input, "input", "i", "input.txt", "file holding the move list")
	root.Flags().StringVar(&report, "report", "", "write a JSON run report to this path")

	root.AddCommand(countCmd(), fingerprintCmd())
	return root
}
