package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	gonmea "github.com/reoring/gonmea"
)

func newDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <code>...",
		Short: "Explain error codes",
		Long: `Prints category and message of the given error codes.

Examples:
  gonmea describe E004
  gonmea describe 24 25 --lang ja`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				code, ok := gonmea.ParseErrorCode(arg)
				if !ok {
					return fmt.Errorf("unknown error code %q", arg)
				}
				printCode(cmd, code)
			}
			return nil
		},
	}
}

func newCodesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List all error codes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for c := 0; c < gonmea.NumErrorCodes; c++ {
				printCode(cmd, gonmea.ErrorCode(c))
			}
		},
	}
}

func printCode(cmd *cobra.Command, code gonmea.ErrorCode) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %-11s  %s\n", code, code.Category(), code.Description())
}
