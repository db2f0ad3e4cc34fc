package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/gonmea/report"
)

func newSummarizeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize [report.ndjson...]",
		Short: "Aggregate NDJSON reports produced by check --format json",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			var sum report.Summary
			for _, name := range args {
				if err := summarizeInput(cmd.InOrStdin(), name, &sum); err != nil {
					return err
				}
				a.log.Debug().Str("input", name).Int("lines", sum.Total).Msg("report read")
			}
			return sum.WriteText(cmd.OutOrStdout())
		},
	}
}

func summarizeInput(stdin io.Reader, name string, sum *report.Summary) error {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("open report: %w", err)
		}
		defer f.Close()
		r = f
	}
	return report.ReadJSON(r, func(d report.Diagnostic) error {
		sum.Add(d)
		return nil
	})
}
