package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	gonmea "github.com/reoring/gonmea"
	"github.com/reoring/gonmea/report"
)

func newCheckCommand(a *app) *cobra.Command {
	var summary bool
	c := &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate lines from files or stdin",
		Long: `Validates every line of the given files ("-" or no argument reads stdin).
Lines keep their CR LF terminators; a missing CR or LF is an error.

Exit status is 1 when any line fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			w := a.writer(cmd.OutOrStdout())
			var sum report.Summary
			for _, name := range args {
				label := ""
				if len(args) > 1 {
					label = name
				}
				if err := a.checkInput(cmd.Context(), cmd.InOrStdin(), name, label, w, &sum); err != nil {
					_ = w.Flush()
					return err
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}
			a.log.Debug().Int("lines", sum.Total).Int("failed", sum.Failed).Msg("check finished")
			if summary {
				if err := sum.WriteText(cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			if sum.Failed > 0 {
				return ErrLinesFailed
			}
			return nil
		},
	}
	c.Flags().BoolVar(&summary, "summary", false, "print per-code totals at the end")
	return c
}

func (a *app) checkInput(ctx context.Context, stdin io.Reader, name, label string, w report.Writer, sum *report.Summary) error {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	a.log.Debug().Str("input", name).Msg("validating")
	return gonmea.ValidateStream(ctx, r, a.cat, func(n int, line []byte, err error) error {
		d := report.New(n, line, err)
		if label != "" {
			d = d.WithSource(label)
		}
		sum.Add(d)
		return w.Write(d)
	}, a.options())
}
