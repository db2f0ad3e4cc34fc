package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	gonmea "github.com/reoring/gonmea"
)

func newFormattersCommand(a *app) *cobra.Command {
	var (
		grammar  bool
		approved bool
	)
	c := &cobra.Command{
		Use:   "formatters",
		Short: "List the sentence formatters of the catalog",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			if approved {
				fmt.Fprintln(out, strings.Join(gonmea.Formatters(), " "))
				return
			}
			for _, f := range a.cat.Formatters() {
				e, _ := a.cat.Entry(f)
				if grammar {
					fmt.Fprintf(out, "%s\n", e.Grammar)
					continue
				}
				fmt.Fprintf(out, "%s  %s\n", f, e.Description)
			}
		},
	}
	c.Flags().BoolVar(&grammar, "grammar", false, "print the field grammar of each formatter")
	c.Flags().BoolVar(&approved, "approved", false, "print the approved formatter table instead of the catalog")
	return c
}

func newTalkersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "talkers",
		Short: "List the approved talker identifiers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(gonmea.Talkers(), " "))
		},
	}
}
