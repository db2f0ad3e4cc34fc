package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	gonmea "github.com/reoring/gonmea"
	"github.com/reoring/gonmea/internal/serial"
	"github.com/reoring/gonmea/report"
)

func newWatchCommand(a *app) *cobra.Command {
	var (
		device  string
		baud    int
		summary bool
	)
	c := &cobra.Command{
		Use:   "watch",
		Short: "Validate a live receiver on a serial port",
		Long: `Opens a serial port in raw mode and validates every received line until
interrupted. Device and baud rate default to the [serial] section of the
config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("device") {
				device = a.cfg.Serial.Device
			}
			if !cmd.Flags().Changed("baud") {
				baud = a.cfg.Serial.Baud
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			f, err := serial.Open(device, baud)
			if err != nil {
				return err
			}
			defer f.Close()
			stopClose := serial.CloseOnDone(ctx, f)
			defer stopClose()

			a.log.Info().Str("device", device).Int("baud", baud).Msg("watching receiver")
			w := a.writer(cmd.OutOrStdout())
			var sum report.Summary
			err = gonmea.ValidateStream(ctx, f, a.cat, func(n int, line []byte, verr error) error {
				d := report.New(n, line, verr)
				sum.Add(d)
				if err := w.Write(d); err != nil {
					return err
				}
				return w.Flush()
			}, a.options())
			if ctx.Err() != nil {
				a.log.Info().Int("lines", sum.Total).Int("failed", sum.Failed).Msg("interrupted")
				err = nil
			}
			if err != nil {
				return err
			}
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
	c.Flags().StringVar(&device, "device", "", "serial device (default from config)")
	c.Flags().IntVar(&baud, "baud", serial.DefaultBaud, "baud rate")
	c.Flags().BoolVar(&summary, "summary", false, "print per-code totals on exit")
	return c
}
