package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"kl03rtc/host/monitor"
)

func newCalibrateCmd(opts *rootOptions) *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Measure crystal drift and suggest compensation settings",
		Long: `Time the status lines against the host clock for the given duration ` +
			`and fit the device seconds by least squares. Reset the board while ` +
			`calibrating to pick up the compensation it already applies from the ` +
			`register report. Longer runs give finer results; an hour resolves ` +
			`well under one ppm.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			ctx, cancel := context.WithTimeout(ctx, duration)
			defer cancel()

			port, err := opts.openPort()
			if err != nil {
				return err
			}
			defer port.Close()

			est := &monitor.DriftEstimator{}
			var report strings.Builder

			m := monitor.Follow(ctx, port)
			m.OnLine = func(line string) {
				report.WriteString(line + "\n")
				if regs, err := monitor.ParseReport(report.String()); err == nil {
					est.Current = regs.Compensation()
					log.Printf("report: compensation interval=%d value=%d", est.Current.Interval, est.Current.Value)
					report.Reset()
				}
			}

			err = m.Run(func(s monitor.Sample) error {
				est.Add(s)
				if opts.verbose {
					log.Printf("tsr=%d samples=%d", s.Seconds, est.Samples())
				}
				return nil
			})
			if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
				return err
			}

			return printSuggestion(cmd, est)
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 10*time.Minute, "How long to measure")
	return cmd
}

func printSuggestion(cmd *cobra.Command, est *monitor.DriftEstimator) error {
	ppm, err := est.PPM()
	if err != nil {
		return err
	}
	comp, err := est.Suggest()
	if err != nil {
		return err
	}
	interval, value := comp.Fields()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "samples:   %d over %s (%d counter resets)\n", est.Samples(), est.Span().Round(time.Second), est.Resets())
	fmt.Fprintf(out, "drift:     %+.3f ppm\n", ppm)
	fmt.Fprintf(out, "crystal:   %+.3f ppm\n", ppm+est.Current.PPM())
	fmt.Fprintf(out, "suggested: interval %d value %d (%d cycles every %d s)\n",
		comp.Interval, comp.Value, comp.CyclesPerSecond(), int(comp.Interval)+1)
	fmt.Fprintf(out, "config:    {\"compensation_interval\": %d, \"compensation_value\": %d}\n", interval, int8(value))
	return nil
}
