package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"kl03rtc/host/monitor"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow the status lines of a running board",
		Long: `Follow the per-second status lines, print alarms, and flag skipped ` +
			`or repeated seconds. Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			port, err := opts.openPort()
			if err != nil {
				return err
			}
			defer port.Close()

			out := cmd.OutOrStdout()
			m := monitor.Follow(ctx, port)
			m.OnLine = func(line string) {
				fmt.Fprintln(out, line)
			}

			w := &watcher{verbose: opts.verbose}
			err = m.Run(func(s monitor.Sample) error {
				w.observe(s, out)
				return nil
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

// watcher checks that every second is seen exactly once
type watcher struct {
	verbose bool
	seen    bool
	last    uint32
	alarms  int
}

func (w *watcher) observe(s monitor.Sample, out io.Writer) {
	if w.seen && s.Seconds != w.last+1 {
		log.Printf("discontinuity: %d -> %d", w.last, s.Seconds)
	}
	w.seen = true
	w.last = s.Seconds

	if s.Alarm {
		w.alarms++
		fmt.Fprintf(out, "%s  %10d  alarm #%d\n", s.At.Format("15:04:05.000"), s.Seconds, w.alarms)
		return
	}
	if w.verbose {
		fmt.Fprintf(out, "%s  %10d\n", s.At.Format("15:04:05.000"), s.Seconds)
	}
}
