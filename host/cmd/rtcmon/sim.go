package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"kl03rtc/config"
	"kl03rtc/core"
	"kl03rtc/rtc"
	"kl03rtc/rtc/rtcsim"
)

func newSimCmd(opts *rootOptions) *cobra.Command {
	var (
		configPath string
		seconds    int
	)

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run the driver against a simulated RTC",
		Long: `Initialize the driver on a simulated KL03 RTC from a JSON configuration ` +
			`(or the firmware defaults), print the register report and the per-second ` +
			`status lines, then the event counters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if configPath != "" {
				data, err := os.ReadFile(configPath)
				if err != nil {
					return err
				}
				cfg, err = config.LoadConfig(data)
				if err != nil {
					return fmt.Errorf("%s: %w", configPath, err)
				}
			}

			if opts.verbose {
				core.SetDebugWriter(func(s string) { log.Println(s) })
				core.SetDebugEnabled(true)
				defer core.SetDebugEnabled(false)
			}
			core.ClearEventRing()

			out := cmd.OutOrStdout()
			board := rtcsim.NewBoard(cfg.IRQ)
			d, err := rtc.New(board.HAL(out))
			if err != nil {
				return err
			}
			board.Attach(d)

			d.Init(*cfg)
			if err := d.Report(); err != nil {
				return err
			}

			elapsed := board.Run(seconds)
			fmt.Fprintln(out)
			if elapsed < seconds {
				log.Printf("counter stopped after %d of %d seconds", elapsed, seconds)
			}

			stats := d.Stats()
			fmt.Fprintf(out, "seconds=%d alarms=%d invalid=%d overflow=%d tsr=%d\n",
				stats.Seconds, stats.Alarms, stats.Invalid, stats.Overflow, d.CurrentSeconds())

			if opts.verbose {
				core.DumpEventRing()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "JSON configuration file")
	cmd.Flags().IntVarP(&seconds, "seconds", "n", 10, "Seconds to simulate")
	return cmd
}
