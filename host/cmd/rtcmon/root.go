package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"kl03rtc/host/serial"
)

// Environment overrides of the flag defaults, also read from ./.env
const (
	envDevice = "RTCMON_DEVICE"
	envBaud   = "RTCMON_BAUD"
)

type rootOptions struct {
	device  string
	baud    int
	verbose bool
}

// newRootCmd represents the base command when called without any subcommands
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	// A missing .env is fine
	_ = godotenv.Load()
	device := "/dev/ttyACM0"
	if v := os.Getenv(envDevice); v != "" {
		device = v
	}
	baud := 115200
	if v, err := strconv.Atoi(os.Getenv(envBaud)); err == nil && v > 0 {
		baud = v
	}

	cmd := &cobra.Command{
		Use:   "rtcmon",
		Short: "Monitor and calibrate the KL03 RTC firmware",
		Long: `rtcmon reads the console of a board running the KL03 RTC firmware. ` +
			`It follows the per-second status lines, estimates crystal drift against ` +
			`the host clock, and runs the driver on a simulated peripheral.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetFlags(log.Ltime)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.device, "device", "d", device, "Serial device path (env "+envDevice+")")
	cmd.PersistentFlags().IntVarP(&opts.baud, "baud", "b", baud, "Console baud rate (env "+envBaud+")")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(
		newWatchCmd(opts),
		newCalibrateCmd(opts),
		newSimCmd(opts),
	)
	return cmd
}

// openPort opens the console with the persistent flags applied
func (o *rootOptions) openPort() (serial.Port, error) {
	cfg := serial.DefaultConfig(o.device)
	cfg.Baud = o.baud
	return serial.Open(cfg)
}
