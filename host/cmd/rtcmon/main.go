// Command rtcmon watches and calibrates a board running the KL03 RTC
// firmware, and runs the driver against the simulated peripheral.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
