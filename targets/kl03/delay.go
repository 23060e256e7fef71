//go:build tinygo && kl03

package main

import (
	"time"

	"device/arm"
)

// Busy-wait calibration at the default core clock
const (
	spinsPerPeriod = 0x600000
	spinPeriod     = 500 * time.Millisecond
)

// BusyWait spins the core for the requested time. It runs before the
// RTC is counting, so there is no timer to sleep on.
type BusyWait struct{}

// Delay implements core.Delayer
func (BusyWait) Delay(d time.Duration) {
	if d <= 0 {
		return
	}
	spins := uint64(d) * spinsPerPeriod / uint64(spinPeriod)
	for i := uint64(0); i < spins; i++ {
		arm.Asm("nop")
	}
}
