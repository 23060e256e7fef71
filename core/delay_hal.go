package core

import "time"

// Delayer blocks the caller for a fixed settling time. Hardware targets
// busy-wait; tests substitute NoDelay.
type Delayer interface {
	Delay(d time.Duration)
}

// DelayFunc adapts a plain function to the Delayer interface.
type DelayFunc func(d time.Duration)

// Delay calls f(d)
func (f DelayFunc) Delay(d time.Duration) {
	f(d)
}

// NoDelay returns immediately.
var NoDelay Delayer = DelayFunc(func(time.Duration) {})

// SleepDelay waits using time.Sleep.
var SleepDelay Delayer = DelayFunc(time.Sleep)
