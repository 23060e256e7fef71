//go:build tinygo && kl03

package main

import (
	"device/arm"

	"kl03rtc/core"
)

// NVIC is the Cortex-M0+ interrupt controller
type NVIC struct{}

// EnableIRQ implements core.InterruptController
func (NVIC) EnableIRQ(line core.IRQ) {
	arm.EnableIRQ(uint32(line))
}

// DisableIRQ implements core.InterruptController
func (NVIC) DisableIRQ(line core.IRQ) {
	arm.DisableIRQ(uint32(line))
}

// waitForInterrupt sleeps the core until the next interrupt
func waitForInterrupt() {
	arm.Asm("wfi")
}
