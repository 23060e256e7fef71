//go:build tinygo && kl03

package main

import (
	"runtime/volatile"
	"unsafe"
)

// KL03 System Integration Module memory map
const (
	simSOPT1 = 0x40047000 // System Options Register 1
	simSCGC5 = 0x40048038 // System Clock Gating Control Register 5
	simSCGC6 = 0x4004803C // System Clock Gating Control Register 6
)

const (
	sopt1OSC32KSELPos  = 18
	sopt1OSC32KSELMask = 0x3 << sopt1OSC32KSELPos
	osc32kselOSC32KCLK = 0 // 32 kHz system oscillator

	scgc5PORTA = 1 << 9
	scgc5PORTB = 1 << 10
	scgc6RTC   = 1 << 29
)

var (
	sopt1 = (*volatile.Register32)(unsafe.Pointer(uintptr(simSOPT1)))
	scgc5 = (*volatile.Register32)(unsafe.Pointer(uintptr(simSCGC5)))
	scgc6 = (*volatile.Register32)(unsafe.Pointer(uintptr(simSCGC6)))
)

// InitClock gates on the RTC and the LED port and routes the 32 kHz
// oscillator to the RTC. Register access to an ungated peripheral
// faults, so this runs before the driver touches anything.
func InitClock() {
	scgc6.SetBits(scgc6RTC)
	scgc5.SetBits(scgc5PORTA | scgc5PORTB)
	sopt1.ReplaceBits(osc32kselOSC32KCLK, 0x3, sopt1OSC32KSELPos)
}
