//go:build tinygo && kl03

package main

import (
	"runtime/volatile"
	"unsafe"
)

// MMIOBus is memory-mapped access to a peripheral register block
type MMIOBus struct {
	base uintptr
}

// NewMMIOBus returns a bus over the register block at base
func NewMMIOBus(base uintptr) MMIOBus {
	return MMIOBus{base: base}
}

func (b MMIOBus) reg(offset uint32) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(b.base + uintptr(offset)))
}

// Read32 implements rtc.Bus
func (b MMIOBus) Read32(offset uint32) uint32 {
	return b.reg(offset).Get()
}

// Write32 implements rtc.Bus
func (b MMIOBus) Write32(offset uint32, value uint32) {
	b.reg(offset).Set(value)
}
