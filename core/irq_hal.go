package core

// IRQ is an interrupt line number on the interrupt controller (NVIC on
// Cortex-M).
type IRQ uint32

// InterruptController is the abstract interrupt controller interface.
// Peripheral drivers mask their own lines through it while they
// reconfigure the hardware.
type InterruptController interface {
	// EnableIRQ unmasks the line
	EnableIRQ(line IRQ)

	// DisableIRQ masks the line; a pending request stays pending
	DisableIRQ(line IRQ)
}
