//go:build tinygo && kl03

package main

import (
	"errors"
	"runtime/volatile"
	"unsafe"

	"kl03rtc/core"
)

// KL03 PORT and GPIO memory map, ports A and B
const (
	portABase = 0x40049000 // PORTA_PCR0
	portBBase = 0x4004A000 // PORTB_PCR0
	gpioABase = 0x400FF000
	gpioBBase = 0x400FF040

	gpioPDOR = 0x00 // Port Data Output
	gpioPTOR = 0x0C // Port Toggle Output
	gpioPDIR = 0x10 // Port Data Input
	gpioPDDR = 0x14 // Port Data Direction

	pcrMUXPos  = 8
	pcrMUXMask = 0x7 << pcrMUXPos
	pcrMUXGPIO = 1 << pcrMUXPos
)

var ErrInvalidPin = errors.New("kl03: pin not on port A or B")

var (
	portBases = [...]uintptr{portABase, portBBase}
	gpioBases = [...]uintptr{gpioABase, gpioBBase}
)

// KL03GPIODriver implements the GPIODriver interface for the KL03 ports
type KL03GPIODriver struct {
	// Track configured pins to prevent conflicts
	configured map[core.GPIOPin]bool
}

// NewKL03GPIODriver creates a new KL03 GPIO driver
func NewKL03GPIODriver() *KL03GPIODriver {
	return &KL03GPIODriver{
		configured: make(map[core.GPIOPin]bool),
	}
}

func gpioReg(port uint32, offset uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(gpioBases[port] + offset))
}

func pcrReg(port, n uint32) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(portBases[port] + uintptr(n)*4))
}

// split maps a pin number to port index and pin within the port
func split(pin core.GPIOPin) (port, n uint32, err error) {
	port, n = uint32(pin)/32, uint32(pin)%32
	if port >= uint32(len(portBases)) {
		return 0, 0, ErrInvalidPin
	}
	return port, n, nil
}

// ConfigureOutput configures a pin as a digital output
func (d *KL03GPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	if d.configured[pin] {
		// Already configured, this is OK
		return nil
	}

	port, n, err := split(pin)
	if err != nil {
		return err
	}

	// Pin mux to GPIO, then direction to output
	pcr := pcrReg(port, n)
	pcr.Set(pcr.Get()&^pcrMUXMask | pcrMUXGPIO)
	gpioReg(port, gpioPDDR).SetBits(1 << n)

	d.configured[pin] = true
	return nil
}

// SetPin sets the output state of a pin
func (d *KL03GPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	port, n, err := split(pin)
	if err != nil {
		return err
	}

	if value {
		gpioReg(port, gpioPDOR).SetBits(1 << n)
	} else {
		gpioReg(port, gpioPDOR).ClearBits(1 << n)
	}
	return nil
}

// GetPin reads the input state of a pin
func (d *KL03GPIODriver) GetPin(pin core.GPIOPin) (bool, error) {
	port, n, err := split(pin)
	if err != nil {
		return false, err
	}
	return gpioReg(port, gpioPDIR).HasBits(1 << n), nil
}

// TogglePin inverts the output of a pin in one write
func (d *KL03GPIODriver) TogglePin(pin core.GPIOPin) error {
	port, n, err := split(pin)
	if err != nil {
		return err
	}
	gpioReg(port, gpioPTOR).Set(1 << n)
	return nil
}
