package rtcsim

import (
	"errors"

	"kl03rtc/core"
)

var ErrPinNotOutput = errors.New("rtcsim: pin not configured as output")

// GPIO is a simulated GPIO port that remembers output levels and counts
// toggles per pin
type GPIO struct {
	outputs map[core.GPIOPin]bool
	Toggles map[core.GPIOPin]int
}

// NewGPIO returns a port with no pins configured
func NewGPIO() *GPIO {
	return &GPIO{
		outputs: make(map[core.GPIOPin]bool),
		Toggles: make(map[core.GPIOPin]int),
	}
}

// ConfigureOutput implements core.GPIODriver
func (g *GPIO) ConfigureOutput(pin core.GPIOPin) error {
	if _, ok := g.outputs[pin]; !ok {
		g.outputs[pin] = false
	}
	return nil
}

// SetPin implements core.GPIODriver
func (g *GPIO) SetPin(pin core.GPIOPin, value bool) error {
	if _, ok := g.outputs[pin]; !ok {
		return ErrPinNotOutput
	}
	g.outputs[pin] = value
	return nil
}

// GetPin implements core.GPIODriver
func (g *GPIO) GetPin(pin core.GPIOPin) (bool, error) {
	value, ok := g.outputs[pin]
	if !ok {
		return false, ErrPinNotOutput
	}
	return value, nil
}

// TogglePin implements core.GPIODriver
func (g *GPIO) TogglePin(pin core.GPIOPin) error {
	value, ok := g.outputs[pin]
	if !ok {
		return ErrPinNotOutput
	}
	g.outputs[pin] = !value
	g.Toggles[pin]++
	return nil
}
