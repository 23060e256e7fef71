package core

// GPIOPin identifies a hardware GPIO pin number
type GPIOPin uint32

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output
	// Returns error if pin is invalid
	ConfigureOutput(pin GPIOPin) error

	// SetPin sets the pin to high (true) or low (false)
	SetPin(pin GPIOPin, value bool) error

	// GetPin reads the current pin state
	GetPin(pin GPIOPin) (bool, error)

	// TogglePin inverts the current output level
	TogglePin(pin GPIOPin) error
}

// Indicator slots
const (
	Indicator1 = 0 // once per second
	Indicator2 = 1 // on alarm
)

// Indicators is a pair of status outputs (typically board LEDs).
// The zero value is valid and toggles nothing.
type Indicators struct {
	GPIO GPIODriver
	Pins [2]GPIOPin
}

// Configure sets both indicator pins as outputs, driven low.
func (ind Indicators) Configure() error {
	if ind.GPIO == nil {
		return nil
	}
	for _, pin := range ind.Pins {
		if err := ind.GPIO.ConfigureOutput(pin); err != nil {
			return err
		}
		if err := ind.GPIO.SetPin(pin, false); err != nil {
			return err
		}
	}
	return nil
}

// Toggle flips the indicator in the given slot. Called from interrupt
// context, so errors are dropped.
func (ind Indicators) Toggle(slot int) {
	if ind.GPIO == nil || slot < 0 || slot >= len(ind.Pins) {
		return
	}
	_ = ind.GPIO.TogglePin(ind.Pins[slot])
}
