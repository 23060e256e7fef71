// Package serial opens the console UART of a board running the RTC
// firmware.
package serial

import (
	"io"
	"time"
)

// Port is an open console connection. Reads return what the firmware
// prints: the register report and one status line per second.
type Port interface {
	io.ReadWriteCloser

	// Flush discards data received but not yet read
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate of the firmware console
	Baud int

	// ReadTimeout bounds each Read (0 = blocking)
	ReadTimeout time.Duration
}

// DefaultConfig returns the firmware console settings: 115200 baud, with
// a read timeout a little over the one second between status lines
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 1500 * time.Millisecond,
	}
}
