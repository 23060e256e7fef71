package config

import (
	"encoding/json"
	"fmt"
	"time"

	"kl03rtc/core"
	"kl03rtc/rtc"
)

// fileConfig is the JSON form of rtc.Config. Optional fields are pointers
// so that an omitted value can be told apart from an explicit zero.
type fileConfig struct {
	Seconds              uint32   `json:"seconds"`
	Alarm                *uint32  `json:"alarm"`
	CompensationInterval uint8    `json:"compensation_interval"`
	CompensationValue    tcrValue `json:"compensation_value"`
	CompensationPPM      *float64 `json:"compensation_ppm"`
	IRQ                  *uint32  `json:"irq"`
	AlarmStep            uint32   `json:"alarm_step"`
	StartupDelay         string   `json:"startup_delay"`
}

// tcrValue is the TCR compensation byte. JSON may give it signed
// (-128..127 cycles) or as the raw register value (0..255); -1 and 255
// are the same setting.
type tcrValue uint8

func (v *tcrValue) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if n < -128 || n > 255 {
		return fmt.Errorf("compensation_value %d out of range -128..255", n)
	}
	*v = tcrValue(uint8(n))
	return nil
}

// LoadConfig parses a JSON configuration string and returns a driver Config
func LoadConfig(jsonData []byte) (*rtc.Config, error) {
	var fc fileConfig

	err := json.Unmarshal(jsonData, &fc)
	if err != nil {
		return nil, err
	}

	// Apply defaults
	applyDefaults(&fc)

	delay, err := time.ParseDuration(fc.StartupDelay)
	if err != nil {
		return nil, fmt.Errorf("startup_delay: %w", err)
	}
	if delay < 0 {
		return nil, fmt.Errorf("startup_delay: negative duration %s", fc.StartupDelay)
	}

	config := &rtc.Config{
		Seconds:              fc.Seconds,
		Alarm:                *fc.Alarm,
		CompensationInterval: fc.CompensationInterval,
		CompensationValue:    uint8(fc.CompensationValue),
		IRQ:                  core.IRQ(*fc.IRQ),
		AlarmStep:            fc.AlarmStep,
		StartupDelay:         delay,
	}

	// A measured drift overrides the raw compensation fields
	if fc.CompensationPPM != nil {
		comp := rtc.CompensationForPPM(*fc.CompensationPPM)
		config.CompensationInterval, config.CompensationValue = comp.Fields()
	}

	return config, nil
}

// applyDefaults fills in missing configuration values with sensible defaults
func applyDefaults(fc *fileConfig) {
	// No alarm unless one is asked for
	if fc.Alarm == nil {
		alarm := uint32(rtc.AlarmDisabled)
		fc.Alarm = &alarm
	}

	// KL03 RTC alarm/status line
	if fc.IRQ == nil {
		irq := uint32(rtc.DefaultIRQ)
		fc.IRQ = &irq
	}

	if fc.AlarmStep == 0 {
		fc.AlarmStep = rtc.DefaultAlarmStep
	}
	if fc.StartupDelay == "" {
		fc.StartupDelay = rtc.DefaultStartupDelay.String()
	}
}

// DefaultConfig returns the demo configuration: counting from one second
// with an alarm every DefaultAlarmStep seconds, no compensation
func DefaultConfig() *rtc.Config {
	return &rtc.Config{
		Seconds:      1,
		Alarm:        rtc.DefaultAlarmStep,
		IRQ:          rtc.DefaultIRQ,
		AlarmStep:    rtc.DefaultAlarmStep,
		StartupDelay: rtc.DefaultStartupDelay,
	}
}
