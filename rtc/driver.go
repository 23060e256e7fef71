// Package rtc implements a driver for the real-time clock of the NXP Kinetis KL03: a 32-bit seconds counter clocked by
// a 32.768 kHz crystal, an alarm comparator, and crystal drift compensation. The driver configures the peripheral,
// keeps a repeating alarm armed, clears invalid-time and overflow conditions from the interrupt handler, and prints a
// status line every second.
//
// Reference manual: KL03 Sub-Family Reference Manual, chapter "Real Time Clock (RTC)".
package rtc

import (
	"errors"
	"io"
	"sync/atomic"
	"time"

	"kl03rtc/core"
)

const (
	// AlarmDisabled is the Alarm value that leaves the alarm interrupt off.
	// The counter never reaches it in practice.
	AlarmDisabled = 0xFFFFFFFF

	// DefaultAlarmStep is how far the alarm is pushed forward each time it fires
	DefaultAlarmStep = 3

	// DefaultIRQ is the KL03 RTC alarm/status interrupt line. The seconds
	// interrupt is the next line up.
	DefaultIRQ core.IRQ = 20

	// DefaultStartupDelay covers the 32 kHz crystal start-up time
	DefaultStartupDelay = 500 * time.Millisecond
)

var (
	ErrNoBus                 = errors.New("rtc: register bus not configured")
	ErrNoInterruptController = errors.New("rtc: interrupt controller not configured")
)

// Config holds the start-up parameters of the peripheral
type Config struct {
	// Seconds is the initial counter value. Zero leaves the seconds
	// interrupt off; the counter still runs.
	Seconds uint32

	// Alarm is the first alarm time in seconds. Zero or AlarmDisabled
	// leaves the alarm interrupt off.
	Alarm uint32

	// CompensationInterval is the interval in seconds, minus one, at which
	// CompensationValue is applied (0 = every second, 255 = every 256s)
	CompensationInterval uint8

	// CompensationValue is a two's complement cycle adjustment: the
	// prescaler overflows after 32768 - int8(CompensationValue) cycles
	// in each compensated second
	CompensationValue uint8

	// IRQ is the alarm/status interrupt line; IRQ+1 is the seconds line.
	// Lines are only unmasked when IRQ > 1.
	IRQ core.IRQ

	// AlarmStep re-arms the alarm this many seconds after it fires (0 = DefaultAlarmStep)
	AlarmStep uint32

	// StartupDelay is the oscillator settling time before the counter is enabled
	StartupDelay time.Duration
}

// Stats counts events seen by the interrupt handlers. Counters never
// influence control flow.
type Stats struct {
	Invalid  uint32 // time-invalid flags cleared
	Overflow uint32 // time-overflow flags cleared
	Alarms   uint32 // alarms fired
	Seconds  uint32 // seconds ticks reported
}

// HAL bundles the hardware the driver talks to
type HAL struct {
	Bus        Bus                      // register block (required)
	IRQ        core.InterruptController // interrupt controller (required)
	Indicators core.Indicators          // slot 1 toggles every second, slot 2 on alarm
	Delay      core.Delayer             // start-up wait (nil = core.SleepDelay)
	Console    io.Writer                // report and seconds output (nil = discarded)
}

// Driver is a configured RTC peripheral
type Driver struct {
	bus Bus

	tsr, tar, tcr, cr, sr, ier Register

	irq     core.InterruptController
	leds    core.Indicators
	delay   core.Delayer
	console io.Writer

	line      core.IRQ
	alarmStep uint32

	// set by HandleInterrupt, consumed by HandleSecond
	alarmFired atomic.Bool

	stats Stats

	// line buffer for HandleSecond, so the handler does not allocate
	lineBuf [48]byte
}

// New binds a driver to its hardware. The peripheral is not touched
// until Init or Reset.
func New(hal HAL) (*Driver, error) {
	if hal.Bus == nil {
		return nil, ErrNoBus
	}
	if hal.IRQ == nil {
		return nil, ErrNoInterruptController
	}
	if hal.Delay == nil {
		hal.Delay = core.SleepDelay
	}
	if hal.Console == nil {
		hal.Console = io.Discard
	}
	if err := hal.Indicators.Configure(); err != nil {
		return nil, err
	}

	return &Driver{
		bus:       hal.Bus,
		tsr:       NewRegister(hal.Bus, TSR),
		tar:       NewRegister(hal.Bus, TAR),
		tcr:       NewRegister(hal.Bus, TCR),
		cr:        NewRegister(hal.Bus, CR),
		sr:        NewRegister(hal.Bus, SR),
		ier:       NewRegister(hal.Bus, IER),
		irq:       hal.IRQ,
		leds:      hal.Indicators,
		delay:     hal.Delay,
		console:   hal.Console,
		line:      DefaultIRQ,
		alarmStep: DefaultAlarmStep,
	}, nil
}

// Init configures the peripheral from a quiescent state and starts the
// counter. The counter stays disabled while TSR, TAR and TCR are
// written and is enabled last, after the oscillator has settled.
func (d *Driver) Init(cfg Config) {
	d.line = cfg.IRQ
	d.alarmStep = cfg.AlarmStep
	if d.alarmStep == 0 {
		d.alarmStep = DefaultAlarmStep
	}
	d.alarmFired.Store(false)

	// No interrupts from this peripheral while it is reconfigured
	d.irq.DisableIRQ(d.line)
	d.irq.DisableIRQ(d.line + 1)

	// Only VBAT POR resets the RTC, a chip reset does not
	d.softwareReset()

	// Any write to TSR clears TIF
	if d.sr.HasBits(SR_TIF) {
		d.tsr.Set(0)
	}

	d.tcr.Set(TCRFields(cfg.CompensationInterval, cfg.CompensationValue))

	if cfg.Seconds > 0 {
		d.tsr.Set(cfg.Seconds)
		d.ier.SetBits(IER_TSIE)
		if d.line > 1 {
			d.irq.EnableIRQ(d.line + 1)
		}
	} else {
		d.ier.ClearBits(IER_TSIE)
	}

	switch cfg.Alarm {
	case 0:
		d.ier.ClearBits(IER_TAIE)
	case AlarmDisabled:
		d.tar.Set(AlarmDisabled)
		d.ier.ClearBits(IER_TAIE)
	default:
		d.tar.Set(cfg.Alarm)
		d.ier.SetBits(IER_TAIE)
		if d.line > 1 {
			d.irq.EnableIRQ(d.line)
		}
	}

	d.cr.SetBits(CR_OSCE | CR_SC16P)
	d.delay.Delay(cfg.StartupDelay)
	d.sr.SetBits(SR_TCE)

	core.RecordEvent(core.EvtInit, cfg.Seconds, cfg.Alarm)
	core.DebugPrintln("[RTC] init tsr=" + core.Utoa(cfg.Seconds) + " tar=" + core.Utoa(cfg.Alarm))
}

// Reset masks both interrupt lines and pulses the software reset. The
// oscillator and counter stay off until the next Init.
func (d *Driver) Reset() {
	d.irq.DisableIRQ(d.line)
	d.irq.DisableIRQ(d.line + 1)
	d.softwareReset()
	d.alarmFired.Store(false)

	core.RecordEvent(core.EvtReset, 0, 0)
}

// softwareReset pulses CR.SWR, returning every RTC register to its
// reset value.
func (d *Driver) softwareReset() {
	d.cr.Set(CR_SWR)
	d.cr.ClearBits(CR_SWR)
}

// CurrentSeconds returns the live seconds counter. Reads zero while
// the time is invalid or has overflowed.
func (d *Driver) CurrentSeconds() uint32 {
	return d.tsr.Get()
}

// AlarmPending reports whether an alarm fired that HandleSecond has
// not reported yet
func (d *Driver) AlarmPending() bool {
	return d.alarmFired.Load()
}

// Stats returns a snapshot of the event counters
func (d *Driver) Stats() Stats {
	state := core.DisableInterrupts()
	s := d.stats
	core.RestoreInterrupts(state)
	return s
}

// Report writes the eight RTC registers to the console
func (d *Driver) Report() error {
	return d.WriteReport(d.console)
}

// WriteReport writes the eight RTC registers, two per line, as
// "RTC_TSR    = 0x2A,    RTC_TPR    = 0x1F4".
func (d *Driver) WriteReport(w io.Writer) error {
	buf := make([]byte, 0, 160)
	for i, reg := range reportOrder {
		buf = core.AppendPadded(buf, reg.name, 11)
		buf = append(buf, "= 0x"...)
		buf = core.AppendHex(buf, d.bus.Read32(reg.offset), 2)
		if i%2 == 0 {
			buf = append(buf, ",    "...)
		} else {
			buf = append(buf, '\n')
		}
	}
	_, err := w.Write(buf)
	return err
}

// HandleInterrupt services the alarm/status interrupt. Each condition is
// tested and cleared on its own; several can be handled in one call.
// An alarm flag is only reported while the alarm interrupt is enabled.
// With no flag set it only reads SR.
func (d *Driver) HandleInterrupt() {
	if d.sr.HasBits(SR_TIF) {
		d.clearTime()
		d.stats.Invalid++
		core.RecordEvent(core.EvtTimeInvalid, 0, d.stats.Invalid)
	}

	if d.sr.HasBits(SR_TOF) {
		d.clearTime()
		d.stats.Overflow++
		core.RecordEvent(core.EvtOverflow, 0, d.stats.Overflow)
	}

	if d.sr.HasBits(SR_TAF) {
		if !d.ier.HasBits(IER_TAIE) {
			// Alarm off, but TSR still passes TAR (0 after a time clear,
			// 0xFFFFFFFF on the way to wrapping). Rewriting TAR drops the
			// flag without re-arming.
			d.tar.Set(d.tar.Get())
			return
		}

		d.alarmFired.Store(true)

		// Writing TAR clears TAF and re-arms the alarm
		next := d.tar.Get() + d.alarmStep
		d.tar.Set(next)

		d.leds.Toggle(core.Indicator2)
		d.stats.Alarms++
		core.RecordEvent(core.EvtAlarm, d.tsr.Get(), next)
	}
}

// clearTime stops the counter, zeroes TSR (clearing TIF and TOF) and
// restarts it. TSR cannot be written while TCE is set.
func (d *Driver) clearTime() {
	d.sr.ClearBits(SR_TCE)
	d.tsr.Set(0)
	d.sr.SetBits(SR_TCE)
}

// HandleSecond services the seconds interrupt: one console line with the
// counter value and an alarm marker if an alarm fired since the last
// line, then indicator 1 toggles.
func (d *Driver) HandleSecond() {
	seconds := d.tsr.Get()

	buf := d.lineBuf[:0]
	buf = append(buf, '\b')
	buf = append(buf, "Current Time:  "...)
	buf = core.AppendUint(buf, seconds)
	if d.alarmFired.Swap(false) {
		buf = append(buf, " *alarm!* "...)
	} else {
		buf = append(buf, "          "...)
	}
	buf = append(buf, '\r')
	_, _ = d.console.Write(buf)

	d.leds.Toggle(core.Indicator1)
	d.stats.Seconds++
	core.RecordEvent(core.EvtSecond, seconds, 0)
}

// Service is the handler for the seconds interrupt line. It runs
// HandleInterrupt before HandleSecond so an alarm raised on this tick is
// reported on this tick.
func (d *Driver) Service() {
	d.HandleInterrupt()
	d.HandleSecond()
}

// Line returns the alarm/status interrupt line from the last Init
func (d *Driver) Line() core.IRQ {
	return d.line
}
