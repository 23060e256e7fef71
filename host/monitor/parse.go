// Package monitor reads the RTC firmware console from the host side:
// per-second status lines, the register report, and the drift of the
// device clock against the host clock.
package monitor

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"kl03rtc/rtc"
)

const (
	tickPrefix  = "Current Time:"
	alarmMarker = "*alarm!*"
)

var ErrIncompleteReport = errors.New("monitor: register report incomplete")

// Tick is one per-second status line
type Tick struct {
	Seconds uint32
	Alarm   bool
}

// ParseTick decodes a status line such as "\bCurrent Time:  13 *alarm!* ".
// The line may or may not still carry its backspace and carriage return.
func ParseTick(line string) (Tick, bool) {
	line = strings.Trim(line, "\b\r\n ")
	rest, ok := strings.CutPrefix(line, tickPrefix)
	if !ok {
		return Tick{}, false
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Tick{}, false
	}
	seconds, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return Tick{}, false
	}

	return Tick{
		Seconds: uint32(seconds),
		Alarm:   strings.Contains(rest, alarmMarker),
	}, true
}

var reportPattern = regexp.MustCompile(`RTC_([A-Z]+)\s*=\s*0x([0-9A-Fa-f]+)`)

// Registers are the values of a register report, keyed by short name
// ("TSR", "TAR", ...)
type Registers map[string]uint32

// reportNames are the registers every report carries
var reportNames = []string{"TSR", "TPR", "TAR", "TCR", "CR", "SR", "LR", "IER"}

// ParseReport decodes the register report printed at start-up. Text
// around the report is ignored; every register must be present.
func ParseReport(text string) (Registers, error) {
	regs := make(Registers)
	for _, m := range reportPattern.FindAllStringSubmatch(text, -1) {
		value, err := strconv.ParseUint(m[2], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("RTC_%s: %w", m[1], err)
		}
		regs[m[1]] = uint32(value)
	}

	for _, name := range reportNames {
		if _, ok := regs[name]; !ok {
			return nil, fmt.Errorf("%w: RTC_%s missing", ErrIncompleteReport, name)
		}
	}
	return regs, nil
}

// Compensation decodes the TCR compensation fields
func (r Registers) Compensation() rtc.Compensation {
	tcr := r["TCR"]
	return rtc.CompensationFromFields(
		uint8((tcr&rtc.TCR_CIR_Mask)>>rtc.TCR_CIR_Pos),
		uint8((tcr&rtc.TCR_TCR_Mask)>>rtc.TCR_TCR_Pos),
	)
}

// Counting reports whether the counter was enabled with valid time
func (r Registers) Counting() bool {
	sr := r["SR"]
	return sr&rtc.SR_TCE != 0 && sr&(rtc.SR_TIF|rtc.SR_TOF) == 0
}

// AlarmEnabled reports whether the alarm interrupt was on
func (r Registers) AlarmEnabled() bool {
	return r["IER"]&rtc.IER_TAIE != 0
}
