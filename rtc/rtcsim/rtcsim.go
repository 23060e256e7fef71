// Package rtcsim simulates the KL03 RTC peripheral on the host. Peripheral
// implements rtc.Bus with the register semantics of the hardware (write
// gating, flag clearing, reset values, alarm match, overflow), NVIC
// implements core.InterruptController, and GPIO implements
// core.GPIODriver, so the driver runs unchanged without a board.
package rtcsim

import (
	"kl03rtc/core"
	"kl03rtc/rtc"
)

// Peripheral is a simulated RTC register block. It is not safe for
// concurrent use; drive it from one goroutine as the CPU would.
type Peripheral struct {
	tsr, tpr, tar uint32
	tcr           uint32
	cr, sr, lr    uint32
	ier           uint32

	// seconds left before the next compensated second
	cic uint32

	nvic *NVIC
	line core.IRQ

	// RejectedWrites counts TSR/TPR writes made while SR.TCE was set.
	// The hardware leaves such writes undefined; the simulation drops them.
	RejectedWrites int

	// Writes counts register writes per offset
	Writes map[uint32]int
}

// New returns a peripheral in its VBAT power-on state: time invalid,
// oscillator off, counter disabled.
func New() *Peripheral {
	p := &Peripheral{Writes: make(map[uint32]int)}
	p.reset()
	return p
}

// Connect routes the peripheral's interrupt requests to an NVIC. line
// carries alarm/invalid/overflow requests, line+1 the seconds interrupt.
func (p *Peripheral) Connect(n *NVIC, line core.IRQ) {
	p.nvic = n
	p.line = line
}

// reset loads the reset values of every register except CR.SWR
func (p *Peripheral) reset() {
	p.tsr = 0
	p.tpr = 0
	p.tar = 0
	p.tcr = 0
	p.cr &= rtc.CR_SWR
	p.sr = rtc.SRResetValue
	p.lr = rtc.LRResetValue
	p.ier = rtc.IERResetValue
	p.cic = 0
}

// Read32 implements rtc.Bus
func (p *Peripheral) Read32(offset uint32) uint32 {
	switch offset {
	case rtc.TSR:
		if p.sr&(rtc.SR_TIF|rtc.SR_TOF) != 0 {
			return 0
		}
		return p.tsr
	case rtc.TPR:
		if p.sr&(rtc.SR_TIF|rtc.SR_TOF) != 0 {
			return 0
		}
		return p.tpr
	case rtc.TAR:
		return p.tar
	case rtc.TCR:
		return p.tcr
	case rtc.CR:
		return p.cr
	case rtc.SR:
		return p.sr
	case rtc.LR:
		return p.lr
	case rtc.IER:
		return p.ier
	}
	return 0
}

// Write32 implements rtc.Bus
func (p *Peripheral) Write32(offset uint32, value uint32) {
	p.Writes[offset]++

	switch offset {
	case rtc.TSR:
		if p.sr&rtc.SR_TCE != 0 {
			p.RejectedWrites++
			return
		}
		p.tsr = value
		p.sr &^= rtc.SR_TIF | rtc.SR_TOF
	case rtc.TPR:
		if p.sr&rtc.SR_TCE != 0 {
			p.RejectedWrites++
			return
		}
		p.tpr = value & 0xFFFF
	case rtc.TAR:
		p.tar = value
		p.sr &^= rtc.SR_TAF
	case rtc.TCR:
		// Writing the compensation fields reloads the current counters
		interval := (value & rtc.TCR_CIR_Mask) >> rtc.TCR_CIR_Pos
		comp := value & rtc.TCR_TCR_Mask
		p.tcr = value&(rtc.TCR_CIR_Mask|rtc.TCR_TCR_Mask) |
			comp<<rtc.TCR_TCV_Pos |
			interval<<rtc.TCR_CIC_Pos
		p.cic = interval
	case rtc.CR:
		if value&rtc.CR_SWR != 0 {
			p.cr = rtc.CR_SWR
			p.reset()
		} else {
			p.cr = value
		}
	case rtc.SR:
		p.sr = p.sr&^rtc.SR_TCE | value&rtc.SR_TCE
	case rtc.LR:
		// Lock bits can only be cleared
		p.lr &= value | ^uint32(rtc.LR_TCL|rtc.LR_CRL|rtc.LR_SRL|rtc.LR_LRL)
	case rtc.IER:
		p.ier = value & rtc.IERMask
	}
	p.updateIRQ()
}

// Counting reports whether the seconds counter advances: oscillator on,
// counter enabled, time valid.
func (p *Peripheral) Counting() bool {
	return p.cr&rtc.CR_OSCE != 0 &&
		p.sr&rtc.SR_TCE != 0 &&
		p.sr&(rtc.SR_TIF|rtc.SR_TOF) == 0
}

// secondLength is the prescaler count of the current second
func (p *Peripheral) secondLength() uint32 {
	if p.cic != 0 {
		return rtc.OscillatorHz
	}
	comp := int8(p.tcr & rtc.TCR_TCR_Mask)
	return uint32(rtc.OscillatorHz - int32(comp))
}

// Step advances the simulation by the given number of 32.768 kHz
// oscillator cycles and returns how many seconds elapsed.
func (p *Peripheral) Step(cycles uint32) int {
	elapsed := 0
	for cycles > 0 && p.Counting() {
		need := p.secondLength() - p.tpr
		if cycles < need {
			p.tpr += cycles
			break
		}
		cycles -= need
		p.tpr = 0
		p.secondElapsed()
		elapsed++
	}
	return elapsed
}

// Tick advances to the next seconds increment. Returns false if the
// counter is not running.
func (p *Peripheral) Tick() bool {
	if !p.Counting() {
		return false
	}
	return p.Step(p.secondLength()-p.tpr) == 1
}

// secondElapsed is the prescaler overflow: the seconds counter
// increments, the alarm compares, the compensation interval advances.
func (p *Peripheral) secondElapsed() {
	// The alarm flag sets when TSR equals TAR and TSR increments
	if p.tsr == p.tar {
		p.sr |= rtc.SR_TAF
	}

	if p.tsr == 0xFFFFFFFF {
		p.tsr = 0
		p.sr |= rtc.SR_TOF
	} else {
		p.tsr++
	}

	if p.cic == 0 {
		p.cic = (p.tcr & rtc.TCR_CIR_Mask) >> rtc.TCR_CIR_Pos
	} else {
		p.cic--
	}
	p.tcr = p.tcr&^rtc.TCR_CIC_Mask | p.cic<<rtc.TCR_CIC_Pos

	if p.nvic != nil && p.ier&rtc.IER_TSIE != 0 {
		p.nvic.SetPending(p.line + 1)
	}
	p.updateIRQ()
}

// updateIRQ raises the alarm/status line while an enabled flag is set
func (p *Peripheral) updateIRQ() {
	if p.nvic == nil {
		return
	}
	if p.sr&p.ier&(rtc.SR_TIF|rtc.SR_TOF|rtc.SR_TAF) != 0 {
		p.nvic.SetPending(p.line)
	}
}

// PowerLoss simulates a VBAT power-on reset: every register, CR
// included, returns to its reset value and the time is invalid.
func (p *Peripheral) PowerLoss() {
	p.cr = 0
	p.reset()
	p.updateIRQ()
}

// Poke writes a register bypassing the hardware rules. For setting up
// test conditions such as a counter about to wrap.
func (p *Peripheral) Poke(offset uint32, value uint32) {
	switch offset {
	case rtc.TSR:
		p.tsr = value
	case rtc.TPR:
		p.tpr = value & 0xFFFF
	case rtc.TAR:
		p.tar = value
	case rtc.TCR:
		p.tcr = value
	case rtc.CR:
		p.cr = value
	case rtc.SR:
		p.sr = value
	case rtc.LR:
		p.lr = value
	case rtc.IER:
		p.ier = value
	}
	p.updateIRQ()
}
