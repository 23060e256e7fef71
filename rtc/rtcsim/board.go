package rtcsim

import (
	"io"

	"kl03rtc/core"
	"kl03rtc/rtc"
)

// Indicator pins of the simulated board, matching the KL03 target
const (
	LED1 core.GPIOPin = 42 // PTB10
	LED2 core.GPIOPin = 43 // PTB11
)

// Board wires a simulated RTC, interrupt controller and GPIO port the
// way the KL03 target wires the real ones.
type Board struct {
	RTC  *Peripheral
	NVIC *NVIC
	GPIO *GPIO
	Line core.IRQ
}

// NewBoard returns a powered-on board whose RTC raises line and line+1
func NewBoard(line core.IRQ) *Board {
	b := &Board{
		RTC:  New(),
		NVIC: NewNVIC(),
		GPIO: NewGPIO(),
		Line: line,
	}
	b.RTC.Connect(b.NVIC, line)
	return b
}

// HAL returns the driver hardware bundle for this board
func (b *Board) HAL(console io.Writer) rtc.HAL {
	return rtc.HAL{
		Bus:        b.RTC,
		IRQ:        b.NVIC,
		Indicators: core.Indicators{GPIO: b.GPIO, Pins: [2]core.GPIOPin{LED1, LED2}},
		Delay:      core.NoDelay,
		Console:    console,
	}
}

// Attach installs the driver's handlers: HandleInterrupt on the
// alarm/status line and Service on the seconds line.
func (b *Board) Attach(d *rtc.Driver) {
	b.NVIC.Handle(b.Line, d.HandleInterrupt)
	b.NVIC.Handle(b.Line+1, d.Service)
}

// Run advances the RTC one second at a time, dispatching interrupts
// after each second. Returns the number of seconds that elapsed.
func (b *Board) Run(seconds int) int {
	elapsed := 0
	for i := 0; i < seconds; i++ {
		if !b.RTC.Tick() {
			break
		}
		elapsed++
		b.NVIC.Dispatch()
	}
	return elapsed
}
