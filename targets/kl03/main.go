//go:build tinygo && kl03

package main

import (
	"os"
	"runtime/interrupt"

	"kl03rtc/core"
	"kl03rtc/rtc"
)

// Interrupt lines of the KL03 RTC
const (
	irqRTC        = 20 // alarm, time invalid, time overflow
	irqRTCSeconds = 21
)

// Indicator LEDs (port*32 + pin)
const (
	ledSeconds core.GPIOPin = 1*32 + 10 // PTB10
	ledAlarm   core.GPIOPin = 1*32 + 11 // PTB11
)

var driver *rtc.Driver

func main() {
	// Debug lines go out on the console UART
	core.SetDebugWriter(func(s string) {
		os.Stdout.WriteString(s + "\r\n")
	})

	// Clock gates and the 32 kHz clock select
	InitClock()

	gpio := NewKL03GPIODriver()

	var err error
	driver, err = rtc.New(rtc.HAL{
		Bus: NewMMIOBus(rtc.Base),
		IRQ: NVIC{},
		Indicators: core.Indicators{
			GPIO: gpio,
			Pins: [2]core.GPIOPin{ledSeconds, ledAlarm},
		},
		Delay:   BusyWait{},
		Console: os.Stdout,
	})
	if core.DebugError("rtc", err) {
		return
	}

	// Handlers are compiled into the vector table here; the driver
	// unmasks the lines itself once the peripheral is configured.
	interrupt.New(irqRTC, func(interrupt.Interrupt) {
		driver.HandleInterrupt()
	})
	interrupt.New(irqRTCSeconds, func(interrupt.Interrupt) {
		driver.Service()
	})

	// Count from one second, alarm every three
	driver.Init(rtc.Config{
		Seconds:      1,
		Alarm:        rtc.DefaultAlarmStep,
		IRQ:          irqRTC,
		AlarmStep:    rtc.DefaultAlarmStep,
		StartupDelay: rtc.DefaultStartupDelay,
	})

	os.Stdout.WriteString("\r\n")
	core.DebugError("rtc: report", driver.Report())
	os.Stdout.WriteString("\r\n")

	// Everything else happens in the handlers
	for {
		waitForInterrupt()
	}
}
