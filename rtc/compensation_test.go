package rtc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"kl03rtc/rtc"
)

// One cycle per second is 1e6/32768 ppm
const cyclePPM = 1e6 / rtc.OscillatorHz

func TestCompensationForPPM(t *testing.T) {
	testCases := []struct {
		name string
		ppm  float64
		want rtc.Compensation
	}{
		{"none", 0, rtc.Compensation{}},
		{"nan", math.NaN(), rtc.Compensation{}},
		{"one cycle fast", cyclePPM, rtc.Compensation{Interval: 0, Value: -1}},
		{"one cycle slow", -cyclePPM, rtc.Compensation{Interval: 0, Value: 1}},
		{"one cycle every four seconds", cyclePPM / 4, rtc.Compensation{Interval: 3, Value: -1}},
		{"clamped fast", 5000, rtc.Compensation{Interval: 0, Value: -128}},
		{"clamped slow", -5000, rtc.Compensation{Interval: 0, Value: 127}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rtc.CompensationForPPM(tc.ppm))
		})
	}
}

func TestCompensationCancelsDrift(t *testing.T) {
	for _, ppm := range []float64{1, 2.5, -7, 10, 100, -250} {
		c := rtc.CompensationForPPM(ppm)
		assert.InDelta(t, ppm, c.PPM(), 0.5, "ppm=%v got %+v", ppm, c)
	}
}

func TestCompensationCyclesPerSecond(t *testing.T) {
	testCases := []struct {
		raw  uint8
		want int
	}{
		{0x80, 32896},
		{0xFF, 32769},
		{0x00, 32768},
		{0x01, 32767},
		{0x7F, 32641},
	}

	for _, tc := range testCases {
		c := rtc.CompensationFromFields(0, tc.raw)
		assert.Equal(t, tc.want, c.CyclesPerSecond(), "raw=0x%02X", tc.raw)
	}
}

func TestCompensationFields(t *testing.T) {
	c := rtc.Compensation{Interval: 9, Value: -3}
	interval, value := c.Fields()
	assert.Equal(t, uint8(9), interval)
	assert.Equal(t, uint8(0xFD), value)
	assert.Equal(t, c, rtc.CompensationFromFields(interval, value))
	assert.Equal(t, uint32(0x09FD), rtc.TCRFields(interval, value))
}
