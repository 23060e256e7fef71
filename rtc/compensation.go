package rtc

import "math"

// Compensation is the drift correction loaded into TCR. Once every
// Interval+1 seconds the prescaler overflows after 32768-Value cycles
// instead of 32768:
//
//	Value  cycles
//	-128   32896
//	  -1   32769
//	   0   32768
//	   1   32767
//	 127   32641
type Compensation struct {
	Interval uint8 // CIR, seconds minus one
	Value    int8  // TCR, cycles removed from the compensated second
}

// maxCompensatedPPM is the largest drift a single-second interval can cancel
const maxCompensatedPPM = 128 * 1e6 / OscillatorHz

// Fields returns the raw CIR and TCR register fields
func (c Compensation) Fields() (interval, value uint8) {
	return c.Interval, uint8(c.Value)
}

// CompensationFromFields decodes raw CIR and TCR register fields
func CompensationFromFields(interval, value uint8) Compensation {
	return Compensation{Interval: interval, Value: int8(value)}
}

// CyclesPerSecond is the prescaler overflow count during a compensated second
func (c Compensation) CyclesPerSecond() int {
	return OscillatorHz - int(c.Value)
}

// PPM is the crystal error, in parts per million, this setting cancels.
// Positive means the crystal runs fast.
func (c Compensation) PPM() float64 {
	seconds := float64(c.Interval) + 1
	return -float64(c.Value) * 1e6 / (seconds * OscillatorHz)
}

// CompensationForPPM returns the setting that best cancels a crystal
// error of ppm parts per million (positive = crystal fast). Shorter
// intervals win ties since they spread the correction more evenly.
// Errors beyond what one-second intervals can correct are clamped.
func CompensationForPPM(ppm float64) Compensation {
	if ppm == 0 || math.IsNaN(ppm) {
		return Compensation{}
	}
	if ppm >= maxCompensatedPPM {
		return Compensation{Interval: 0, Value: -128}
	}
	if ppm <= -maxCompensatedPPM*127/128 {
		return Compensation{Interval: 0, Value: 127}
	}

	best := Compensation{}
	bestErr := math.Inf(1)
	for seconds := 1; seconds <= 256; seconds++ {
		exact := -float64(seconds) * OscillatorHz * ppm / 1e6
		value := math.Round(exact)
		if value < -128 || value > 127 {
			// Longer intervals only need larger values
			break
		}
		// residual error in cycles per second
		residual := math.Abs(exact-value) / float64(seconds)
		if residual < bestErr {
			bestErr = residual
			best = Compensation{Interval: uint8(seconds - 1), Value: int8(value)}
		}
	}
	return best
}
