package monitor

import (
	"errors"
	"time"

	"gonum.org/v1/gonum/stat"

	"kl03rtc/rtc"
)

var ErrNotEnoughSamples = errors.New("monitor: not enough samples to estimate drift")

// DriftEstimator fits device seconds against host time by least squares.
// The slope, minus one, is the crystal error. A counter that goes
// backwards (reset, overflow, power loss) restarts the fit.
type DriftEstimator struct {
	// Current is the compensation already loaded in the device, which
	// the measured drift is relative to
	Current rtc.Compensation

	start  time.Time
	lastAt time.Time
	first  uint32
	last   uint32

	// host seconds since start, device seconds since first
	xs, ys []float64

	resets int
}

// Add records one sample
func (e *DriftEstimator) Add(s Sample) {
	if len(e.xs) > 0 && s.Seconds < e.last {
		e.xs, e.ys = e.xs[:0], e.ys[:0]
		e.resets++
	}
	if len(e.xs) == 0 {
		e.start = s.At
		e.first = s.Seconds
	}
	e.last = s.Seconds
	e.lastAt = s.At

	e.xs = append(e.xs, s.At.Sub(e.start).Seconds())
	e.ys = append(e.ys, float64(s.Seconds-e.first))
}

// Samples is the number of samples in the current fit
func (e *DriftEstimator) Samples() int {
	return len(e.xs)
}

// Resets is how many times the counter went backwards
func (e *DriftEstimator) Resets() int {
	return e.resets
}

// Span is the host time covered by the current fit
func (e *DriftEstimator) Span() time.Duration {
	if len(e.xs) == 0 {
		return 0
	}
	return e.lastAt.Sub(e.start)
}

// PPM is the measured residual drift in parts per million. Positive
// means the device clock runs fast.
func (e *DriftEstimator) PPM() (float64, error) {
	if len(e.xs) < 2 || stat.Variance(e.xs, nil) <= 0 {
		return 0, ErrNotEnoughSamples
	}
	_, slope := stat.LinearRegression(e.xs, e.ys, nil, false)
	return (slope - 1) * 1e6, nil
}

// Suggest returns the compensation setting that would cancel the
// crystal error: the measured drift plus what Current already cancels
func (e *DriftEstimator) Suggest() (rtc.Compensation, error) {
	ppm, err := e.PPM()
	if err != nil {
		return rtc.Compensation{}, err
	}
	return rtc.CompensationForPPM(ppm + e.Current.PPM()), nil
}
