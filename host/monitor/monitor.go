package monitor

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"time"
)

// Sample is a status line stamped with the host time it arrived
type Sample struct {
	Tick
	At time.Time
}

// Monitor splits console output into lines and decodes the status lines.
// The firmware ends status lines with '\r' and report lines with '\n'.
type Monitor struct {
	scanner *bufio.Scanner

	// OnLine, when set, receives every line that is not a status line
	OnLine func(line string)

	now func() time.Time
}

// Option configures a Monitor
type Option func(*Monitor)

// WithClock replaces time.Now for stamping samples
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) { m.now = now }
}

// New returns a monitor reading r until it reports io.EOF
func New(r io.Reader, opts ...Option) *Monitor {
	m := &Monitor{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	m.scanner = bufio.NewScanner(r)
	m.scanner.Split(scanLines)
	return m
}

// Follow returns a monitor for a serial port. Empty reads and io.EOF are
// read timeouts, not the end of the stream: reading continues until ctx
// is done.
func Follow(ctx context.Context, r io.Reader, opts ...Option) *Monitor {
	return New(&followReader{ctx: ctx, r: r}, opts...)
}

// Next returns the next status line. Returns io.EOF at the end of the
// stream, or the context error of a following monitor.
func (m *Monitor) Next() (Sample, error) {
	for m.scanner.Scan() {
		line := m.scanner.Text()
		if tick, ok := ParseTick(line); ok {
			return Sample{Tick: tick, At: m.now()}, nil
		}
		if m.OnLine != nil && strings.Trim(line, "\b ") != "" {
			m.OnLine(line)
		}
	}
	if err := m.scanner.Err(); err != nil {
		return Sample{}, err
	}
	return Sample{}, io.EOF
}

// Run calls fn for every status line until the stream ends or fn returns
// an error. The end of the stream is not an error.
func (m *Monitor) Run(fn func(Sample) error) error {
	for {
		s, err := m.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}
	}
}

// scanLines is bufio.ScanLines with '\r' also ending a line
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// followReader retries timed-out reads until the context is done
type followReader struct {
	ctx context.Context
	r   io.Reader
}

func (f *followReader) Read(p []byte) (int, error) {
	for {
		if err := f.ctx.Err(); err != nil {
			return 0, err
		}
		n, err := f.r.Read(p)
		if n > 0 {
			return n, nil
		}
		if err != nil && err != io.EOF {
			return 0, err
		}
	}
}
