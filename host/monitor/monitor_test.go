package monitor

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock returns a clock advancing by step on every call
func stepClock(start time.Time, step time.Duration) func() time.Time {
	now := start.Add(-step)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestMonitorSplitsConsole(t *testing.T) {
	console := "\r\n" + sampleReport + "\r\n" +
		"\bCurrent Time:  2          \r" +
		"\bCurrent Time:  3 *alarm!* \r" +
		"\bCurrent Time:  4          \r"

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := New(strings.NewReader(console), WithClock(stepClock(start, time.Second)))

	var other []string
	m.OnLine = func(line string) { other = append(other, line) }

	var ticks []Sample
	require.NoError(t, m.Run(func(s Sample) error {
		ticks = append(ticks, s)
		return nil
	}))

	require.Len(t, ticks, 3)
	assert.Equal(t, uint32(2), ticks[0].Seconds)
	assert.True(t, ticks[1].Alarm)
	assert.Equal(t, start.Add(2*time.Second), ticks[2].At)

	require.Len(t, other, 4)
	assert.Equal(t, "RTC_TSR    = 0x2A,    RTC_TPR    = 0x00", other[0])
}

func TestMonitorStopsOnCallbackError(t *testing.T) {
	m := New(strings.NewReader("\bCurrent Time:  1          \r\bCurrent Time:  2          \r"))

	stop := errors.New("stop")
	calls := 0
	err := m.Run(func(Sample) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestMonitorEndOfStream(t *testing.T) {
	m := New(strings.NewReader(""))
	_, err := m.Next()
	assert.ErrorIs(t, err, io.EOF)
}

// timeoutReader replays chunks, returning an empty read between them
// the way a serial port read times out
type timeoutReader struct {
	chunks []string
	empty  bool
}

func (r *timeoutReader) Read(p []byte) (int, error) {
	r.empty = !r.empty
	if r.empty || len(r.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	r.chunks = r.chunks[1:]
	return n, nil
}

func TestFollowRetriesTimeouts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := &timeoutReader{chunks: []string{"\bCurrent Ti", "me:  7          \r"}}
	m := Follow(ctx, src)

	s, err := m.Next()
	require.NoError(t, err)
	assert.Equal(t, uint32(7), s.Seconds)

	// Nothing more arrives; cancel ends the wait
	cancel()
	_, err = m.Next()
	assert.ErrorIs(t, err, context.Canceled)
}
