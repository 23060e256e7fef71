package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kl03rtc/host/monitor"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSimDefaults(t *testing.T) {
	out, err := execute(t, "sim", "--seconds", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "RTC_TSR    = 0x01,")
	assert.Contains(t, out, "\bCurrent Time:  4 *alarm!* \r")
	assert.Contains(t, out, "\bCurrent Time:  5          \r")
	assert.Contains(t, out, "seconds=4 alarms=1 invalid=0 overflow=0 tsr=5")
}

func TestSimConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rtc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"seconds": 100, "alarm": 101, "alarm_step": 2}`), 0o644))

	out, err := execute(t, "sim", "--config", path, "-n", "5")
	require.NoError(t, err)

	// 101->102 fires, re-armed at 103, 103->104 fires
	assert.Equal(t, 2, strings.Count(out, "*alarm!*"))
	assert.Contains(t, out, "seconds=5 alarms=2 invalid=0 overflow=0 tsr=105")
}

func TestSimBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rtc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"startup_delay": "soon"}`), 0o644))

	_, err := execute(t, "sim", "--config", path)
	assert.Error(t, err)
}

func TestWatcherAlarmLines(t *testing.T) {
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	out := &bytes.Buffer{}
	w := &watcher{}

	w.observe(monitor.Sample{Tick: monitor.Tick{Seconds: 3}, At: at}, out)
	w.observe(monitor.Sample{Tick: monitor.Tick{Seconds: 4, Alarm: true}, At: at}, out)

	assert.Equal(t, "12:00:00.000           4  alarm #1\n", out.String())
	assert.Equal(t, uint32(4), w.last)
}

func TestDeviceFromEnvironment(t *testing.T) {
	t.Setenv(envDevice, "/dev/ttyUSB9")
	t.Setenv(envBaud, "9600")

	cmd := newRootCmd()
	assert.Equal(t, "/dev/ttyUSB9", cmd.PersistentFlags().Lookup("device").DefValue)
	assert.Equal(t, "9600", cmd.PersistentFlags().Lookup("baud").DefValue)
}
