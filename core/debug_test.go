package core

import (
	"errors"
	"strings"
	"testing"
)

func TestEventRingOrder(t *testing.T) {
	ClearEventRing()
	defer ClearEventRing()

	RecordEvent(EvtInit, 10, 20)
	RecordEvent(EvtAlarm, 21, 23)
	RecordEvent(EvtSecond, 22, 0)

	events := Events()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	if events[0].Type != EvtInit || events[2].Type != EvtSecond {
		t.Errorf("Events out of order: %+v", events)
	}
	if events[1].Seconds != 21 || events[1].Value != 23 {
		t.Errorf("Alarm event fields wrong: %+v", events[1])
	}
}

func TestEventRingWraps(t *testing.T) {
	ClearEventRing()
	defer ClearEventRing()

	for i := 0; i < EventRingSize+5; i++ {
		RecordEvent(EvtSecond, uint32(i), 0)
	}

	events := Events()
	if len(events) != EventRingSize {
		t.Fatalf("Expected %d events, got %d", EventRingSize, len(events))
	}
	// Oldest five were overwritten
	if events[0].Seconds != 5 {
		t.Errorf("Expected oldest event seconds=5, got %d", events[0].Seconds)
	}
	if events[EventRingSize-1].Seconds != EventRingSize+4 {
		t.Errorf("Expected newest event seconds=%d, got %d", EventRingSize+4, events[EventRingSize-1].Seconds)
	}
}

func TestEventsDisabled(t *testing.T) {
	ClearEventRing()
	SetEventsEnabled(false)
	defer func() {
		SetEventsEnabled(true)
		ClearEventRing()
	}()

	RecordEvent(EvtAlarm, 1, 2)
	if n := len(Events()); n != 0 {
		t.Errorf("Expected no events while disabled, got %d", n)
	}
}

func TestDumpEventRing(t *testing.T) {
	ClearEventRing()
	defer ClearEventRing()

	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})

	RecordEvent(EvtTimeInvalid, 0, 1)
	DumpEventRing()

	if len(lines) != 3 {
		t.Fatalf("Expected header, one event and footer, got %q", lines)
	}
	if !strings.Contains(lines[1], "TIME_INVALID tsr=0 v=1") {
		t.Errorf("Unexpected event line %q", lines[1])
	}
}

func TestDebugPrintlnGated(t *testing.T) {
	var got []string
	SetDebugWriter(func(s string) { got = append(got, s) })
	defer SetDebugWriter(func(string) {})

	SetDebugEnabled(false)
	DebugPrintln("hidden")
	SetDebugEnabled(true)
	DebugPrintln("shown")
	SetDebugEnabled(false)

	if len(got) != 1 || got[0] != "shown" {
		t.Errorf("Expected only the enabled message, got %q", got)
	}
}

func TestDebugErrorBypassesGate(t *testing.T) {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	SetDebugEnabled(false)
	defer SetDebugWriter(func(string) {})

	if DebugError("rtc", nil) {
		t.Error("Expected false for nil error")
	}
	if !DebugError("rtc: report", errors.New("write failed")) {
		t.Error("Expected true for non-nil error")
	}

	if len(lines) != 1 || lines[0] != "rtc: report: write failed" {
		t.Errorf("Unexpected output: %q", lines)
	}
}
