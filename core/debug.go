package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// Event captures a peripheral event for post-mortem analysis
type Event struct {
	Type    uint8  // Event type code
	Seconds uint32 // Seconds counter when the event was recorded
	Value   uint32 // Context-dependent value
}

// Event type codes
const (
	EvtInit        = 1 // Peripheral configured
	EvtReset       = 2 // Software reset issued
	EvtTimeInvalid = 3 // Time-invalid flag cleared
	EvtOverflow    = 4 // Time-overflow flag cleared
	EvtAlarm       = 5 // Alarm fired and re-armed
	EvtSecond      = 6 // Seconds tick reported
)

const (
	EventRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	// Event capture ring buffer (non-blocking, for post-mortem)
	eventRing     [EventRingSize]Event
	eventRingHead uint8        // Next write position
	eventsEnabled bool  = true // Always capture events
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, semihosting, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// DebugError writes "where: err" through the debug writer even while
// debug output is disabled. Returns false, writing nothing, for a nil error.
func DebugError(where string, err error) bool {
	if err == nil {
		return false
	}
	if debugPrintln != nil {
		debugPrintln(where + ": " + err.Error())
	}
	return true
}

// SetEventsEnabled turns event capture on or off
func SetEventsEnabled(enabled bool) {
	eventsEnabled = enabled
}

// RecordEvent captures an event in the ring buffer
// Never blocks or allocates; safe from interrupt handlers
func RecordEvent(eventType uint8, seconds, value uint32) {
	if !eventsEnabled {
		return
	}
	idx := eventRingHead
	eventRing[idx] = Event{
		Type:    eventType,
		Seconds: seconds,
		Value:   value,
	}
	eventRingHead = (idx + 1) % EventRingSize
}

// Events returns the recorded events, oldest first
func Events() []Event {
	state := DisableInterrupts()
	defer RestoreInterrupts(state)

	out := make([]Event, 0, EventRingSize)
	start := eventRingHead
	for i := uint8(0); i < EventRingSize; i++ {
		evt := eventRing[(start+i)%EventRingSize]
		if evt.Type == 0 {
			continue // Empty slot
		}
		out = append(out, evt)
	}
	return out
}

// EventName returns a short label for an event type code
func EventName(eventType uint8) string {
	switch eventType {
	case EvtInit:
		return "INIT"
	case EvtReset:
		return "RESET"
	case EvtTimeInvalid:
		return "TIME_INVALID"
	case EvtOverflow:
		return "OVERFLOW"
	case EvtAlarm:
		return "ALARM"
	case EvtSecond:
		return "SECOND"
	default:
		return "UNKNOWN"
	}
}

// DumpEventRing outputs the event ring buffer (call on shutdown/error)
func DumpEventRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[EVENTS] === Event Ring Dump ===")
	for _, evt := range Events() {
		debugPrintln("[EVENTS] " + EventName(evt.Type) +
			" tsr=" + Utoa(evt.Seconds) +
			" v=" + Utoa(evt.Value))
	}
	debugPrintln("[EVENTS] === End Dump ===")
}

// ClearEventRing clears the event buffer
func ClearEventRing() {
	for i := range eventRing {
		eventRing[i] = Event{}
	}
	eventRingHead = 0
}
