package rtcsim

import (
	"sort"

	"kl03rtc/core"
)

// NVIC is a simulated interrupt controller. Requests latch as pending
// whether or not the line is enabled; Dispatch runs the handlers of
// enabled pending lines, lowest line number first, one at a time.
type NVIC struct {
	enabled  map[core.IRQ]bool
	pending  map[core.IRQ]bool
	handlers map[core.IRQ]func()

	// Calls records EnableIRQ/DisableIRQ in order, e.g. "disable 20"
	Calls []string
}

// NewNVIC returns a controller with every line disabled
func NewNVIC() *NVIC {
	return &NVIC{
		enabled:  make(map[core.IRQ]bool),
		pending:  make(map[core.IRQ]bool),
		handlers: make(map[core.IRQ]func()),
	}
}

// EnableIRQ implements core.InterruptController
func (n *NVIC) EnableIRQ(line core.IRQ) {
	n.enabled[line] = true
	n.Calls = append(n.Calls, "enable "+core.Utoa(uint32(line)))
}

// DisableIRQ implements core.InterruptController
func (n *NVIC) DisableIRQ(line core.IRQ) {
	n.enabled[line] = false
	n.Calls = append(n.Calls, "disable "+core.Utoa(uint32(line)))
}

// Enabled reports whether the line is unmasked
func (n *NVIC) Enabled(line core.IRQ) bool {
	return n.enabled[line]
}

// Pending reports whether the line has a latched request
func (n *NVIC) Pending(line core.IRQ) bool {
	return n.pending[line]
}

// SetPending latches a request on the line
func (n *NVIC) SetPending(line core.IRQ) {
	n.pending[line] = true
}

// Handle registers the handler of a line, replacing any previous one
func (n *NVIC) Handle(line core.IRQ, handler func()) {
	n.handlers[line] = handler
}

// Dispatch runs every enabled pending handler once and returns how many
// ran. Requests raised by a handler are left for the next Dispatch.
func (n *NVIC) Dispatch() int {
	var ready []core.IRQ
	for line, pending := range n.pending {
		if pending && n.enabled[line] {
			ready = append(ready, line)
		}
	}
	sort.Slice(ready, func(i, j int) bool { return ready[i] < ready[j] })

	ran := 0
	for _, line := range ready {
		n.pending[line] = false
		if handler := n.handlers[line]; handler != nil {
			handler()
			ran++
		}
	}
	return ran
}
