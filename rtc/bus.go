package rtc

// Bus is raw 32-bit access to the RTC register block. Offsets are
// relative to the block base (see TSR..IER). On hardware this is
// memory-mapped I/O; on the host it is a simulated peripheral.
type Bus interface {
	Read32(offset uint32) uint32
	Write32(offset uint32, value uint32)
}

// Register is one 32-bit register on a Bus. All bit helpers are
// read-modify-write, so untouched fields keep their value.
type Register struct {
	bus    Bus
	offset uint32
}

// NewRegister binds a register offset to a bus
func NewRegister(bus Bus, offset uint32) Register {
	return Register{bus: bus, offset: offset}
}

// Offset returns the register offset within the block
func (r Register) Offset() uint32 {
	return r.offset
}

// Get reads the whole register
func (r Register) Get() uint32 {
	return r.bus.Read32(r.offset)
}

// Set writes the whole register
func (r Register) Set(value uint32) {
	r.bus.Write32(r.offset, value)
}

// HasBits reports whether every bit in mask is set
func (r Register) HasBits(mask uint32) bool {
	return r.Get()&mask == mask
}

// SetBits sets the bits in mask
func (r Register) SetBits(mask uint32) {
	r.Set(r.Get() | mask)
}

// ClearBits clears the bits in mask
func (r Register) ClearBits(mask uint32) {
	r.Set(r.Get() &^ mask)
}

// ReplaceBits overwrites the field selected by mask with value.
// Bits of value outside mask are dropped.
func (r Register) ReplaceBits(mask, value uint32) {
	r.Set(r.Get()&^mask | value&mask)
}
