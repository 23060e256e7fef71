package rtc

// Register block of the KL03 RTC, as offsets from Base.
const (
	Base = 0x4003D000 // RTC register block base address

	TSR = 0x00 // Time Seconds Register
	TPR = 0x04 // Time Prescaler Register
	TAR = 0x08 // Time Alarm Register
	TCR = 0x0C // Time Compensation Register
	CR  = 0x10 // Control Register
	SR  = 0x14 // Status Register
	LR  = 0x18 // Lock Register
	IER = 0x1C // Interrupt Enable Register
)

// CR bits
const (
	CR_SWR   = 1 << 0  // Software reset
	CR_WPE   = 1 << 1  // Wakeup pin enable
	CR_SUP   = 1 << 2  // Supervisor access
	CR_UM    = 1 << 3  // Update mode
	CR_OSCE  = 1 << 8  // Oscillator enable
	CR_CLKO  = 1 << 9  // Clock output (active low)
	CR_SC16P = 1 << 10 // Oscillator 16pF load
	CR_SC8P  = 1 << 11 // Oscillator 8pF load
	CR_SC4P  = 1 << 12 // Oscillator 4pF load
	CR_SC2P  = 1 << 13 // Oscillator 2pF load
)

// SR bits. TIF, TOF and TAF are read-only; TCE is the only writable bit.
const (
	SR_TIF = 1 << 0 // Time invalid flag
	SR_TOF = 1 << 1 // Time overflow flag
	SR_TAF = 1 << 2 // Time alarm flag
	SR_TCE = 1 << 4 // Time counter enable
)

// IER bits
const (
	IER_TIIE = 1 << 0 // Time invalid interrupt enable
	IER_TOIE = 1 << 1 // Time overflow interrupt enable
	IER_TAIE = 1 << 2 // Time alarm interrupt enable
	IER_TSIE = 1 << 4 // Time seconds interrupt enable
	IER_WPON = 1 << 7 // Wakeup pin on

	IERMask = IER_TIIE | IER_TOIE | IER_TAIE | IER_TSIE | IER_WPON
)

// LR bits, cleared to lock the matching register
const (
	LR_TCL = 1 << 3 // Time compensation lock
	LR_CRL = 1 << 4 // Control register lock
	LR_SRL = 1 << 5 // Status register lock
	LR_LRL = 1 << 6 // Lock register lock
)

// TCR fields
const (
	TCR_TCR_Pos  = 0 // Time compensation value, signed cycles
	TCR_TCR_Mask = 0xFF << TCR_TCR_Pos
	TCR_CIR_Pos  = 8 // Compensation interval, seconds minus one
	TCR_CIR_Mask = 0xFF << TCR_CIR_Pos
	TCR_TCV_Pos  = 16 // Current compensation value (read-only)
	TCR_TCV_Mask = 0xFF << TCR_TCV_Pos
	TCR_CIC_Pos  = 24 // Current interval counter (read-only)
	TCR_CIC_Mask = 0xFF << TCR_CIC_Pos
)

// Values after a software reset or VBAT power-on reset
const (
	SRResetValue  = SR_TIF
	IERResetValue = IER_TIIE | IER_TOIE | IER_TAIE
	LRResetValue  = 0xFF
)

// OscillatorHz is the nominal 32.768 kHz crystal frequency. The time
// prescaler overflows, and the seconds counter advances, every
// OscillatorHz cycles when no compensation applies.
const OscillatorHz = 32768

// TCRFields packs the writable compensation fields of TCR
func TCRFields(interval, value uint8) uint32 {
	return uint32(interval)<<TCR_CIR_Pos | uint32(value)<<TCR_TCR_Pos
}

// reportOrder is the fixed register order of Report
var reportOrder = [...]struct {
	name   string
	offset uint32
}{
	{"RTC_TSR", TSR},
	{"RTC_TPR", TPR},
	{"RTC_TAR", TAR},
	{"RTC_TCR", TCR},
	{"RTC_CR", CR},
	{"RTC_SR", SR},
	{"RTC_LR", LR},
	{"RTC_IER", IER},
}
