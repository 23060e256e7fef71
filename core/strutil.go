package core

// Itoa converts an integer to a string without using fmt package
// This is a lightweight alternative for embedded systems
func Itoa(n int) string {
	if n < 0 {
		buf := AppendUint([]byte{'-'}, uint32(-n))
		return string(buf)
	}
	return Utoa(uint32(n))
}

// Utoa converts an unsigned integer to a string
func Utoa(n uint32) string {
	var buf [10]byte
	return string(AppendUint(buf[:0], n))
}

// AppendUint appends the decimal form of n to dst.
// Does not allocate when dst has room, so it is safe in interrupt handlers.
func AppendUint(dst []byte, n uint32) []byte {
	if n == 0 {
		return append(dst, '0')
	}

	// Build right to left in a scratch array
	var tmp [10]byte
	pos := len(tmp)
	for n > 0 {
		pos--
		tmp[pos] = byte('0' + n%10)
		n /= 10
	}
	return append(dst, tmp[pos:]...)
}

const hexDigits = "0123456789ABCDEF"

// AppendHex appends n in upper-case hex, zero padded to at least
// minDigits digits, without a 0x prefix.
func AppendHex(dst []byte, n uint32, minDigits int) []byte {
	var tmp [8]byte
	pos := len(tmp)
	for n > 0 {
		pos--
		tmp[pos] = hexDigits[n&0xF]
		n >>= 4
	}
	for len(tmp)-pos < minDigits && pos > 0 {
		pos--
		tmp[pos] = '0'
	}
	if pos == len(tmp) {
		return append(dst, '0')
	}
	return append(dst, tmp[pos:]...)
}

// AppendPadded appends s followed by spaces up to width bytes.
func AppendPadded(dst []byte, s string, width int) []byte {
	dst = append(dst, s...)
	for i := len(s); i < width; i++ {
		dst = append(dst, ' ')
	}
	return dst
}
