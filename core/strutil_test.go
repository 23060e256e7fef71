package core

import "testing"

func TestItoa(t *testing.T) {
	testCases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{-15, "-15"},
		{1000000, "1000000"},
	}

	for _, tc := range testCases {
		if got := Itoa(tc.in); got != tc.want {
			t.Errorf("Itoa(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUtoaMax(t *testing.T) {
	if got := Utoa(0xFFFFFFFF); got != "4294967295" {
		t.Errorf("Utoa(max) = %q", got)
	}
}

func TestAppendHex(t *testing.T) {
	testCases := []struct {
		in        uint32
		minDigits int
		want      string
	}{
		{0, 2, "00"},
		{0, 0, "0"},
		{0x7, 2, "07"},
		{0x1D, 2, "1D"},
		{0x4003D000, 2, "4003D000"},
		{0xFFFFFFFF, 2, "FFFFFFFF"},
		{0xAB, 4, "00AB"},
	}

	for _, tc := range testCases {
		got := string(AppendHex(nil, tc.in, tc.minDigits))
		if got != tc.want {
			t.Errorf("AppendHex(%#x, %d) = %q, want %q", tc.in, tc.minDigits, got, tc.want)
		}
	}
}

func TestAppendUintNoAlloc(t *testing.T) {
	buf := make([]byte, 0, 16)
	allocs := testing.AllocsPerRun(100, func() {
		buf = AppendUint(buf[:0], 123456)
	})
	if allocs != 0 {
		t.Errorf("AppendUint allocated %v times", allocs)
	}
	if string(buf) != "123456" {
		t.Errorf("got %q", buf)
	}
}

func TestAppendPadded(t *testing.T) {
	got := string(AppendPadded(nil, "RTC_CR", 11))
	if got != "RTC_CR     " {
		t.Errorf("got %q", got)
	}

	// Longer than width is not truncated
	got = string(AppendPadded(nil, "LONGER_NAME", 4))
	if got != "LONGER_NAME" {
		t.Errorf("got %q", got)
	}
}
