// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringfmt_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
	"unsafe"

	"code.hybscloud.com/ringfmt"
)

// render formats into a fresh ring of the given capacity and flushes it.
func render(capacity int, format string, args ...any) (string, int, error) {
	r := ringfmt.NewRing(capacity)
	n, err := ringfmt.Format(r, format, args...)
	var w spanWriter
	r.Flush(&w)
	return w.String(), n, err
}

// =============================================================================
// Conversions
// =============================================================================

func TestFormatConversions(t *testing.T) {
	tests := []struct {
		format string
		args   []any
		want   string
	}{
		// Literals
		{"hello world", nil, "hello world"},
		{"%%", nil, "%"},
		{"100%% done", nil, "100% done"},
		{"", nil, ""},

		// Signed decimal
		{"val=%03d end", []any{7}, "val=007 end"},
		{"%d", []any{0}, "0"},
		{"%i", []any{12}, "12"},
		{"%d", []any{-42}, "-42"},
		{"%03d", []any{-7}, "-07"},
		{"%d", []any{math.MinInt32}, "-2147483648"},
		{"%d", []any{uint32(0xffffffff)}, "-1"},
		{"%d", []any{int8(-3)}, "-3"},
		{"%d", []any{uint8(200)}, "200"},
		{"%02d", []any{123}, "123"},
		{"%0d", []any{5}, "5"},

		// Unsigned, hex, octal
		{"%u", []any{uint32(math.MaxUint32)}, "4294967295"},
		{"%u", []any{-1}, "4294967295"},
		{"%x", []any{255}, "ff"},
		{"%04x", []any{255}, "00ff"},
		{"%x", []any{uint32(0xdeadbeef)}, "deadbeef"},
		{"%o", []any{8}, "10"},
		{"%03o", []any{5}, "005"},
		{"%03u", []any{5}, "005"},
		{"%03x", []any{5}, "005"},
		{"%03d", []any{5}, "005"},
		{"%x", []any{int64(0x1_0000_0001)}, "1"},

		// Length modifiers
		{"%hd", []any{65535}, "-1"},
		{"%hu", []any{65537}, "1"},
		{"%hx", []any{0x12345}, "2345"},
		{"%hhu", []any{300}, "44"},
		{"%hhd", []any{-1}, "255"},
		{"%hhx", []any{0x1ff}, "ff"},
		{"%ld", []any{-5}, "-5"},
		{"%lu", []any{uint(7)}, "7"},
		{"%lld", []any{int64(math.MinInt64)}, "-9223372036854775808"},
		{"%llu", []any{uint64(math.MaxUint64)}, "18446744073709551615"},
		{"%llx", []any{uint64(1) << 40}, "10000000000"},
		{"%016llx", []any{uint64(0xabc)}, "0000000000000abc"},
		{"%llo", []any{uint64(8)}, "10"},

		// Pointers
		{"%p", []any{uintptr(0x1A)}, "0x1a"},
		{"%p", []any{0x1a}, "0x1a"},
		{"%08p", []any{uintptr(0xbeef)}, "0x0000beef"},
		{"%p", []any{uintptr(0)}, "0x0"},

		// Strings and bytes
		{"%s", []any{"abc"}, "abc"},
		{"%s", []any{[]byte("xyz")}, "xyz"},
		{"%s", []any{nil}, ""},
		{"%s", []any{"ab\x00cd"}, "ab"},
		{"%s%%", []any{"50"}, "50%"},
		{"%c", []any{'A'}, "A"},
		{"%c", []any{0x141}, "A"},
		{"%c", []any{byte('z')}, "z"},

		// Mixed
		{"[%s|%d|%c]", []any{"x", 1, 'y'}, "[x|1|y]"},
		{"%d%d%d", []any{1, 2, 3}, "123"},
	}

	for _, tt := range tests {
		got, n, err := render(128, tt.format, tt.args...)
		if err != nil {
			t.Fatalf("Format(%q, %v): %v", tt.format, tt.args, err)
		}
		if got != tt.want {
			t.Fatalf("Format(%q, %v): got %q, want %q", tt.format, tt.args, got, tt.want)
		}
		if n != len(tt.want) {
			t.Fatalf("Format(%q, %v): n = %d, want %d", tt.format, tt.args, n, len(tt.want))
		}
	}
}

// =============================================================================
// Errors
// =============================================================================

func TestFormatErrors(t *testing.T) {
	tests := []struct {
		format string
		args   []any
		reason error
		verb   byte
	}{
		{"%02%", nil, ringfmt.ErrMisplacedPct, '%'},
		{"%h%", nil, ringfmt.ErrMisplacedPct, '%'},
		{"%q", nil, ringfmt.ErrUnknownVerb, 'q'},
		{"%3d", []any{1}, ringfmt.ErrUnknownVerb, '3'},
		{"% d", []any{1}, ringfmt.ErrUnknownVerb, ' '},
		{"%lhd", []any{1}, ringfmt.ErrUnknownVerb, 'h'},
		{"%hhhd", []any{1}, ringfmt.ErrUnknownVerb, 'h'},
		{"%05s", []any{"x"}, ringfmt.ErrWidthNotAllowed, 's'},
		{"%0s", []any{"x"}, ringfmt.ErrWidthNotAllowed, 's'},
		{"%02c", []any{'x'}, ringfmt.ErrWidthNotAllowed, 'c'},
		{"%ls", []any{"x"}, ringfmt.ErrLengthNotInt, 's'},
		{"%hp", []any{1}, ringfmt.ErrLengthNotInt, 'p'},
		{"%llc", []any{1}, ringfmt.ErrLengthNotInt, 'c'},
		{"%", nil, ringfmt.ErrTruncated, 0},
		{"%05", nil, ringfmt.ErrTruncated, 0},
		{"%ll", nil, ringfmt.ErrTruncated, 0},
		{"%d", nil, ringfmt.ErrMissingArg, 'd'},
		{"%s", nil, ringfmt.ErrMissingArg, 's'},
		{"%d", []any{"str"}, ringfmt.ErrBadArgType, 'd'},
		{"%s", []any{5}, ringfmt.ErrBadArgType, 's'},
		{"%p", []any{"x"}, ringfmt.ErrBadArgType, 'p'},
		{"%c", []any{1.5}, ringfmt.ErrBadArgType, 'c'},
	}

	for _, tt := range tests {
		_, _, err := render(64, tt.format, tt.args...)
		if !errors.Is(err, ringfmt.ErrFormat) {
			t.Fatalf("Format(%q): got %v, want ErrFormat", tt.format, err)
		}
		if !errors.Is(err, tt.reason) {
			t.Fatalf("Format(%q): got %v, want reason %v", tt.format, err, tt.reason)
		}
		var fe *ringfmt.FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("Format(%q): %T is not *FormatError", tt.format, err)
		}
		if fe.Verb != tt.verb {
			t.Fatalf("Format(%q): Verb = %q, want %q", tt.format, fe.Verb, tt.verb)
		}
	}
}

func TestFormatErrorKeepsEarlierOutput(t *testing.T) {
	got, n, err := render(64, "ab%dcd%qef", 1)

	var fe *ringfmt.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Format: got %v, want *FormatError", err)
	}
	if fe.Offset != 6 {
		t.Fatalf("Offset: got %d, want 6", fe.Offset)
	}
	if got != "ab1cd" || n != 5 {
		t.Fatalf("partial output: got %q n=%d, want %q n=5", got, n, "ab1cd")
	}
}

func TestFormatErrorMessage(t *testing.T) {
	_, _, err := render(64, "x=%q", 1)
	msg := err.Error()
	for _, part := range []string{"offset 2", "'q'", ringfmt.ErrUnknownVerb.Error()} {
		if !strings.Contains(msg, part) {
			t.Fatalf("Error() = %q, missing %q", msg, part)
		}
	}

	_, _, err = render(64, "%")
	if msg := err.Error(); strings.Contains(msg, "(") {
		t.Fatalf("Error() for truncated directive quotes a verb: %q", msg)
	}
}

// =============================================================================
// Properties
// =============================================================================

func TestFormatLiteralIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		b := make([]byte, rng.IntN(64))
		for i := range b {
			for {
				b[i] = byte(rng.UintN(256))
				if b[i] != '%' {
					break
				}
			}
		}
		got, n, err := render(64, string(b))
		if err != nil {
			t.Fatalf("Format(%q): %v", b, err)
		}
		if got != string(b) || n != len(b) {
			t.Fatalf("Format(%q): got %q n=%d", b, got, n)
		}
	}
}

func TestFormatDigitLenMatchesRendering(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	verbs := map[uint64]string{8: "%llo", 10: "%llu", 16: "%llx"}

	values := []uint64{0, 1, math.MaxUint64}
	for range 200 {
		values = append(values, rng.Uint64()>>rng.UintN(64))
	}

	for base, verb := range verbs {
		for _, v := range values {
			got, _, err := render(64, verb, v)
			if err != nil {
				t.Fatalf("Format(%s, %d): %v", verb, v, err)
			}
			if got != strconv.FormatUint(v, int(base)) {
				t.Fatalf("Format(%s, %d): got %q", verb, v, got)
			}
			if ringfmt.DigitLen(v, base) != len(got) {
				t.Fatalf("DigitLen(%d, %d) = %d, rendered %q", v, base, ringfmt.DigitLen(v, base), got)
			}
		}
	}
	if ringfmt.DigitLen(0, 10) != 1 {
		t.Fatalf("DigitLen(0, 10): got %d, want 1", ringfmt.DigitLen(0, 10))
	}
}

func TestFormatZeroPadding(t *testing.T) {
	for _, verb := range []string{"d", "x", "o", "u"} {
		got, _, err := render(16, "%03"+verb, 5)
		if err != nil || got != "005" {
			t.Fatalf("%%03%s of 5: got %q %v, want 005", verb, got, err)
		}
		got, _, _ = render(16, "%01"+verb, 5)
		if got != "5" {
			t.Fatalf("%%01%s of 5: got %q, want 5", verb, got)
		}
	}
}

func TestFormatPointerPrefix(t *testing.T) {
	for _, p := range []uintptr{0, 1, 0x1a, 0xdead} {
		got, _, _ := render(32, "%p", p)
		want := "0x" + strconv.FormatUint(uint64(p), 16)
		if got != want {
			t.Fatalf("%%p of %#x: got %q, want %q", p, got, want)
		}
	}
}

func TestFormatUnsafePointer(t *testing.T) {
	x := 42
	p := unsafe.Pointer(&x)
	got, _, err := render(32, "%p", p)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if want := "0x" + strconv.FormatUint(uint64(uintptr(p)), 16); got != want {
		t.Fatalf("%%p of unsafe.Pointer: got %q, want %q", got, want)
	}
}

func TestFormatSaturation(t *testing.T) {
	r := ringfmt.NewRing(4)
	n, err := ringfmt.Format(r, "abcdef")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if n != 6 {
		t.Fatalf("produced: got %d, want 6", n)
	}
	if r.Dropped() != 2 {
		t.Fatalf("Dropped: got %d, want 2", r.Dropped())
	}
	var w spanWriter
	r.Flush(&w)
	if w.String() != "abcd" {
		t.Fatalf("Flush: got %q, want abcd", w.String())
	}
}

func TestFormatWidthSaturates(t *testing.T) {
	// Width far beyond any ring is clamped, the output simply saturates
	got, _, err := render(8, "%099999999999999999999d", 1)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "00000000" {
		t.Fatalf("got %q, want 8 zeros", got)
	}
}
