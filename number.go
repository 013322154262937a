// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringfmt

// maxDigits is the rendered length of the largest uint64 in base 2.
const maxDigits = 64

// DigitLen returns the number of digits v renders to in base.
// Zero has length 1. Returns 0 if base is outside [2, 16].
func DigitLen(v uint64, base uint64) int {
	if base < 2 || base > 16 {
		return 0
	}
	n := 1
	for ; v/base != 0; v /= base {
		n++
	}
	return n
}

// writeNumber renders v in base into r, most significant digit first.
// Digits are extracted least significant first into a stack scratch array,
// so no allocation happens. Bases outside [2, 16] write nothing.
func writeNumber(r *Ring, v uint64, base uint64) {
	if base < 2 || base > 16 {
		return
	}
	var digits [maxDigits]byte
	i := 0
	for ; v/base != 0; v /= base {
		digits[i] = byte(v % base)
		i++
	}
	digits[i] = byte(v % base)

	for ; i >= 0; i-- {
		r.PutDigit(digits[i])
	}
}

// writePadded renders an integer with an optional '-' sign and zero padding.
// Padding brings the sign plus digits up to width characters.
func writePadded(r *Ring, mag uint64, neg bool, base uint64, width int) {
	n := DigitLen(mag, base)
	if neg {
		r.PutByte('-')
		n++
	}
	for ; n < width; n++ {
		r.PutByte('0')
	}
	writeNumber(r, mag, base)
}
