// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringfmt

// lengthMod is the integer length modifier of a directive.
type lengthMod uint8

const (
	lenNone     lengthMod = iota
	lenShort              // h
	lenChar               // hh, always unsigned
	lenLong               // l, platform word
	lenLongLong           // ll, 64 bits
)

// parseState tracks how far a directive has been scanned.
// Directives only move forward through the states.
type parseState uint8

const (
	stateNotStarted parseState = iota
	stateStarted               // leading '%' seen
	stateWidth                 // '0' flag and width digits seen
	stateLength                // length modifier seen
)

// maxWidth caps the accumulated width; larger widths saturate.
const maxWidth = 0xffff

// directive is the parse state of one %... unit. It lives for a single
// directive and is never reused.
type directive struct {
	offset   int
	zeroPad  bool
	width    int
	length   lengthMod
	state    parseState
	consumed int
}

// Format renders format with args into r and returns the number of bytes
// produced, including bytes the ring discarded because it was full.
//
// Supported directives:
//
//	%%                literal percent
//	%d %i             signed decimal (int32)
//	%u %x %o          unsigned decimal, lowercase hex, octal (uint32)
//	%p                "0x" followed by hex (uintptr or unsafe.Pointer)
//	%s                string, []byte or nil, stops at the first NUL
//	%c                one byte
//
// Integer conversions accept the length modifiers h (16 bits), hh
// (unsigned 8 bits), l (platform word) and ll (64 bits). A '0' flag followed
// by decimal digits zero-pads integers and pointers to that width.
//
// The first malformed directive aborts the call with a [*FormatError].
// Bytes already rendered for earlier directives stay in r.
//
// Format does not lock; callers sharing r must serialize access.
func Format(r *Ring, format string, args ...any) (int, error) {
	a := argCursor{vals: args}
	return formatInto(r, format, &a)
}

func formatInto(r *Ring, format string, a *argCursor) (int, error) {
	live, dropped := r.Len(), r.dropped
	produced := func() int {
		return r.Len() - live + int(r.dropped-dropped)
	}

	for i := 0; i < len(format); {
		if format[i] != '%' {
			r.PutByte(format[i])
			i++
			continue
		}
		d := directive{offset: i}
		if err := d.run(r, format[i:], a); err != nil {
			return produced(), err
		}
		i += d.consumed
	}
	return produced(), nil
}

// run scans s, which starts at the directive's '%', and renders the
// directive into r. On success d.consumed holds the bytes of s it used.
func (d *directive) run(r *Ring, s string, a *argCursor) error {
	for d.consumed < len(s) {
		c := s[d.consumed]
		d.consumed++

		switch {
		case d.state == stateNotStarted:
			if c != '%' {
				return d.fail(c, ErrUnknownVerb)
			}
			d.state = stateStarted
		case c == '%':
			if d.consumed == 2 {
				r.PutByte('%')
				return nil
			}
			return d.fail(c, ErrMisplacedPct)
		case c == '0' && d.state == stateStarted:
			d.zeroPad = true
			d.state = stateWidth
			for d.consumed < len(s) && s[d.consumed] >= '0' && s[d.consumed] <= '9' {
				d.width = min(d.width*10+int(s[d.consumed]-'0'), maxWidth)
				d.consumed++
			}
		case c == 'h' && d.state < stateLength:
			d.state = stateLength
			d.length = lenShort
			if d.consumed < len(s) && s[d.consumed] == 'h' {
				d.length = lenChar
				d.consumed++
			}
		case c == 'l' && d.state < stateLength:
			d.state = stateLength
			d.length = lenLong
			if d.consumed < len(s) && s[d.consumed] == 'l' {
				d.length = lenLongLong
				d.consumed++
			}
		default:
			return d.convert(r, c, a)
		}
	}
	return d.fail(0, ErrTruncated)
}

func (d *directive) convert(r *Ring, verb byte, a *argCursor) error {
	switch verb {
	case 'd', 'i':
		return d.integer(r, verb, a, true, 10)
	case 'u':
		return d.integer(r, verb, a, false, 10)
	case 'x':
		return d.integer(r, verb, a, false, 16)
	case 'o':
		return d.integer(r, verb, a, false, 8)
	case 'p', 's', 'c':
		if d.length != lenNone {
			return d.fail(verb, ErrLengthNotInt)
		}
	default:
		return d.fail(verb, ErrUnknownVerb)
	}

	switch verb {
	case 'p':
		p, err := a.pointer()
		if err != nil {
			return d.fail(verb, err)
		}
		r.PutString("0x", 2)
		writePadded(r, uint64(p), false, 16, d.width)
	case 's':
		if d.zeroPad {
			return d.fail(verb, ErrWidthNotAllowed)
		}
		s, b, err := a.str()
		if err != nil {
			return d.fail(verb, err)
		}
		if b != nil {
			putSeq(r, b, len(b))
		} else {
			r.PutString(s, len(s))
		}
	case 'c':
		if d.zeroPad {
			return d.fail(verb, ErrWidthNotAllowed)
		}
		u, err := a.bits()
		if err != nil {
			return d.fail(verb, err)
		}
		r.PutByte(byte(u))
	}
	return nil
}

func (d *directive) integer(r *Ring, verb byte, a *argCursor, signed bool, base uint64) error {
	mag, neg, err := d.pullInt(a, signed)
	if err != nil {
		return d.fail(verb, err)
	}
	writePadded(r, mag, neg, base, d.width)
	return nil
}

// pullInt fetches the next argument at the width the length modifier
// declares and splits it into magnitude and sign.
func (d *directive) pullInt(a *argCursor, signed bool) (mag uint64, neg bool, err error) {
	var v int64
	switch {
	case d.length == lenChar:
		x, err := a.int32()
		return uint64(uint8(x)), false, err
	case d.length == lenShort && signed:
		x, e := a.int32()
		v, err = int64(int16(x)), e
	case d.length == lenShort:
		x, err := a.uint32()
		return uint64(uint16(x)), false, err
	case d.length == lenLong && signed:
		x, e := a.long()
		v, err = int64(x), e
	case d.length == lenLong:
		x, err := a.ulong()
		return uint64(x), false, err
	case d.length == lenLongLong && signed:
		v, err = a.int64()
	case d.length == lenLongLong:
		u, err := a.uint64()
		return u, false, err
	case signed:
		x, e := a.int32()
		v, err = int64(x), e
	default:
		x, err := a.uint32()
		return uint64(x), false, err
	}
	if v < 0 {
		return -uint64(v), true, err
	}
	return uint64(v), false, err
}

func (d *directive) fail(verb byte, reason error) error {
	return &FormatError{Offset: d.offset, Verb: verb, Err: reason}
}
