// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringfmt

import (
	"errors"
	"strconv"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates that a non-blocking entry point could not take the
// buffer lock because another context is holding it (the buffer is busy).
//
// ErrWouldBlock is a control flow signal, not a failure. The shared buffer
// was not touched. Callers running in asynchronous handlers usually drop the
// message; retrying from such a context risks an unbounded spin.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	if _, err := g.TryPrintf("irq %d\n", n); ringfmt.IsWouldBlock(err) {
//	    dropped++
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrInvalidArgument indicates a missing or unusable caller argument, such
// as a zero-length capture destination.
var ErrInvalidArgument = errors.New("ringfmt: invalid argument")

// ErrFormat is matched by every [*FormatError] through [errors.Is].
var ErrFormat = errors.New("ringfmt: malformed format directive")

// Reasons carried by [FormatError.Err].
var (
	ErrUnknownVerb     = errors.New("unknown conversion")
	ErrMisplacedPct    = errors.New("'%' after directive content")
	ErrWidthNotAllowed = errors.New("zero-pad or width on %s or %c")
	ErrLengthNotInt    = errors.New("length modifier on non-integer conversion")
	ErrTruncated       = errors.New("directive truncated by end of format")
	ErrMissingArg      = errors.New("missing argument")
	ErrBadArgType      = errors.New("argument type does not match directive")
)

// FormatError describes a directive that could not be rendered.
//
// Output produced by earlier directives in the same call stays in the
// buffer; a FormatError aborts only the remainder of the call.
type FormatError struct {
	Offset int   // byte offset of the directive's '%' in the format string
	Verb   byte  // offending byte, 0 when the format ended early
	Err    error // reason, one of the ErrXxx reasons above
}

func (e *FormatError) Error() string {
	s := "ringfmt: bad directive at offset " + strconv.Itoa(e.Offset)
	if e.Verb != 0 {
		s += " (" + strconv.QuoteRune(rune(e.Verb)) + ")"
	}
	return s + ": " + e.Err.Error()
}

// Is reports whether target is [ErrFormat].
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsWouldBlock reports whether err indicates the buffer was busy.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
