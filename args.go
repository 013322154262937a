// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringfmt

import "unsafe"

// argCursor hands out variadic arguments in order, narrowed to the width
// and signedness a directive declares.
//
// Any Go integer kind satisfies an integer request; the value is
// sign-extended (signed kinds) or zero-extended (unsigned kinds) to 64 bits
// and then truncated to the requested width, as a C cast would.
type argCursor struct {
	vals []any
	next int
}

func (a *argCursor) pull() (any, error) {
	if a.next >= len(a.vals) {
		return nil, ErrMissingArg
	}
	v := a.vals[a.next]
	a.next++
	return v, nil
}

// bits returns the next integer argument as 64 raw bits.
func (a *argCursor) bits() (uint64, error) {
	v, err := a.pull()
	if err != nil {
		return 0, err
	}
	if u, ok := intBits(v); ok {
		return u, nil
	}
	return 0, ErrBadArgType
}

func (a *argCursor) int32() (int32, error) {
	u, err := a.bits()
	return int32(u), err
}

func (a *argCursor) uint32() (uint32, error) {
	u, err := a.bits()
	return uint32(u), err
}

// long pulls a platform-word signed integer.
func (a *argCursor) long() (int, error) {
	u, err := a.bits()
	return int(u), err
}

func (a *argCursor) ulong() (uint, error) {
	u, err := a.bits()
	return uint(u), err
}

func (a *argCursor) int64() (int64, error) {
	u, err := a.bits()
	return int64(u), err
}

func (a *argCursor) uint64() (uint64, error) {
	return a.bits()
}

// pointer accepts unsafe.Pointer as well as any integer kind.
func (a *argCursor) pointer() (uintptr, error) {
	v, err := a.pull()
	if err != nil {
		return 0, err
	}
	if p, ok := v.(unsafe.Pointer); ok {
		return uintptr(p), nil
	}
	if u, ok := intBits(v); ok {
		return uintptr(u), nil
	}
	return 0, ErrBadArgType
}

// str pulls a string, a byte slice, or nil. Exactly one of the results is
// meaningful; nil yields two empty results.
func (a *argCursor) str() (string, []byte, error) {
	v, err := a.pull()
	if err != nil {
		return "", nil, err
	}
	switch s := v.(type) {
	case string:
		return s, nil, nil
	case []byte:
		return "", s, nil
	case nil:
		return "", nil, nil
	}
	return "", nil, ErrBadArgType
}

func intBits(v any) (uint64, bool) {
	switch x := v.(type) {
	case int:
		return uint64(int64(x)), true
	case int8:
		return uint64(int64(x)), true
	case int16:
		return uint64(int64(x)), true
	case int32:
		return uint64(int64(x)), true
	case int64:
		return uint64(x), true
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	case uintptr:
		return uint64(x), true
	}
	return 0, false
}
