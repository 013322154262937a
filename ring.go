// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringfmt

import "io"

// Ring is a fixed-capacity circular byte store.
//
// Live bytes occupy [start, end) modulo the capacity. When start == end the
// full flag tells an empty ring from a saturated one; the flag is never
// visible outside this file.
//
// A Ring is not safe for concurrent use. [Gateway] serializes access to its
// ring with a [Locker].
//
// Memory: O(capacity), allocated once
type Ring struct {
	buf     []byte
	start   int
	end     int
	full    bool
	dropped uint64
}

// NewRing creates an empty ring holding up to capacity bytes.
// Panics if capacity < 2.
func NewRing(capacity int) *Ring {
	if capacity < 2 {
		panic("ringfmt: capacity must be >= 2")
	}
	return &Ring{buf: make([]byte, capacity)}
}

// Reset zeroes the storage and returns the ring to its empty state.
// The dropped-byte counter is preserved.
func (r *Ring) Reset() {
	clear(r.buf)
	r.start = 0
	r.end = 0
	r.full = false
}

// Cap returns the ring capacity in bytes.
func (r *Ring) Cap() int {
	return len(r.buf)
}

// Len returns the number of live bytes.
func (r *Ring) Len() int {
	switch {
	case r.full:
		return len(r.buf)
	case r.end >= r.start:
		return r.end - r.start
	default:
		return len(r.buf) - r.start + r.end
	}
}

// Full reports whether the ring is saturated.
func (r *Ring) Full() bool {
	return r.full
}

// Dropped returns the number of bytes discarded because the ring was full.
func (r *Ring) Dropped() uint64 {
	return r.dropped
}

// PutByte appends c. If the ring is full, c is discarded and PutByte
// returns false. Saturation is silent by contract: the ring never blocks and
// never overwrites unflushed bytes.
func (r *Ring) PutByte(c byte) bool {
	if r.full {
		r.dropped++
		return false
	}
	r.buf[r.end] = c
	r.end++
	if r.end == len(r.buf) {
		r.end = 0
	}
	if r.end == r.start {
		r.full = true
	}
	return true
}

// PutString appends bytes of s until a NUL byte or limit bytes have been
// written, whichever comes first.
func (r *Ring) PutString(s string, limit int) {
	putSeq(r, s, limit)
}

// PutDigit appends the ASCII form of d: '0'..'9' for 0..9, 'a'..'f' for
// 10..15. Other values are ignored.
func (r *Ring) PutDigit(d byte) {
	switch {
	case d < 10:
		r.PutByte('0' + d)
	case d <= 15:
		r.PutByte('a' + d - 10)
	}
}

func putSeq[S ~string | ~[]byte](r *Ring, s S, limit int) {
	for i := 0; i < len(s) && i < limit && s[i] != 0; i++ {
		r.PutByte(s[i])
	}
}

// Flush hands the live bytes to w in chronological order, then resets the
// ring. Contiguous content takes one Write; content crossing the end of the
// storage takes two, [start, cap) first and [0, end) second.
//
// The ring is reset and zeroed even when w fails. The first error is
// returned and the remaining segment, if any, is not written.
func (r *Ring) Flush(w io.Writer) error {
	var err error
	switch {
	case r.full || r.end < r.start:
		_, err = w.Write(r.buf[r.start:])
		if err == nil && r.end > 0 {
			_, err = w.Write(r.buf[:r.end])
		}
	case r.end > r.start:
		_, err = w.Write(r.buf[r.start:r.end])
	}
	r.Reset()
	return err
}

// Rewind removes the newest n bytes and returns n. The removed bytes are
// zeroed. Rewind is a no-op returning 0 when n >= Cap() or when n exceeds
// the live byte count.
func (r *Ring) Rewind(n int) int {
	if n <= 0 || n >= len(r.buf) || n > r.Len() {
		return 0
	}
	if r.end >= n {
		clear(r.buf[r.end-n : r.end])
		r.end -= n
	} else {
		first := r.end
		clear(r.buf[:first])
		clear(r.buf[len(r.buf)-n+first:])
		r.end = len(r.buf) - n + first
	}
	r.full = false
	return n
}

// copyTail copies the oldest bytes of the newest w live bytes into dst,
// up to len(dst), following the wrap point. It returns the count copied.
func (r *Ring) copyTail(dst []byte, w int) int {
	if w <= 0 || w > r.Len() {
		return 0
	}
	from := r.end - w
	if from < 0 {
		from += len(r.buf)
	}
	k := min(len(dst), w)
	n := copy(dst[:k], r.buf[from:min(from+k, len(r.buf))])
	if n < k {
		copy(dst[n:k], r.buf[:k-n])
	}
	return k
}
