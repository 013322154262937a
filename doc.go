// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringfmt provides printf-style formatted output for processes whose
// only way out is a raw log transport.
//
// Output is rendered into one fixed-size ring buffer owned by a [Gateway]
// and flushed to a sink (any [io.Writer]). The gateway arbitrates between
// callers that may wait for the buffer and callers that must never wait,
// such as signal handlers or latency-critical goroutines.
//
// # Quick Start
//
//	g := ringfmt.New(ringfmt.DefaultCapacity).Sink(ringfmt.NewFDSink(2)).Build()
//
//	// Task context: waits for the buffer, output reaches the sink on return
//	g.Printf("boot: %d devices, base %p\n", n, base)
//
//	// Asynchronous context: never waits, output stays buffered
//	if _, err := g.TryPrintf("irq %02x\n", line); ringfmt.IsWouldBlock(err) {
//	    // buffer busy, drop the message
//	}
//
//	// Later, from anywhere
//	g.TryFlush()
//
// # Entry Points
//
//	Printf       wait for lock, flush pending, format, flush
//	Flush        wait for lock, flush
//	TryPrintf    try lock, format, keep buffered
//	TryFlush     try lock, flush
//	TrySnprintf  try lock, format, copy into caller buffer, rewind
//	TrySprintf   try lock, format, copy into new string, rewind
//
// Try* entry points return [ErrWouldBlock] when the lock is held elsewhere.
// The ring is left untouched in that case. Capture entry points leave the
// ring exactly as they found it.
//
// # Format Strings
//
// Directives follow the grammar
//
//	'%' ['0' width] ['h' | 'hh' | 'l' | 'll'] conversion
//
// with conversions d i u x o p s c and the literal %%. Only zero padding is
// supported; width without the '0' flag, '-' and '+' flags, precision and
// floating point are not. See [Format] for argument types.
//
//	val=%03d end   with 7          → val=007 end
//	%p             with 0x1a       → 0x1a
//	%04x           with 0xbeef     → beef
//	%hhu           with 300        → 44
//	%02%                           → FormatError
//
// Negative decimal values render with a leading '-'; the sign counts toward
// the zero-padded width, so %03d of -7 renders -07.
//
// # Error Handling
//
// Three kinds of failure are reported:
//
//	ringfmt.IsWouldBlock(err)             // lock busy, nothing happened
//	errors.Is(err, ringfmt.ErrFormat)     // malformed directive (*FormatError)
//	errors.Is(err, ringfmt.ErrInvalidArgument)
//
// A malformed directive aborts the rest of the call, but output rendered for
// earlier directives stays in the ring and is flushed by Printf. Ring
// saturation is not an error: bytes that do not fit are dropped and counted
// in [Stats].Dropped.
//
// # Ring Semantics
//
// The ring never overwrites unflushed bytes and never blocks. A flush hands
// the live bytes to the sink in chronological order, in two writes when the
// content wraps around the end of the storage, then zeroes the storage.
//
// # Locking
//
// The default [SpinLock] is built on [code.hybscloud.com/atomix] and pauses
// with [code.hybscloud.com/spin]. Any [Locker], including *sync.Mutex, can be
// supplied with [Builder.Lock].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for the lock word and counters,
// [code.hybscloud.com/spin] for CPU pause instructions, and
// [golang.org/x/sys/unix] for [FDSink].
package ringfmt
