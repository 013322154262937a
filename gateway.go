// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringfmt

import (
	"io"
	"log/slog"

	"code.hybscloud.com/atomix"
)

// Gateway owns one [Ring], the [Locker] guarding it, and the sink the ring
// is flushed to. Every formatted write in a process goes through the same
// gateway handle.
//
// Entry points come in two disciplines:
//
//   - Printf and Flush wait for the lock. Use them from task context only.
//   - TryPrintf, TryFlush, TrySnprintf and TrySprintf never wait for the
//     lock; they return [ErrWouldBlock] and leave the ring untouched when
//     another context holds it. Use them from asynchronous handlers.
type Gateway struct {
	_      pad
	lock   Locker
	_      pad
	ring   *Ring
	sink   io.Writer
	logger *slog.Logger

	busy         atomix.Int64
	formatErrors atomix.Int64
	dropped      atomix.Int64
	flushes      atomix.Int64
	sinkErrors   atomix.Int64
}

// Stats is a snapshot of a gateway's counters. Counters only grow.
type Stats struct {
	Busy         int64 // non-blocking calls rejected because the lock was held
	FormatErrors int64 // calls aborted by a malformed directive
	Dropped      int64 // bytes discarded because the ring was full
	Flushes      int64 // ring flushes that had content
	SinkErrors   int64 // sink writes that failed
}

// Printf formats into the ring and flushes it to the sink before returning.
// Content left behind by earlier TryPrintf calls is flushed first, so the
// sink sees bytes in call order.
//
// Printf waits for the lock. It returns the number of bytes produced. On a
// format error the bytes rendered before the bad directive are still
// flushed, and the error is returned.
func (g *Gateway) Printf(format string, args ...any) (int, error) {
	g.lock.Lock()
	defer g.lock.Unlock()

	flushErr := g.flush()
	n, err := g.format(format, args)
	if err != nil {
		g.logger.Debug("ringfmt: format failed", "format", format, "error", err)
	}
	if e := g.flush(); flushErr == nil {
		flushErr = e
	}
	if err != nil {
		return n, err
	}
	return n, flushErr
}

// TryPrintf formats into the ring without flushing it. The content stays
// buffered until the next Printf, Flush or TryFlush.
//
// TryPrintf returns [ErrWouldBlock] without touching the ring if the lock
// is held elsewhere. Bytes that do not fit in the ring are dropped silently.
func (g *Gateway) TryPrintf(format string, args ...any) (int, error) {
	if !g.lock.TryLock() {
		g.busy.Add(1)
		return 0, ErrWouldBlock
	}
	defer g.lock.Unlock()
	return g.format(format, args)
}

// Flush writes buffered content to the sink, waiting for the lock.
func (g *Gateway) Flush() error {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.flush()
}

// TryFlush writes buffered content to the sink if the lock is free, and
// returns [ErrWouldBlock] otherwise. Once the lock is held the sink write
// itself may block.
func (g *Gateway) TryFlush() error {
	if !g.lock.TryLock() {
		g.busy.Add(1)
		return ErrWouldBlock
	}
	defer g.lock.Unlock()
	return g.flush()
}

// TrySnprintf formats into dst instead of the sink, using the shared ring as
// scratch space. At most len(dst)-1 bytes of output are copied, followed by
// a NUL byte; longer output is truncated silently. The ring is rewound
// afterwards, so it holds exactly what it held before the call.
//
// TrySnprintf returns the number of bytes copied, excluding the NUL. It
// returns [ErrInvalidArgument] if dst is empty and [ErrWouldBlock] if the
// lock is held elsewhere.
//
// Output shares ring capacity with content buffered by TryPrintf; bytes
// that do not fit are lost before they can be copied.
func (g *Gateway) TrySnprintf(dst []byte, format string, args ...any) (int, error) {
	if len(dst) == 0 {
		return 0, ErrInvalidArgument
	}
	if !g.lock.TryLock() {
		g.busy.Add(1)
		return 0, ErrWouldBlock
	}
	defer g.lock.Unlock()

	before := g.ring.Len()
	_, err := g.format(format, args)
	w := g.ring.Len() - before
	if err != nil {
		g.undo(w)
		return 0, err
	}
	n := g.ring.copyTail(dst[:len(dst)-1], w)
	dst[n] = 0
	g.undo(w)
	return n, nil
}

// TrySprintf is like TrySnprintf but returns the captured output as a new
// string instead of copying into a caller buffer.
func (g *Gateway) TrySprintf(format string, args ...any) (string, error) {
	if !g.lock.TryLock() {
		g.busy.Add(1)
		return "", ErrWouldBlock
	}
	defer g.lock.Unlock()

	before := g.ring.Len()
	_, err := g.format(format, args)
	w := g.ring.Len() - before
	if err != nil {
		g.undo(w)
		return "", err
	}
	buf := make([]byte, w)
	g.ring.copyTail(buf, w)
	g.undo(w)
	return string(buf), nil
}

// Stats returns a snapshot of the gateway counters. It does not take the
// lock and is safe to call from any goroutine.
func (g *Gateway) Stats() Stats {
	return Stats{
		Busy:         g.busy.Load(),
		FormatErrors: g.formatErrors.Load(),
		Dropped:      g.dropped.Load(),
		Flushes:      g.flushes.Load(),
		SinkErrors:   g.sinkErrors.Load(),
	}
}

// Cap returns the capacity of the gateway's ring.
func (g *Gateway) Cap() int {
	return g.ring.Cap()
}

// format runs the format engine on the ring. Caller holds the lock.
func (g *Gateway) format(format string, args []any) (int, error) {
	dropped := g.ring.Dropped()
	a := argCursor{vals: args}
	n, err := formatInto(g.ring, format, &a)
	if d := g.ring.Dropped() - dropped; d > 0 {
		g.dropped.Add(int64(d))
	}
	if err != nil {
		g.formatErrors.Add(1)
	}
	return n, err
}

// undo removes the newest w bytes of the ring. A capture that filled an
// empty ring completely cannot be rewound, so the ring is reset instead.
func (g *Gateway) undo(w int) {
	if w == g.ring.Cap() {
		g.ring.Reset()
		return
	}
	g.ring.Rewind(w)
}

// flush empties the ring into the sink. Caller holds the lock.
func (g *Gateway) flush() error {
	if g.ring.Len() == 0 {
		return nil
	}
	g.flushes.Add(1)
	err := g.ring.Flush(g.sink)
	if err != nil {
		g.sinkErrors.Add(1)
		g.logger.Warn("ringfmt: sink write failed", "error", err)
	}
	return err
}
