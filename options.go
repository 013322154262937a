// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringfmt

import (
	"io"
	"log/slog"
)

// DefaultCapacity is the ring size used by the default builder.
const DefaultCapacity = 512

// Options configures gateway creation.
type Options struct {
	// Ring capacity in bytes
	capacity int

	// Collaborators
	sink   io.Writer
	lock   Locker
	logger *slog.Logger
}

// Builder creates gateways with fluent configuration.
//
// Example:
//
//	// Log through a raw file descriptor, default spin lock
//	g := ringfmt.New(1024).Sink(ringfmt.NewFDSink(2)).Build()
//
//	// Share an existing mutex and log sink failures
//	g := ringfmt.New(ringfmt.DefaultCapacity).
//	    Sink(w).
//	    Lock(&mu).
//	    Logger(slog.Default()).
//	    Build()
type Builder struct {
	opts Options
}

// New creates a gateway builder with the given ring capacity in bytes.
//
// Panics if capacity < 2.
func New(capacity int) *Builder {
	if capacity < 2 {
		panic("ringfmt: capacity must be >= 2")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// Sink sets the log transport flushed bytes are written to. Required.
// Writes may block; they happen only while the gateway lock is held.
func (b *Builder) Sink(w io.Writer) *Builder {
	b.opts.sink = w
	return b
}

// Lock sets the lock guarding the ring. Defaults to a fresh [SpinLock].
func (b *Builder) Lock(l Locker) *Builder {
	b.opts.lock = l
	return b
}

// Logger sets the logger for sink failures and Printf format errors.
// Defaults to a logger that discards everything. TryPrintf and the capture
// entry points never log.
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.opts.logger = l
	return b
}

// Build creates the gateway. The ring starts empty and zeroed.
// Panics if no sink was configured.
func (b *Builder) Build() *Gateway {
	if b.opts.sink == nil {
		panic("ringfmt: Build requires a Sink")
	}
	lock := b.opts.lock
	if lock == nil {
		lock = &SpinLock{}
	}
	logger := b.opts.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Gateway{
		lock:   lock,
		ring:   NewRing(b.opts.capacity),
		sink:   b.opts.sink,
		logger: logger,
	}
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
