// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringfmt

import (
	"bytes"
	"context"
	"log/slog"
)

// LogSink forwards flushed spans to a structured logger, one record per
// span. A message that crossed the ring's wrap point arrives as two spans
// and therefore as two records.
type LogSink struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogSink returns a sink logging at level through logger.
// Panics if logger is nil.
func NewLogSink(logger *slog.Logger, level slog.Level) *LogSink {
	if logger == nil {
		panic("ringfmt: NewLogSink requires a logger")
	}
	return &LogSink{logger: logger, level: level}
}

// Write logs p with trailing newlines trimmed. It never fails.
func (s *LogSink) Write(p []byte) (int, error) {
	msg := bytes.TrimRight(p, "\r\n")
	if len(msg) > 0 {
		s.logger.Log(context.Background(), s.level, string(msg))
	}
	return len(p), nil
}
