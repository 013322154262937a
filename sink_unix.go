// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package ringfmt

import (
	"io"

	"golang.org/x/sys/unix"
)

// FDSink writes spans straight to a file descriptor with write(2), with no
// buffering in between. It is the hosted stand-in for a kernel log call.
//
// Write blocks if the descriptor blocks. On a non-blocking descriptor that
// is not ready, Write returns the bytes written so far and [ErrWouldBlock].
type FDSink struct {
	fd int
}

// NewFDSink returns a sink writing to fd. The caller keeps ownership of fd.
func NewFDSink(fd int) *FDSink {
	return &FDSink{fd: fd}
}

// Write writes all of p, retrying short writes and EINTR.
func (s *FDSink) Write(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		m, err := unix.Write(s.fd, p[n:])
		if m > 0 {
			n += m
		}
		switch err {
		case nil:
			if m == 0 {
				return n, io.ErrShortWrite
			}
		case unix.EINTR:
			continue
		case unix.EAGAIN:
			return n, ErrWouldBlock
		default:
			return n, err
		}
	}
	return n, nil
}
