// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringfmt

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Locker is the mutual exclusion primitive guarding a [Gateway]'s ring.
//
// Lock waits as long as needed. TryLock never waits; it reports whether the
// lock was taken. *sync.Mutex satisfies Locker.
type Locker interface {
	Lock()
	TryLock() bool
	Unlock()
}

// SpinLock is a test-and-set lock with CPU pause backoff.
//
// TryLock is a single CAS and never waits, so it is safe from contexts that
// must not block. Lock spins until the holder releases; use it only from
// contexts the holder cannot be waiting on.
//
// The zero value is unlocked.
type SpinLock struct {
	_     pad
	state atomix.Uint64 // 0 = free, 1 = held
	_     pad
}

// TryLock takes the lock if it is free.
func (l *SpinLock) TryLock() bool {
	return l.state.LoadRelaxed() == 0 && l.state.CompareAndSwapAcqRel(0, 1)
}

// Lock takes the lock, spinning while another context holds it.
func (l *SpinLock) Lock() {
	sw := spin.Wait{}
	for !l.TryLock() {
		sw.Once()
	}
}

// Unlock releases the lock. Unlocking a free lock panics.
func (l *SpinLock) Unlock() {
	if !l.state.CompareAndSwapAcqRel(1, 0) {
		panic("ringfmt: unlock of unlocked SpinLock")
	}
}
