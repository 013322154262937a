// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringfmt

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent tests over [SpinLock]: the detector cannot
// see the acquire-release ordering of its atomix lock word and reports the
// ring accesses it protects as races.
const RaceEnabled = true
