/*
Copyright (c) the kerncall authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package clock

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// timerAbstime makes clock_nanosleep treat the request as an absolute
// deadline on the given clock (TIMER_ABSTIME in linux/time.h).
const timerAbstime = 0x01

var (
	errEAGAIN error = syscall.EAGAIN
	errEINVAL error = syscall.EINVAL
	errEINTR  error = syscall.EINTR
)

// errnoErr returns common boxed Errno values, to prevent
// allocations at runtime.
func errnoErr(e syscall.Errno) error {
	switch e {
	case 0:
		return nil
	case unix.EAGAIN:
		return errEAGAIN
	case unix.EINVAL:
		return errEINVAL
	case unix.EINTR:
		return errEINTR
	}
	return e
}

func (ts Timespec) raw() rawTimespec {
	return rawTimespec{Sec: long(ts.Sec), Nsec: long(ts.Nsec)}
}

func (r rawTimespec) timespec() Timespec {
	return Timespec{Sec: int64(r.Sec), Nsec: int64(r.Nsec)}
}

// Gettime retrieves the current time of the given clock.
func Gettime(clock ClockID) (Timespec, error) {
	var raw rawTimespec
	_, _, e1 := unix.Syscall(unix.SYS_CLOCK_GETTIME,
		uintptr(clock.Raw()), uintptr(unsafe.Pointer(&raw)), 0)
	if e1 != 0 {
		return Timespec{}, errnoErr(e1)
	}
	return raw.timespec(), nil
}

// Settime sets the given clock to ts. Requires CAP_SYS_TIME for the
// realtime clock; most other clocks are not settable at all.
func Settime(clock ClockID, ts Timespec) error {
	raw := ts.raw()
	_, _, e1 := unix.Syscall(unix.SYS_CLOCK_SETTIME,
		uintptr(clock.Raw()), uintptr(unsafe.Pointer(&raw)), 0)
	if e1 != 0 {
		return errnoErr(e1)
	}
	return nil
}

// Adjtime issues CLOCK_ADJTIME for the given clock. Fields selected by
// tx.Modes are applied, and on success tx is overwritten with the values
// the kernel reports back, so callers must treat every field as refreshed.
// With zero Modes this is a pure read of the clock discipline state.
//
// The returned state is one of the Time* clock state constants. On error
// tx is left untouched.
func Adjtime(clock ClockID, tx *Timex) (state int, err error) {
	raw := tx.toRaw()
	r1, _, e1 := unix.Syscall(unix.SYS_CLOCK_ADJTIME,
		uintptr(clock.Raw()), uintptr(unsafe.Pointer(&raw)), 0)
	if e1 != 0 {
		return 0, errnoErr(e1)
	}
	*tx = raw.timex()
	return int(r1), nil
}

func nanosleep(clock ClockID, flags int32, request *rawTimespec, remain *rawTimespec) error {
	_, _, e1 := unix.Syscall6(unix.SYS_CLOCK_NANOSLEEP,
		uintptr(clock.Raw()), uintptr(flags),
		uintptr(unsafe.Pointer(request)), uintptr(unsafe.Pointer(remain)),
		0, 0)
	if e1 != 0 {
		return errnoErr(e1)
	}
	return nil
}

// NanosleepRelative suspends the calling thread for the given interval on
// the given clock. A signal delivery interrupts the sleep with EINTR.
func NanosleepRelative(clock ClockID, request Timespec) error {
	req := request.raw()
	return nanosleep(clock, 0, &req, nil)
}

// NanosleepRelativeRemain is NanosleepRelative but additionally reports the
// unslept part of the interval. On EINTR the remaining interval is valid
// and the caller may simply sleep again with it.
func NanosleepRelativeRemain(clock ClockID, request Timespec) (Timespec, error) {
	req := request.raw()
	var remain rawTimespec
	err := nanosleep(clock, 0, &req, &remain)
	return remain.timespec(), err
}

// NanosleepAbsolute suspends the calling thread until the given clock
// reads at or past deadline. If the deadline is already in the past the
// kernel returns immediately; no user-space check is done here.
func NanosleepAbsolute(clock ClockID, deadline Timespec) error {
	req := deadline.raw()
	return nanosleep(clock, timerAbstime, &req, nil)
}

// NanosleepAbsoluteRemain is NanosleepAbsolute with the remain argument
// still wired through. The kernel leaves it untouched for absolute sleeps
// since the deadline itself does not move; it is provided for symmetry.
func NanosleepAbsoluteRemain(clock ClockID, deadline Timespec) (Timespec, error) {
	req := deadline.raw()
	var remain rawTimespec
	err := nanosleep(clock, timerAbstime, &req, &remain)
	return remain.timespec(), err
}
