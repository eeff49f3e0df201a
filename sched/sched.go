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

package sched

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Policy is a kernel scheduling policy, the SCHED_* values from
// linux/sched.h.
type Policy uint32

const (
	// Normal is the standard round-robin time-sharing policy
	// (SCHED_OTHER).
	Normal Policy = 0
	// FIFO is first-in first-out real-time scheduling.
	FIFO Policy = 1
	// RR is round-robin real-time scheduling.
	RR Policy = 2
	// Batch is for CPU-intensive batch workloads.
	Batch Policy = 3
	// policy 4 is SCHED_ISO, reserved but never implemented.

	// Idle is for jobs running at extremely low priority.
	Idle Policy = 5
	// Deadline is earliest-deadline-first scheduling.
	Deadline Policy = 6
	// Ext hands scheduling decisions to a BPF scheduler (sched_ext).
	Ext Policy = 7
)

// Attr mirrors struct sched_attr from linux/sched/types.h. All fields are
// naturally aligned, so the Go layout matches the kernel one without
// padding.
type Attr struct {
	// Size of this structure; filled in by SetAttr/GetAttr when zero.
	Size uint32
	// Policy is the SCHED_* policy.
	Policy uint32
	// Flags are the SCHED_FLAG_* bits.
	Flags uint64
	// Nice value, used by Normal and Batch.
	Nice int32
	// Priority is the static priority, used by FIFO and RR.
	Priority uint32
	// Runtime, Deadline and Period parametrize Deadline scheduling,
	// in nanoseconds.
	Runtime  uint64
	Deadline uint64
	Period   uint64
	// UtilMin and UtilMax are utilization hints.
	UtilMin uint32
	UtilMax uint32
}

var (
	errEAGAIN error = syscall.EAGAIN
	errEINVAL error = syscall.EINVAL
	errESRCH  error = syscall.ESRCH
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
	case unix.ESRCH:
		return errESRCH
	}
	return e
}

// GetAffinity writes the affinity mask of the thread with the given pid
// into set and returns the number of bytes the kernel copied, which is the
// size of the mask type it uses internally.
func GetAffinity(pid int, set *CPUSet) (int, error) {
	r1, _, e1 := unix.Syscall(unix.SYS_SCHED_GETAFFINITY,
		uintptr(pid), set.Size(), uintptr(unsafe.Pointer(&set.words[0])))
	if e1 != 0 {
		return 0, errnoErr(e1)
	}
	return int(r1), nil
}

// SetAffinity restricts the thread with the given pid to the CPUs in set.
// If the thread currently runs on a CPU outside the set it is migrated.
func SetAffinity(pid int, set *CPUSet) error {
	_, _, e1 := unix.Syscall(unix.SYS_SCHED_SETAFFINITY,
		uintptr(pid), set.Size(), uintptr(unsafe.Pointer(&set.words[0])))
	if e1 != 0 {
		return errnoErr(e1)
	}
	return nil
}

// SetAttr sets the scheduling policy and attributes of the thread with the
// given pid. attr.Size is filled in when left zero.
func SetAttr(pid int, attr *Attr, flags uint32) error {
	if attr.Size == 0 {
		attr.Size = uint32(unsafe.Sizeof(*attr))
	}
	_, _, e1 := unix.Syscall(unix.SYS_SCHED_SETATTR,
		uintptr(pid), uintptr(unsafe.Pointer(attr)), uintptr(flags))
	if e1 != 0 {
		return errnoErr(e1)
	}
	return nil
}

// GetAttr reads the scheduling policy and attributes of the thread with
// the given pid into attr.
func GetAttr(pid int, attr *Attr, flags uint32) error {
	_, _, e1 := unix.Syscall6(unix.SYS_SCHED_GETATTR,
		uintptr(pid), uintptr(unsafe.Pointer(attr)),
		uintptr(unsafe.Sizeof(*attr)), uintptr(flags), 0, 0)
	if e1 != 0 {
		return errnoErr(e1)
	}
	return nil
}

// Yield relinquishes the CPU, moving the calling thread to the back of the
// queue for its static priority.
func Yield() error {
	_, _, e1 := unix.Syscall(unix.SYS_SCHED_YIELD, 0, 0, 0)
	if e1 != 0 {
		return errnoErr(e1)
	}
	return nil
}

// GetPriorityMin returns the minimum static priority for the policy.
func GetPriorityMin(policy Policy) (int, error) {
	r1, _, e1 := unix.Syscall(unix.SYS_SCHED_GET_PRIORITY_MIN,
		uintptr(policy), 0, 0)
	if e1 != 0 {
		return 0, errnoErr(e1)
	}
	return int(r1), nil
}

// GetPriorityMax returns the maximum static priority for the policy.
func GetPriorityMax(policy Policy) (int, error) {
	r1, _, e1 := unix.Syscall(unix.SYS_SCHED_GET_PRIORITY_MAX,
		uintptr(policy), 0, 0)
	if e1 != 0 {
		return 0, errnoErr(e1)
	}
	return int(r1), nil
}
