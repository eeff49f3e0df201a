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

/*
Package mman wraps the Linux memory locking syscalls: mlock, mlock2,
munlock, mlockall and munlockall.

Locked pages are guaranteed to stay resident in RAM until unlocked, which
is what latency-sensitive time daemons want: a page fault in the middle of
a clock servo loop is a spike in the very signal being disciplined.

The MCL_* flag values are architecture dependent (powerpc and sparc use a
different block of bits); the right variant is selected at build time.
*/
package mman

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Flags control the scope of Mlockall and Mlock2.
type Flags int

// Has reports whether every bit of flag is set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

var (
	errEAGAIN error = syscall.EAGAIN
	errEINVAL error = syscall.EINVAL
	errENOMEM error = syscall.ENOMEM
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
	case unix.ENOMEM:
		return errENOMEM
	}
	return e
}

func sliceAddr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

// Mlock locks the pages containing b into RAM.
func Mlock(b []byte) error {
	_, _, e1 := unix.Syscall(unix.SYS_MLOCK,
		uintptr(sliceAddr(b)), uintptr(len(b)), 0)
	if e1 != 0 {
		return errnoErr(e1)
	}
	return nil
}

// Mlock2 locks the pages containing b into RAM. With MclOnfault present
// pages are locked now and absent ones when they are faulted in; with zero
// flags it behaves like Mlock.
func Mlock2(b []byte, flags Flags) error {
	_, _, e1 := unix.Syscall(unix.SYS_MLOCK2,
		uintptr(sliceAddr(b)), uintptr(len(b)), uintptr(flags))
	if e1 != 0 {
		return errnoErr(e1)
	}
	return nil
}

// Munlock unlocks the pages containing b; they may be swapped out again.
func Munlock(b []byte) error {
	_, _, e1 := unix.Syscall(unix.SYS_MUNLOCK,
		uintptr(sliceAddr(b)), uintptr(len(b)), 0)
	if e1 != 0 {
		return errnoErr(e1)
	}
	return nil
}

// Mlockall locks all pages mapped into the address space of the calling
// process: current ones with MclCurrent, future mappings with MclFuture,
// either combined with MclOnfault to defer the lock until first touch.
func Mlockall(flags Flags) error {
	_, _, e1 := unix.Syscall(unix.SYS_MLOCKALL, uintptr(flags), 0, 0)
	if e1 != 0 {
		return errnoErr(e1)
	}
	return nil
}

// Munlockall unlocks every page mapped into the address space of the
// calling process.
func Munlockall() error {
	_, _, e1 := unix.Syscall(unix.SYS_MUNLOCKALL, 0, 0, 0)
	if e1 != 0 {
		return errnoErr(e1)
	}
	return nil
}
