//go:build !(386 || arm || mips || mipsle)

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

// long is the kernel __kernel_long_t for 64-bit targets.
type long = int64

// rawTimespec is the struct timespec layout passed to the clock syscalls.
type rawTimespec struct {
	Sec  int64
	Nsec int64
}

// rawTimeval is the struct timeval layout embedded in struct timex.
type rawTimeval struct {
	Sec  int64
	Usec int64
}

// timexRaw is the exact struct timex layout from linux/timex.h on 64-bit
// targets: 4 alignment bytes after every 32-bit field that precedes a
// 64-bit one, and a trailing reserved block of eleven 32-bit words that
// must be zero on input. 208 bytes total.
type timexRaw struct {
	Modes     uint32
	_         [4]byte
	Offset    int64
	Freq      int64
	Maxerror  int64
	Esterror  int64
	Status    int32
	_         [4]byte
	Constant  int64
	Precision int64
	Tolerance int64
	Time      rawTimeval
	Tick      int64
	Ppsfreq   int64
	Jitter    int64
	Shift     int32
	_         [4]byte
	Stabil    int64
	Jitcnt    int64
	Calcnt    int64
	Errcnt    int64
	Stbcnt    int64
	Tai       int32
	_         [44]byte
}
