//go:build 386 || arm || mips || mipsle

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

// long is the kernel __kernel_long_t for 32-bit targets.
type long = int32

// rawTimespec is the struct timespec layout passed to the clock syscalls.
type rawTimespec struct {
	Sec  int32
	Nsec int32
}

// rawTimeval is the struct timeval layout embedded in struct timex.
type rawTimeval struct {
	Sec  int32
	Usec int32
}

// timexRaw is the exact struct timex layout from linux/timex.h on 32-bit
// targets. Everything is naturally 4-byte aligned so there is no interior
// padding, only the trailing reserved block of eleven 32-bit words.
type timexRaw struct {
	Modes     uint32
	Offset    int32
	Freq      int32
	Maxerror  int32
	Esterror  int32
	Status    int32
	Constant  int32
	Precision int32
	Tolerance int32
	Time      rawTimeval
	Tick      int32
	Ppsfreq   int32
	Jitter    int32
	Shift     int32
	Stabil    int32
	Jitcnt    int32
	Calcnt    int32
	Errcnt    int32
	Stbcnt    int32
	Tai       int32
	_         [44]byte
}
