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

// ClockID names the kernel clock an operation acts on. Values are the raw
// clockid_t tokens from linux/time.h.
type ClockID int32

const (
	// Realtime is the settable system-wide wall clock. It jumps when the
	// administrator steps the time and slews under NTP adjustments.
	Realtime ClockID = 0
	// Monotonic counts from an unspecified point in the past, never goes
	// backwards and excludes time the system is suspended.
	Monotonic ClockID = 1
	// ProcessCPUTime measures CPU time consumed by all threads of this
	// process. Not settable.
	ProcessCPUTime ClockID = 2
	// ThreadCPUTime measures CPU time consumed by the calling thread.
	// Not settable.
	ThreadCPUTime ClockID = 3
	// MonotonicRaw is hardware-based monotonic time free of NTP and
	// adjtime corrections.
	MonotonicRaw ClockID = 4
	// RealtimeCoarse is a faster, less precise Realtime. Not settable.
	RealtimeCoarse ClockID = 5
	// MonotonicCoarse is a faster, less precise Monotonic.
	MonotonicCoarse ClockID = 6
	// Boottime is Monotonic plus any time the system spent suspended.
	Boottime ClockID = 7
	// RealtimeAlarm is Realtime for timers that wake a suspended system.
	RealtimeAlarm ClockID = 8
	// BoottimeAlarm is Boottime for timers that wake a suspended system.
	BoottimeAlarm ClockID = 9
	// clockid 10 was CLOCK_SGI_CYCLE; the driver is gone and the id is a
	// dead placeholder, so it is deliberately not defined here.

	// TAI is wall-clock time without leap second discontinuities.
	TAI ClockID = 11
)

// ClockIDs lists every defined clock, in raw id order.
var ClockIDs = []ClockID{
	Realtime,
	Monotonic,
	ProcessCPUTime,
	ThreadCPUTime,
	MonotonicRaw,
	RealtimeCoarse,
	MonotonicCoarse,
	Boottime,
	RealtimeAlarm,
	BoottimeAlarm,
	TAI,
}

// Raw returns the kernel clockid_t value.
func (c ClockID) Raw() int32 {
	return int32(c)
}

// ClockFromRaw maps a raw clockid_t back to a ClockID. The second return is
// false for ids the kernel may accept but this package does not define.
func ClockFromRaw(raw int32) (ClockID, bool) {
	switch ClockID(raw) {
	case Realtime, Monotonic, ProcessCPUTime, ThreadCPUTime, MonotonicRaw,
		RealtimeCoarse, MonotonicCoarse, Boottime, RealtimeAlarm,
		BoottimeAlarm, TAI:
		return ClockID(raw), true
	}
	return 0, false
}

// ClockFromName maps a short clock name as produced by String ("realtime",
// "monotonic-raw", ...) back to a ClockID.
func ClockFromName(name string) (ClockID, bool) {
	for _, c := range ClockIDs {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

func (c ClockID) String() string {
	switch c {
	case Realtime:
		return "realtime"
	case Monotonic:
		return "monotonic"
	case ProcessCPUTime:
		return "process-cputime"
	case ThreadCPUTime:
		return "thread-cputime"
	case MonotonicRaw:
		return "monotonic-raw"
	case RealtimeCoarse:
		return "realtime-coarse"
	case MonotonicCoarse:
		return "monotonic-coarse"
	case Boottime:
		return "boottime"
	case RealtimeAlarm:
		return "realtime-alarm"
	case BoottimeAlarm:
		return "boottime-alarm"
	case TAI:
		return "tai"
	}
	return "unknown"
}
