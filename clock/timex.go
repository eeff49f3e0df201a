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

import "strings"

// TimexModes is the Modes bitmask of a Timex record. It selects which
// fields CLOCK_ADJTIME should apply; zero modes makes the call a pure read.
// Constants are the ADJ_* values from linux/timex.h.
type TimexModes uint32

const (
	// AdjOffset applies the time offset.
	AdjOffset TimexModes = 0x0001
	// AdjFrequency applies the frequency offset.
	AdjFrequency TimexModes = 0x0002
	// AdjMaxError sets the maximum time error.
	AdjMaxError TimexModes = 0x0004
	// AdjEstError sets the estimated time error.
	AdjEstError TimexModes = 0x0008
	// AdjStatus sets the clock status bits.
	AdjStatus TimexModes = 0x0010
	// AdjTimeConst sets the PLL time constant.
	AdjTimeConst TimexModes = 0x0020
	// AdjTAI sets the TAI offset.
	AdjTAI TimexModes = 0x0080
	// AdjSetOffset adds Time to the current time.
	AdjSetOffset TimexModes = 0x0100
	// AdjMicro selects microsecond resolution.
	AdjMicro TimexModes = 0x1000
	// AdjNano selects nanosecond resolution.
	AdjNano TimexModes = 0x2000
	// AdjTick sets the tick value.
	AdjTick TimexModes = 0x4000
)

// Has reports whether every bit of flag is set.
func (m TimexModes) Has(flag TimexModes) bool {
	return m&flag == flag
}

// Set turns the given bits on.
func (m *TimexModes) Set(flag TimexModes) {
	*m |= flag
}

// Clear turns the given bits off.
func (m *TimexModes) Clear(flag TimexModes) {
	*m &^= flag
}

// Raw exposes the bitmask for the syscall boundary.
func (m TimexModes) Raw() uint32 {
	return uint32(m)
}

// TimexStatus is the Status bitmask of a Timex record, the STA_* values
// from linux/timex.h. Bits above StatusFreqHold are read-only and silently
// ignored by the kernel on input.
type TimexStatus int32

const (
	// StatusPLL enables PLL updates (rw).
	StatusPLL TimexStatus = 0x0001
	// StatusPPSFreq enables PPS frequency discipline (rw).
	StatusPPSFreq TimexStatus = 0x0002
	// StatusPPSTime enables PPS time discipline (rw).
	StatusPPSTime TimexStatus = 0x0004
	// StatusFLL selects frequency-lock mode (rw).
	StatusFLL TimexStatus = 0x0008
	// StatusIns inserts a leap second (rw).
	StatusIns TimexStatus = 0x0010
	// StatusDel deletes a leap second (rw).
	StatusDel TimexStatus = 0x0020
	// StatusUnsync marks the clock unsynchronized (rw).
	StatusUnsync TimexStatus = 0x0040
	// StatusFreqHold holds frequency (rw).
	StatusFreqHold TimexStatus = 0x0080
	// StatusPPSSignal: PPS signal present (ro).
	StatusPPSSignal TimexStatus = 0x0100
	// StatusPPSJitter: PPS signal jitter exceeded (ro).
	StatusPPSJitter TimexStatus = 0x0200
	// StatusPPSWander: PPS signal wander exceeded (ro).
	StatusPPSWander TimexStatus = 0x0400
	// StatusPPSError: PPS signal calibration error (ro).
	StatusPPSError TimexStatus = 0x0800
	// StatusClockErr: clock hardware fault (ro).
	StatusClockErr TimexStatus = 0x1000
	// StatusNano: resolution is nanoseconds rather than microseconds (ro).
	StatusNano TimexStatus = 0x2000
	// StatusMode: clock runs in FLL rather than PLL mode (ro).
	StatusMode TimexStatus = 0x4000
	// StatusClk: clock source is B rather than A (ro).
	StatusClk TimexStatus = 0x8000
)

var statusNames = []struct {
	bit  TimexStatus
	name string
}{
	{StatusPLL, "PLL"},
	{StatusPPSFreq, "PPSFREQ"},
	{StatusPPSTime, "PPSTIME"},
	{StatusFLL, "FLL"},
	{StatusIns, "INS"},
	{StatusDel, "DEL"},
	{StatusUnsync, "UNSYNC"},
	{StatusFreqHold, "FREQHOLD"},
	{StatusPPSSignal, "PPSSIGNAL"},
	{StatusPPSJitter, "PPSJITTER"},
	{StatusPPSWander, "PPSWANDER"},
	{StatusPPSError, "PPSERROR"},
	{StatusClockErr, "CLOCKERR"},
	{StatusNano, "NANO"},
	{StatusMode, "MODE"},
	{StatusClk, "CLK"},
}

// Has reports whether every bit of flag is set.
func (s TimexStatus) Has(flag TimexStatus) bool {
	return s&flag == flag
}

// Set turns the given bits on.
func (s *TimexStatus) Set(flag TimexStatus) {
	*s |= flag
}

// Clear turns the given bits off.
func (s *TimexStatus) Clear(flag TimexStatus) {
	*s &^= flag
}

// Raw exposes the bitmask for the syscall boundary.
func (s TimexStatus) Raw() int32 {
	return int32(s)
}

// String renders the set bits as a pipe-separated list of STA_* suffixes.
func (s TimexStatus) String() string {
	if s == 0 {
		return "0"
	}
	var names []string
	for _, sn := range statusNames {
		if s.Has(sn.bit) {
			names = append(names, sn.name)
		}
	}
	return strings.Join(names, "|")
}

// Clock states returned by Adjtime, the TIME_* values from linux/timex.h.
const (
	// TimeOK means the clock is synchronized and no leap second is pending.
	TimeOK = 0
	// TimeIns means a leap second will be inserted.
	TimeIns = 1
	// TimeDel means a leap second will be deleted.
	TimeDel = 2
	// TimeOOP means a leap second is in progress.
	TimeOOP = 3
	// TimeWait means a leap second has occurred.
	TimeWait = 4
	// TimeError means the clock is not synchronized.
	TimeError = 5
)

// Timex is the caller-facing clock adjustment record for Adjtime, the
// sparse counterpart of the kernel struct timex. Units follow
// clock_adjtime(2): Offset is nanoseconds when StatusNano is set and
// microseconds otherwise, Freq and friends are in 2^-16 ppm.
//
// The kernel refreshes read-only fields (Precision, Tolerance, Time, ...)
// on every successful call, even a pure read with zero Modes, so every
// field may change across Adjtime.
type Timex struct {
	// Modes selects which fields to apply.
	Modes TimexModes
	// Offset is the time offset to apply or the currently applied one.
	Offset int64
	// Freq is the frequency offset.
	Freq int64
	// Maxerror is the maximum error in microseconds.
	Maxerror int64
	// Esterror is the estimated error in microseconds.
	Esterror int64
	// Status holds the clock command/status bits.
	Status TimexStatus
	// Constant is the PLL time constant.
	Constant int64
	// Precision is the clock precision in microseconds (ro).
	Precision int64
	// Tolerance is the clock frequency tolerance (ro).
	Tolerance int64
	// Time is the current time (ro except with AdjSetOffset). With
	// StatusNano set, Time.Usec holds nanoseconds.
	Time Timeval
	// Tick is the microseconds between clock ticks.
	Tick int64
	// Ppsfreq is the PPS frequency (ro).
	Ppsfreq int64
	// Jitter is the PPS jitter (ro).
	Jitter int64
	// Shift is the PPS interval duration in seconds (ro).
	Shift int32
	// Stabil is the PPS stability (ro).
	Stabil int64
	// Jitcnt counts PPS jitter limit exceeded events (ro).
	Jitcnt int64
	// Calcnt counts PPS calibration intervals (ro).
	Calcnt int64
	// Errcnt counts PPS calibration errors (ro).
	Errcnt int64
	// Stbcnt counts PPS stability limit exceeded events (ro).
	Stbcnt int64
	// Tai is the TAI-UTC offset in seconds (ro, set via AdjTAI).
	Tai int32
}

// toRaw builds the kernel struct timex mirror. Padding and the reserved
// trailing words are zero by construction.
func (tx *Timex) toRaw() timexRaw {
	return timexRaw{
		Modes:     tx.Modes.Raw(),
		Offset:    long(tx.Offset),
		Freq:      long(tx.Freq),
		Maxerror:  long(tx.Maxerror),
		Esterror:  long(tx.Esterror),
		Status:    tx.Status.Raw(),
		Constant:  long(tx.Constant),
		Precision: long(tx.Precision),
		Tolerance: long(tx.Tolerance),
		Time:      rawTimeval{Sec: long(tx.Time.Sec), Usec: long(tx.Time.Usec)},
		Tick:      long(tx.Tick),
		Ppsfreq:   long(tx.Ppsfreq),
		Jitter:    long(tx.Jitter),
		Shift:     tx.Shift,
		Stabil:    long(tx.Stabil),
		Jitcnt:    long(tx.Jitcnt),
		Calcnt:    long(tx.Calcnt),
		Errcnt:    long(tx.Errcnt),
		Stbcnt:    long(tx.Stbcnt),
		Tai:       tx.Tai,
	}
}

// timex rebuilds the sparse record from a mirror the kernel has written to.
func (raw *timexRaw) timex() Timex {
	return Timex{
		Modes:     TimexModes(raw.Modes),
		Offset:    int64(raw.Offset),
		Freq:      int64(raw.Freq),
		Maxerror:  int64(raw.Maxerror),
		Esterror:  int64(raw.Esterror),
		Status:    TimexStatus(raw.Status),
		Constant:  int64(raw.Constant),
		Precision: int64(raw.Precision),
		Tolerance: int64(raw.Tolerance),
		Time:      Timeval{Sec: int64(raw.Time.Sec), Usec: int64(raw.Time.Usec)},
		Tick:      int64(raw.Tick),
		Ppsfreq:   int64(raw.Ppsfreq),
		Jitter:    int64(raw.Jitter),
		Shift:     raw.Shift,
		Stabil:    int64(raw.Stabil),
		Jitcnt:    int64(raw.Jitcnt),
		Calcnt:    int64(raw.Calcnt),
		Errcnt:    int64(raw.Errcnt),
		Stbcnt:    int64(raw.Stbcnt),
		Tai:       raw.Tai,
	}
}
