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
	"math"
	"math/big"
	"time"
)

const (
	nsecPerSec  = 1_000_000_000
	nsecPerUsec = 1_000
	nsecPerMsec = 1_000_000
	usecPerSec  = 1_000_000
	msecPerSec  = 1_000
)

// Timespec is time expressed as a seconds and nanoseconds pair, the unit all
// clock syscalls operate in. Values produced by the factory functions and the
// arithmetic methods keep both components on the same side of zero, so
// Sec*1e9+Nsec always reconstructs the total exactly: NsecToTimespec of
// -1_999_999_999 is {Sec: -1, Nsec: -999_999_999}, not a borrowed-second
// POSIX-canonical form.
type Timespec struct {
	Sec  int64
	Nsec int64
}

// NsecToTimespec splits a nanosecond count into seconds and nanoseconds.
// Both division and remainder truncate toward zero.
func NsecToTimespec(nsec int64) Timespec {
	return Timespec{Sec: nsec / nsecPerSec, Nsec: nsec % nsecPerSec}
}

// UsecToTimespec converts a microsecond count, same truncation rule.
func UsecToTimespec(usec int64) Timespec {
	return Timespec{Sec: usec / usecPerSec, Nsec: (usec % usecPerSec) * nsecPerUsec}
}

// MsecToTimespec converts a millisecond count, same truncation rule.
func MsecToTimespec(msec int64) Timespec {
	return Timespec{Sec: msec / msecPerSec, Nsec: (msec % msecPerSec) * nsecPerMsec}
}

// SecToTimespec converts a whole number of seconds.
func SecToTimespec(sec int64) Timespec {
	return Timespec{Sec: sec}
}

// DurationToTimespec converts a time.Duration.
func DurationToTimespec(d time.Duration) Timespec {
	return NsecToTimespec(int64(d))
}

// Nanoseconds returns the total nanosecond count.
func (ts Timespec) Nanoseconds() int64 {
	return ts.Sec*nsecPerSec + ts.Nsec
}

// Microseconds returns the total microsecond count, truncating the
// sub-microsecond remainder toward zero.
func (ts Timespec) Microseconds() int64 {
	return ts.Sec*usecPerSec + ts.Nsec/nsecPerUsec
}

// Milliseconds returns the total millisecond count, truncating the
// sub-millisecond remainder toward zero.
func (ts Timespec) Milliseconds() int64 {
	return ts.Sec*msecPerSec + ts.Nsec/nsecPerMsec
}

// BigNanoseconds accumulates the nanosecond count in a big.Int for callers
// that need headroom beyond 64 bits.
func (ts Timespec) BigNanoseconds() *big.Int {
	n := new(big.Int).Mul(big.NewInt(ts.Sec), big.NewInt(nsecPerSec))
	return n.Add(n, big.NewInt(ts.Nsec))
}

// Duration returns the value as a time.Duration.
func (ts Timespec) Duration() time.Duration {
	return time.Duration(ts.Nanoseconds())
}

// Neg returns the negated value.
func (ts Timespec) Neg() Timespec {
	return NsecToTimespec(-ts.Nanoseconds())
}

// Add returns ts + other.
func (ts Timespec) Add(other Timespec) Timespec {
	return NsecToTimespec(ts.Nanoseconds() + other.Nanoseconds())
}

// Sub returns ts - other.
func (ts Timespec) Sub(other Timespec) Timespec {
	return NsecToTimespec(ts.Nanoseconds() - other.Nanoseconds())
}

// Mul returns ts scaled by n. It panics if the total nanosecond count
// overflows int64; a silently wrapped time value would be far worse than
// a crash here.
func (ts Timespec) Mul(n int64) Timespec {
	a := ts.Nanoseconds()
	if a == 0 || n == 0 {
		return Timespec{}
	}
	p := a * n
	if (a == math.MinInt64 && n == -1) || p/n != a {
		panic("clock: Timespec multiplication overflows int64 nanoseconds")
	}
	return NsecToTimespec(p)
}

// Div returns ts divided by n, truncating toward zero.
func (ts Timespec) Div(n int64) Timespec {
	return NsecToTimespec(ts.Nanoseconds() / n)
}
