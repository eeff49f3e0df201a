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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNsecToTimespec(t *testing.T) {
	require.Equal(t, Timespec{Sec: 0, Nsec: 0}, NsecToTimespec(0))
	require.Equal(t, Timespec{Sec: 1, Nsec: 0}, NsecToTimespec(1_000_000_000))
	require.Equal(t, Timespec{Sec: 0, Nsec: 999_999_999}, NsecToTimespec(999_999_999))
	require.Equal(t, Timespec{Sec: 1, Nsec: 999_999_999}, NsecToTimespec(1_999_999_999))

	// both components carry the sign, no borrowed second
	require.Equal(t, Timespec{Sec: -1, Nsec: -999_999_999}, NsecToTimespec(-1_999_999_999))
	require.Equal(t, Timespec{Sec: 0, Nsec: -1}, NsecToTimespec(-1))
}

func TestTimespecFactories(t *testing.T) {
	require.Equal(t, Timespec{Sec: 3, Nsec: 0}, SecToTimespec(3))
	require.Equal(t, Timespec{Sec: 1, Nsec: 500_000_000}, MsecToTimespec(1500))
	require.Equal(t, Timespec{Sec: -1, Nsec: -500_000_000}, MsecToTimespec(-1500))
	require.Equal(t, Timespec{Sec: 2, Nsec: 1_000}, UsecToTimespec(2_000_001))
	require.Equal(t, Timespec{Sec: 0, Nsec: -999_000}, UsecToTimespec(-999))
	require.Equal(t, Timespec{Sec: 1, Nsec: 500_000_000}, DurationToTimespec(1500*time.Millisecond))
}

func TestTimespecRoundTrip(t *testing.T) {
	for _, n := range []int64{
		0, 1, -1, 999_999_999, 1_000_000_000, 1_999_999_999,
		-1_999_999_999, math.MaxInt64, math.MinInt64,
	} {
		require.Equal(t, n, NsecToTimespec(n).Nanoseconds(), "n=%d", n)
	}
}

func TestTimespecAccessorsTruncate(t *testing.T) {
	ts := NsecToTimespec(-1_500_000_999)
	require.Equal(t, int64(-1_500_000), ts.Microseconds())
	require.Equal(t, int64(-1500), ts.Milliseconds())
	require.Equal(t, -1_500_000_999*time.Nanosecond, ts.Duration())

	ts = NsecToTimespec(2_000_000_999)
	require.Equal(t, int64(2_000_000), ts.Microseconds())
	require.Equal(t, int64(2000), ts.Milliseconds())
}

func TestTimespecOps(t *testing.T) {
	require.Equal(t, SecToTimespec(2), NsecToTimespec(1_999_999_999).Add(NsecToTimespec(1)))
	require.Equal(t, NsecToTimespec(1_999_999_998), NsecToTimespec(1_999_999_999).Sub(NsecToTimespec(1)))
	require.Equal(t, NsecToTimespec(-999_999_999), SecToTimespec(1).Sub(NsecToTimespec(1_999_999_999)))
	require.Equal(t, NsecToTimespec(3_999_999_998), NsecToTimespec(1_999_999_999).Mul(2))
	require.Equal(t, NsecToTimespec(1_500_000_000), SecToTimespec(3).Div(2))
	require.Equal(t, NsecToTimespec(-5), NsecToTimespec(5).Neg())

	// (a + b) - b == a
	a, b := NsecToTimespec(123_456_789_123), NsecToTimespec(-987_654_321)
	require.Equal(t, a, a.Add(b).Sub(b))
}

func TestTimespecMulOverflow(t *testing.T) {
	require.Panics(t, func() {
		SecToTimespec(math.MaxInt64 / nsecPerSec).Mul(1000)
	})
	require.Panics(t, func() {
		NsecToTimespec(math.MinInt64).Mul(-1)
	})
	// zero operands never overflow
	require.Equal(t, Timespec{}, NsecToTimespec(math.MaxInt64).Mul(0))
}

func TestTimespecBigNanoseconds(t *testing.T) {
	ts := Timespec{Sec: math.MaxInt64, Nsec: 999_999_999}
	want := new(big.Int).Mul(big.NewInt(math.MaxInt64), big.NewInt(nsecPerSec))
	want.Add(want, big.NewInt(999_999_999))
	require.Equal(t, 0, want.Cmp(ts.BigNanoseconds()))
	require.Greater(t, ts.BigNanoseconds().BitLen(), 64)
}

func TestTimeval(t *testing.T) {
	require.Equal(t, Timeval{Sec: 1, Usec: 500_000}, UsecToTimeval(1_500_000))
	require.Equal(t, Timeval{Sec: -1, Usec: -500_000}, UsecToTimeval(-1_500_000))
	require.Equal(t, Timeval{Sec: 3, Usec: 0}, SecToTimeval(3))
	require.Equal(t, int64(1_500_000), UsecToTimeval(1_500_000).Microseconds())
	require.Equal(t, 1500*time.Millisecond, UsecToTimeval(1_500_000).Duration())
}
