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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimexModes(t *testing.T) {
	var m TimexModes
	require.False(t, m.Has(AdjOffset))
	m.Set(AdjOffset | AdjNano)
	require.True(t, m.Has(AdjOffset))
	require.True(t, m.Has(AdjNano))
	require.True(t, m.Has(AdjOffset|AdjNano))
	require.False(t, m.Has(AdjFrequency))
	m.Clear(AdjNano)
	require.False(t, m.Has(AdjNano))
	require.Equal(t, uint32(0x0001), m.Raw())
}

func TestTimexStatus(t *testing.T) {
	var s TimexStatus
	s.Set(StatusPLL | StatusNano)
	require.True(t, s.Has(StatusPLL))
	require.True(t, s.Has(StatusNano))
	require.False(t, s.Has(StatusUnsync))
	require.Equal(t, "PLL|NANO", s.String())
	s.Clear(StatusPLL)
	require.Equal(t, int32(0x2000), s.Raw())
	require.Equal(t, "0", TimexStatus(0).String())
}

func TestTimexRoundTrip(t *testing.T) {
	tx := Timex{
		Modes:     AdjOffset | AdjStatus | AdjNano,
		Offset:    -123456,
		Freq:      65536,
		Maxerror:  16000000,
		Esterror:  42,
		Status:    StatusPLL | StatusUnsync | StatusNano,
		Constant:  7,
		Precision: 1,
		Tolerance: 32768000,
		Time:      Timeval{Sec: 1700000000, Usec: 999999},
		Tick:      10000,
		Ppsfreq:   -12,
		Jitter:    34,
		Shift:     5,
		Stabil:    -678,
		Jitcnt:    9,
		Calcnt:    10,
		Errcnt:    11,
		Stbcnt:    12,
		Tai:       37,
	}
	raw := tx.toRaw()
	require.Equal(t, tx, raw.timex())
}

func TestTimexRoundTripZero(t *testing.T) {
	tx := Timex{}
	raw := tx.toRaw()
	require.Equal(t, timexRaw{}, raw)
	require.Equal(t, tx, raw.timex())
}
