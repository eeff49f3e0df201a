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

func TestClockFromRawRoundTrip(t *testing.T) {
	for _, c := range ClockIDs {
		got, ok := ClockFromRaw(c.Raw())
		require.True(t, ok, "clock %s", c)
		require.Equal(t, c, got)
	}
}

func TestClockFromRawUnknown(t *testing.T) {
	// 10 was CLOCK_SGI_CYCLE, retired
	for _, raw := range []int32{-1, 10, 12, 1000} {
		_, ok := ClockFromRaw(raw)
		require.False(t, ok, "raw=%d", raw)
	}
}

func TestClockIDString(t *testing.T) {
	require.Equal(t, "realtime", Realtime.String())
	require.Equal(t, "monotonic-raw", MonotonicRaw.String())
	require.Equal(t, "tai", TAI.String())
	require.Equal(t, "unknown", ClockID(100).String())
	for _, c := range ClockIDs {
		require.NotEqual(t, "unknown", c.String())
	}
}
