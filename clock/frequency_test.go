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

func TestFrequencyPPB(t *testing.T) {
	freq, state, err := FrequencyPPB(Realtime)
	require.NoError(t, err)
	require.GreaterOrEqual(t, state, TimeOK)
	// kernel caps the frequency offset at +-500 PPM either way
	require.InDelta(t, 0, freq, 500000.0)
}

func TestMaxFreqPPB(t *testing.T) {
	maxFreq, _, err := MaxFreqPPB(Realtime)
	require.NoError(t, err)
	require.Greater(t, maxFreq, 0.0)
}
