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

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// The raw struct must match the 64-bit kernel struct timex byte for byte;
// these offsets come straight from linux/timex.h.
func TestTimexRawLayout(t *testing.T) {
	var raw timexRaw
	require.Equal(t, uintptr(208), unsafe.Sizeof(raw))
	require.Equal(t, uintptr(0), unsafe.Offsetof(raw.Modes))
	require.Equal(t, uintptr(8), unsafe.Offsetof(raw.Offset))
	require.Equal(t, uintptr(40), unsafe.Offsetof(raw.Status))
	require.Equal(t, uintptr(48), unsafe.Offsetof(raw.Constant))
	require.Equal(t, uintptr(72), unsafe.Offsetof(raw.Time))
	require.Equal(t, uintptr(88), unsafe.Offsetof(raw.Tick))
	require.Equal(t, uintptr(112), unsafe.Offsetof(raw.Shift))
	require.Equal(t, uintptr(120), unsafe.Offsetof(raw.Stabil))
	require.Equal(t, uintptr(160), unsafe.Offsetof(raw.Tai))
}

func TestRawTimespecLayout(t *testing.T) {
	var ts rawTimespec
	require.Equal(t, uintptr(16), unsafe.Sizeof(ts))
	var tv rawTimeval
	require.Equal(t, uintptr(16), unsafe.Sizeof(tv))
}
