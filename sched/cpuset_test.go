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

package sched

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCPUSetEmptyAndFull(t *testing.T) {
	var empty CPUSet
	full := FullCPUSet()
	for cpu := 0; cpu < NumCPUBits; cpu++ {
		require.False(t, empty.IsSet(cpu), "cpu=%d", cpu)
		require.True(t, full.IsSet(cpu), "cpu=%d", cpu)
	}
	require.Equal(t, 0, empty.Count())
	require.Equal(t, NumCPUBits, full.Count())
	require.Equal(t, 1024, NumCPUBits)
}

func TestCPUSetSingleBit(t *testing.T) {
	for _, cpu := range []int{0, 1, 31, 32, 63, 64, 65, 511, 1023} {
		var s CPUSet
		s.Set(cpu)
		require.Equal(t, 1, s.Count(), "cpu=%d", cpu)
		require.True(t, s.IsSet(cpu), "cpu=%d", cpu)
		s.Clear(cpu)
		require.Equal(t, CPUSet{}, s)
	}
}

func TestCPUSetClearChain(t *testing.T) {
	s := CPUSetFromBitmask(0xFFFF)
	s.Clear(0)
	require.Equal(t, CPUSetFromBitmask(0xFFFE), s)
	s.Clear(7)
	s.Clear(9)
	s.Clear(8)
	s.Clear(4)
	require.Equal(t, CPUSetFromBitmask(0xFC6E), s)
}

func TestCPUSetFromBitmask(t *testing.T) {
	mask := uint64(0x808000841000410)
	s := CPUSetFromBitmask(mask)
	for cpu := 0; cpu < 64; cpu++ {
		require.Equal(t, mask&(1<<cpu) != 0, s.IsSet(cpu), "cpu=%d", cpu)
	}
	for cpu := 64; cpu < NumCPUBits; cpu++ {
		require.False(t, s.IsSet(cpu), "cpu=%d", cpu)
	}

	var manual CPUSet
	manual.Set(63)
	require.Equal(t, CPUSetFromBitmask(1<<63), manual)
}

func TestCPUSetBounds(t *testing.T) {
	var s CPUSet
	require.Panics(t, func() { s.Set(NumCPUBits) })
	require.Panics(t, func() { s.Set(-1) })
	require.Panics(t, func() { s.Clear(NumCPUBits) })
	require.Panics(t, func() { s.IsSet(-1) })
	require.NotPanics(t, func() { s.Set(NumCPUBits - 1) })
}

func TestCPUSetSize(t *testing.T) {
	var s CPUSet
	// 1024 bits is 128 bytes at either word width
	require.Equal(t, uintptr(128), s.Size())
}
