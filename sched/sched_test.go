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
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestGetAffinity(t *testing.T) {
	var set CPUSet
	n, err := GetAffinity(0, &set)
	require.NoError(t, err)
	require.Greater(t, n, 0)
	require.Greater(t, set.Count(), 0)

	// cross-check against the x/sys wrapper
	var oracle unix.CPUSet
	require.NoError(t, unix.SchedGetaffinity(0, &oracle))
	for cpu := 0; cpu < runtime.NumCPU(); cpu++ {
		require.Equal(t, oracle.IsSet(cpu), set.IsSet(cpu), "cpu=%d", cpu)
	}
}

func TestSetAffinityRoundTrip(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var original CPUSet
	_, err := GetAffinity(0, &original)
	require.NoError(t, err)

	// setting the current mask back is a no-op the kernel must accept
	require.NoError(t, SetAffinity(0, &original))

	var after CPUSet
	_, err = GetAffinity(0, &after)
	require.NoError(t, err)
	require.Equal(t, original, after)
}

func TestSetAffinityEmptyMask(t *testing.T) {
	var empty CPUSet
	require.ErrorIs(t, SetAffinity(0, &empty), unix.EINVAL)
}

func TestAttrRoundTrip(t *testing.T) {
	attr := &Attr{}
	require.NoError(t, GetAttr(0, attr, 0))
	require.Greater(t, attr.Size, uint32(0))

	// writing the current attributes back must be accepted
	require.NoError(t, SetAttr(0, attr, 0))
}

func TestYield(t *testing.T) {
	require.NoError(t, Yield())
}

func TestPriorityRange(t *testing.T) {
	min, err := GetPriorityMin(FIFO)
	require.NoError(t, err)
	max, err := GetPriorityMax(FIFO)
	require.NoError(t, err)
	require.Equal(t, 1, min)
	require.Equal(t, 99, max)

	min, err = GetPriorityMin(Normal)
	require.NoError(t, err)
	max, err = GetPriorityMax(Normal)
	require.NoError(t, err)
	require.Equal(t, 0, min)
	require.Equal(t, 0, max)
}
