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

package mman

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// RLIMIT_MEMLOCK may be tiny or zero in constrained environments; locking
// failures with ENOMEM/EPERM are not bugs in the wrappers.
func skipIfNotPermitted(t *testing.T, err error) {
	if errors.Is(err, unix.ENOMEM) || errors.Is(err, unix.EPERM) || errors.Is(err, unix.EAGAIN) {
		t.Skipf("memory locking not permitted here: %v", err)
	}
}

func TestMlockMunlock(t *testing.T) {
	buf := make([]byte, 4096)
	err := Mlock(buf)
	skipIfNotPermitted(t, err)
	require.NoError(t, err)
	require.NoError(t, Munlock(buf))
	// unlocking twice is fine
	require.NoError(t, Munlock(buf))
}

func TestMlock2OnFault(t *testing.T) {
	buf := make([]byte, 4096)
	err := Mlock2(buf, MclOnfault)
	skipIfNotPermitted(t, err)
	require.NoError(t, err)
	require.NoError(t, Munlock(buf))
}

func TestMlockall(t *testing.T) {
	err := Mlockall(MclCurrent | MclOnfault)
	skipIfNotPermitted(t, err)
	require.NoError(t, err)
	require.NoError(t, Munlockall())
}

func TestMlockallBadFlags(t *testing.T) {
	// MclOnfault alone is rejected by the kernel
	require.ErrorIs(t, Mlockall(MclOnfault), unix.EINVAL)
	require.ErrorIs(t, Mlockall(0), unix.EINVAL)
}

func TestFlagsHas(t *testing.T) {
	f := MclCurrent | MclFuture
	require.True(t, f.Has(MclCurrent))
	require.True(t, f.Has(MclFuture))
	require.False(t, f.Has(MclOnfault))
}
