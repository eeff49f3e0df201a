//go:build ppc64 || ppc64le || sparc64

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

// powerpc and sparc kernels place the MCL_* bits in a different block.
const (
	// MclCurrent locks all pages currently mapped into the address space.
	MclCurrent Flags = 0x2000
	// MclFuture locks all pages mapped into the address space in the
	// future.
	MclFuture Flags = 0x4000
	// MclOnfault marks the selected mappings to lock pages when they are
	// faulted in. Must be combined with MclCurrent or MclFuture.
	MclOnfault Flags = 0x8000
)
