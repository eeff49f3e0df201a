//go:build 386 || arm || mips || mipsle

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

// The kernel affinity mask is an array of native unsigned longs; on 32-bit
// targets that is 32 words of 32 bits.
const (
	cpuSetWords = 32
	bitsPerWord = 32
)

type cpuWord = uint32

// CPUSetFromBitmask places the 64 mask bits into the first two words of
// the set, low word first; all higher words stay zero.
func CPUSetFromBitmask(mask uint64) CPUSet {
	var s CPUSet
	s.words[0] = uint32(mask)
	s.words[1] = uint32(mask >> 32)
	return s
}
