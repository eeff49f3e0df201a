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
	"fmt"
	"unsafe"
)

// NumCPUBits is the number of CPU indices a CPUSet can represent. It is
// the same 1024 the kernel cpu_set_t holds, regardless of word width.
const NumCPUBits = cpuSetWords * bitsPerWord

// CPUSet is a CPU affinity bitmap with the exact cpu_set_t layout: bit i
// of the logical mask lives in word i/bitsPerWord at bit i%bitsPerWord.
// The zero value is the empty set. CPUSet values compare with == and may
// be copied freely.
type CPUSet struct {
	words [cpuSetWords]cpuWord
}

// FullCPUSet returns a set with every representable CPU index set.
func FullCPUSet() CPUSet {
	var s CPUSet
	for i := range s.words {
		s.words[i] = ^cpuWord(0)
	}
	return s
}

func index(cpu int) (word, bit int) {
	if cpu < 0 || cpu >= NumCPUBits {
		panic(fmt.Sprintf("sched: CPU index %d out of range [0, %d)", cpu, NumCPUBits))
	}
	return cpu / bitsPerWord, cpu % bitsPerWord
}

// Set adds cpu to the set. It panics if cpu is outside [0, NumCPUBits);
// silently wrapping the index would pin the wrong CPU.
func (s *CPUSet) Set(cpu int) {
	word, bit := index(cpu)
	s.words[word] |= 1 << bit
}

// Clear removes cpu from the set. Same bounds rule as Set.
func (s *CPUSet) Clear(cpu int) {
	word, bit := index(cpu)
	s.words[word] &^= 1 << bit
}

// IsSet reports whether cpu is in the set. Same bounds rule as Set.
func (s *CPUSet) IsSet(cpu int) bool {
	word, bit := index(cpu)
	return s.words[word]&(1<<bit) != 0
}

// Count returns the number of CPUs in the set.
func (s *CPUSet) Count() int {
	n := 0
	for cpu := 0; cpu < NumCPUBits; cpu++ {
		if s.IsSet(cpu) {
			n++
		}
	}
	return n
}

// Size is the byte size of the bitmap, the cpusetsize argument the
// affinity syscalls expect.
func (s *CPUSet) Size() uintptr {
	return unsafe.Sizeof(s.words)
}
