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

package sched

// The kernel affinity mask is an array of native unsigned longs; on 64-bit
// targets that is 16 words of 64 bits.
const (
	cpuSetWords = 16
	bitsPerWord = 64
)

type cpuWord = uint64

// CPUSetFromBitmask places the 64 mask bits into the first word of the
// set; all higher words stay zero.
func CPUSetFromBitmask(mask uint64) CPUSet {
	var s CPUSet
	s.words[0] = mask
	return s
}
