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

/*
Package sched wraps the Linux scheduler control syscalls.

The central type is CPUSet, a fixed 1024-bit affinity bitmap laid out
exactly like the kernel cpu_set_t, used with GetAffinity and SetAffinity.
The package also covers sched_setattr/sched_getattr via the Attr record,
the scheduling policy constants, sched_yield, and the static priority range
lookups.

A pid of zero addresses the calling thread in every call that accepts one,
matching the syscall convention.
*/
package sched
