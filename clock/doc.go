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
Package clock is a typed wrapper around the Linux clock syscalls:
CLOCK_GETTIME, CLOCK_SETTIME, CLOCK_NANOSLEEP and CLOCK_ADJTIME.

It provides
  - Timespec and Timeval value types with exact nanosecond arithmetic,
  - ClockID identifiers for every clock the kernel knows about,
  - a sparse Timex record with symbolic mode and status bitmasks, converted
    to and from the padded struct timex layout the kernel expects,
  - high resolution sleeping, both relative and against an absolute deadline,
  - frequency helpers (FrequencyPPB, AdjFreqPPB, Step, MaxFreqPPB, SetSync)
    for disciplining a clock the way NTP and PTP daemons do.

Getting the kernel struct layouts byte-for-byte right is the whole point of
this package: the raw struct timex mirror with its alignment padding and
reserved words never leaves this package, callers only ever see the sparse
Timex record.

Failures are surfaced verbatim as unix.Errno values; there is no retry
logic at this layer. An interrupted sleep is reported as EINTR together
with the remaining interval in the *Remain variants.
*/
package clock
