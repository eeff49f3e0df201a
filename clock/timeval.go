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

import "time"

// Timeval is time expressed as a seconds and microseconds pair. It appears
// as the Time field of Timex; with AdjNano selected the kernel stores
// nanoseconds in Usec despite the name.
type Timeval struct {
	Sec  int64
	Usec int64
}

// UsecToTimeval splits a microsecond count into seconds and microseconds,
// truncating toward zero like NsecToTimespec.
func UsecToTimeval(usec int64) Timeval {
	return Timeval{Sec: usec / usecPerSec, Usec: usec % usecPerSec}
}

// SecToTimeval converts a whole number of seconds.
func SecToTimeval(sec int64) Timeval {
	return Timeval{Sec: sec}
}

// Microseconds returns the total microsecond count.
func (tv Timeval) Microseconds() int64 {
	return tv.Sec*usecPerSec + tv.Usec
}

// Duration returns the value as a time.Duration, interpreting Usec as
// microseconds.
func (tv Timeval) Duration() time.Duration {
	return time.Duration(tv.Microseconds()) * time.Microsecond
}
