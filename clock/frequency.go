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

import (
	"fmt"
	"time"
)

// PPBToTimexPPM is what we use to convert PPB to PPM.
// man clock_adjtime(2):
// In struct timex, freq, ppsfreq, and stabil are ppm (parts per million) with a 16-bit fractional part.
// To convert value where 2^16=65536 is 1 ppm to ppb or back, we need this multiplier
const PPBToTimexPPM = 65.536

// FrequencyPPB reads the clock frequency in PPB
func FrequencyPPB(clock ClockID) (freqPPB float64, state int, err error) {
	tx := &Timex{}
	state, err = Adjtime(clock, tx)
	// man(2) clock_adjtime
	freqPPB = float64(tx.Freq) / PPBToTimexPPM
	return freqPPB, state, err
}

// AdjFreqPPB adjusts the clock frequency in PPB
func AdjFreqPPB(clock ClockID, freqPPB float64) (state int, err error) {
	tx := &Timex{
		Modes: AdjFrequency,
		// man(2) clock_adjtime, turn ppb to ppm
		Freq: int64(freqPPB * PPBToTimexPPM),
	}
	return Adjtime(clock, tx)
}

// Step steps the clock by given step
func Step(clock ClockID, step time.Duration) (state int, err error) {
	sign := 1
	if step < 0 {
		sign = -1
		step = step * -1
	}
	tx := &Timex{
		Modes: AdjSetOffset | AdjNano,
		Time: Timeval{
			Sec: int64(sign) * int64(step/time.Second),
			// with AdjNano the Usec field carries nanoseconds
			Usec: int64(sign) * int64(step%time.Second),
		},
	}
	/*
	 * The value of a timeval is the sum of its fields, but the
	 * field tv_usec must always be non-negative.
	 */
	if tx.Time.Usec < 0 {
		tx.Time.Sec--
		tx.Time.Usec += 1000000000
	}
	return Adjtime(clock, tx)
}

// MaxFreqPPB returns maximum frequency adjustment supported by the clock
func MaxFreqPPB(clock ClockID) (freqPPB float64, state int, err error) {
	tx := &Timex{}
	state, err = Adjtime(clock, tx)
	if err != nil {
		return 0.0, state, err
	}
	// man(2) clock_adjtime
	freqPPB = float64(tx.Tolerance) / PPBToTimexPPM
	if freqPPB == 0 {
		freqPPB = 500000
	}
	return freqPPB, state, nil
}

// SetSync sets clock status to TIME_OK
func SetSync(clock ClockID) error {
	tx := &Timex{Modes: AdjStatus | AdjMaxError}
	state, err := Adjtime(clock, tx)

	if err == nil && state != TimeOK {
		return fmt.Errorf("clock state %d is not TIME_OK after setting sync state", state)
	}
	return err
}
