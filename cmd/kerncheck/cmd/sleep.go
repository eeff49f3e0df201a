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

package cmd

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/kerncall/kerncall/clock"
)

// flags
var (
	sleepClockFlag    string
	sleepDurationFlag time.Duration
	sleepAbsoluteFlag bool
)

func init() {
	RootCmd.AddCommand(sleepCmd)
	sleepCmd.Flags().StringVarP(&sleepClockFlag, "clock", "c", clock.Monotonic.String(), "clock to sleep against")
	sleepCmd.Flags().DurationVarP(&sleepDurationFlag, "duration", "d", time.Second, "how long to sleep")
	sleepCmd.Flags().BoolVarP(&sleepAbsoluteFlag, "absolute", "A", false, "sleep until now+duration as an absolute deadline")
}

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "High resolution sleep on a chosen kernel clock",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		c, err := parseClock(sleepClockFlag)
		if err != nil {
			log.Fatal(err)
		}
		if err := doSleep(c, sleepDurationFlag, sleepAbsoluteFlag); err != nil {
			log.Fatal(err)
		}
	},
}

func doSleep(c clock.ClockID, d time.Duration, absolute bool) error {
	req := clock.DurationToTimespec(d)
	if absolute {
		now, err := clock.Gettime(c)
		if err != nil {
			return fmt.Errorf("reading clock %s: %w", c, err)
		}
		deadline := now.Add(req)
		log.Debugf("sleeping on %s until %d.%09d", c, deadline.Sec, deadline.Nsec)
		if err := clock.NanosleepAbsolute(c, deadline); err != nil {
			return fmt.Errorf("absolute sleep on %s: %w", c, err)
		}
		fmt.Printf("slept until %d.%09d on clock %s\n", deadline.Sec, deadline.Nsec, c)
		return nil
	}
	log.Debugf("sleeping on %s for %v", c, d)
	remain, err := clock.NanosleepRelativeRemain(c, req)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			fmt.Printf("interrupted with %v left to sleep\n", remain.Duration())
			return nil
		}
		return fmt.Errorf("relative sleep on %s: %w", c, err)
	}
	fmt.Printf("slept %v on clock %s\n", d, c)
	return nil
}
