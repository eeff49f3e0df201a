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
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kerncall/kerncall/clock"
)

// flags
var (
	gettimeClockFlag string
	gettimeAllFlag   bool
)

func init() {
	RootCmd.AddCommand(gettimeCmd)
	gettimeCmd.Flags().StringVarP(&gettimeClockFlag, "clock", "c", clock.Realtime.String(), "clock to read")
	gettimeCmd.Flags().BoolVarP(&gettimeAllFlag, "all", "a", false, "read every clock the kernel knows about")
}

var gettimeCmd = &cobra.Command{
	Use:   "gettime",
	Short: "Read one or all kernel clocks",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		clocks := []clock.ClockID{}
		if gettimeAllFlag {
			clocks = clock.ClockIDs
		} else {
			c, err := parseClock(gettimeClockFlag)
			if err != nil {
				log.Fatal(err)
			}
			clocks = append(clocks, c)
		}
		if err := printTimes(clocks); err != nil {
			log.Fatal(err)
		}
	},
}

// wallClock reports whether the clock reading is an epoch timestamp rather
// than an interval since boot or CPU time consumed.
func wallClock(c clock.ClockID) bool {
	switch c {
	case clock.Realtime, clock.RealtimeAlarm, clock.RealtimeCoarse, clock.TAI:
		return true
	}
	return false
}

func printTimes(clocks []clock.ClockID) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"clock", "id", "reading", "wall time"})
	for _, c := range clocks {
		ts, err := clock.Gettime(c)
		if err != nil {
			return fmt.Errorf("reading clock %s: %w", c, err)
		}
		wall := ""
		if wallClock(c) {
			wall = time.Unix(ts.Sec, ts.Nsec).UTC().Format(time.RFC3339Nano)
		}
		table.Append([]string{
			c.String(),
			fmt.Sprintf("%d", c.Raw()),
			fmt.Sprintf("%d.%09d", ts.Sec, ts.Nsec),
			wall,
		})
	}
	table.Render()
	return nil
}
