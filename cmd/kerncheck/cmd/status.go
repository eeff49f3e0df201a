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

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kerncall/kerncall/clock"
)

// flags
var statusClockFlag string

func init() {
	RootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVarP(&statusClockFlag, "clock", "c", clock.Realtime.String(), "clock to read")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the clock discipline state as reported by CLOCK_ADJTIME",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		if err := printStatus(statusClockFlag); err != nil {
			log.Fatal(err)
		}
	},
}

func printStatus(clockName string) error {
	c, err := parseClock(clockName)
	if err != nil {
		return err
	}
	tx := &clock.Timex{}
	state, err := clock.Adjtime(c, tx)
	if err != nil {
		return fmt.Errorf("reading clock %s discipline state: %w", c, err)
	}

	stateColor := color.New(color.FgRed)
	switch state {
	case clock.TimeOK:
		stateColor = color.New(color.FgGreen)
	case clock.TimeIns, clock.TimeDel, clock.TimeOOP, clock.TimeWait:
		stateColor = color.New(color.FgYellow)
	}
	fmt.Printf("clock: %s\n", c)
	fmt.Printf("state: %s\n", stateColor.Sprint(stateName(state)))
	fmt.Printf("status: %s\n", tx.Status)

	unit := "us"
	if tx.Status.Has(clock.StatusNano) {
		unit = "ns"
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"field", "value"})
	table.Append([]string{"offset (" + unit + ")", fmt.Sprintf("%d", tx.Offset)})
	table.Append([]string{"frequency (ppb)", fmt.Sprintf("%.3f", float64(tx.Freq)/clock.PPBToTimexPPM)})
	table.Append([]string{"max error (us)", fmt.Sprintf("%d", tx.Maxerror)})
	table.Append([]string{"est error (us)", fmt.Sprintf("%d", tx.Esterror)})
	table.Append([]string{"pll constant", fmt.Sprintf("%d", tx.Constant)})
	table.Append([]string{"precision (us)", fmt.Sprintf("%d", tx.Precision)})
	table.Append([]string{"tolerance", fmt.Sprintf("%d", tx.Tolerance)})
	table.Append([]string{"tick (us)", fmt.Sprintf("%d", tx.Tick)})
	table.Append([]string{"time", fmt.Sprintf("%d.%06d", tx.Time.Sec, tx.Time.Usec)})
	table.Append([]string{"tai offset (s)", fmt.Sprintf("%d", tx.Tai)})
	table.Append([]string{"pps frequency", fmt.Sprintf("%d", tx.Ppsfreq)})
	table.Append([]string{"pps jitter", fmt.Sprintf("%d", tx.Jitter)})
	table.Append([]string{"pps shift (s)", fmt.Sprintf("%d", tx.Shift)})
	table.Append([]string{"pps stability", fmt.Sprintf("%d", tx.Stabil)})
	table.Render()
	return nil
}
