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

	"github.com/prometheus/procfs"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kerncall/kerncall/mman"
)

// flags
var (
	mlockFutureFlag  bool
	mlockOnFaultFlag bool
)

func init() {
	RootCmd.AddCommand(mlockCmd)
	mlockCmd.Flags().BoolVarP(&mlockFutureFlag, "future", "f", false, "also lock mappings created after the call")
	mlockCmd.Flags().BoolVarP(&mlockOnFaultFlag, "onfault", "F", false, "lock pages as they are faulted in instead of up front")
}

var mlockCmd = &cobra.Command{
	Use:   "mlock",
	Short: "Lock the process address space and report locked memory",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		flags := mman.MclCurrent
		if mlockFutureFlag {
			flags |= mman.MclFuture
		}
		if mlockOnFaultFlag {
			flags |= mman.MclOnfault
		}
		before, err := lockedBytes()
		if err != nil {
			log.Fatal(err)
		}
		if err := mman.Mlockall(flags); err != nil {
			log.Fatalf("locking address space with flags %#x: %v", int(flags), err)
		}
		after, err := lockedBytes()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("locked memory: %d bytes before, %d bytes after\n", before, after)
		if err := mman.Munlockall(); err != nil {
			log.Fatalf("unlocking address space: %v", err)
		}
	},
}

// lockedBytes reads VmLck of the calling process from procfs.
func lockedBytes() (uint64, error) {
	proc, err := procfs.Self()
	if err != nil {
		return 0, fmt.Errorf("opening procfs: %w", err)
	}
	status, err := proc.NewStatus()
	if err != nil {
		return 0, fmt.Errorf("reading process status: %w", err)
	}
	return status.VmLck, nil
}
