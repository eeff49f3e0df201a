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
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kerncall/kerncall/sched"
)

// flags
var (
	affinityPidFlag  int
	affinityCpusFlag string
)

func init() {
	RootCmd.AddCommand(affinityCmd)
	affinityCmd.Flags().IntVarP(&affinityPidFlag, "pid", "p", 0, "process to inspect, 0 means the calling process")
	affinityCmd.Flags().StringVarP(&affinityCpusFlag, "cpus", "s", "", "comma separated CPU list to pin the process to, empty means read only")
}

var affinityCmd = &cobra.Command{
	Use:   "affinity",
	Short: "Show or change the CPU affinity of a process",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		if affinityCpusFlag != "" {
			set, err := parseCPUList(affinityCpusFlag)
			if err != nil {
				log.Fatal(err)
			}
			if err := sched.SetAffinity(affinityPidFlag, set); err != nil {
				log.Fatalf("setting affinity of pid %d: %v", affinityPidFlag, err)
			}
		}
		var set sched.CPUSet
		if _, err := sched.GetAffinity(affinityPidFlag, &set); err != nil {
			log.Fatalf("reading affinity of pid %d: %v", affinityPidFlag, err)
		}
		fmt.Printf("pid %d may run on %d CPUs: %s\n", affinityPidFlag, set.Count(), formatCPUList(&set))
	},
}

func parseCPUList(s string) (*sched.CPUSet, error) {
	set := &sched.CPUSet{}
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		cpu, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("bad CPU number %q: %w", tok, err)
		}
		if cpu < 0 || cpu >= sched.NumCPUBits {
			return nil, fmt.Errorf("CPU number %d out of range [0, %d)", cpu, sched.NumCPUBits)
		}
		set.Set(cpu)
	}
	if set.Count() == 0 {
		return nil, fmt.Errorf("empty CPU list %q", s)
	}
	return set, nil
}

func formatCPUList(set *sched.CPUSet) string {
	cpus := []string{}
	for i := 0; i < sched.NumCPUBits; i++ {
		if set.IsSet(i) {
			cpus = append(cpus, strconv.Itoa(i))
		}
	}
	return strings.Join(cpus, ",")
}
