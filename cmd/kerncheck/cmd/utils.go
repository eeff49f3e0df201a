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
	"strings"

	"github.com/kerncall/kerncall/clock"
)

func clockNames() []string {
	names := make([]string, 0, len(clock.ClockIDs))
	for _, c := range clock.ClockIDs {
		names = append(names, c.String())
	}
	return names
}

func parseClock(name string) (clock.ClockID, error) {
	c, ok := clock.ClockFromName(name)
	if !ok {
		return 0, fmt.Errorf("unknown clock %q, supported clocks: %s",
			name, strings.Join(clockNames(), ", "))
	}
	return c, nil
}

func stateName(state int) string {
	switch state {
	case clock.TimeOK:
		return "TIME_OK"
	case clock.TimeIns:
		return "TIME_INS"
	case clock.TimeDel:
		return "TIME_DEL"
	case clock.TimeOOP:
		return "TIME_OOP"
	case clock.TimeWait:
		return "TIME_WAIT"
	case clock.TimeError:
		return "TIME_ERROR"
	}
	return fmt.Sprintf("state %d", state)
}
