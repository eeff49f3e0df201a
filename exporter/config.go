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

package exporter

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"

	"github.com/kerncall/kerncall/clock"
)

// Config specifies kernexporter run options
type Config struct {
	ListenAddr string        `yaml:"listen_addr"` // address the /metrics endpoint listens on
	Interval   time.Duration `yaml:"interval"`    // how often to poll the clocks
	Clocks     []string      `yaml:"clocks"`      // short clock names, see clock.ClockFromName
}

// DefaultConfig returns the config used when no file and no flags are given
func DefaultConfig() *Config {
	return &Config{
		ListenAddr: ":9977",
		Interval:   10 * time.Second,
		Clocks:     []string{clock.Realtime.String()},
	}
}

// ClockIDs resolves the configured clock names
func (c *Config) ClockIDs() ([]clock.ClockID, error) {
	ids := make([]clock.ClockID, 0, len(c.Clocks))
	for _, name := range c.Clocks {
		id, ok := clock.ClockFromName(name)
		if !ok {
			return nil, fmt.Errorf("unknown clock %q", name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ReadConfig reads config from the file
func ReadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	cData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(cData, &c)
	if err != nil {
		return nil, err
	}

	if _, err := c.ClockIDs(); err != nil {
		return nil, err
	}
	return c, nil
}
