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

package main

import (
	"flag"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kerncall/kerncall/exporter"
)

func main() {
	var (
		verboseFlag bool
		configFlag  string
		listenFlag  string
		clocksFlag  string
		intervalFlag time.Duration
	)
	defaults := exporter.DefaultConfig()

	flag.BoolVar(&verboseFlag, "verbose", false, "verbose output")
	flag.StringVar(&configFlag, "config", "", "path to the config")
	flag.StringVar(&listenFlag, "listen", defaults.ListenAddr, "address to serve /metrics on")
	flag.StringVar(&clocksFlag, "clocks", strings.Join(defaults.Clocks, ","), "comma-separated clocks to poll")
	flag.DurationVar(&intervalFlag, "interval", defaults.Interval, "how often to poll the clocks")

	flag.Parse()

	log.SetLevel(log.InfoLevel)
	if verboseFlag {
		log.SetLevel(log.DebugLevel)
	}

	cfg := defaults
	if configFlag != "" {
		var err error
		cfg, err = exporter.ReadConfig(configFlag)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		cfg.ListenAddr = listenFlag
		cfg.Interval = intervalFlag
		cfg.Clocks = strings.Split(clocksFlag, ",")
	}

	e, err := exporter.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	e.Start()
}
