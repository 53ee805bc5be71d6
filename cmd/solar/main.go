// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command solar computes the times of sunrise and sunset, the duration
// of daylight and the dates of the solstices and equinoxes.
package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

const commands = `name: solar
summary: compute sunrise, sunset and related times for a location
commands:
  - name: event
    summary: print the local time of sunrise or sunset
    arguments:
      - <rise|set>
  - name: day
    summary: print the times of sunrise, solar noon and sunset and the duration of daylight
  - name: year
    summary: print the times of sunrise and sunset for every day of a year
    arguments:
      - <year>
  - name: solstice
    summary: print the dates of the solstices and equinoxes for a year
    arguments:
      - <year>
  - name: locations
    summary: list the locations defined in the config file
`

func cli() *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(commands)
	cmdSet.Set("event").MustRunnerAndFlags(eventCmd,
		subcmd.MustRegisteredFlagSet(&eventFlags{}))
	cmdSet.Set("day").MustRunnerAndFlags(dayCmd,
		subcmd.MustRegisteredFlagSet(&dayFlags{}))
	cmdSet.Set("year").MustRunnerAndFlags(yearCmd,
		subcmd.MustRegisteredFlagSet(&yearFlags{}))
	cmdSet.Set("solstice").MustRunnerAndFlags(solsticeCmd,
		subcmd.MustRegisteredFlagSet(&solsticeFlags{}))
	cmdSet.Set("locations").MustRunnerAndFlags(locationsCmd,
		subcmd.MustRegisteredFlagSet(&locationsFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), cli())
}
