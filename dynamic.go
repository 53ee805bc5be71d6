// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"context"
	"strings"

	"cloudeng.io/errors"
)

// Place represents a location, its timezone and the zenith to be used
// for events computed for it.
type Place struct {
	Name        string  `yaml:"name"`
	Coordinates `yaml:",inline"`
	Timezone    string  `yaml:"timezone"`
	Zenith      float64 `yaml:"zenith"`
}

// Options returns the options to use for the place on the specified date.
func (p Place) Options(cd CalendarDate) []Option {
	opts := []Option{WithDate(cd), WithTimezone(p.Timezone)}
	if p.Zenith != 0 {
		opts = append(opts, WithZenith(p.Zenith))
	}
	return opts
}

// DynamicTimeOfDay is evaluated once per day to calculate a time of day
// that varies from day to day, such as sunrise or sunset.
type DynamicTimeOfDay interface {
	Name() string
	Evaluate(ctx context.Context, cd CalendarDate, place Place) (TimeOfDay, error)
}

// Sunrise implements DynamicTimeOfDay for the sun crossing the place's
// zenith in the morning.
type Sunrise struct{}

func (s Sunrise) Name() string {
	return "Sunrise"
}

func (s Sunrise) Evaluate(ctx context.Context, cd CalendarDate, place Place) (TimeOfDay, error) {
	return ComputeEvent(ctx, Rise, place.Coordinates, place.Options(cd)...)
}

// Sunset implements DynamicTimeOfDay for the sun crossing the place's
// zenith in the evening.
type Sunset struct{}

func (s Sunset) Name() string {
	return "Sunset"
}

func (s Sunset) Evaluate(ctx context.Context, cd CalendarDate, place Place) (TimeOfDay, error) {
	return ComputeEvent(ctx, Set, place.Coordinates, place.Options(cd)...)
}

// SolarNoon implements DynamicTimeOfDay for the time midway between
// sunrise and sunset.
type SolarNoon struct{}

func (s SolarNoon) Name() string {
	return "SolarNoon"
}

func (s SolarNoon) Evaluate(ctx context.Context, cd CalendarDate, place Place) (TimeOfDay, error) {
	st, err := Day(ctx, place.Coordinates, place.Options(cd)...)
	if err != nil {
		return 0, err
	}
	return st.Noon(), nil
}

type DynamicTimeOfDayList []DynamicTimeOfDay

func (dl DynamicTimeOfDayList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.Name())
	}
	return out.String()
}

// Evaluate evaluates each DynamicTimeOfDay for the specified date and
// place. The returned slice has an entry for every member of the list,
// those that failed are zero and their errors are collected in the
// returned error.
func (dl DynamicTimeOfDayList) Evaluate(ctx context.Context, cd CalendarDate, place Place) ([]TimeOfDay, error) {
	result := make([]TimeOfDay, len(dl))
	var errs errors.M
	for i, d := range dl {
		tod, err := d.Evaluate(ctx, cd, place)
		if err != nil {
			errs.Append(errors.Annotate(d.Name(), err))
			continue
		}
		result[i] = tod
	}
	return result, errs.Err()
}
