// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"time"

	"cloudeng.io/solar"
	"github.com/nathan-osman/go-sunrise"
)

// SunRise returns the time of sunrise and sunset for the specified
// date and coordinates. The returned times are in UTC and are zero
// if the sun does not rise or set on that date.
func SunRise(date solar.CalendarDate, coords solar.Coordinates) (rise, set time.Time) {
	return sunrise.SunriseSunset(
		coords.Latitude, coords.Longitude,
		date.Year, date.Month, date.Day)
}

// SunRiseAndSet is like SunRise but returns the times in the location loc.
func SunRiseAndSet(date solar.CalendarDate, coords solar.Coordinates, loc *time.Location) (rise, set time.Time) {
	rise, set = SunRise(date, coords)
	return rise.In(loc), set.In(loc)
}

// ApparentSolarNoon returns the time midway between sunrise and sunset
// in the location loc.
func ApparentSolarNoon(date solar.CalendarDate, coords solar.Coordinates, loc *time.Location) time.Time {
	rise, set := SunRise(date, coords)
	return rise.Add(set.Sub(rise) / 2).In(loc)
}
