// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package solar computes sunrise, sunset and twilight times for a given
// location, calendar date and timezone using the Julian day based solar
// position approximation published in the Almanac for Computers.
//
//	rise, err := solar.ComputeEvent(ctx, solar.Rise,
//	    solar.Coordinates{Latitude: 39.1371, Longitude: -88.65},
//	    solar.WithDate(solar.NewCalendarDate(2012, 12, 25)),
//	    solar.WithTimezone("America/Chicago"))
//
// The calculation is a fixed sequence of stages, each of which derives
// exactly one quantity from those computed before it. A failure at any
// stage, such as the sun not crossing the requested zenith at polar
// latitudes, ends the calculation and is returned as an error that can
// be tested for with errors.Is.
//
// Options that are not specified default to the current date, the
// Official zenith and the local system timezone. Defaults are resolved
// once, before the calculation starts, so the calculation itself never
// consults the system clock or timezone.
package solar
