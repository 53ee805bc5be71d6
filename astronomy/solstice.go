// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"fmt"
	"time"

	"cloudeng.io/solar"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// JDEToCalendar returns the calendar date, in UTC, of the specified
// Julian ephemeris day.
func JDEToCalendar(jde float64) solar.CalendarDate {
	y, m, d := julian.JDToCalendar(jde)
	return solar.NewCalendarDate(y, time.Month(m), int(d))
}

// December returns the winter solstice (northern hemisphere).
func December(year int) solar.CalendarDate {
	return JDEToCalendar(solstice.December(year))
}

// March returns the vernal/spring equinox (northern hemisphere).
func March(year int) solar.CalendarDate {
	return JDEToCalendar(solstice.March(year))
}

// June returns the summer solstice (northern hemisphere).
func June(year int) solar.CalendarDate {
	return JDEToCalendar(solstice.June(year))
}

// September returns the autumnal equinox (northern hemisphere).
func September(year int) solar.CalendarDate {
	return JDEToCalendar(solstice.September(year))
}

// DateRange represents an inclusive range of dates.
type DateRange struct {
	From, To solar.CalendarDate
}

func (dr DateRange) String() string {
	if dr.From == dr.To {
		return dr.From.String()
	}
	return fmt.Sprintf("%v - %v", dr.From, dr.To)
}

// Contains returns true if cd falls within the range.
func (dr DateRange) Contains(cd solar.CalendarDate) bool {
	return !dr.From.After(cd) && !cd.After(dr.To)
}

// DynamicDateRange is evaluated once per year to calculate events such
// as solstices or seasons.
type DynamicDateRange interface {
	Name() string
	Evaluate(year int) DateRange
}

type event struct {
	name string
	fn   func(int) solar.CalendarDate
}

func (e event) Name() string {
	return e.name
}

func (e event) Evaluate(year int) DateRange {
	cd := e.fn(year)
	return DateRange{From: cd, To: cd}
}

type season struct {
	name     string
	from, to func(int) solar.CalendarDate
	nextYear bool
}

func (s season) Name() string {
	return s.name
}

func (s season) Evaluate(year int) DateRange {
	toYear := year
	if s.nextYear {
		toYear++
	}
	return DateRange{From: s.from(year), To: s.to(toYear)}
}

var (
	SummerSolstice DynamicDateRange = event{"SummerSolstice", June}
	WinterSolstice DynamicDateRange = event{"WinterSolstice", December}
	SpringEquinox  DynamicDateRange = event{"SpringEquinox", March}
	AutumnEquinox  DynamicDateRange = event{"AutumnEquinox", September}

	Spring DynamicDateRange = season{"Spring", March, June, false}
	Summer DynamicDateRange = season{"Summer", June, September, false}
	Autumn DynamicDateRange = season{"Autumn", September, December, false}
	Winter DynamicDateRange = season{"Winter", December, March, true}
)

// Events returns the solstices and equinoxes in calendar order.
func Events() []DynamicDateRange {
	return []DynamicDateRange{SpringEquinox, SummerSolstice, AutumnEquinox, WinterSolstice}
}

// Seasons returns the seasons in calendar order.
func Seasons() []DynamicDateRange {
	return []DynamicDateRange{Spring, Summer, Autumn, Winter}
}
