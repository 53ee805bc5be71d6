// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"fmt"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
	"gopkg.in/yaml.v3"
)

// CalendarDate represents a date in the local civil calendar, that is,
// the calendar of the timezone the event is being computed for and
// not necessarily that of UTC.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate returns a CalendarDate for the specified year, month and day.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// CalendarDateFromTime returns the CalendarDate of t in t's location.
func CalendarDateFromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// ParseCalendarDate parses a date in the format 2006-01-02.
func ParseCalendarDate(val string) (CalendarDate, error) {
	t, err := time.Parse(time.DateOnly, val)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q, expected format '2006-01-02'", val)
	}
	return CalendarDateFromTime(t), nil
}

// Parse parses val as per ParseCalendarDate.
func (cd *CalendarDate) Parse(val string) error {
	d, err := ParseCalendarDate(val)
	if err != nil {
		return err
	}
	*cd = d
	return nil
}

func (cd *CalendarDate) UnmarshalYAML(node *yaml.Node) error {
	return cd.Parse(node.Value)
}

// IsSet returns true if the year, month and day are all set.
func (cd CalendarDate) IsSet() bool {
	return cd.Year != 0 && cd.Month != 0 && cd.Day != 0
}

// YearDay returns the ordinal day of the year, 1 for January 1st.
func (cd CalendarDate) YearDay() int {
	return julian.DayOfYearGregorian(cd.Year, int(cd.Month), cd.Day)
}

// Time returns the time.Time for the date and time of day in the
// specified location.
func (cd CalendarDate) Time(tod TimeOfDay, loc *time.Location) time.Time {
	return time.Date(cd.Year, cd.Month, cd.Day, tod.Hour(), tod.Minute(), tod.Second(), 0, loc)
}

// Next returns the following day.
func (cd CalendarDate) Next() CalendarDate {
	return CalendarDateFromTime(time.Date(cd.Year, cd.Month, cd.Day+1, 0, 0, 0, 0, time.UTC))
}

// After returns true if cd is later than d.
func (cd CalendarDate) After(d CalendarDate) bool {
	if cd.Year != d.Year {
		return cd.Year > d.Year
	}
	if cd.Month != d.Month {
		return cd.Month > d.Month
	}
	return cd.Day > d.Day
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}
