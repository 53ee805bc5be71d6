// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"time"

	"cloudeng.io/solar/timezone"
	"github.com/jonboulle/clockwork"
)

// Option represents an option to ComputeEvent and Day.
type Option func(o *options)

type options struct {
	date     CalendarDate
	zenith   float64
	timezone string
	resolver timezone.Resolver
	clock    clockwork.Clock
}

// WithDate specifies the local calendar date for the event. The default
// is the current date in the requested timezone.
func WithDate(cd CalendarDate) Option {
	return func(o *options) {
		o.date = cd
	}
}

// WithZenith specifies the zenith, in degrees, that the sun must cross
// for the event. The default is Official.
func WithZenith(deg float64) Option {
	return func(o *options) {
		o.zenith = deg
	}
}

// WithTimezone specifies the timezone, as understood by the Resolver,
// that the returned time of day is expressed in. The default is
// timezone.Local.
func WithTimezone(id string) Option {
	return func(o *options) {
		o.timezone = id
	}
}

// WithResolver specifies the Resolver used to determine the UTC offset
// for the timezone. The default is timezone.Default.
func WithResolver(r timezone.Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithClock specifies the clock used to determine the current date when
// no date is given via WithDate.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func newOptions(opts []Option) options {
	o := options{
		zenith:   Official,
		timezone: timezone.Local,
		resolver: timezone.Default,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.clock == nil {
		o.clock = clockwork.NewRealClock()
	}
	return o
}

// resolveDate returns the requested date, or if none was requested, the
// current date in the requested timezone.
func (o options) resolveDate() (CalendarDate, error) {
	if o.date.IsSet() {
		return o.date, nil
	}
	now := o.clock.Now().UTC()
	offset, err := o.resolver.Offset(o.timezone, now.Year(), now.Month(), now.Day())
	if err != nil {
		return CalendarDate{}, err
	}
	return CalendarDateFromTime(now.Add(offset)), nil
}

// resolved holds the values of all options, including defaults, for
// a single date.
type resolved struct {
	date      CalendarDate
	zenith    float64
	utcOffset time.Duration
}

func (o options) resolve() (resolved, error) {
	date, err := o.resolveDate()
	if err != nil {
		return resolved{}, err
	}
	offset, err := o.resolver.Offset(o.timezone, date.Year, date.Month, date.Day)
	if err != nil {
		return resolved{}, err
	}
	return resolved{date: date, zenith: o.zenith, utcOffset: offset}, nil
}
