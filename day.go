// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"context"
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// SunTimes represents the rise, set and daylight for a single day.
type SunTimes struct {
	Date     CalendarDate
	Zenith   float64
	Rise     TimeOfDay
	Set      TimeOfDay
	Daylight TimeOfDay
}

// Noon returns the time midway between rise and set, truncated to
// whole seconds.
func (st SunTimes) Noon() TimeOfDay {
	return TimeOfDayFromDuration((st.Rise.Duration() + st.Set.Duration()) / 2)
}

func (st SunTimes) String() string {
	return fmt.Sprintf("%v: rise %v, set %v, daylight %v", st.Date, st.Rise, st.Set, st.Daylight)
}

// Day computes the rise, set and daylight for a single date, which along
// with the zenith and timezone, is resolved once and used for both events.
// If either event cannot be computed all of the errors encountered are
// returned.
func Day(ctx context.Context, coords Coordinates, opts ...Option) (SunTimes, error) {
	o := newOptions(opts)
	r, err := o.resolve()
	if err != nil {
		return SunTimes{}, fmt.Errorf("failed to resolve timezone %q: %w", o.timezone, err)
	}
	ctx = ctxlog.WithAttributes(ctx, "date", r.date.String(), "timezone", o.timezone)
	st := SunTimes{Date: r.date, Zenith: r.zenith}
	var errs errors.M
	st.Rise, err = computeEvent(ctx, Rise, coords, r)
	errs.Append(err)
	st.Set, err = computeEvent(ctx, Set, coords, r)
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return st, err
	}
	st.Daylight, err = Daylight(st.Rise, st.Set)
	return st, err
}
