// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"context"
	"fmt"

	"cloudeng.io/logging/ctxlog"
)

// ComputeEvent returns the local time of day at which the specified event
// occurs at the given coordinates. The date, zenith and timezone are
// specified via options. An error wrapping ErrInvalidEventType is returned
// for an invalid event and a *NoEventError, for which errors.Is
// ErrSunNeverCrossesZenith is true, is returned when the sun does not
// cross the zenith on that date. Errors returned by the timezone Resolver
// are returned wrapped.
func ComputeEvent(ctx context.Context, event Event, coords Coordinates, opts ...Option) (TimeOfDay, error) {
	if !event.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrInvalidEventType, event)
	}
	o := newOptions(opts)
	r, err := o.resolve()
	if err != nil {
		return 0, fmt.Errorf("failed to resolve timezone %q: %w", o.timezone, err)
	}
	ctx = ctxlog.WithAttributes(ctx, "date", r.date.String(), "timezone", o.timezone)
	return computeEvent(ctx, event, coords, r)
}

func computeEvent(ctx context.Context, event Event, coords Coordinates, r resolved) (TimeOfDay, error) {
	c, err := newComputation(event, coords, r).run(ctx)
	if err != nil {
		return 0, err
	}
	return TimeOfDayFromHours(c.get(localTime)), nil
}

func newComputation(event Event, coords Coordinates, r resolved) computation {
	return computation{
		event:       event,
		zenith:      r.zenith,
		coordinates: coords,
		date:        r.date,
		utcOffset:   r.utcOffset,
	}
}
