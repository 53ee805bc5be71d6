// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrInvalidEventType is returned when the requested event is
	// neither Rise nor Set.
	ErrInvalidEventType = errors.New("invalid event type")

	// ErrSunNeverCrossesZenith is returned when the sun does not cross
	// the requested zenith on the requested date at the requested
	// latitude, ie. for polar day or night.
	ErrSunNeverCrossesZenith = errors.New("sun never crosses zenith")

	// ErrSetBeforeRise is returned by Daylight when the set time
	// precedes the rise time.
	ErrSetBeforeRise = errors.New("set time is before rise time")
)

// NoEventError records the details of a calculation for which the sun
// never crosses the zenith. errors.Is(err, ErrSunNeverCrossesZenith) is
// true for a NoEventError.
type NoEventError struct {
	Event        Event
	Coordinates  Coordinates
	Date         CalendarDate
	Zenith       float64
	CosHourAngle float64
}

func (e *NoEventError) Error() string {
	return fmt.Sprintf("%v: no sun%v at %v on %v for zenith %v (cos(hour angle) = %.6f)",
		ErrSunNeverCrossesZenith, e.Event, e.Coordinates, e.Date, ZenithName(e.Zenith), e.CosHourAngle)
}

// Is supports errors.Is.
func (e *NoEventError) Is(target error) bool {
	return target == ErrSunNeverCrossesZenith
}

// PolarDay returns true if the sun remains above the zenith all day.
func (e *NoEventError) PolarDay() bool {
	return e.CosHourAngle < -1
}

// PolarNight returns true if the sun remains below the zenith all day.
func (e *NoEventError) PolarNight() bool {
	return e.CosHourAngle > 1
}
