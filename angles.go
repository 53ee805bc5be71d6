// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"math"

	"github.com/soniakeys/unit"
)

// The almanac formulae are expressed in degrees.

func sinDeg(deg float64) float64 {
	return unit.AngleFromDeg(deg).Sin()
}

func cosDeg(deg float64) float64 {
	return unit.AngleFromDeg(deg).Cos()
}

func tanDeg(deg float64) float64 {
	return unit.AngleFromDeg(deg).Tan()
}

func asinDeg(x float64) float64 {
	return unit.Angle(math.Asin(x)).Deg()
}

func acosDeg(x float64) float64 {
	return unit.Angle(math.Acos(x)).Deg()
}

func atanDeg(x float64) float64 {
	return unit.Angle(math.Atan(x)).Deg()
}

func atan2Deg(y, x float64) float64 {
	return unit.Angle(math.Atan2(y, x)).Deg()
}

// normalizeDegrees applies a single correction of 360 degrees, which
// is sufficient for every angle derived by the calculation.
func normalizeDegrees(deg float64) float64 {
	return normalize(deg, 360)
}

// normalizeHours is normalizeDegrees for hours of the day.
func normalizeHours(hours float64) float64 {
	return normalize(hours, 24)
}

// normalize returns v in [0, period). A tiny negative v plus period
// rounds to period itself and is returned as 0.
func normalize(v, period float64) float64 {
	switch {
	case v >= period:
		v -= period
	case v < 0:
		v += period
	}
	if v >= period {
		return 0
	}
	return v
}
