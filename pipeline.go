// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"context"
	"fmt"
	"math"
	"math/bits"
	"time"

	"cloudeng.io/logging/ctxlog"
)

// quantity identifies one of the values derived by the calculation.
type quantity uint16

const (
	baseLongitudeHour quantity = 1 << iota
	longitudeHour
	meanAnomaly
	sunTrueLongitude
	cosSunLocalHour
	sunLocalHour
	rightAscension
	localMeanTime
	localTime
)

// computation carries the inputs to, and the quantities derived by, a
// single calculation. It is passed by value from stage to stage and each
// stage returns a copy with exactly one more quantity assigned.
type computation struct {
	event       Event
	zenith      float64
	coordinates Coordinates
	date        CalendarDate
	utcOffset   time.Duration

	assigned quantity
	values   [9]float64
}

func index(q quantity) int {
	return bits.TrailingZeros16(uint16(q))
}

func (c computation) has(q quantity) bool {
	return c.assigned&q == q
}

// get returns the value of q, which must already have been assigned.
func (c computation) get(q quantity) float64 {
	return c.values[index(q)]
}

func (c computation) with(q quantity, v float64) computation {
	c.values[index(q)] = v
	c.assigned |= q
	return c
}

// stage derives the quantity named by writes from those named by reads.
type stage struct {
	name   string
	reads  quantity
	writes quantity
	derive func(c computation) (float64, error)
}

// stages lists the derivation steps in the order in which they must
// be run.
var stages = []stage{
	{"base longitude hour", 0, baseLongitudeHour, deriveBaseLongitudeHour},
	{"longitude hour", 0, longitudeHour, deriveLongitudeHour},
	{"mean anomaly", longitudeHour, meanAnomaly, deriveMeanAnomaly},
	{"sun true longitude", meanAnomaly, sunTrueLongitude, deriveSunTrueLongitude},
	{"cos sun local hour", sunTrueLongitude, cosSunLocalHour, deriveCosSunLocalHour},
	{"sun local hour", cosSunLocalHour, sunLocalHour, deriveSunLocalHour},
	{"right ascension", sunTrueLongitude, rightAscension, deriveRightAscension},
	{"local mean time", sunLocalHour | rightAscension | longitudeHour, localMeanTime, deriveLocalMeanTime},
	{"local time", localMeanTime | baseLongitudeHour, localTime, deriveLocalTime},
}

// run applies each stage in turn, returning the first error encountered.
func (c computation) run(ctx context.Context) (computation, error) {
	logger := ctxlog.Logger(ctx)
	for _, s := range stages {
		if !c.has(s.reads) {
			return c, fmt.Errorf("solar: stage %q run before its inputs were derived", s.name)
		}
		if c.assigned&s.writes != 0 {
			return c, fmt.Errorf("solar: stage %q would overwrite a derived value", s.name)
		}
		v, err := s.derive(c)
		if err != nil {
			return c, err
		}
		c = c.with(s.writes, v)
		logger.Debug("solar stage", "event", c.event.String(), "stage", s.name, "value", v)
	}
	return c, nil
}

func deriveBaseLongitudeHour(c computation) (float64, error) {
	return c.coordinates.Longitude / 15.0, nil
}

func deriveLongitudeHour(c computation) (float64, error) {
	day := float64(c.date.YearDay())
	return day + ((c.event.approximateHour() - c.coordinates.Longitude/15.0) / 24.0), nil
}

func deriveMeanAnomaly(c computation) (float64, error) {
	return c.get(longitudeHour)*0.9856 - 3.289, nil
}

func deriveSunTrueLongitude(c computation) (float64, error) {
	m := c.get(meanAnomaly)
	l := m + 1.916*sinDeg(m) + 0.020*sinDeg(2*m) + 282.634
	return normalizeDegrees(l), nil
}

func deriveCosSunLocalHour(c computation) (float64, error) {
	sinDec := sinDeg(c.get(sunTrueLongitude)) * 0.39782
	cosDec := cosDeg(asinDeg(sinDec))
	lat := c.coordinates.Latitude
	cosH := (cosDeg(c.zenith) - sinDec*sinDeg(lat)) / (cosDec * cosDeg(lat))
	if cosH < -1 || cosH > 1 {
		return 0, &NoEventError{
			Event:        c.event,
			Coordinates:  c.coordinates,
			Date:         c.date,
			Zenith:       c.zenith,
			CosHourAngle: cosH,
		}
	}
	return cosH, nil
}

func deriveSunLocalHour(c computation) (float64, error) {
	h := acosDeg(c.get(cosSunLocalHour))
	if c.event == Rise {
		h = 360 - h
	}
	return h / 15, nil
}

// deriveRightAscension returns the right ascension in degrees. atan2
// places it in the same quadrant as the sun's true longitude, including
// at the quadrant boundaries where tan is unbounded.
func deriveRightAscension(c computation) (float64, error) {
	l := c.get(sunTrueLongitude)
	return normalizeDegrees(atan2Deg(0.91764*sinDeg(l), cosDeg(l))), nil
}

func deriveLocalMeanTime(c computation) (float64, error) {
	t := c.get(sunLocalHour) + c.get(rightAscension)/15 - 0.06571*c.get(longitudeHour) - 6.622
	return normalizeHours(t), nil
}

// deriveLocalTime converts local mean time to UTC and then to the civil
// time of the requested timezone. Timezones whose offset differs greatly
// from their longitude, such as those adjacent to the date line, may need
// more than one day's correction.
func deriveLocalTime(c computation) (float64, error) {
	ut := c.get(localMeanTime) - c.get(baseLongitudeHour)
	return normalizeHours(math.Mod(ut+c.utcOffset.Hours(), 24)), nil
}
