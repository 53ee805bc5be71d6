// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinates represents a location in decimal degrees. Latitudes south
// of the equator and longitudes west of Greenwich are negative.
type Coordinates struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// ParseCoordinates parses a latitude and longitude pair of the form
// '39.1371,-88.65'.
func ParseCoordinates(val string) (Coordinates, error) {
	parts := strings.Split(val, ",")
	if len(parts) != 2 {
		return Coordinates{}, fmt.Errorf("invalid coordinates %q, expected '<latitude>,<longitude>'", val)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid latitude: %v: %v", parts[0], err)
	}
	long, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid longitude: %v: %v", parts[1], err)
	}
	c := Coordinates{Latitude: lat, Longitude: long}
	return c, c.Validate()
}

// Validate returns an error if the latitude or longitude is out of range.
func (c Coordinates) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude out of range: %v", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude out of range: %v", c.Longitude)
	}
	return nil
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}
