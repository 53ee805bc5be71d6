// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"fmt"
	"strconv"
	"strings"
)

// Zenith angles, in degrees, that define sunrise/sunset and the three
// twilights.
const (
	Astronomical = 108.0
	Nautical     = 102.0
	Civil        = 96.0
	Official     = 90.0 + 50.0/60.0
)

var zeniths = []struct {
	name  string
	value float64
}{
	{"official", Official},
	{"civil", Civil},
	{"nautical", Nautical},
	{"astronomical", Astronomical},
}

// ParseZenith parses either one of the names official, civil, nautical
// or astronomical, or a decimal number of degrees in the range (0, 180).
func ParseZenith(val string) (float64, error) {
	lc := strings.ToLower(strings.TrimSpace(val))
	for _, z := range zeniths {
		if lc == z.name {
			return z.value, nil
		}
	}
	deg, err := strconv.ParseFloat(lc, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid zenith: %q: not a name or number of degrees", val)
	}
	if deg <= 0 || deg >= 180 {
		return 0, fmt.Errorf("invalid zenith: %v: must be between 0 and 180 degrees", deg)
	}
	return deg, nil
}

// ZenithName returns the name of the zenith constant equal to deg, or
// deg formatted as a number if it is not one of them.
func ZenithName(deg float64) string {
	for _, z := range zeniths {
		if z.value == deg {
			return z.name
		}
	}
	return strconv.FormatFloat(deg, 'f', -1, 64)
}
