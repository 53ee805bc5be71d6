// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import "fmt"

// Daylight returns the time elapsed between rise and set expressed as
// hours, minutes and seconds. Both times
// must fall on the same day with set no earlier than rise, otherwise
// an error wrapping ErrSetBeforeRise is returned.
func Daylight(rise, set TimeOfDay) (TimeOfDay, error) {
	if set.Before(rise) {
		return 0, fmt.Errorf("%w: rise %v, set %v", ErrSetBeforeRise, rise, set)
	}
	return TimeOfDayFromDuration(set.Duration() - rise.Duration()), nil
}
