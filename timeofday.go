// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// TimeOfDay represents a time of day with one second resolution.
type TimeOfDay uint32

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute and second.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour<<16 | minute<<8 | second)
}

// TimeOfDayFromHours converts a fractional number of hours in the range
// [0, 24) to a TimeOfDay. The hour, minute and second are each obtained
// by truncation, not rounding, so that 7.999999 is 07:59:59.
func TimeOfDayFromHours(hours float64) TimeOfDay {
	hour := int(hours)
	minutes := (hours - float64(hour)) * 60
	minute := int(minutes)
	second := int((minutes - float64(minute)) * 60)
	return NewTimeOfDay(hour, minute, second)
}

// TimeOfDayFromDuration returns the TimeOfDay that is d after midnight,
// truncated to whole seconds. d must be in the range [0, 24h).
func TimeOfDayFromDuration(d time.Duration) TimeOfDay {
	secs := int(d / time.Second)
	return NewTimeOfDay(secs/3600, secs%3600/60, secs%60)
}

// TimeOfDayFromTime returns a TimeOfDay from the specified time.Time.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) Hour() int {
	return int(t >> 16)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t TimeOfDay) Second() int {
	return int(t & 0xff)
}

// Hours returns the time of day as a fractional number of hours since
// midnight.
func (t TimeOfDay) Hours() float64 {
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
}

// Duration returns the time.Duration since midnight for the TimeOfDay.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second
}

// Before returns true if t is before t2.
func (t TimeOfDay) Before(t2 TimeOfDay) bool {
	return t < t2
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func parseField(name, val string, limit int) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 || n > limit {
		return 0, fmt.Errorf("invalid %s: %s", name, val)
	}
	return n, nil
}

// Parse val in formats '08:12[:10]'.
func (t *TimeOfDay) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected '08:12[:10]'")
	}
	parts := strings.Split(strings.TrimSpace(val), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("invalid format, expected '08:12[:10]'")
	}
	hour, err := parseField("hour", parts[0], 23)
	if err != nil {
		return err
	}
	minute, err := parseField("minute", parts[1], 59)
	if err != nil {
		return err
	}
	second := 0
	if len(parts) == 3 {
		if second, err = parseField("second", parts[2], 59); err != nil {
			return err
		}
	}
	*t = NewTimeOfDay(hour, minute, second)
	return nil
}

func (t *TimeOfDay) UnmarshalYAML(node *yaml.Node) error {
	return t.Parse(node.Value)
}
