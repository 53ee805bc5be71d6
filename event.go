// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Event represents the solar event to be computed. The zero value is
// not a valid event.
type Event int

const (
	Rise Event = iota + 1
	Set
)

// Valid returns true if e is one of Rise or Set.
func (e Event) Valid() bool {
	return e == Rise || e == Set
}

func (e Event) String() string {
	switch e {
	case Rise:
		return "rise"
	case Set:
		return "set"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// approximateHour returns the hour of the day around which the event
// is expected to occur.
func (e Event) approximateHour() float64 {
	if e == Rise {
		return 6.0
	}
	return 18.0
}

// ParseEvent parses an event name, one of rise, sunrise, set or sunset,
// in either lower or upper case.
func ParseEvent(val string) (Event, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "rise", "sunrise":
		return Rise, nil
	case "set", "sunset":
		return Set, nil
	}
	return 0, fmt.Errorf("%w: %q, expected rise or set", ErrInvalidEventType, val)
}

// Parse parses val as per ParseEvent.
func (e *Event) Parse(val string) error {
	ev, err := ParseEvent(val)
	if err != nil {
		return err
	}
	*e = ev
	return nil
}

func (e *Event) UnmarshalYAML(node *yaml.Node) error {
	return e.Parse(node.Value)
}
