// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package timezone resolves timezone identifiers to the UTC offset in
// effect on a given calendar date, taking daylight saving time into
// account. The timezone database is embedded so that results do not
// depend on the host's copy of it.
package timezone

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"

	"cloudeng.io/errors"
)

// ErrUnknownTimezone is returned for identifiers that cannot be resolved.
var ErrUnknownTimezone = errors.New("unknown timezone")

// Local is the identifier for the system's local timezone. The empty
// string is treated as Local.
const Local = "Local"

// Resolver returns the offset from UTC that applies in the timezone
// identified by id on the specified date. Implementations must be safe
// for concurrent use.
type Resolver interface {
	Offset(id string, year int, month time.Month, day int) (time.Duration, error)
}

// ResolverFunc allows an ordinary function to be used as a Resolver.
type ResolverFunc func(id string, year int, month time.Month, day int) (time.Duration, error)

// Offset implements Resolver.
func (fn ResolverFunc) Offset(id string, year int, month time.Month, day int) (time.Duration, error) {
	return fn(id, year, month, day)
}

// Database is a Resolver backed by the IANA timezone database. Loaded
// locations are cached.
type Database struct {
	locations sync.Map // string -> *time.Location
}

// Default is the Resolver used when none is specified.
var Default = NewDatabase()

// NewDatabase returns a new Database.
func NewDatabase() *Database {
	return &Database{}
}

// Location returns the time.Location for id. In addition to IANA names
// such as America/Chicago, id may be Local (or empty), UTC, or a fixed
// offset of the form UTC+05:30, UTC-6 or GMT+1.
func (db *Database) Location(id string) (*time.Location, error) {
	id = strings.TrimSpace(id)
	if id == "" || id == Local {
		return time.Local, nil
	}
	if loc, ok := db.locations.Load(id); ok {
		return loc.(*time.Location), nil
	}
	loc, ok, err := parseFixedOffset(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		loc, err = time.LoadLocation(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnknownTimezone, id, err)
		}
	}
	actual, _ := db.locations.LoadOrStore(id, loc)
	return actual.(*time.Location), nil
}

// Offset implements Resolver. The offset returned is the one in effect
// at noon, local time, on the specified date.
func (db *Database) Offset(id string, year int, month time.Month, day int) (time.Duration, error) {
	loc, err := db.Location(id)
	if err != nil {
		return 0, err
	}
	return OffsetAt(time.Date(year, month, day, 12, 0, 0, 0, loc)), nil
}

// OffsetAt returns the UTC offset of t in its location.
func OffsetAt(t time.Time) time.Duration {
	_, secs := t.Zone()
	return time.Duration(secs) * time.Second
}

// parseFixedOffset parses identifiers of the form UTC+05:30, UTC-6 or
// GMT+1. It returns false if id does not have a UTC or GMT prefix
// followed by a sign.
func parseFixedOffset(id string) (*time.Location, bool, error) {
	upper := strings.ToUpper(id)
	var rest string
	switch {
	case upper == "UTC" || upper == "GMT" || upper == "Z":
		return time.UTC, true, nil
	case strings.HasPrefix(upper, "UTC"), strings.HasPrefix(upper, "GMT"):
		rest = id[3:]
	default:
		return nil, false, nil
	}
	if len(rest) < 2 || (rest[0] != '+' && rest[0] != '-') {
		return nil, false, nil
	}
	sign := 1
	if rest[0] == '-' {
		sign = -1
	}
	hh, mm, _ := strings.Cut(rest[1:], ":")
	hours, err := strconv.Atoi(hh)
	if err != nil || hours > 14 {
		return nil, false, fmt.Errorf("%w: %q: invalid hours", ErrUnknownTimezone, id)
	}
	minutes := 0
	if len(mm) > 0 {
		minutes, err = strconv.Atoi(mm)
		if err != nil || minutes > 59 {
			return nil, false, fmt.Errorf("%w: %q: invalid minutes", ErrUnknownTimezone, id)
		}
	}
	secs := sign * (hours*3600 + minutes*60)
	return time.FixedZone(id, secs), true, nil
}
