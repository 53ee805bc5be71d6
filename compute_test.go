// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"cloudeng.io/solar"
	"cloudeng.io/solar/timezone"
	"github.com/jonboulle/clockwork"
)

var charleston = solar.Coordinates{Latitude: 39.1371, Longitude: -88.65}

func absDiff(a, b solar.TimeOfDay) time.Duration {
	d := a.Duration() - b.Duration()
	if d < 0 {
		return -d
	}
	return d
}

func TestReferenceScenario(t *testing.T) {
	ctx := context.Background()
	opts := []solar.Option{
		solar.WithDate(solar.NewCalendarDate(2012, 12, 25)),
		solar.WithZenith(solar.Official),
		solar.WithTimezone("America/Chicago"),
	}
	rise, err := solar.ComputeEvent(ctx, solar.Rise, charleston, opts...)
	if err != nil {
		t.Fatal(err)
	}
	set, err := solar.ComputeEvent(ctx, solar.Set, charleston, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := rise, solar.NewTimeOfDay(7, 12, 25); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := set, solar.NewTimeOfDay(16, 38, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Published values for this example.
	if d := absDiff(rise, solar.NewTimeOfDay(7, 12, 26)); d > 2*time.Second {
		t.Errorf("rise %v differs from 07:12:26 by %v", rise, d)
	}
	if d := absDiff(set, solar.NewTimeOfDay(16, 38, 1)); d > 2*time.Second {
		t.Errorf("set %v differs from 16:38:01 by %v", set, d)
	}
}

func TestEvents(t *testing.T) {
	ctx := context.Background()
	for i, tc := range []struct {
		coords    solar.Coordinates
		date      solar.CalendarDate
		zenith    float64
		tz        string
		rise, set solar.TimeOfDay
	}{
		{solar.Coordinates{Latitude: 51.5074, Longitude: -0.1278}, solar.NewCalendarDate(2024, 6, 21), solar.Official, "Europe/London",
			solar.NewTimeOfDay(4, 43, 8), solar.NewTimeOfDay(21, 21, 38)},
		{solar.Coordinates{Latitude: 51.5074, Longitude: -0.1278}, solar.NewCalendarDate(2024, 12, 21), solar.Official, "Europe/London",
			solar.NewTimeOfDay(8, 4, 8), solar.NewTimeOfDay(15, 53, 51)},
		{solar.Coordinates{Latitude: -33.8688, Longitude: 151.2093}, solar.NewCalendarDate(2024, 1, 1), solar.Official, "Australia/Sydney",
			solar.NewTimeOfDay(5, 47, 26), solar.NewTimeOfDay(20, 9, 29)},
		{solar.Coordinates{Latitude: 35.6762, Longitude: 139.6503}, solar.NewCalendarDate(2024, 3, 20), solar.Official, "Asia/Tokyo",
			solar.NewTimeOfDay(5, 44, 54), solar.NewTimeOfDay(17, 53, 21)},
		{charleston, solar.NewCalendarDate(2012, 12, 25), solar.Civil, "America/Chicago",
			solar.NewTimeOfDay(6, 42, 20), solar.NewTimeOfDay(17, 8, 6)},
		{charleston, solar.NewCalendarDate(2012, 12, 25), solar.Nautical, "America/Chicago",
			solar.NewTimeOfDay(6, 8, 44), solar.NewTimeOfDay(17, 41, 42)},
		{charleston, solar.NewCalendarDate(2012, 12, 25), solar.Astronomical, "America/Chicago",
			solar.NewTimeOfDay(5, 36, 9), solar.NewTimeOfDay(18, 14, 16)},
		// Timezones on the far side of the date line from their longitude.
		{solar.Coordinates{Latitude: -21.13, Longitude: -175.2}, solar.NewCalendarDate(2024, 6, 21), solar.Official, "Pacific/Tongatapu",
			solar.NewTimeOfDay(7, 17, 22), solar.NewTimeOfDay(18, 8, 13)},
		{solar.Coordinates{Latitude: 1.87, Longitude: -157.4}, solar.NewCalendarDate(2024, 6, 21), solar.Official, "Pacific/Kiritimati",
			solar.NewTimeOfDay(6, 24, 39), solar.NewTimeOfDay(18, 38, 31)},
	} {
		opts := []solar.Option{solar.WithDate(tc.date), solar.WithZenith(tc.zenith), solar.WithTimezone(tc.tz)}
		rise, err := solar.ComputeEvent(ctx, solar.Rise, tc.coords, opts...)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		set, err := solar.ComputeEvent(ctx, solar.Set, tc.coords, opts...)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if d := absDiff(rise, tc.rise); d > 2*time.Second {
			t.Errorf("%v: %v: rise: got %v, want %v", i, tc.tz, rise, tc.rise)
		}
		if d := absDiff(set, tc.set); d > 2*time.Second {
			t.Errorf("%v: %v: set: got %v, want %v", i, tc.tz, set, tc.set)
		}
	}
}

func TestInvalidEvent(t *testing.T) {
	ctx := context.Background()
	failing := timezone.ResolverFunc(func(string, int, time.Month, int) (time.Duration, error) {
		return 0, fmt.Errorf("should not be called")
	})
	for _, event := range []solar.Event{0, -1, 3, 100} {
		for _, opts := range [][]solar.Option{
			nil,
			{solar.WithDate(solar.NewCalendarDate(2024, 6, 21))},
			{solar.WithTimezone("Mars/Olympus_Mons")},
			{solar.WithResolver(failing)},
			{solar.WithZenith(solar.Astronomical)},
		} {
			for _, coords := range []solar.Coordinates{charleston, {Latitude: 89, Longitude: 0}} {
				_, err := solar.ComputeEvent(ctx, event, coords, opts...)
				if !errors.Is(err, solar.ErrInvalidEventType) {
					t.Errorf("%v: unexpected or missing error: %v", event, err)
				}
				if errors.Is(err, solar.ErrSunNeverCrossesZenith) {
					t.Errorf("%v: invalid event reported as no event: %v", event, err)
				}
			}
		}
	}
}

func TestRiseBeforeSet(t *testing.T) {
	ctx := context.Background()
	places := []struct {
		coords solar.Coordinates
		tz     string
	}{
		{charleston, "America/Chicago"},
		{solar.Coordinates{Latitude: 51.5074, Longitude: -0.1278}, "Europe/London"},
		{solar.Coordinates{Latitude: -33.8688, Longitude: 151.2093}, "Australia/Sydney"},
		{solar.Coordinates{Latitude: 35.6762, Longitude: 139.6503}, "Asia/Tokyo"},
		{solar.Coordinates{Latitude: -0.18, Longitude: -78.47}, "America/Guayaquil"},
		{solar.Coordinates{Latitude: 59.9139, Longitude: 10.7522}, "Europe/Oslo"},
		{solar.Coordinates{Latitude: -54.8019, Longitude: -68.303}, "America/Argentina/Ushuaia"},
	}
	for _, p := range places {
		for cd := solar.NewCalendarDate(2024, 1, 1); cd.Year == 2024; cd = cd.Next() {
			opts := []solar.Option{solar.WithDate(cd), solar.WithTimezone(p.tz)}
			rise, err := solar.ComputeEvent(ctx, solar.Rise, p.coords, opts...)
			if err != nil {
				t.Errorf("%v: %v: %v", p.tz, cd, err)
				continue
			}
			set, err := solar.ComputeEvent(ctx, solar.Set, p.coords, opts...)
			if err != nil {
				t.Errorf("%v: %v: %v", p.tz, cd, err)
				continue
			}
			if !rise.Before(set) {
				t.Errorf("%v: %v: rise %v is not before set %v", p.tz, cd, rise, set)
			}
		}
	}
}

func TestPolar(t *testing.T) {
	ctx := context.Background()
	for _, tc := range []struct {
		coords     solar.Coordinates
		date       solar.CalendarDate
		polarNight bool
	}{
		{solar.Coordinates{Latitude: 70, Longitude: 20}, solar.NewCalendarDate(2024, 6, 21), false},
		{solar.Coordinates{Latitude: 78.22, Longitude: 15.65}, solar.NewCalendarDate(2024, 6, 20), false},
		{solar.Coordinates{Latitude: 70, Longitude: 20}, solar.NewCalendarDate(2024, 12, 21), true},
		{solar.Coordinates{Latitude: -70, Longitude: 0}, solar.NewCalendarDate(2024, 6, 21), true},
		{solar.Coordinates{Latitude: -75, Longitude: -60}, solar.NewCalendarDate(2024, 12, 21), false},
	} {
		for _, event := range []solar.Event{solar.Rise, solar.Set} {
			_, err := solar.ComputeEvent(ctx, event, tc.coords,
				solar.WithDate(tc.date), solar.WithTimezone("UTC"))
			if !errors.Is(err, solar.ErrSunNeverCrossesZenith) {
				t.Errorf("%v: %v: %v: unexpected or missing error: %v", tc.coords, tc.date, event, err)
				continue
			}
			if errors.Is(err, solar.ErrInvalidEventType) {
				t.Errorf("%v: no event reported as invalid event: %v", tc.coords, err)
			}
			var nee *solar.NoEventError
			if !errors.As(err, &nee) {
				t.Errorf("%v: not a NoEventError: %v", tc.coords, err)
				continue
			}
			if got, want := nee.PolarNight(), tc.polarNight; got != want {
				t.Errorf("%v: %v: got %v, want %v", tc.coords, tc.date, got, want)
			}
			if got, want := nee.Event, event; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		}
	}

	// Midnight sun at the official zenith, but the sun still dips far
	// enough below the horizon for there to be no astronomical twilight.
	_, err := solar.ComputeEvent(ctx, solar.Rise, solar.Coordinates{Latitude: 60, Longitude: 10},
		solar.WithDate(solar.NewCalendarDate(2024, 6, 21)), solar.WithZenith(solar.Astronomical), solar.WithTimezone("Europe/Oslo"))
	if !errors.Is(err, solar.ErrSunNeverCrossesZenith) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestIdempotent(t *testing.T) {
	ctx := context.Background()
	opts := []solar.Option{
		solar.WithDate(solar.NewCalendarDate(2024, 3, 1)),
		solar.WithTimezone("America/Chicago"),
	}
	for _, event := range []solar.Event{solar.Rise, solar.Set} {
		first, err := solar.ComputeEvent(ctx, event, charleston, opts...)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 10; i++ {
			next, err := solar.ComputeEvent(ctx, event, charleston, opts...)
			if err != nil {
				t.Fatal(err)
			}
			if got, want := next, first; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		}
	}
}

func TestZenithOrdering(t *testing.T) {
	ctx := context.Background()
	date := solar.WithDate(solar.NewCalendarDate(2024, 9, 1))
	tz := solar.WithTimezone("America/Chicago")
	var prevRise, prevSet solar.TimeOfDay
	for i, zenith := range []float64{solar.Astronomical, solar.Nautical, solar.Civil, solar.Official} {
		rise, err := solar.ComputeEvent(ctx, solar.Rise, charleston, date, tz, solar.WithZenith(zenith))
		if err != nil {
			t.Fatal(err)
		}
		set, err := solar.ComputeEvent(ctx, solar.Set, charleston, date, tz, solar.WithZenith(zenith))
		if err != nil {
			t.Fatal(err)
		}
		if i > 0 && !prevRise.Before(rise) {
			t.Errorf("%v: rise %v is not after %v", solar.ZenithName(zenith), rise, prevRise)
		}
		if i > 0 && !set.Before(prevSet) {
			t.Errorf("%v: set %v is not before %v", solar.ZenithName(zenith), set, prevSet)
		}
		prevRise, prevSet = rise, set
	}
}

func TestTimezoneErrors(t *testing.T) {
	ctx := context.Background()
	date := solar.WithDate(solar.NewCalendarDate(2024, 1, 1))

	_, err := solar.ComputeEvent(ctx, solar.Rise, charleston, date, solar.WithTimezone("Mars/Olympus_Mons"))
	if !errors.Is(err, timezone.ErrUnknownTimezone) {
		t.Errorf("unexpected or missing error: %v", err)
	}

	errLookup := errors.New("lookup failed")
	failing := timezone.ResolverFunc(func(string, int, time.Month, int) (time.Duration, error) {
		return 0, errLookup
	})
	_, err = solar.ComputeEvent(ctx, solar.Set, charleston, date, solar.WithResolver(failing))
	if !errors.Is(err, errLookup) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if errors.Is(err, solar.ErrSunNeverCrossesZenith) || errors.Is(err, solar.ErrInvalidEventType) {
		t.Errorf("resolver error misreported: %v", err)
	}
}

func TestResolver(t *testing.T) {
	ctx := context.Background()
	var calls []string
	var mu sync.Mutex
	fixed := timezone.ResolverFunc(func(id string, year int, month time.Month, day int) (time.Duration, error) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, fmt.Sprintf("%v %04d-%02d-%02d", id, year, month, day))
		return -6 * time.Hour, nil
	})
	rise, err := solar.ComputeEvent(ctx, solar.Rise, charleston,
		solar.WithDate(solar.NewCalendarDate(2012, 12, 25)),
		solar.WithTimezone("central"),
		solar.WithResolver(fixed))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := rise, solar.NewTimeOfDay(7, 12, 25); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(calls), 1; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := calls[0], "central 2012-12-25"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDefaultDate(t *testing.T) {
	ctx := context.Background()
	for _, now := range []time.Time{
		time.Date(2012, 12, 25, 12, 0, 0, 0, time.UTC),
		// Already the 26th in UTC, but still the 25th in Chicago.
		time.Date(2012, 12, 26, 3, 0, 0, 0, time.UTC),
	} {
		clock := clockwork.NewFakeClockAt(now)
		rise, err := solar.ComputeEvent(ctx, solar.Rise, charleston,
			solar.WithClock(clock), solar.WithTimezone("America/Chicago"))
		if err != nil {
			t.Fatal(err)
		}
		if got, want := rise, solar.NewTimeOfDay(7, 12, 25); got != want {
			t.Errorf("%v: got %v, want %v", now, got, want)
		}
	}
}

func TestDefaults(t *testing.T) {
	ctx := context.Background()
	// With no options the calculation uses the current date, the
	// Official zenith and the local timezone.
	clock := clockwork.NewFakeClockAt(time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC))
	got, err := solar.ComputeEvent(ctx, solar.Set, charleston, solar.WithClock(clock))
	if err != nil {
		t.Fatal(err)
	}
	today := solar.CalendarDateFromTime(clock.Now().In(time.Local))
	want, err := solar.ComputeEvent(ctx, solar.Set, charleston,
		solar.WithDate(today), solar.WithZenith(solar.Official), solar.WithTimezone(timezone.Local))
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestConcurrent(t *testing.T) {
	ctx := context.Background()
	want, err := solar.ComputeEvent(ctx, solar.Rise, charleston,
		solar.WithDate(solar.NewCalendarDate(2012, 12, 25)), solar.WithTimezone("America/Chicago"))
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	results := make(chan solar.TimeOfDay, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := solar.ComputeEvent(ctx, solar.Rise, charleston,
				solar.WithDate(solar.NewCalendarDate(2012, 12, 25)), solar.WithTimezone("America/Chicago"))
			if err != nil {
				t.Error(err)
				return
			}
			results <- got
		}()
	}
	wg.Wait()
	close(results)
	for got := range results {
		if got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}
