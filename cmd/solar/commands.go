// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/solar"
	"cloudeng.io/solar/astronomy"
	"cloudeng.io/solar/timezone"
)

type eventFlags struct {
	CommonFlags
	LocationFlags
	Date string `subcmd:"date,,'date, in 2006-01-02 format, defaults to the current date in the requested timezone'"`
}

type dayFlags struct {
	CommonFlags
	LocationFlags
	Date    string `subcmd:"date,,'date, in 2006-01-02 format, defaults to the current date in the requested timezone'"`
	Compare bool   `subcmd:"compare,false,'also display the times computed by an independent implementation'"`
}

type yearFlags struct {
	CommonFlags
	LocationFlags
}

type solsticeFlags struct {
	CommonFlags
}

type locationsFlags struct {
	CommonFlags
}

func parseDate(val string) (solar.CalendarDate, error) {
	if len(val) == 0 {
		return solar.CalendarDate{}, nil
	}
	return solar.ParseCalendarDate(val)
}

func parseYear(val string) (int, error) {
	year, err := strconv.Atoi(val)
	if err != nil || year < 1 {
		return 0, fmt.Errorf("invalid year: %q", val)
	}
	return year, nil
}

func eventCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*eventFlags)
	event, err := solar.ParseEvent(args[0])
	if err != nil {
		return err
	}
	cd, err := parseDate(fv.Date)
	if err != nil {
		return err
	}
	ctx, cleanup, cfg, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	place, err := fv.place(ctx, cfg)
	if err != nil {
		return err
	}
	tod, err := solar.ComputeEvent(ctx, event, place.Coordinates, place.Options(cd)...)
	if err != nil {
		return err
	}
	fmt.Println(tod)
	return nil
}

func dayCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*dayFlags)
	cd, err := parseDate(fv.Date)
	if err != nil {
		return err
	}
	ctx, cleanup, cfg, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	place, err := fv.place(ctx, cfg)
	if err != nil {
		return err
	}
	st, err := solar.Day(ctx, place.Coordinates, place.Options(cd)...)
	if err != nil {
		return err
	}
	printDay(os.Stdout, place, st)
	if !fv.Compare {
		return nil
	}
	loc, err := timezone.Default.Location(place.Timezone)
	if err != nil {
		return err
	}
	return printComparison(os.Stdout, place, st, loc)
}

func printDay(out io.Writer, place solar.Place, st solar.SunTimes) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "location:\t%v (%v)\n", place.Name, place.Coordinates)
	fmt.Fprintf(tw, "date:\t%v\n", st.Date)
	fmt.Fprintf(tw, "zenith:\t%v\n", solar.ZenithName(st.Zenith))
	fmt.Fprintf(tw, "sunrise:\t%v\n", st.Rise)
	fmt.Fprintf(tw, "solar noon:\t%v\n", st.Noon())
	fmt.Fprintf(tw, "sunset:\t%v\n", st.Set)
	fmt.Fprintf(tw, "daylight:\t%v\n", st.Daylight)
	tw.Flush()
}

func printComparison(out io.Writer, place solar.Place, st solar.SunTimes, loc *time.Location) error {
	rise, set := astronomy.SunRiseAndSet(st.Date, place.Coordinates, loc)
	if rise.IsZero() || set.IsZero() {
		return fmt.Errorf("no sunrise or sunset computed by the independent implementation")
	}
	fmt.Fprintf(out, "independent: sunrise %v, solar noon %v, sunset %v\n",
		solar.TimeOfDayFromTime(rise),
		solar.TimeOfDayFromTime(astronomy.ApparentSolarNoon(st.Date, place.Coordinates, loc)),
		solar.TimeOfDayFromTime(set))
	return nil
}

func yearCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*yearFlags)
	year, err := parseYear(args[0])
	if err != nil {
		return err
	}
	ctx, cleanup, cfg, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	place, err := fv.place(ctx, cfg)
	if err != nil {
		return err
	}
	return printYear(ctx, os.Stdout, place, year)
}

// printYear prints the times of sunrise and sunset for every day of the
// year, noting the days on which the sun does not rise or set.
func printYear(ctx context.Context, out io.Writer, place solar.Place, year int) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "date\tsunrise\tsunset\tdaylight\n")
	for cd := solar.NewCalendarDate(year, 1, 1); cd.Year == year; cd = cd.Next() {
		st, err := solar.Day(ctx, place.Coordinates, place.Options(cd)...)
		if err == nil {
			fmt.Fprintf(tw, "%v\t%v\t%v\t%v\n", cd, st.Rise, st.Set, st.Daylight)
			continue
		}
		var ne *solar.NoEventError
		switch {
		case errors.Is(err, solar.ErrSetBeforeRise):
			fmt.Fprintf(tw, "%v\t%v\t%v\tsun sets after midnight\n", cd, st.Rise, st.Set)
		case errors.As(err, &ne) && ne.PolarDay():
			fmt.Fprintf(tw, "%v\t-\t-\tsun does not set\n", cd)
		case errors.As(err, &ne) && ne.PolarNight():
			fmt.Fprintf(tw, "%v\t-\t-\tsun does not rise\n", cd)
		default:
			tw.Flush()
			return err
		}
	}
	return tw.Flush()
}

func solsticeCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*solsticeFlags)
	year, err := parseYear(args[0])
	if err != nil {
		return err
	}
	_, cleanup, _, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	printSolstices(os.Stdout, year)
	return nil
}

func printSolstices(out io.Writer, year int) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, e := range astronomy.Events() {
		fmt.Fprintf(tw, "%v:\t%v\n", e.Name(), e.Evaluate(year).From)
	}
	for _, s := range astronomy.Seasons() {
		fmt.Fprintf(tw, "%v:\t%v\n", s.Name(), s.Evaluate(year))
	}
	tw.Flush()
}

func locationsCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*locationsFlags)
	_, cleanup, cfg, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	printLocations(os.Stdout, cfg)
	return nil
}

func printLocations(out io.Writer, cfg config) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, p := range cfg.Locations {
		tz := p.Timezone
		if len(tz) == 0 {
			tz = timezone.Local
		}
		zenith := solar.Official
		if p.Zenith != 0 {
			zenith = p.Zenith
		}
		def := ""
		if p.Name == cfg.Default {
			def = "(default)"
		}
		fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\n", p.Name, p.Coordinates, tz, solar.ZenithName(zenith), def)
	}
	tw.Flush()
}
