// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/solar"
	"cloudeng.io/solar/zipcode"
)

// config represents the optional YAML configuration file, eg:
//
//	default: charleston
//	zip_db: $HOME/geonames/US.zip
//	locations:
//	  - name: charleston
//	    latitude: 39.1371
//	    longitude: -88.65
//	    timezone: America/Chicago
//	  - name: longyearbyen
//	    latitude: 78.22
//	    longitude: 15.65
//	    timezone: Arctic/Longyearbyen
//	    zenith: 96
type config struct {
	Default   string        `yaml:"default"`
	ZipDB     string        `yaml:"zip_db"`
	Locations []solar.Place `yaml:"locations"`
}

func (c config) lookup(name string) (solar.Place, bool) {
	for _, p := range c.Locations {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return solar.Place{}, false
}

type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,yaml configuration file containing named locations"`
}

// setup creates the logger requested by the flags and reads the config
// file, if one was specified.
func (cf *CommonFlags) setup(ctx context.Context) (context.Context, func(), config, error) {
	var cfg config
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, cfg, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	cleanup := func() { logger.Close() }
	if len(cf.Config) == 0 {
		return ctx, cleanup, cfg, nil
	}
	if err := cmdyaml.ParseConfigFile(ctx, os.ExpandEnv(cf.Config), &cfg); err != nil {
		cleanup()
		return ctx, func() {}, cfg, err
	}
	for _, p := range cfg.Locations {
		if err := p.Validate(); err != nil {
			cleanup()
			return ctx, func() {}, cfg, fmt.Errorf("location %q: %w", p.Name, err)
		}
	}
	logger.Debug("config", "file", cf.Config, "locations", len(cfg.Locations))
	return ctx, cleanup, cfg, nil
}

type LocationFlags struct {
	Location  string `subcmd:"location,,named location from the config file"`
	Latitude  string `subcmd:"lat,,'latitude in decimal degrees, south is negative'"`
	Longitude string `subcmd:"long,,'longitude in decimal degrees, west is negative'"`
	Zip       string `subcmd:"zip,,'admin and postal code, eg. IL:61920 or ENG:BN91'"`
	ZipDB     string `subcmd:"zip-db,,geonames.org postal code file (.txt or .zip) used for --zip"`
	Timezone  string `subcmd:"timezone,,'timezone, eg. America/Chicago, UTC-06:00 or Local, defaults to that of the location or Local'"`
	Zenith    string `subcmd:"zenith,,'official, civil, nautical, astronomical or a number of degrees, defaults to that of the location or official'"`
}

// place determines the location specified by the flags, falling back to
// the config file's default location.
func (lf LocationFlags) place(ctx context.Context, cfg config) (solar.Place, error) {
	var p solar.Place
	var err error
	switch {
	case len(lf.Location) > 0:
		var ok bool
		if p, ok = cfg.lookup(lf.Location); !ok {
			return p, fmt.Errorf("location %q not found in config file", lf.Location)
		}
	case len(lf.Zip) > 0:
		p, err = lf.zipPlace(cfg)
	case len(lf.Latitude) > 0 || len(lf.Longitude) > 0:
		p, err = lf.coordinatesPlace()
	case len(cfg.Default) > 0:
		var ok bool
		if p, ok = cfg.lookup(cfg.Default); !ok {
			return p, fmt.Errorf("default location %q not found in config file", cfg.Default)
		}
	default:
		return p, fmt.Errorf("no location specified, use one of --location, --zip or --lat and --long")
	}
	if err != nil {
		return p, err
	}
	if len(lf.Timezone) > 0 {
		p.Timezone = lf.Timezone
	}
	if len(lf.Zenith) > 0 {
		if p.Zenith, err = solar.ParseZenith(lf.Zenith); err != nil {
			return p, err
		}
	}
	ctxlog.Logger(ctx).Debug("location", "name", p.Name, "coordinates", p.Coordinates.String(), "timezone", p.Timezone, "zenith", p.Zenith)
	return p, nil
}

func (lf LocationFlags) coordinatesPlace() (solar.Place, error) {
	if len(lf.Latitude) == 0 || len(lf.Longitude) == 0 {
		return solar.Place{}, fmt.Errorf("both --lat and --long must be specified")
	}
	lat, err := strconv.ParseFloat(lf.Latitude, 64)
	if err != nil {
		return solar.Place{}, fmt.Errorf("invalid latitude: %q: %w", lf.Latitude, err)
	}
	long, err := strconv.ParseFloat(lf.Longitude, 64)
	if err != nil {
		return solar.Place{}, fmt.Errorf("invalid longitude: %q: %w", lf.Longitude, err)
	}
	p := solar.Place{
		Name:        lf.Latitude + "," + lf.Longitude,
		Coordinates: solar.Coordinates{Latitude: lat, Longitude: long},
	}
	return p, p.Validate()
}

func (lf LocationFlags) zipPlace(cfg config) (solar.Place, error) {
	admin, postal, ok := strings.Cut(lf.Zip, ":")
	if !ok {
		return solar.Place{}, fmt.Errorf("invalid zip %q: expected <admin>:<postal code>", lf.Zip)
	}
	dbFile := lf.ZipDB
	if len(dbFile) == 0 {
		dbFile = cfg.ZipDB
	}
	if len(dbFile) == 0 {
		return solar.Place{}, fmt.Errorf("--zip-db or zip_db in the config file must be specified to use --zip")
	}
	zdb := zipcode.NewDB()
	if err := zdb.LoadFile(os.ExpandEnv(dbFile)); err != nil {
		return solar.Place{}, err
	}
	coords, ok := zdb.Lookup(admin, postal)
	if !ok {
		return solar.Place{}, fmt.Errorf("zip %q not found in %v", lf.Zip, dbFile)
	}
	return solar.Place{Name: lf.Zip, Coordinates: coords}, nil
}
