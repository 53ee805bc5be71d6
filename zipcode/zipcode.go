// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package zipcode provides postal code to coordinate lookups using data
// from www.geonames.org, see https://download.geonames.org/export/zip/.
package zipcode

import (
	"archive/zip"
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"cloudeng.io/solar"
)

// DB is an in-memory postal code database. It is safe for concurrent use.
type DB struct {
	mu     sync.RWMutex
	lookup map[string]solar.Coordinates
}

// NewDB returns a new, empty, DB.
func NewDB() *DB {
	return &DB{lookup: make(map[string]solar.Coordinates)}
}

type Option func(o *options)

// WithCountries restricts loading to entries for the specified ISO
// country codes, eg. US, GB.
func WithCountries(codes ...string) Option {
	return func(o *options) {
		for _, c := range codes {
			o.countries[strings.ToUpper(c)] = true
		}
	}
}

type options struct {
	countries map[string]bool
}

// Lookup returns the coordinates for the specified postal code and admin
// code (eg. AK 99553). GB and CA postal codes come in two formats, either
// the short form or long form:
//
//	GB: ENG BN91, or ENG "BN91 9AA".
//	CA: AB T0A, or AB "T0A 0A0".
func (zdb *DB) Lookup(admin, postal string) (solar.Coordinates, bool) {
	zdb.mu.RLock()
	defer zdb.mu.RUnlock()
	c, ok := zdb.lookup[key(admin, postal)]
	return c, ok
}

// Len returns the number of entries in the database.
func (zdb *DB) Len() int {
	zdb.mu.RLock()
	defer zdb.mu.RUnlock()
	return len(zdb.lookup)
}

func key(admin, postal string) string {
	return strings.ToUpper(strings.TrimSpace(admin)) + " " + strings.ToUpper(strings.TrimSpace(postal))
}

// Load reads geonames tab separated postal code data.
func (zdb *DB) Load(data []byte, opts ...Option) error {
	return zdb.LoadReader(bytes.NewReader(data), opts...)
}

// LoadReader is like Load but reads from an io.Reader.
func (zdb *DB) LoadReader(rd io.Reader, opts ...Option) error {
	o := options{countries: map[string]bool{}}
	for _, fn := range opts {
		fn(&o)
	}
	entries := map[string]solar.Coordinates{}
	scanner := bufio.NewScanner(rd)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if len(strings.TrimSpace(text)) == 0 {
			continue
		}
		parts := strings.Split(text, "\t")
		if len(parts) != 12 {
			return fmt.Errorf("line %v: wrong number of fields: (%v != 12) %v", line, len(parts), text)
		}
		if len(o.countries) > 0 && !o.countries[parts[0]] {
			continue
		}
		latStr, longStr := parts[9], parts[10]
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return fmt.Errorf("line %v: invalid latitude: %v: %w", line, latStr, err)
		}
		long, err := strconv.ParseFloat(longStr, 64)
		if err != nil {
			return fmt.Errorf("line %v: invalid longitude: %v: %w", line, longStr, err)
		}
		c := solar.Coordinates{Latitude: lat, Longitude: long}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("line %v: %w", line, err)
		}
		entries[key(parts[4], parts[1])] = c
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read data: %w", err)
	}
	zdb.mu.Lock()
	defer zdb.mu.Unlock()
	for k, v := range entries {
		zdb.lookup[k] = v
	}
	return nil
}

// LoadFile loads the named file, which may be either a geonames text
// file or a zip archive as distributed by geonames, in which case every
// .txt file other than readme.txt in the archive is loaded.
func (zdb *DB) LoadFile(filename string, opts ...Option) error {
	if strings.EqualFold(filepath.Ext(filename), ".zip") {
		return zdb.loadZip(filename, opts)
	}
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := zdb.LoadReader(f, opts...); err != nil {
		return fmt.Errorf("%v: %w", filename, err)
	}
	return nil
}

func (zdb *DB) loadZip(filename string, opts []Option) error {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return err
	}
	defer zr.Close()
	for _, zf := range zr.File {
		name := filepath.Base(zf.Name)
		if !strings.EqualFold(filepath.Ext(name), ".txt") || strings.EqualFold(name, "readme.txt") {
			continue
		}
		rd, err := zf.Open()
		if err != nil {
			return err
		}
		err = zdb.LoadReader(rd, opts...)
		rd.Close()
		if err != nil {
			return fmt.Errorf("%v: %v: %w", filename, zf.Name, err)
		}
	}
	return nil
}
