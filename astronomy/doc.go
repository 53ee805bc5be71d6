// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astronomy provides solstices, equinoxes and seasons, as well
// as an independent calculation of sunrise, sunset and solar noon that
// can be used to cross check those computed by cloudeng.io/solar.
package astronomy
