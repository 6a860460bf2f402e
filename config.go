// This file is part of go-findoption.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package findoption

import (
	"fmt"
	"regexp"
)

// DefaultOptionPattern - one or more leading dashes followed by at least one character.
const DefaultOptionPattern = `(?s)^-+.`

var isOptionRegex = regexp.MustCompile(DefaultOptionPattern)

// Config - Finder configuration.
// It is fixed at construction time and never changes for the life of the Finder.
type Config struct {
	// OptionPattern classifies a token as option-like.
	// It replaces DefaultOptionPattern, it doesn't extend it.
	// When nil, DefaultOptionPattern applies.
	OptionPattern *regexp.Regexp
}

// ConfigFn - Function signature for functions that modify the Finder configuration.
type ConfigFn func(*Config)

// OptionPattern - Overrides the rule used to decide if a token is option-like.
// A nil pattern keeps the default.
func OptionPattern(re *regexp.Regexp) ConfigFn {
	return func(c *Config) {
		if re == nil {
			return
		}
		c.OptionPattern = re
	}
}

// OptionPatternString - Same as OptionPattern but compiles the given expression first.
func OptionPatternString(expr string) (ConfigFn, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: option pattern: %s", ErrorInvalidArgument, err)
	}
	return OptionPattern(re), nil
}

func newConfig(fns ...ConfigFn) Config {
	c := Config{}
	for _, fn := range fns {
		if fn != nil {
			fn(&c)
		}
	}
	return c
}
