// This file is part of go-findoption.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package findoption - locate a named option and its trailing arguments in a
flat list of command line tokens.

It doesn't define a grammar up front. Instead, each lookup names the
spellings an option can take and how many arguments it expects, given as a
list of defaults:

	f := findoption.New(os.Args[1:])

	// --size <width> <height>, both optional.
	r, err := f.Find([]string{"--size", "-s"}, []string{"80", "24"})
	if err != nil {
		// Programming error: no variants given.
	}
	if r.Found {
		// ... r.Option is the spelling used on the command line.
	}
	width, height := r.Value(0), r.Value(1)

Rules

* A variant matches a token by exact string comparison.

* When the option is given more than once, the last occurrence wins.

* The arguments are the tokens immediately following the winning occurrence.
Option-like tokens in that run are discarded and the missing slots are
filled from the defaults, in order.

* When the option is not found, the result carries the defaults as given and
the last variant as its label.

Option-like tokens are the ones matching DefaultOptionPattern, one or more
dashes followed by at least one character, unless the Finder was created with
OptionPattern.

Lookups never modify the Finder. Consume is the explicit exception, it removes
the option and its arguments so that Remaining reports the leftover tokens.
*/
package findoption

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/DavidGamba/go-findoption/internal/tokenlist"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Finder - holds the token sequence and configuration for a scan session.
//
// Find and FindAs can be called concurrently.
// Consume modifies the Finder and requires external synchronization.
type Finder struct {
	tokens []string
	config Config
}

// New returns a Finder over a copy of tokens.
// This is the starting point when using go-findoption.
// For example:
//
//	f := findoption.New(os.Args[1:])
func New(tokens []string, fns ...ConfigFn) *Finder {
	t := make([]string, len(tokens))
	copy(t, tokens)
	return &Finder{
		tokens: t,
		config: newConfig(fns...),
	}
}

// Tokens - returns a copy of the tokens the Finder operates on.
func (f *Finder) Tokens() []string {
	t := make([]string, len(f.tokens))
	copy(t, f.tokens)
	return t
}

// Config - returns the Finder configuration.
func (f *Finder) Config() Config {
	return f.config
}

// Find - looks up the option given by any of its variants.
//
// The length of defaults is the number of arguments the option expects; a nil
// defaults list means the option takes no arguments.
// It returns an error wrapping ErrorInvalidArgument when variants is empty.
// An option that is not present is not an error, check Result.Found.
func (f *Finder) Find(variants []string, defaults []string) (Result, error) {
	if len(variants) == 0 {
		return Result{}, fmt.Errorf("%w: variants: must not be empty", ErrorInvalidArgument)
	}
	return f.find(tokenlist.New(f.tokens), variants, defaults), nil
}

// FindString - same as Find for an option with a single spelling.
func (f *Finder) FindString(variant string, defaults ...string) (Result, error) {
	return f.Find([]string{variant}, defaults)
}

// MustFind - same as Find but panics on invalid arguments.
func (f *Finder) MustFind(variants []string, defaults []string) Result {
	r, err := f.Find(variants, defaults)
	if err != nil {
		panic(err)
	}
	return r
}

// Called - Indicates if any of the variants is present in the token sequence.
func (f *Finder) Called(variants ...string) bool {
	if len(variants) == 0 {
		return false
	}
	return len(locate(variants, tokenlist.New(f.tokens))) > 0
}

func (f *Finder) find(list *tokenlist.List, variants []string, defaults []string) Result {
	idx := locate(variants, list)
	if len(idx) == 0 {
		Logger.Printf("option '%s' not found", strings.Join(variants, "|"))
		return Result{
			Found:  false,
			Option: variants[len(variants)-1],
			Args:   defaultArgs(defaults),
		}
	}
	i := idx[len(idx)-1]
	if len(idx) > 1 {
		Logger.Printf("option '%s' given %d times, using position %d", strings.Join(variants, "|"), len(idx), i)
	}
	r := Result{
		Found:  true,
		Option: list.Value(i),
		Args:   f.extract(list, i, defaults),
	}
	Logger.Printf("found %s", r)
	return r
}
