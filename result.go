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
	"strings"
)

// Arg - a single argument slot of a Result.
type Arg struct {
	Value string `json:"value"`
	// Defaulted indicates the value came from the defaults list rather than the token sequence.
	Defaulted bool `json:"defaulted"`
}

// Result - outcome of a single lookup.
//
// Option is the variant that matched or, when the option was not found, the
// last variant in the list so there is always a label to report.
// Args always has as many entries as the defaults list passed to the lookup.
type Result struct {
	Found  bool   `json:"found"`
	Option string `json:"option"`
	Args   []Arg  `json:"args"`
}

// Values - returns the argument values in order.
func (r Result) Values() []string {
	out := make([]string, len(r.Args))
	for i, a := range r.Args {
		out[i] = a.Value
	}
	return out
}

// Value - returns the value at slot i or an empty string if i is out of range.
func (r Result) Value(i int) string {
	if i < 0 || i >= len(r.Args) {
		return ""
	}
	return r.Args[i].Value
}

// Defaulted - tells if slot i was filled from the defaults list.
// Out of range slots are reported as defaulted.
func (r Result) Defaulted(i int) bool {
	if i < 0 || i >= len(r.Args) {
		return true
	}
	return r.Args[i].Defaulted
}

func (r Result) String() string {
	if len(r.Args) == 0 {
		return fmt.Sprintf("(%v, %q)", r.Found, r.Option)
	}
	quoted := make([]string, len(r.Args))
	for i, a := range r.Args {
		quoted[i] = fmt.Sprintf("%q", a.Value)
	}
	return fmt.Sprintf("(%v, %q, %s)", r.Found, r.Option, strings.Join(quoted, ", "))
}

func defaultArgs(defaults []string) []Arg {
	args := make([]Arg, len(defaults))
	for i, d := range defaults {
		args[i] = Arg{Value: d, Defaulted: true}
	}
	return args
}
