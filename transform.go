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
	"strconv"
)

// Transform - post-processes the arguments of a lookup into a value of type T.
//
// It is called both when the option was found and when it wasn't, with the
// defaults as arguments in the latter case, so the same conversion applies to
// either.
type Transform[T any] func(found bool, option string, args []string) (T, error)

// Typed - outcome of a lookup with a Transform applied.
// Found and Option are never changed by the Transform.
type Typed[T any] struct {
	Found  bool
	Option string
	Value  T
}

// FindAs - runs Find and passes the result through fn.
func FindAs[T any](f *Finder, variants []string, defaults []string, fn Transform[T]) (Typed[T], error) {
	r, err := f.Find(variants, defaults)
	if err != nil {
		return Typed[T]{}, err
	}
	if fn == nil {
		return Typed[T]{}, fmt.Errorf("%w: transform: must not be nil", ErrorInvalidArgument)
	}
	v, err := fn(r.Found, r.Option, r.Values())
	if err != nil {
		return Typed[T]{Found: r.Found, Option: r.Option}, err
	}
	return Typed[T]{Found: r.Found, Option: r.Option, Value: v}, nil
}

// Bool - Transform for switches and boolean options.
// Without arguments it reports whether the option was found, otherwise it
// parses the first argument with strconv.ParseBool.
func Bool(found bool, option string, args []string) (bool, error) {
	if len(args) == 0 {
		return found, nil
	}
	b, err := strconv.ParseBool(args[0])
	if err != nil {
		return false, fmt.Errorf("%w: option '%s': can't convert '%s' to bool", ErrorConversion, option, args[0])
	}
	return b, nil
}

// Int - Transform that converts the first argument to an int.
func Int(found bool, option string, args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: option '%s': no argument to convert to int", ErrorConversion, option)
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: option '%s': can't convert '%s' to int", ErrorConversion, option, args[0])
	}
	return i, nil
}

// Float64 - Transform that converts the first argument to a float64.
func Float64(found bool, option string, args []string) (float64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: option '%s': no argument to convert to float64", ErrorConversion, option)
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: option '%s': can't convert '%s' to float64", ErrorConversion, option, args[0])
	}
	return v, nil
}

// Strings - Transform returning the arguments unchanged.
func Strings(found bool, option string, args []string) ([]string, error) {
	out := make([]string, len(args))
	copy(out, args)
	return out, nil
}
