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

	"github.com/DavidGamba/go-findoption/internal/tokenlist"
)

// Consume - same as Find, and on success removes the option from the Finder.
//
// Every occurrence of the variants is removed along with the non option-like
// tokens in its argument run, so later lookups and Remaining only see what is
// left. Runs of earlier occurrences stop at the next occurrence.
//
// Consume modifies the Finder, callers sharing a Finder across goroutines
// must synchronize.
func (f *Finder) Consume(variants []string, defaults []string) (Result, error) {
	if len(variants) == 0 {
		return Result{}, fmt.Errorf("%w: variants: must not be empty", ErrorInvalidArgument)
	}
	list := tokenlist.New(f.tokens)
	r := f.find(list, variants, defaults)
	if !r.Found {
		return r, nil
	}
	idx := locate(variants, list)
	for k := len(idx) - 1; k >= 0; k-- {
		start, end := span(idx, k, len(defaults), list.Len())
		for p := end; p > start; p-- {
			if f.IsOption(list.Value(p)) {
				continue
			}
			list.Remove(p, 0)
		}
		list.Remove(start, 0)
	}
	Logger.Printf("consumed %d occurrence(s) of '%s', %d token(s) left", len(idx), r.Option, list.Len())
	f.tokens = list.Strings()
	return r, nil
}

// Remaining - returns the tokens not removed by Consume.
func (f *Finder) Remaining() []string {
	return f.Tokens()
}
