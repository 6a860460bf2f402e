// This file is part of go-findoption.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package findoption

import (
	"github.com/DavidGamba/go-findoption/internal/tokenlist"
)

// locate - returns the indices, left to right, of the tokens that exactly equal one of the variants.
func locate(variants []string, list *tokenlist.List) []int {
	set := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		set[v] = struct{}{}
	}
	return list.Indices(func(s string) bool {
		_, ok := set[s]
		return ok
	})
}

// span - positions claimed by the occurrence at idx[k]: the occurrence itself
// followed by up to n trailing tokens.
// The trailing run never reaches into the next occurrence.
func span(idx []int, k, n, size int) (start, end int) {
	start = idx[k]
	end = start + n
	if k+1 < len(idx) && end >= idx[k+1] {
		end = idx[k+1] - 1
	}
	if end >= size {
		end = size - 1
	}
	return start, end
}

// extract - builds the argument slots for the occurrence at index i.
//
// Takes the contiguous run of up to len(defaults) tokens following i, drops the
// option-like ones and backfills the missing slots, in order, with the
// defaults for those slots.
func (f *Finder) extract(list *tokenlist.List, i int, defaults []string) []Arg {
	n := len(defaults)
	args := make([]Arg, 0, n)
	if n == 0 {
		return args
	}
	for _, s := range list.Slice(i, n) {
		if f.IsOption(s) {
			Logger.Printf("discarding option-like argument '%s'", s)
			continue
		}
		args = append(args, Arg{Value: s})
	}
	for j := len(args); j < n; j++ {
		args = append(args, Arg{Value: defaults[j], Defaulted: true})
	}
	return args
}
