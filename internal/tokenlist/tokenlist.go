// This file is part of go-findoption.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package tokenlist - private working copy of a token sequence.
//
// A List never shares its backing array with the slice it was built from,
// so removing ranges from it never mutates caller state.
package tokenlist

// List - token list data
type List struct {
	data []string
}

// New - builds a List holding a copy of s.
func New(s []string) *List {
	data := make([]string, len(s))
	copy(data, s)
	return &List{data: data}
}

// Len - returns List size
func (l *List) Len() int {
	return len(l.data)
}

// Value - returns value at index i or an empty string if i is out of range.
func (l *List) Value(i int) string {
	if i < 0 || i >= len(l.data) {
		return ""
	}
	return l.data[i]
}

// Indices - returns, in ascending order, the indices of the tokens for which match returns true.
func (l *List) Indices(match func(string) bool) []int {
	idx := []int{}
	for i, s := range l.data {
		if match(s) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Slice - returns a copy of the contiguous run of up to n tokens following index i.
// The run is shorter when the list ends early.
func (l *List) Slice(i, n int) []string {
	start := i + 1
	if start < 0 {
		start = 0
	}
	if start > len(l.data) {
		start = len(l.data)
	}
	end := start + n
	if n < 0 || end > len(l.data) {
		end = len(l.data)
	}
	out := make([]string, end-start)
	copy(out, l.data[start:end])
	return out
}

// Remove - removes the token at index i and up to n tokens following it.
// Out of range indices are a no-op.
func (l *List) Remove(i, n int) {
	if i < 0 || i >= len(l.data) {
		return
	}
	end := i + 1 + n
	if n < 0 || end > len(l.data) {
		end = len(l.data)
	}
	l.data = append(l.data[:i], l.data[end:]...)
}

// Strings - returns a copy of the current tokens.
func (l *List) Strings() []string {
	out := make([]string, len(l.data))
	copy(out, l.data)
	return out
}
