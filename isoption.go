// This file is part of go-findoption.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package findoption

// IsOption - Check if the given token is option-like according to the configured pattern.
// Option-like tokens are never used as arguments for another option.
//
// With the default pattern `--`, `-v` and `--verbose` are option-like while
// a lone `-`, `value` and the empty string are not.
func (f *Finder) IsOption(token string) bool {
	if f.config.OptionPattern == nil {
		return isOptionRegex.MatchString(token)
	}
	return f.config.OptionPattern.MatchString(token)
}
