// This file is part of go-findoption.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package findoption

import (
	"errors"
)

// ErrorInvalidArgument - Indicates a programming error in the arguments passed to the Finder.
// Returned errors wrap it and name the offending parameter.
var ErrorInvalidArgument = errors.New("invalid argument")

// ErrorConversion - Indicates that a built-in transform could not convert an argument.
var ErrorConversion = errors.New("conversion failed")
