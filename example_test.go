// This file is part of go-findoption.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package findoption_test

import (
	"fmt"
	"regexp"

	"github.com/DavidGamba/go-findoption"
)

func Example() {
	f := findoption.New([]string{"-v", "--size", "640", "-o", "out.png", "input.png"})

	size, err := f.Find([]string{"--size", "-s"}, []string{"800", "600"})
	if err != nil {
		panic(err)
	}
	output := f.MustFind([]string{"--output", "-o"}, []string{"a.png"})
	verbose := f.Called("--verbose", "-v")

	fmt.Println(size.Found, size.Option, size.Values())
	fmt.Println(output.Found, output.Option, output.Value(0))
	fmt.Println(verbose)

	// Output:
	// true --size [640 600]
	// true -o out.png
	// true
}

func ExampleFinder_Find_notFound() {
	f := findoption.New([]string{"-d"})
	r, _ := f.Find([]string{"--test", "-t"}, []string{"def1", "def2"})
	fmt.Println(r)

	// Output:
	// (false, "-t", "def1", "def2")
}

func ExampleFinder_Find_duplicates() {
	f := findoption.New([]string{"-t", "a", "b", "--test", "c"})
	r, _ := f.Find([]string{"--test", "-t"}, []string{"d1", "d2"})
	fmt.Println(r)
	fmt.Println(r.Defaulted(0), r.Defaulted(1))

	// Output:
	// (true, "--test", "c", "d2")
	// false true
}

func ExampleFinder_Consume() {
	f := findoption.New([]string{"--name", "world", "greet", "--times", "2"})
	name, _ := f.Consume([]string{"--name"}, []string{"you"})
	times, _ := findoption.FindAs(f, []string{"--times"}, []string{"1"}, findoption.Int)
	_, _ = f.Consume([]string{"--times"}, []string{"1"})

	fmt.Println(name.Value(0), times.Value)
	fmt.Println(f.Remaining())

	// Output:
	// world 2
	// [greet]
}

func ExampleFindAs() {
	f := findoption.New([]string{"--color", "false"})
	color, _ := findoption.FindAs(f, []string{"--color"}, []string{"true"}, findoption.Bool)
	pager, _ := findoption.FindAs(f, []string{"--pager"}, []string{"true"}, findoption.Bool)
	fmt.Println(color.Found, color.Value)
	fmt.Println(pager.Found, pager.Value)

	// Output:
	// true false
	// false true
}

func ExampleOptionPattern() {
	f := findoption.New([]string{"$set", "--key", "$get"}, findoption.OptionPattern(regexp.MustCompile(`^\$`)))
	r, _ := f.Find([]string{"$set"}, []string{"k", "v"})
	fmt.Println(r)
	fmt.Println(f.IsOption("--key"), f.IsOption("$get"))

	// Output:
	// (true, "$set", "--key", "v")
	// false true
}
