// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/transact/address"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "prefix", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
		{Long: "first-length", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "second-length", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) || len(arguments) > 3 {
		exitwithstatus.Message("usage: %s [--verbose] [--prefix=HEX] [--first-length=N] [--second-length=N] key [key [key]]", program)
	}

	prefix := ""
	if len(options["prefix"]) > 0 {
		prefix = options["prefix"][0]
	}

	first, err := lengthOption(options, "first-length")
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}
	second, err := lengthOption(options, "second-length")
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	result, err := generate(prefix, first, second, arguments)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	if len(options["verbose"]) > 0 {
		fmt.Printf("key:     %s\n", result.normalized)
		fmt.Printf("lengths: %v\n", result.lengths)
		fmt.Printf("address: %s\n", result.address)
	} else {
		fmt.Printf("%s\n", result.address)
	}
}

// optional fragment length, nil if not given
func lengthOption(options map[string][]string, name string) (*int, error) {
	values := options[name]
	if 0 == len(values) {
		return nil, nil
	}
	n, err := strconv.Atoi(values[len(values)-1])
	if nil != err {
		return nil, fmt.Errorf("%s: %q is not a number", name, values[len(values)-1])
	}
	return address.HashLength(n), nil
}
