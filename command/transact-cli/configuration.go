// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/transact/address"
	"github.com/bitmark-inc/transact/configuration"
	"github.com/bitmark-inc/transact/family/balance"
	"github.com/bitmark-inc/transact/family/xo"
	"github.com/bitmark-inc/transact/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "transact"

	defaultLogDirectory = "log"
	defaultLogFile      = "transact.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type DatabaseType struct {
	Directory string `gluamapper:"directory" toml:"directory" json:"directory"`
	Name      string `gluamapper:"name" toml:"name" json:"name"`
}

type XOType struct {
	Prefix string `gluamapper:"prefix" toml:"prefix" json:"prefix"`
}

type BalanceType struct {
	Prefix      string `gluamapper:"prefix" toml:"prefix" json:"prefix"`
	OwnerLength int    `gluamapper:"owner_length" toml:"owner_length" json:"owner_length"`
}

type FamiliesType struct {
	XO      XOType      `gluamapper:"xo" toml:"xo" json:"xo"`
	Balance BalanceType `gluamapper:"balance" toml:"balance" json:"balance"`
}

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" toml:"data_directory" json:"data_directory"`
	Database      DatabaseType         `gluamapper:"database" toml:"database" json:"database"`
	Families      FamiliesType         `gluamapper:"families" toml:"families" json:"families"`
	Logging       logger.Configuration `gluamapper:"logging" toml:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if !util.EnsureFileExists(configurationFileName) {
		return nil, fmt.Errorf("configuration: %q does not exist", configurationFileName)
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// the parser merges into existing maps so give it a fresh one
	logLevels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		logLevels[tag] = level
	}

	options := &Configuration{

		DataDirectory: defaultDataDirectory,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Families: FamiliesType{
			XO: XOType{
				Prefix: xo.DefaultPrefix,
			},
			Balance: BalanceType{
				Prefix:      balance.DefaultPrefix,
				OwnerLength: balance.DefaultOwnerLength,
			},
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    logLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{options.Database.Directory, options.Logging.Directory} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	// family prefixes must produce valid state addresses
	families := options.Families
	if err := checkPrefix("xo", families.XO.Prefix); nil != err {
		return nil, err
	}
	if err := address.NewKeyHashAddresser(families.XO.Prefix).Validate(); nil != err {
		return nil, fmt.Errorf("xo: %w", err)
	}
	if err := checkPrefix("balance", families.Balance.Prefix); nil != err {
		return nil, err
	}
	ownerLength := address.HashLength(families.Balance.OwnerLength)
	if err := address.NewDoubleKeyHashAddresser(families.Balance.Prefix, ownerLength).Validate(); nil != err {
		return nil, fmt.Errorf("balance: %w", err)
	}

	// done
	return options, nil
}

// state addresses are lowercase hex so the prefix must be too
func checkPrefix(family string, prefix string) error {
	for _, c := range prefix {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return fmt.Errorf("%s: prefix: %q is not lowercase hex", family, prefix)
		}
	}
	return nil
}
