// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/bitmark-inc/transact/fault"
)

// file extensions recognised by ParseConfigurationFile
const (
	LuaExtension  = ".lua"
	TOMLExtension = ".toml"
)

// ParseConfigurationFile - read a configuration file and assign the
// results to a configuration structure
//
// config must be a non-nil pointer to a struct; fields are matched
// by their gluamapper tag for Lua and by their toml tag for TOML
func ParseConfigurationFile(fileName string, config interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.ErrInvalidStructPointer
	}

	// now sure item is a pointer, make sure it points to some kind of struct
	s := rv.Elem()
	if s.Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case TOMLExtension:
		return parseTOMLFile(fileName, config)
	default:
		return parseLuaFile(fileName, config)
	}
}
