// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/bitmark-inc/transact/fault"
)

// decode a TOML file into a configuration structure, rejecting any
// keys that do not correspond to a field
func parseTOMLFile(fileName string, config interface{}) error {
	meta, err := toml.DecodeFile(fileName, config)
	if nil != err {
		return err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s", fault.ErrUnknownConfigurationKey, strings.Join(keys, ", "))
	}
	return nil
}
