// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/transact/fault"
)

// common errors - keep in alphabetic order
var (
	ErrKeyCount           = fault.InvalidError("wrong number of keys for family")
	ErrMissingFamily      = fault.InvalidError("family name is required")
	ErrMissingPayload     = fault.InvalidError("payload is required")
	ErrMissingQuery       = fault.InvalidError("transaction id or state listing is required")
	ErrMissingTransaction = fault.InvalidError("packed transaction is required")
	ErrUnknownFamily      = fault.NotFoundError("unknown family")
)
