// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/transact/util"
)

// Packed - packed transactions are just a byte slice
type Packed []byte

// tag at the start of every packed transaction
const transactionTag = 0x54

// limits applied when unpacking
const (
	maxFamilyLength  = 128
	maxAddresses     = 4096
	maxAddressLength = 128
	maxNonceLength   = 128
	maxSignerLength  = 1024
	maxHashLength    = 128
	maxPayloadLength = 1 << 20
)

// Pack - fields in header order with the payload last
func (t *Transaction) Pack() Packed {
	message := util.ToVarint64(transactionTag)
	message = util.AppendString(message, t.Header.FamilyName)
	message = util.AppendString(message, t.Header.FamilyVersion)
	message = appendStrings(message, t.Header.Inputs)
	message = appendStrings(message, t.Header.Outputs)
	message = util.AppendString(message, t.Header.Nonce)
	message = util.AppendBytes(message, t.Header.SignerPublicKey)
	message = util.AppendBytes(message, t.Header.PayloadHash)
	return util.AppendBytes(message, t.Payload)
}

// a Varint64(count) followed by each string
func appendStrings(buffer Packed, items []string) Packed {
	buffer = util.AppendVarint64(buffer, uint64(len(items)))
	for _, s := range items {
		buffer = util.AppendString(buffer, s)
	}
	return buffer
}
