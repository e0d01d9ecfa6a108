// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/transact/fault"
	"github.com/bitmark-inc/transact/util"
)

// Unpack - turn a byte slice into a transaction
//
// returns the number of bytes consumed so that packed transactions can
// be concatenated
func (record Packed) Unpack() (t *Transaction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			t = nil
			n = 0
			e = fault.ErrNotTransactionPack
		}
	}()

	tag, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n || transactionTag != tag {
		return nil, 0, fault.ErrNotTransactionPack
	}

	familyName, ok := unpackBytes(record, &n, maxFamilyLength)
	if !ok {
		return nil, 0, fault.ErrNotTransactionPack
	}
	familyVersion, ok := unpackBytes(record, &n, maxFamilyLength)
	if !ok {
		return nil, 0, fault.ErrNotTransactionPack
	}
	inputs, ok := unpackStrings(record, &n)
	if !ok {
		return nil, 0, fault.ErrNotTransactionPack
	}
	outputs, ok := unpackStrings(record, &n)
	if !ok {
		return nil, 0, fault.ErrNotTransactionPack
	}
	nonce, ok := unpackBytes(record, &n, maxNonceLength)
	if !ok {
		return nil, 0, fault.ErrNotTransactionPack
	}
	signer, ok := unpackBytes(record, &n, maxSignerLength)
	if !ok {
		return nil, 0, fault.ErrNotTransactionPack
	}
	payloadHash, ok := unpackBytes(record, &n, maxHashLength)
	if !ok {
		return nil, 0, fault.ErrNotTransactionPack
	}
	payload, ok := unpackBytes(record, &n, maxPayloadLength)
	if !ok {
		return nil, 0, fault.ErrNotTransactionPack
	}

	t = &Transaction{
		Header: Header{
			FamilyName:      string(familyName),
			FamilyVersion:   string(familyVersion),
			Inputs:          inputs,
			Outputs:         outputs,
			Nonce:           string(nonce),
			SignerPublicKey: signer,
			PayloadHash:     payloadHash,
		},
		Payload: payload,
	}
	return t, n, nil
}

// copy out a Varint64(length) prefixed field and advance the offset
func unpackBytes(record Packed, n *int, maximum int) ([]byte, bool) {
	length, offset := util.ClippedVarint64(record[*n:], 0, maximum)
	if 0 == offset {
		return nil, false
	}
	*n += offset
	if *n+length > len(record) {
		return nil, false
	}
	data := make([]byte, length)
	copy(data, record[*n:*n+length])
	*n += length
	return data, true
}

func unpackStrings(record Packed, n *int) ([]string, bool) {
	count, offset := util.ClippedVarint64(record[*n:], 0, maxAddresses)
	if 0 == offset {
		return nil, false
	}
	*n += offset
	items := make([]string, 0, count)
	for i := 0; i < count; i += 1 {
		s, ok := unpackBytes(record, n, maxAddressLength)
		if !ok {
			return nil, false
		}
		items = append(items, string(s))
	}
	return items, true
}
