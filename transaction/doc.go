// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - the transaction as handed to a family handler
//
// a transaction is a header naming the family, its version, the signer
// and the declared input/output addresses, followed by an opaque
// payload that only the family handler interprets.
//
// Packed form (all lengths are Varint64):
//
//	Varint64(tag)
//	family name, family version
//	count of inputs, each input
//	count of outputs, each output
//	nonce, signer public key, payload hash
//	payload
package transaction
