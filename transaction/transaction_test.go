// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/transact/fault"
	"github.com/bitmark-inc/transact/transaction"
)

var signer = []byte("hello world")

func TestNew(t *testing.T) {
	txn := transaction.New("xo", "1.0", signer, []byte("game,create,"))

	assert.Equal(t, "xo", txn.Header.FamilyName, "wrong family name")
	assert.Equal(t, "1.0", txn.Header.FamilyVersion, "wrong family version")
	assert.Equal(t, 36, len(txn.Header.Nonce), "nonce is not a uuid")
	assert.Equal(t, 64, len(txn.Header.PayloadHash), "wrong payload hash size")
	assert.Equal(t, transaction.PayloadHash([]byte("game,create,")), txn.Header.PayloadHash, "wrong payload hash")
	assert.Nil(t, txn.Verify(), "new transaction does not verify")

	other := transaction.New("xo", "1.0", signer, []byte("game,create,"))
	assert.NotEqual(t, txn.Header.Nonce, other.Header.Nonce, "nonce reused")
	assert.NotEqual(t, txn.ID(), other.ID(), "identical id for different nonce")
}

func TestVerify(t *testing.T) {
	items := []struct {
		modify func(*transaction.Transaction)
		err    error
	}{
		{func(txn *transaction.Transaction) {}, nil},
		{func(txn *transaction.Transaction) { txn.Header.FamilyName = "" }, fault.ErrEmptyFamilyName},
		{func(txn *transaction.Transaction) { txn.Header.FamilyVersion = "" }, fault.ErrEmptyFamilyVersion},
		{func(txn *transaction.Transaction) { txn.Header.SignerPublicKey = nil }, fault.ErrInvalidSigner},
		{func(txn *transaction.Transaction) { txn.Payload = []byte("changed") }, fault.ErrPayloadHashMismatch},
		{func(txn *transaction.Transaction) { txn.Header.PayloadHash = nil }, fault.ErrPayloadHashMismatch},
	}

	for i, item := range items {
		txn := transaction.New("balance", "1.0", signer, []byte("mint,gold,10"))
		item.modify(txn)
		assert.Equal(t, item.err, txn.Verify(), "%d: wrong verify result", i)
	}
}

func TestSigner(t *testing.T) {
	txn := transaction.New("xo", "1.0", signer, nil)
	assert.Equal(t, "StV1DL6CwTryKyV", txn.Signer(), "wrong base58 signer")

	decoded, err := transaction.SignerFromString("StV1DL6CwTryKyV")
	assert.Nil(t, err, "decode error")
	assert.Equal(t, signer, decoded, "wrong decoded signer")

	_, err = transaction.SignerFromString("0OIl")
	assert.True(t, fault.IsErrInvalid(err), "invalid base58 accepted: %v", err)

	_, err = transaction.SignerFromString("")
	assert.Equal(t, fault.ErrInvalidSigner, err, "empty signer accepted")
}

func TestPackUnpack(t *testing.T) {
	txn := transaction.New("balance", "1.0", signer, []byte("transfer,gold,5,bob"))
	txn.Header.Inputs = []string{"b41a9c01", "b41a9c02"}
	txn.Header.Outputs = []string{"b41a9c03"}

	packed := txn.Pack()
	unpacked, n, err := packed.Unpack()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, len(packed), n, "wrong consumed length")
	assert.Equal(t, txn, unpacked, "unpacked transaction differs")
	assert.Equal(t, txn.ID(), unpacked.ID(), "id changed over pack")
	assert.Nil(t, unpacked.Verify(), "unpacked transaction does not verify")
}

func TestUnpackConcatenated(t *testing.T) {
	first := transaction.New("xo", "1.0", signer, []byte("a,create,"))
	second := transaction.New("xo", "1.0", signer, []byte("b,create,"))

	packed := append(first.Pack(), second.Pack()...)

	one, n, err := packed.Unpack()
	assert.Nil(t, err, "first unpack error")
	assert.Equal(t, first.ID(), one.ID(), "wrong first transaction")

	two, m, err := packed[n:].Unpack()
	assert.Nil(t, err, "second unpack error")
	assert.Equal(t, second.ID(), two.ID(), "wrong second transaction")
	assert.Equal(t, len(packed), n+m, "bytes left over")
}

func TestUnpackTruncated(t *testing.T) {
	packed := transaction.New("xo", "1.0", signer, []byte("a,take,4")).Pack()

	for l := 0; l < len(packed); l += 1 {
		txn, n, err := packed[:l].Unpack()
		assert.Nil(t, txn, "%d: transaction from truncated data", l)
		assert.Equal(t, 0, n, "%d: consumed truncated data", l)
		assert.Equal(t, fault.ErrNotTransactionPack, err, "%d: wrong error", l)
	}
}

func TestUnpackWrongTag(t *testing.T) {
	packed := transaction.New("xo", "1.0", signer, nil).Pack()
	packed[0] = 0x01

	_, _, err := packed.Unpack()
	assert.Equal(t, fault.ErrNotTransactionPack, err, "wrong tag accepted")
}
