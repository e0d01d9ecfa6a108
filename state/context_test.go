// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/transact/address"
	"github.com/bitmark-inc/transact/fault"
	"github.com/bitmark-inc/transact/handler"
	"github.com/bitmark-inc/transact/state"
	"github.com/bitmark-inc/transact/storage"
)

func addressOf(key string) string {
	a, _ := address.NewKeyHashAddresser("5b7349").Compute(key)
	return a
}

func newContext(trx storage.Transaction) *state.Context {
	return state.NewContext(logger.New("state"), trx, "0123")
}

func TestSetGetDelete(t *testing.T) {
	trx := setup(t)
	defer teardown()

	ctx := newContext(trx)
	one := addressOf("one")
	two := addressOf("two")
	three := addressOf("three")

	err := ctx.SetStateEntries([]handler.StateEntry{
		{Address: one, Value: []byte("1")},
		{Address: two, Value: []byte("2")},
	})
	assert.Nil(t, err, "set error")

	entries, err := ctx.GetStateEntries([]string{three, two, one})
	assert.Nil(t, err, "get error")
	assert.Equal(t, []handler.StateEntry{
		{Address: two, Value: []byte("2")},
		{Address: one, Value: []byte("1")},
	}, entries, "wrong entries")

	deleted, err := ctx.DeleteStateEntries([]string{one, three})
	assert.Nil(t, err, "delete error")
	assert.Equal(t, []string{one}, deleted, "wrong deleted addresses")

	entries, err = ctx.GetStateEntries([]string{one})
	assert.Nil(t, err, "get error")
	assert.Equal(t, 0, len(entries), "deleted entry still present")

	assert.Nil(t, trx.Commit(), "commit error")

	value, found := storage.Pool.State.Get(mustDecode(t, two))
	assert.True(t, found, "entry not committed")
	assert.Equal(t, []byte("2"), value, "wrong committed value")
}

func TestInvalidAddresses(t *testing.T) {
	trx := setup(t)
	defer teardown()

	ctx := newContext(trx)
	good := addressOf("good")

	items := []string{
		"",
		"5b7349",
		strings.ToUpper(good),
		good + "0",
		good[:68] + "zz",
	}

	for i, bad := range items {
		_, err := ctx.GetStateEntries([]string{good, bad})
		assert.ErrorIs(t, err, fault.ErrInvalidAddress, "%d: get accepted: %q", i, bad)

		err = ctx.SetStateEntries([]handler.StateEntry{
			{Address: good, Value: []byte("v")},
			{Address: bad, Value: []byte("v")},
		})
		assert.ErrorIs(t, err, fault.ErrInvalidAddress, "%d: set accepted: %q", i, bad)

		_, err = ctx.DeleteStateEntries([]string{good, bad})
		assert.ErrorIs(t, err, fault.ErrInvalidAddress, "%d: delete accepted: %q", i, bad)
	}

	// nothing from a rejected set was written
	entries, err := ctx.GetStateEntries([]string{good})
	assert.Nil(t, err, "get error")
	assert.Equal(t, 0, len(entries), "partial set written")
	trx.Abort()
}

func TestReceipt(t *testing.T) {
	trx := setup(t)
	defer teardown()

	ctx := newContext(trx)

	assert.Nil(t, ctx.AddReceiptData([]byte("first")), "receipt data error")
	assert.Nil(t, ctx.AddReceiptData(nil), "receipt data error")
	assert.Nil(t, ctx.AddEvent("xo/create", []handler.Attribute{{Key: "name", Value: "game"}}, []byte("data")), "event error")
	assert.Equal(t, fault.ErrEmptyEventType, ctx.AddEvent("", nil, nil), "empty event type accepted")

	receipt := ctx.Receipt()
	assert.Equal(t, "0123", receipt.TransactionID, "wrong transaction id")
	assert.Equal(t, [][]byte{[]byte("first"), {}}, receipt.Data, "wrong receipt data")
	assert.Equal(t, []state.Event{
		{
			Type:       "xo/create",
			Attributes: []handler.Attribute{{Key: "name", Value: "game"}},
			Data:       []byte("data"),
		},
	}, receipt.Events, "wrong events")
	trx.Abort()
}

func mustDecode(t *testing.T, a string) []byte {
	b, err := hex.DecodeString(a)
	if nil != err {
		t.Fatalf("invalid hex: %q", a)
	}
	return b
}
