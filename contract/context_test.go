// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract_test

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/transact/address"
	"github.com/bitmark-inc/transact/contract"
	"github.com/bitmark-inc/transact/fault"
	"github.com/bitmark-inc/transact/handler"
	"github.com/bitmark-inc/transact/handler/mocks"
)

const prefix = "5b7349"

var errRaw = errors.New("raw context failure")

func mustCompute[K comparable](t *testing.T, a address.Addresser[K], key K) string {
	addr, err := a.Compute(key)
	if nil != err {
		t.Fatalf("compute error: %s", err)
	}
	return addr
}

func TestGet(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	addresser := address.NewKeyHashAddresser(prefix)
	a := mustCompute[string](t, addresser, "a")
	b := mustCompute[string](t, addresser, "b")

	m := mocks.NewMockTransactionContext(ctl)
	m.EXPECT().GetStateEntries([]string{a, b}).Return([]handler.StateEntry{
		{Address: a, Value: []byte("value-a")},
	}, nil).Times(1)

	ctx := contract.NewKeyValueTransactionContext[string](m, addresser)
	values, err := ctx.Get([]string{"a", "b"})
	assert.Nil(t, err, "get error")
	assert.Equal(t, map[string][]byte{"a": []byte("value-a")}, values, "wrong values")

	_, ok := values["b"]
	assert.False(t, ok, "missing key present in result")
}

func TestGetDuplicateKeys(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	addresser := address.NewKeyHashAddresser(prefix)
	a := mustCompute[string](t, addresser, "a")

	m := mocks.NewMockTransactionContext(ctl)
	m.EXPECT().GetStateEntries([]string{a}).Return([]handler.StateEntry{
		{Address: a, Value: []byte("value-a")},
	}, nil).Times(1)

	ctx := contract.NewKeyValueTransactionContext[string](m, addresser)
	values, err := ctx.Get([]string{"a", "a"})
	assert.Nil(t, err, "get error")
	assert.Equal(t, 1, len(values), "wrong number of values")
}

func TestGetEmpty(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockTransactionContext(ctl)
	m.EXPECT().GetStateEntries([]string{}).Return(nil, nil).Times(1)

	ctx := contract.NewKeyValueTransactionContext[string](m, address.NewKeyHashAddresser(prefix))
	values, err := ctx.Get([]string{})
	assert.Nil(t, err, "get error")
	assert.Equal(t, 0, len(values), "values from nothing")
}

// no raw call is made when any key fails to translate
func TestTranslationFailureIsAllOrNothing(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockTransactionContext(ctl)
	addresser := address.NewKeyHashAddresser(strings.Repeat("a", address.Length+1))
	ctx := contract.NewKeyValueTransactionContext[string](m, addresser)

	values, err := ctx.Get([]string{"a", "b"})
	assert.Nil(t, values, "values returned with error")
	assert.ErrorIs(t, err, fault.ErrAddressTranslation, "get: wrong error")
	assert.ErrorIs(t, err, fault.ErrPrefixTooLong, "get: cause lost")
	assert.True(t, fault.IsErrConfiguration(err), "get: cause class lost")

	err = ctx.Set(map[string][]byte{"a": []byte("1")})
	assert.ErrorIs(t, err, fault.ErrAddressTranslation, "set: wrong error")

	deleted, err := ctx.Delete([]string{"a"})
	assert.Nil(t, deleted, "deleted returned with error")
	assert.ErrorIs(t, err, fault.ErrAddressTranslation, "delete: wrong error")
}

func TestGetContextError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockTransactionContext(ctl)
	m.EXPECT().GetStateEntries(gomock.Any()).Return(nil, errRaw).Times(1)

	ctx := contract.NewKeyValueTransactionContext[string](m, address.NewKeyHashAddresser(prefix))
	_, err := ctx.Get([]string{"a"})
	assert.ErrorIs(t, err, fault.ErrStateContext, "wrong error")
	assert.ErrorIs(t, err, errRaw, "raw error lost")
}

func TestSetSortedByAddress(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	addresser := address.NewKeyHashAddresser(prefix)
	values := map[string][]byte{
		"one":   []byte("1"),
		"two":   []byte("2"),
		"three": []byte("3"),
		"four":  []byte("4"),
	}

	expected := make([]handler.StateEntry, 0, len(values))
	for key, value := range values {
		expected = append(expected, handler.StateEntry{
			Address: mustCompute[string](t, addresser, key),
			Value:   value,
		})
	}
	sort.Slice(expected, func(i, j int) bool {
		return expected[i].Address < expected[j].Address
	})

	m := mocks.NewMockTransactionContext(ctl)
	m.EXPECT().SetStateEntries(expected).Return(nil).Times(1)

	ctx := contract.NewKeyValueTransactionContext[string](m, addresser)
	assert.Nil(t, ctx.Set(values), "set error")
}

func TestSetContextError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockTransactionContext(ctl)
	m.EXPECT().SetStateEntries(gomock.Any()).Return(errRaw).Times(1)

	ctx := contract.NewKeyValueTransactionContext[string](m, address.NewKeyHashAddresser(prefix))
	err := ctx.Set(map[string][]byte{"a": []byte("1")})
	assert.ErrorIs(t, err, fault.ErrStateContext, "wrong error")
	assert.ErrorIs(t, err, errRaw, "raw error lost")
}

func TestDelete(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	addresser := address.NewKeyHashAddresser(prefix)
	a := mustCompute[string](t, addresser, "a")
	b := mustCompute[string](t, addresser, "b")
	c := mustCompute[string](t, addresser, "c")

	m := mocks.NewMockTransactionContext(ctl)
	m.EXPECT().DeleteStateEntries([]string{c, a, b}).Return([]string{a, c}, nil).Times(1)

	ctx := contract.NewKeyValueTransactionContext[string](m, addresser)
	deleted, err := ctx.Delete([]string{"c", "a", "b"})
	assert.Nil(t, err, "delete error")
	assert.Equal(t, []string{"c", "a"}, deleted, "wrong deleted keys")
}

func TestDeleteNeverSet(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockTransactionContext(ctl)
	m.EXPECT().DeleteStateEntries(gomock.Any()).Return([]string{}, nil).Times(1)

	ctx := contract.NewKeyValueTransactionContext[string](m, address.NewKeyHashAddresser(prefix))
	deleted, err := ctx.Delete([]string{"never-set"})
	assert.Nil(t, err, "delete error")
	assert.NotNil(t, deleted, "nil deleted list")
	assert.Equal(t, 0, len(deleted), "never set key deleted")
}

func TestDeleteContextError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockTransactionContext(ctl)
	m.EXPECT().DeleteStateEntries(gomock.Any()).Return(nil, errRaw).Times(1)

	ctx := contract.NewKeyValueTransactionContext[string](m, address.NewKeyHashAddresser(prefix))
	_, err := ctx.Delete([]string{"a"})
	assert.ErrorIs(t, err, fault.ErrStateContext, "wrong error")
	assert.ErrorIs(t, err, errRaw, "raw error lost")
}

func TestReceiptAndEventPassThrough(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	attributes := []handler.Attribute{{Key: "name", Value: "game"}}

	m := mocks.NewMockTransactionContext(ctl)
	gomock.InOrder(
		m.EXPECT().AddReceiptData([]byte("receipt")).Return(nil).Times(1),
		m.EXPECT().AddEvent("xo/create", attributes, []byte("data")).Return(nil).Times(1),
		m.EXPECT().AddEvent("xo/take", gomock.Any(), gomock.Any()).Return(errRaw).Times(1),
	)

	ctx := contract.NewKeyValueTransactionContext[string](m, address.NewKeyHashAddresser(prefix))
	assert.Nil(t, ctx.AddReceiptData([]byte("receipt")), "receipt error")
	assert.Nil(t, ctx.AddEvent("xo/create", attributes, []byte("data")), "event error")

	err := ctx.AddEvent("xo/take", nil, nil)
	assert.ErrorIs(t, err, errRaw, "raw error lost")
}

func TestDoubleKeyContext(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	addresser := address.NewDoubleKeyHashAddresser("b41a9c", address.HashLength(40))
	alice := address.DoubleKey{First: "alice", Second: "gold"}
	bob := address.DoubleKey{First: "bob", Second: "gold"}
	aliceAddress := mustCompute[address.DoubleKey](t, addresser, alice)
	bobAddress := mustCompute[address.DoubleKey](t, addresser, bob)

	m := mocks.NewMockTransactionContext(ctl)
	m.EXPECT().GetStateEntries([]string{aliceAddress, bobAddress}).Return([]handler.StateEntry{
		{Address: bobAddress, Value: []byte{0x02}},
		{Address: aliceAddress, Value: []byte{0x01}},
	}, nil).Times(1)

	ctx := contract.NewKeyValueTransactionContext[address.DoubleKey](m, addresser)
	values, err := ctx.Get([]address.DoubleKey{alice, bob})
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte{0x01}, values[alice], "wrong alice value")
	assert.Equal(t, []byte{0x02}, values[bob], "wrong bob value")
}

// a 64 character first fragment leaves no room for the second key
func collidingAddresser() address.Addresser[address.DoubleKey] {
	return address.NewDoubleKeyHashAddresser("b41a9c", address.HashLength(64))
}

func TestGetKeysSharingAnAddress(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	addresser := collidingAddresser()
	gold := address.DoubleKey{First: "alice", Second: "gold"}
	silver := address.DoubleKey{First: "alice", Second: "silver"}
	shared := mustCompute[address.DoubleKey](t, addresser, gold)
	assert.Equal(t, shared, mustCompute[address.DoubleKey](t, addresser, silver), "keys do not share an address")

	m := mocks.NewMockTransactionContext(ctl)
	m.EXPECT().GetStateEntries([]string{shared}).Return([]handler.StateEntry{
		{Address: shared, Value: []byte{0x07}},
	}, nil).Times(1)

	ctx := contract.NewKeyValueTransactionContext[address.DoubleKey](m, addresser)
	values, err := ctx.Get([]address.DoubleKey{gold, silver})
	assert.Nil(t, err, "get error")
	assert.Equal(t, map[address.DoubleKey][]byte{
		gold:   {0x07},
		silver: {0x07},
	}, values, "every key of the address must receive the value")
}

func TestDeleteKeysSharingAnAddress(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	addresser := collidingAddresser()
	gold := address.DoubleKey{First: "alice", Second: "gold"}
	silver := address.DoubleKey{First: "alice", Second: "silver"}
	bob := address.DoubleKey{First: "bob", Second: "gold"}
	shared := mustCompute[address.DoubleKey](t, addresser, gold)
	bobAddress := mustCompute[address.DoubleKey](t, addresser, bob)

	m := mocks.NewMockTransactionContext(ctl)
	m.EXPECT().DeleteStateEntries([]string{shared, bobAddress}).Return([]string{shared}, nil).Times(1)

	ctx := contract.NewKeyValueTransactionContext[address.DoubleKey](m, addresser)
	deleted, err := ctx.Delete([]address.DoubleKey{silver, bob, gold, silver})
	assert.Nil(t, err, "delete error")
	assert.Equal(t, []address.DoubleKey{silver, gold}, deleted, "wrong deleted keys")
}

// nothing is written when two distinct keys compute the same address
func TestSetKeysSharingAnAddress(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockTransactionContext(ctl)

	ctx := contract.NewKeyValueTransactionContext[address.DoubleKey](m, collidingAddresser())
	err := ctx.Set(map[address.DoubleKey][]byte{
		{First: "alice", Second: "gold"}:   {0x01},
		{First: "alice", Second: "silver"}: {0x02},
	})
	assert.ErrorIs(t, err, fault.ErrAddressCollision, "wrong error")
	assert.True(t, fault.IsErrContext(err), "wrong error class")
	assert.Contains(t, err.Error(), "alice", "keys missing from error")
}
