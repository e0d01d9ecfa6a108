// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/transact/address"
	"github.com/bitmark-inc/transact/fault"
)

var abc = address.TripleKey{First: "a", Second: "b", Third: "c"}

func TestTripleKeyDefaultLength(t *testing.T) {
	addresser := address.NewTripleKeyHashAddresser("prefix", nil, nil)

	addr, err := addresser.Compute(abc)
	assert.Nil(t, err, "compute error")
	assert.Equal(t, "prefix", addr[:6], "wrong prefix")
	assert.Equal(t, address.Length, len(addr), "wrong address length")
	assert.Equal(t, address.Hash(21, "a"), addr[6:27], "wrong first hash")
	assert.Equal(t, address.Hash(21, "b"), addr[27:48], "wrong second hash")
	assert.Equal(t, address.Hash(22, "c"), addr[48:], "wrong third hash")

	assert.Equal(t, []int{21, 21, 22}, addresser.HashLengths(), "wrong hash lengths")
	assert.Equal(t, "a_b_c", addresser.Normalize(abc), "wrong normalized key")
}

func TestTripleKeyCustomFirstLength(t *testing.T) {
	addresser := address.NewTripleKeyHashAddresser("prefix", address.HashLength(14), nil)

	addr, err := addresser.Compute(abc)
	assert.Nil(t, err, "compute error")
	assert.Equal(t, address.Length, len(addr), "wrong address length")
	assert.Equal(t, address.Hash(14, "a"), addr[6:20], "wrong first hash")
	assert.Equal(t, address.Hash(25, "b"), addr[20:45], "wrong second hash")
	assert.Equal(t, address.Hash(25, "c"), addr[45:], "wrong third hash")
}

func TestTripleKeyCustomSecondLength(t *testing.T) {
	addresser := address.NewTripleKeyHashAddresser("prefix", nil, address.HashLength(14))

	addr, err := addresser.Compute(abc)
	assert.Nil(t, err, "compute error")
	assert.Equal(t, address.Length, len(addr), "wrong address length")
	assert.Equal(t, address.Hash(25, "a"), addr[6:31], "wrong first hash")
	assert.Equal(t, address.Hash(14, "b"), addr[31:45], "wrong second hash")
	assert.Equal(t, address.Hash(25, "c"), addr[45:], "wrong third hash")
}

func TestTripleKeyCustomLengths(t *testing.T) {
	addresser := address.NewTripleKeyHashAddresser("prefix", address.HashLength(10), address.HashLength(10))

	addr, err := addresser.Compute(abc)
	assert.Nil(t, err, "compute error")
	assert.Equal(t, address.Length, len(addr), "wrong address length")
	assert.Equal(t, address.Hash(10, "a"), addr[6:16], "wrong first hash")
	assert.Equal(t, address.Hash(10, "b"), addr[16:26], "wrong second hash")
	assert.Equal(t, address.Hash(44, "c"), addr[26:], "wrong third hash")
}

func TestTripleKeyFragmentIsolation(t *testing.T) {
	addresser := address.NewTripleKeyHashAddresser("prefix", nil, nil)

	original, err := addresser.Compute(abc)
	assert.Nil(t, err, "compute error")

	changed, err := addresser.Compute(address.TripleKey{First: "a", Second: "x", Third: "c"})
	assert.Nil(t, err, "compute error")
	assert.Equal(t, original[:27], changed[:27], "prefix or first fragment changed")
	assert.NotEqual(t, original[27:48], changed[27:48], "second fragment unchanged")
	assert.Equal(t, original[48:], changed[48:], "third fragment changed")
}

func TestTripleKeyInvalidLengths(t *testing.T) {
	items := []struct {
		first  *int
		second *int
		err    error
	}{
		{address.HashLength(40), address.HashLength(40), fault.ErrNegativeHashLength},
		{address.HashLength(-2), nil, fault.ErrNegativeHashLength},
		{nil, address.HashLength(-3), fault.ErrNegativeHashLength},
		{address.HashLength(65), nil, fault.ErrNegativeHashLength},
	}

	for i, item := range items {
		addresser := address.NewTripleKeyHashAddresser("prefix", item.first, item.second)
		addr, err := addresser.Compute(abc)
		assert.Equal(t, "", addr, "%d: address returned with error", i)
		assert.ErrorIs(t, err, item.err, "%d: wrong error", i)
		assert.NotNil(t, addresser.Validate(), "%d: invalid configuration accepted", i)
	}
}

func TestTripleKeyAllPrefixLengths(t *testing.T) {
	for l := 0; l <= address.Length; l += 1 {
		prefix := address.Hash(l, "prefix")
		addresser := address.NewTripleKeyHashAddresser(prefix, nil, nil)
		addr, err := addresser.Compute(abc)
		assert.Nil(t, err, "compute error for prefix length: %d", l)
		assert.Equal(t, address.Length, len(addr), "wrong length for prefix length: %d", l)
		assert.Equal(t, prefix, addr[:l], "wrong prefix for prefix length: %d", l)
	}
}
