// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/transact/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{137, []byte{0x89, 0x01}},
	{255, []byte{0xff, 0x01}},
	{256, []byte{0x80, 0x02}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xfffffffffffffffe, []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

var varint64TruncatedTests = [][]byte{
	{},
	{0x80},
	{0xff},
	{0x80, 0x80},
	{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		assert.Equal(t, item.encoded, util.ToVarint64(item.value), "%d: wrong encoding of: %x", i, item.value)
	}
}

func TestFromVarint64(t *testing.T) {
	suffix := []byte{0xff, 0x97, 0x23}

	for i, item := range varint64Tests {
		value, count := util.FromVarint64(item.encoded)
		assert.Equal(t, item.value, value, "%d: wrong value", i)
		assert.Equal(t, len(item.encoded), count, "%d: wrong count", i)

		b := append(append([]byte{}, item.encoded...), suffix...)
		value, count = util.FromVarint64(b)
		assert.Equal(t, item.value, value, "%d: wrong value with suffix", i)
		assert.Equal(t, suffix, b[count:], "%d: wrong suffix", i)
	}

	for i, item := range varint64TruncatedTests {
		value, count := util.FromVarint64(item)
		assert.Equal(t, uint64(0), value, "%d: truncated value", i)
		assert.Equal(t, 0, count, "%d: truncated count", i)
	}
}

func TestClippedVarint64(t *testing.T) {
	items := []struct {
		value    uint64
		minimum  int
		maximum  int
		expected int
		ok       bool
	}{
		{0, 0, 10, 0, true},
		{10, 0, 10, 10, true},
		{11, 0, 10, 0, false},
		{1, 2, 10, 0, false},
		{0xffffffffffffffff, 0, 8192, 0, false},
		{5, 10, 1, 0, false},
	}

	for i, item := range items {
		value, count := util.ClippedVarint64(util.ToVarint64(item.value), item.minimum, item.maximum)
		assert.Equal(t, item.expected, value, "%d: wrong value", i)
		assert.Equal(t, item.ok, 0 != count, "%d: wrong validity", i)
	}
}

func TestAppendFields(t *testing.T) {
	buffer := util.AppendString(nil, "xo")
	buffer = util.AppendBytes(buffer, []byte{0x01, 0x02, 0x03})
	buffer = util.AppendVarint64(buffer, 300)

	assert.Equal(t, []byte{0x02, 'x', 'o', 0x03, 0x01, 0x02, 0x03, 0xac, 0x02}, buffer, "wrong packed fields")
}
