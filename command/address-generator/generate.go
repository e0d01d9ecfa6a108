// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/transact/address"
)

type generated struct {
	address    string
	normalized string
	lengths    []int
}

// select the addresser from the number of keys
func generate(prefix string, first *int, second *int, keys []string) (*generated, error) {
	switch len(keys) {
	case 1:
		if nil != first || nil != second {
			return nil, fmt.Errorf("fragment lengths need more than one key")
		}
		a := address.NewKeyHashAddresser(prefix)
		return compute[string](a, keys[0], a.HashLengths())

	case 2:
		if nil != second {
			return nil, fmt.Errorf("second length needs three keys")
		}
		a := address.NewDoubleKeyHashAddresser(prefix, first)
		key := address.DoubleKey{First: keys[0], Second: keys[1]}
		return compute[address.DoubleKey](a, key, a.HashLengths())

	case 3:
		a := address.NewTripleKeyHashAddresser(prefix, first, second)
		key := address.TripleKey{First: keys[0], Second: keys[1], Third: keys[2]}
		return compute[address.TripleKey](a, key, a.HashLengths())

	default:
		return nil, fmt.Errorf("expected 1 to 3 keys, got: %d", len(keys))
	}
}

func compute[K comparable](a address.Addresser[K], key K, lengths []int) (*generated, error) {
	s, err := a.Compute(key)
	if nil != err {
		return nil, err
	}
	return &generated{
		address:    s,
		normalized: a.Normalize(key),
		lengths:    lengths,
	}, nil
}
