// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

// TripleKeyHashAddresser - address from three natural keys
type TripleKeyHashAddresser struct {
	prefix           string
	firstHashLength  int
	secondHashLength int
}

var _ Addresser[TripleKey] = TripleKeyHashAddresser{}

// NewTripleKeyHashAddresser - create an addresser for a triple of keys
//
// nil lengths are defaulted once here, the third key always gets the
// remainder when an address is computed
func NewTripleKeyHashAddresser(prefix string, firstHashLength *int, secondHashLength *int) TripleKeyHashAddresser {
	first, second := hashLengths(len(prefix), firstHashLength, secondHashLength)
	return TripleKeyHashAddresser{
		prefix:           prefix,
		firstHashLength:  first,
		secondHashLength: second,
	}
}

// Prefix - the configured prefix
func (a TripleKeyHashAddresser) Prefix() string {
	return a.prefix
}

// HashLengths - fragment lengths of the three key hashes
func (a TripleKeyHashAddresser) HashLengths() []int {
	return []int{
		a.firstHashLength,
		a.secondHashLength,
		lastHashLength(len(a.prefix), a.firstHashLength, a.secondHashLength),
	}
}

// Validate - check the configuration without computing an address
func (a TripleKeyHashAddresser) Validate() error {
	return checkLengths(a.prefix, a.HashLengths()...)
}

// Compute - prefix ++ hash(first) ++ hash(second) ++ hash(third)
func (a TripleKeyHashAddresser) Compute(key TripleKey) (string, error) {
	thirdHashLength := lastHashLength(len(a.prefix), a.firstHashLength, a.secondHashLength)
	if err := checkLengths(a.prefix, a.firstHashLength, a.secondHashLength, thirdHashLength); nil != err {
		return "", err
	}
	return a.prefix +
		Hash(a.firstHashLength, key.First) +
		Hash(a.secondHashLength, key.Second) +
		Hash(thirdHashLength, key.Third), nil
}

// Normalize - first_second_third
func (a TripleKeyHashAddresser) Normalize(key TripleKey) string {
	return join(key.First, key.Second, key.Third)
}
