// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

// DoubleKeyHashAddresser - address from two natural keys
type DoubleKeyHashAddresser struct {
	prefix          string
	firstHashLength int
}

var _ Addresser[DoubleKey] = DoubleKeyHashAddresser{}

// NewDoubleKeyHashAddresser - create an addresser for a pair of keys
//
// if firstHashLength is nil the space after the prefix is split in half
// (rounded down), the second key always gets the remainder
func NewDoubleKeyHashAddresser(prefix string, firstHashLength *int) DoubleKeyHashAddresser {
	first := (Length - len(prefix)) / 2
	if nil != firstHashLength {
		first = *firstHashLength
	}
	return DoubleKeyHashAddresser{
		prefix:          prefix,
		firstHashLength: first,
	}
}

// Prefix - the configured prefix
func (a DoubleKeyHashAddresser) Prefix() string {
	return a.prefix
}

// HashLengths - fragment lengths of the first and second key hashes
func (a DoubleKeyHashAddresser) HashLengths() []int {
	return []int{
		a.firstHashLength,
		lastHashLength(len(a.prefix), a.firstHashLength),
	}
}

// Validate - check the configuration without computing an address
func (a DoubleKeyHashAddresser) Validate() error {
	return checkLengths(a.prefix, a.HashLengths()...)
}

// Compute - prefix ++ hash(first) ++ hash(second)
func (a DoubleKeyHashAddresser) Compute(key DoubleKey) (string, error) {
	secondHashLength := lastHashLength(len(a.prefix), a.firstHashLength)
	if err := checkLengths(a.prefix, a.firstHashLength, secondHashLength); nil != err {
		return "", err
	}
	return a.prefix +
		Hash(a.firstHashLength, key.First) +
		Hash(secondHashLength, key.Second), nil
}

// Normalize - first_second
func (a DoubleKeyHashAddresser) Normalize(key DoubleKey) string {
	return join(key.First, key.Second)
}
