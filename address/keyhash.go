// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

// KeyHashAddresser - address from a single natural key
type KeyHashAddresser struct {
	prefix string
}

var _ Addresser[string] = KeyHashAddresser{}

// NewKeyHashAddresser - the whole space after the prefix is taken by
// the hash of the key
func NewKeyHashAddresser(prefix string) KeyHashAddresser {
	return KeyHashAddresser{
		prefix: prefix,
	}
}

// Prefix - the configured prefix
func (a KeyHashAddresser) Prefix() string {
	return a.prefix
}

// HashLengths - fragment length of the key hash
func (a KeyHashAddresser) HashLengths() []int {
	return []int{lastHashLength(len(a.prefix))}
}

// Validate - check the configuration without computing an address
func (a KeyHashAddresser) Validate() error {
	return checkLengths(a.prefix, a.HashLengths()...)
}

// Compute - prefix ++ hash(key)
func (a KeyHashAddresser) Compute(key string) (string, error) {
	hashLength := lastHashLength(len(a.prefix))
	if err := checkLengths(a.prefix, hashLength); nil != err {
		return "", err
	}
	return a.prefix + Hash(hashLength, key), nil
}

// Normalize - the key itself
func (a KeyHashAddresser) Normalize(key string) string {
	return key
}
