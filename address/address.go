// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
)

// Length - number of hex characters in every radix address
const Length = 70

// MaximumHashLength - number of hex characters in a SHA-512 digest
const MaximumHashLength = 2 * sha512.Size

// Separator - placed between natural keys by Normalize
const Separator = "_"

// Addresser - compute a radix address from natural keys of type K
type Addresser[K comparable] interface {
	// Compute - the radix address for the natural key
	Compute(key K) (string, error)

	// Normalize - a human readable form of the natural key
	//
	// not reversible if a key contains the Separator
	Normalize(key K) string
}

// DoubleKey - natural key for a DoubleKeyHashAddresser
type DoubleKey struct {
	First  string
	Second string
}

// TripleKey - natural key for a TripleKeyHashAddresser
type TripleKey struct {
	First  string
	Second string
	Third  string
}

// Hash - the first length characters of hex(SHA-512(key))
//
// length must be in the range 0..MaximumHashLength
func Hash(length int, key string) string {
	digest := sha512.Sum512([]byte(key))
	return hex.EncodeToString(digest[:])[:length]
}

// HashLength - make an explicit fragment length for the multiple key
// constructors, nil selects the default allocation
func HashLength(length int) *int {
	return &length
}

func join(keys ...string) string {
	return strings.Join(keys, Separator)
}
