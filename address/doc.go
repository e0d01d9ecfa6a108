// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - compute radix addresses from natural keys
//
// A radix address is a fixed length string of lowercase hex characters
// used as the location of an entry in the state store:
//
//	prefix ++ fragment_1 [++ fragment_2 [++ fragment_3]]
//
// Notes:
//  1. ++         = concatenation
//  2. prefix     = family specific string supplied by the handler
//  3. fragment_n = leading characters of hex(SHA-512(natural key n))
//  4. the last fragment is always sized so that the total is exactly Length
//
// Addressers are immutable values, safe to copy and to share between
// goroutines.
package address
