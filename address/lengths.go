// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"fmt"

	"github.com/bitmark-inc/transact/fault"
)

// the last fragment takes whatever the prefix and the earlier fragments
// leave, so the total is exact whatever rounding produced the earlier
// lengths
func lastHashLength(prefixLength int, resolved ...int) int {
	remaining := Length - prefixLength
	for _, l := range resolved {
		remaining -= l
	}
	return remaining
}

// resolve the first and second fragment lengths of a triple key address
//
//	first  second  ->  first                  second
//	set    set         as given               as given
//	nil    set         (remaining-second)/2   as given
//	set    nil         as given               (remaining-first)/2
//	nil    nil         remaining/3            remaining/3
func hashLengths(prefixLength int, first *int, second *int) (int, int) {
	remaining := Length - prefixLength
	switch {
	case nil != first && nil != second:
		return *first, *second
	case nil == first && nil != second:
		return (remaining - *second) / 2, *second
	case nil != first && nil == second:
		return *first, (remaining - *first) / 2
	default:
		return remaining / 3, remaining / 3
	}
}

// verify that the prefix and fragments exactly fill an address
func checkLengths(prefix string, lengths ...int) error {
	if len(prefix) > Length {
		return fmt.Errorf("%w: prefix: %q  length: %d  maximum: %d", fault.ErrPrefixTooLong, prefix, len(prefix), Length)
	}

	total := len(prefix)
	for i, l := range lengths {
		if l < 0 {
			return fmt.Errorf("%w: fragment: %d  length: %d", fault.ErrNegativeHashLength, i+1, l)
		}
		if l > MaximumHashLength {
			return fmt.Errorf("%w: fragment: %d  length: %d  maximum: %d", fault.ErrHashLengthExceedsDigest, i+1, l, MaximumHashLength)
		}
		total += l
	}

	if Length != total {
		return fmt.Errorf("%w: total: %d  expected: %d", fault.ErrHashLengthMismatch, total, Length)
	}
	return nil
}
