// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - per owner asset balances as a transaction family
//
// payload: "action,asset,amount[,recipient]"
//
//	mint      credit amount of asset to the signer
//	transfer  move amount of asset from the signer to recipient
//
// each balance is stored under the (owner, asset) address as an eight
// byte big endian amount; a balance that reaches zero is deleted
package balance
