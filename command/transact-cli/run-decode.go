// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/transact/transaction"
)

type decodeReply struct {
	TransactionID string                   `json:"transactionId"`
	Signer        string                   `json:"signer"`
	Verified      bool                     `json:"verified"`
	Transaction   *transaction.Transaction `json:"transaction"`
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed := c.String("transaction")
	if "" == packed {
		return ErrMissingTransaction
	}

	reply, err := decode(packed)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

// unpack a hex encoded transaction, trailing data is an error
func decode(packedHex string) (*decodeReply, error) {
	packed, err := hex.DecodeString(packedHex)
	if nil != err {
		return nil, err
	}

	txn, n, err := transaction.Packed(packed).Unpack()
	if nil != err {
		return nil, err
	}
	if n != len(packed) {
		return nil, fmt.Errorf("unexpected trailing data: %d bytes", len(packed)-n)
	}

	return &decodeReply{
		TransactionID: txn.ID(),
		Signer:        txn.Signer(),
		Verified:      nil == txn.Verify(),
		Transaction:   txn,
	}, nil
}
