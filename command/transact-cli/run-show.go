// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/transact/executor"
	"github.com/bitmark-inc/transact/state"
	"github.com/bitmark-inc/transact/storage"
	"github.com/bitmark-inc/transact/transaction"
)

type showTransactionReply struct {
	TransactionID string                   `json:"transactionId"`
	Transaction   *transaction.Transaction `json:"transaction"`
	Receipt       *state.Receipt           `json:"receipt"`
}

type stateEntry struct {
	Address string `json:"address"`
	Value   string `json:"value"`
}

type showStateReply struct {
	Entries []stateEntry `json:"entries"`
	Next    string       `json:"next,omitempty"`
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txId := c.String("txid")
	if "" != txId {
		reply, err := showTransaction(m.config, txId)
		if nil != err {
			return err
		}
		return printJson(m.w, reply)
	}

	if c.Bool("state") {
		reply, err := showState(m.config, c.String("start"), c.Int("count"))
		if nil != err {
			return err
		}
		return printJson(m.w, reply)
	}

	return ErrMissingQuery
}

// an applied transaction with its receipt
func showTransaction(config *Configuration, txId string) (*showTransactionReply, error) {
	err := storage.Initialise(config.Database.Name, storage.ReadOnly)
	if nil != err {
		return nil, err
	}
	defer storage.Finalise()

	txn, err := executor.Transaction(txId)
	if nil != err {
		return nil, err
	}
	receipt, err := executor.Receipt(txId)
	if nil != err {
		return nil, err
	}

	return &showTransactionReply{
		TransactionID: txId,
		Transaction:   txn,
		Receipt:       receipt,
	}, nil
}

// up to count state entries starting at a hex address
//
// Next is set when a full page was returned and can be given as the
// start of the following listing
func showState(config *Configuration, start string, count int) (*showStateReply, error) {
	startKey, err := hex.DecodeString(start)
	if nil != err {
		return nil, err
	}

	err = storage.Initialise(config.Database.Name, storage.ReadOnly)
	if nil != err {
		return nil, err
	}
	defer storage.Finalise()

	cursor := storage.Pool.State.NewFetchCursor()
	if len(startKey) > 0 {
		cursor.Seek(startKey)
	}
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	reply := &showStateReply{
		Entries: make([]stateEntry, len(elements)),
	}
	for i, e := range elements {
		reply.Entries[i] = stateEntry{
			Address: hex.EncodeToString(e.Key),
			Value:   hex.EncodeToString(e.Value),
		}
	}
	if n := len(elements); n == count {
		reply.Next = hex.EncodeToString(append(elements[n-1].Key, 0x00))
	}
	return reply, nil
}
