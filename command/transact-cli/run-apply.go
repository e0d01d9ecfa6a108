// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/transact/state"
	"github.com/bitmark-inc/transact/storage"
)

type applyReply struct {
	TransactionID string         `json:"transactionId"`
	Packed        string         `json:"packed"`
	Receipt       *state.Receipt `json:"receipt"`
}

func runApply(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	family := c.String("family")
	if "" == family {
		return ErrMissingFamily
	}
	payload := c.String("payload")
	if "" == payload {
		return ErrMissingPayload
	}
	signer := c.String("signer")

	if m.verbose {
		fmt.Fprintf(m.e, "family: %s\n", family)
		fmt.Fprintf(m.e, "signer: %s\n", signer)
		fmt.Fprintf(m.e, "payload: %q\n", payload)
	}

	reply, err := apply(m.config, family, signer, payload)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

// apply one payload and commit the result to the database
func apply(config *Configuration, family string, signer string, payload string) (*applyReply, error) {

	f := newFamilies(config)

	txn, err := f.transaction(family, signer, []byte(payload))
	if nil != err {
		return nil, err
	}

	registry, err := f.registry()
	if nil != err {
		return nil, err
	}

	err = storage.Initialise(config.Database.Name, storage.ReadWrite)
	if nil != err {
		return nil, err
	}
	defer storage.Finalise()

	receipt, err := registry.Execute(txn)
	if nil != err {
		return nil, err
	}

	return &applyReply{
		TransactionID: txn.ID(),
		Packed:        hex.EncodeToString(txn.Pack()),
		Receipt:       receipt,
	}, nil
}
