// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type addressReply struct {
	Family  string `json:"family"`
	Key     string `json:"key"`
	Address string `json:"address"`
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	family := c.String("family")
	if "" == family {
		return ErrMissingFamily
	}

	reply, err := familyAddress(m.config, family, c.Args())
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func familyAddress(config *Configuration, family string, keys []string) (*addressReply, error) {
	a, normalized, err := newFamilies(config).address(family, keys)
	if nil != err {
		return nil, err
	}
	return &addressReply{
		Family:  family,
		Key:     normalized,
		Address: a,
	}, nil
}
