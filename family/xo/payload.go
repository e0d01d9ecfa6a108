// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xo

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/transact/handler"
)

// payload actions
const (
	ActionCreate = "create"
	ActionTake   = "take"
	ActionDelete = "delete"
)

// Payload - decoded transaction payload
type Payload struct {
	Name   string
	Action string
	Space  int
}

// ParsePayload - decode "name,action,space"
func ParsePayload(data []byte) (*Payload, error) {
	fields := strings.Split(string(data), ",")
	if 3 != len(fields) {
		return nil, handler.NewInvalidTransactionError("invalid payload: %q", data)
	}

	p := &Payload{
		Name:   fields[0],
		Action: fields[1],
	}
	if "" == p.Name {
		return nil, handler.NewInvalidTransactionError("name is required")
	}
	if strings.Contains(p.Name, "|") {
		return nil, handler.NewInvalidTransactionError("invalid name: %q", p.Name)
	}

	switch p.Action {
	case ActionCreate, ActionDelete:
	case ActionTake:
		space, err := strconv.Atoi(fields[2])
		if nil != err || space < 1 || space > 9 {
			return nil, handler.NewInvalidTransactionError("invalid space: %q", fields[2])
		}
		p.Space = space
	default:
		return nil, handler.NewInvalidTransactionError("invalid action: %q", p.Action)
	}
	return p, nil
}

// String - the payload form
func (p *Payload) String() string {
	space := ""
	if ActionTake == p.Action {
		space = strconv.Itoa(p.Space)
	}
	return p.Name + "," + p.Action + "," + space
}
