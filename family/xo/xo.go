// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xo

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/transact/address"
	"github.com/bitmark-inc/transact/contract"
	"github.com/bitmark-inc/transact/handler"
	"github.com/bitmark-inc/transact/transaction"
)

// family identity
const (
	FamilyName    = "xo"
	FamilyVersion = "1.0"
	DefaultPrefix = "5b7349"
)

// Handler - the xo smart contract
type Handler struct {
	log       *logger.L
	addresser address.KeyHashAddresser
}

var _ contract.SmartContract[string] = &Handler{}

// New - handler storing games under prefix
func New(prefix string) *Handler {
	return &Handler{
		log:       logger.New("xo"),
		addresser: address.NewKeyHashAddresser(prefix),
	}
}

func (h *Handler) FamilyName() string {
	return FamilyName
}

func (h *Handler) FamilyVersions() []string {
	return []string{FamilyVersion}
}

func (h *Handler) Addresser() address.Addresser[string] {
	return h.addresser
}

// Apply - run one payload against the stored game
func (h *Handler) Apply(txn *transaction.Transaction, ctx *contract.KeyValueTransactionContext[string]) error {
	payload, err := ParsePayload(txn.Payload)
	if nil != err {
		return err
	}
	signer := txn.Signer()

	values, err := ctx.Get([]string{payload.Name})
	if nil != err {
		return handler.NewInternalError(err)
	}

	var game *Game
	if data, ok := values[payload.Name]; ok {
		game, err = UnpackGame(data)
		if nil != err {
			return handler.NewInternalError(err)
		}
	}

	h.log.Debugf("apply: %s  signer: %s", payload, signer)

	switch payload.Action {
	case ActionCreate:
		if nil != game {
			return handler.NewInvalidTransactionError("game: %s already exists", payload.Name)
		}
		game = NewGame(payload.Name)
		if err := ctx.Set(map[string][]byte{payload.Name: game.Pack()}); nil != err {
			return handler.NewInternalError(err)
		}

	case ActionTake:
		if nil == game {
			return handler.NewInvalidTransactionError("game: %s does not exist", payload.Name)
		}
		if err := game.Take(payload.Space, signer); nil != err {
			return handler.NewInvalidTransactionError("%s", err)
		}
		if err := ctx.Set(map[string][]byte{payload.Name: game.Pack()}); nil != err {
			return handler.NewInternalError(err)
		}

	case ActionDelete:
		if nil == game {
			return handler.NewInvalidTransactionError("game: %s does not exist", payload.Name)
		}
		if _, err := ctx.Delete([]string{payload.Name}); nil != err {
			return handler.NewInternalError(err)
		}
	}

	attributes := []handler.Attribute{
		{Key: "name", Value: game.Name},
		{Key: "state", Value: game.State},
		{Key: "signer", Value: signer},
	}
	if err := ctx.AddEvent(FamilyName+"/"+payload.Action, attributes, nil); nil != err {
		return handler.NewInternalError(err)
	}
	if err := ctx.AddReceiptData(game.Pack()); nil != err {
		return handler.NewInternalError(err)
	}
	return nil
}
