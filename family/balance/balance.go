// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/transact/address"
	"github.com/bitmark-inc/transact/contract"
	"github.com/bitmark-inc/transact/handler"
	"github.com/bitmark-inc/transact/transaction"
)

// family identity
const (
	FamilyName         = "balance"
	FamilyVersion      = "1.0"
	DefaultPrefix      = "b41a9c"
	DefaultOwnerLength = 40
)

// payload actions
const (
	ActionMint     = "mint"
	ActionTransfer = "transfer"
)

// Payload - decoded transaction payload
type Payload struct {
	Action    string
	Asset     string
	Amount    uint64
	Recipient string
}

// Handler - the balance smart contract
type Handler struct {
	log       *logger.L
	addresser address.DoubleKeyHashAddresser
}

var _ contract.SmartContract[address.DoubleKey] = &Handler{}

// New - handler storing balances under prefix with ownerLength
// characters of the address given to the owner hash
func New(prefix string, ownerLength int) *Handler {
	return &Handler{
		log:       logger.New("balance"),
		addresser: address.NewDoubleKeyHashAddresser(prefix, address.HashLength(ownerLength)),
	}
}

func (h *Handler) FamilyName() string {
	return FamilyName
}

func (h *Handler) FamilyVersions() []string {
	return []string{FamilyVersion}
}

func (h *Handler) Addresser() address.Addresser[address.DoubleKey] {
	return h.addresser
}

// ParsePayload - decode "action,asset,amount[,recipient]"
func ParsePayload(data []byte) (*Payload, error) {
	fields := strings.Split(string(data), ",")
	if len(fields) < 3 {
		return nil, handler.NewInvalidTransactionError("invalid payload: %q", data)
	}

	amount, err := strconv.ParseUint(fields[2], 10, 64)
	if nil != err || 0 == amount {
		return nil, handler.NewInvalidTransactionError("invalid amount: %q", fields[2])
	}

	p := &Payload{
		Action: fields[0],
		Asset:  fields[1],
		Amount: amount,
	}
	if "" == p.Asset {
		return nil, handler.NewInvalidTransactionError("asset is required")
	}

	switch p.Action {
	case ActionMint:
		if 3 != len(fields) {
			return nil, handler.NewInvalidTransactionError("mint has no recipient: %q", data)
		}
	case ActionTransfer:
		if 4 != len(fields) || "" == fields[3] {
			return nil, handler.NewInvalidTransactionError("transfer needs a recipient: %q", data)
		}
		p.Recipient = fields[3]
	default:
		return nil, handler.NewInvalidTransactionError("invalid action: %q", p.Action)
	}
	return p, nil
}

// Apply - mint or transfer
func (h *Handler) Apply(txn *transaction.Transaction, ctx *contract.KeyValueTransactionContext[address.DoubleKey]) error {
	payload, err := ParsePayload(txn.Payload)
	if nil != err {
		return err
	}
	signer := txn.Signer()
	from := address.DoubleKey{First: signer, Second: payload.Asset}

	h.log.Debugf("apply: %s  asset: %s  amount: %d  signer: %s", payload.Action, payload.Asset, payload.Amount, signer)

	switch payload.Action {
	case ActionMint:
		balances, err := h.balances(ctx, from)
		if nil != err {
			return err
		}
		if balances[from] > math.MaxUint64-payload.Amount {
			return handler.NewInvalidTransactionError("balance overflow: %s", payload.Asset)
		}
		balances[from] += payload.Amount
		if err := h.store(ctx, balances); nil != err {
			return err
		}

	case ActionTransfer:
		if signer == payload.Recipient {
			return handler.NewInvalidTransactionError("transfer to self")
		}
		to := address.DoubleKey{First: payload.Recipient, Second: payload.Asset}
		balances, err := h.balances(ctx, from, to)
		if nil != err {
			return err
		}
		if balances[from] < payload.Amount {
			return handler.NewInvalidTransactionError("insufficient balance: %d < %d", balances[from], payload.Amount)
		}
		if balances[to] > math.MaxUint64-payload.Amount {
			return handler.NewInvalidTransactionError("balance overflow: %s", payload.Asset)
		}
		balances[from] -= payload.Amount
		balances[to] += payload.Amount
		if err := h.store(ctx, balances); nil != err {
			return err
		}
	}

	attributes := []handler.Attribute{
		{Key: "asset", Value: payload.Asset},
		{Key: "amount", Value: strconv.FormatUint(payload.Amount, 10)},
		{Key: "owner", Value: signer},
	}
	if "" != payload.Recipient {
		attributes = append(attributes, handler.Attribute{Key: "recipient", Value: payload.Recipient})
	}
	if err := ctx.AddEvent(FamilyName+"/"+payload.Action, attributes, nil); nil != err {
		return handler.NewInternalError(err)
	}
	if err := ctx.AddReceiptData(txn.Payload); nil != err {
		return handler.NewInternalError(err)
	}
	return nil
}

// current balances, absent keys are zero
func (h *Handler) balances(ctx *contract.KeyValueTransactionContext[address.DoubleKey], keys ...address.DoubleKey) (map[address.DoubleKey]uint64, error) {
	values, err := ctx.Get(keys)
	if nil != err {
		return nil, handler.NewInternalError(err)
	}
	balances := make(map[address.DoubleKey]uint64, len(keys))
	for _, key := range keys {
		balances[key] = 0
		value, ok := values[key]
		if !ok {
			continue
		}
		if 8 != len(value) {
			return nil, handler.NewInternalError(fmt.Errorf("corrupt balance: %s  size: %d", h.addresser.Normalize(key), len(value)))
		}
		balances[key] = binary.BigEndian.Uint64(value)
	}
	return balances, nil
}

// write non-zero balances and delete the zero ones
func (h *Handler) store(ctx *contract.KeyValueTransactionContext[address.DoubleKey], balances map[address.DoubleKey]uint64) error {
	set := make(map[address.DoubleKey][]byte, len(balances))
	zero := []address.DoubleKey{}
	for key, amount := range balances {
		if 0 == amount {
			zero = append(zero, key)
			continue
		}
		value := make([]byte, 8)
		binary.BigEndian.PutUint64(value, amount)
		set[key] = value
	}

	if len(set) > 0 {
		if err := ctx.Set(set); nil != err {
			return handler.NewInternalError(err)
		}
	}
	if len(zero) > 0 {
		if _, err := ctx.Delete(zero); nil != err {
			return handler.NewInternalError(err)
		}
	}
	return nil
}
