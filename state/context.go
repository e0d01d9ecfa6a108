// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/transact/address"
	"github.com/bitmark-inc/transact/fault"
	"github.com/bitmark-inc/transact/handler"
	"github.com/bitmark-inc/transact/storage"
)

// Context - state access through an open storage transaction
type Context struct {
	log     *logger.L
	trx     storage.Transaction
	receipt Receipt
}

var _ handler.TransactionContext = &Context{}

// NewContext - context for the transaction with the given ID
//
// the storage transaction must already have begun and is committed or
// aborted by the caller
func NewContext(log *logger.L, trx storage.Transaction, transactionID string) *Context {
	return &Context{
		log: log,
		trx: trx,
		receipt: Receipt{
			TransactionID: transactionID,
			Data:          [][]byte{},
			Events:        []Event{},
		},
	}
}

// GetStateEntries - entries for the addresses that have a value, in request order
func (c *Context) GetStateEntries(addresses []string) ([]handler.StateEntry, error) {
	keys, err := decodeAddresses(addresses)
	if nil != err {
		return nil, err
	}

	entries := make([]handler.StateEntry, 0, len(addresses))
	for i, key := range keys {
		value, found := c.trx.Get(storage.Pool.State, key)
		if !found {
			continue
		}
		entries = append(entries, handler.StateEntry{
			Address: addresses[i],
			Value:   value,
		})
	}
	c.log.Debugf("get: requested: %d  found: %d", len(addresses), len(entries))
	return entries, nil
}

// SetStateEntries - write every entry or none
func (c *Context) SetStateEntries(entries []handler.StateEntry) error {
	keys := make([][]byte, len(entries))
	for i, entry := range entries {
		key, err := decodeAddress(entry.Address)
		if nil != err {
			return err
		}
		keys[i] = key
	}

	for i, entry := range entries {
		c.trx.Put(storage.Pool.State, keys[i], entry.Value)
	}
	c.log.Debugf("set: %d entries", len(entries))
	return nil
}

// DeleteStateEntries - remove the addresses, returning those that had a value
func (c *Context) DeleteStateEntries(addresses []string) ([]string, error) {
	keys, err := decodeAddresses(addresses)
	if nil != err {
		return nil, err
	}

	deleted := make([]string, 0, len(addresses))
	for i, key := range keys {
		if !c.trx.Has(storage.Pool.State, key) {
			continue
		}
		c.trx.Delete(storage.Pool.State, key)
		deleted = append(deleted, addresses[i])
	}
	c.log.Debugf("delete: requested: %d  deleted: %d", len(addresses), len(deleted))
	return deleted, nil
}

// AddReceiptData - append opaque data to the receipt
func (c *Context) AddReceiptData(data []byte) error {
	c.receipt.Data = append(c.receipt.Data, copyBytes(data))
	return nil
}

// AddEvent - append an event to the receipt
func (c *Context) AddEvent(eventType string, attributes []handler.Attribute, data []byte) error {
	if "" == eventType {
		return fault.ErrEmptyEventType
	}
	a := make([]handler.Attribute, len(attributes))
	copy(a, attributes)
	c.receipt.Events = append(c.receipt.Events, Event{
		Type:       eventType,
		Attributes: a,
		Data:       copyBytes(data),
	})
	c.log.Debugf("event: %s", eventType)
	return nil
}

// Receipt - everything collected so far
func (c *Context) Receipt() Receipt {
	return c.receipt
}

func decodeAddresses(addresses []string) ([][]byte, error) {
	keys := make([][]byte, len(addresses))
	for i, a := range addresses {
		key, err := decodeAddress(a)
		if nil != err {
			return nil, err
		}
		keys[i] = key
	}
	return keys, nil
}

// addresses are exactly address.Length lower case hex characters
func decodeAddress(a string) ([]byte, error) {
	if address.Length != len(a) {
		return nil, fmt.Errorf("%w: %q  length: %d", fault.ErrInvalidAddress, a, len(a))
	}
	for _, c := range a {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return nil, fmt.Errorf("%w: %q", fault.ErrInvalidAddress, a)
		}
	}
	return hex.DecodeString(a)
}

func copyBytes(data []byte) []byte {
	if nil == data {
		return []byte{}
	}
	b := make([]byte, len(data))
	copy(b, data)
	return b
}
