// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/transact/address"
	"github.com/bitmark-inc/transact/fault"
	"github.com/bitmark-inc/transact/handler"
)

const logCategory = "contract"

var (
	logOnce sync.Once
	log     *logger.L
)

func channel() *logger.L {
	logOnce.Do(func() {
		log = logger.New(logCategory)
	})
	return log
}

// KeyValueTransactionContext - state access by natural key for the
// duration of one Apply
type KeyValueTransactionContext[K comparable] struct {
	context   handler.TransactionContext
	addresser address.Addresser[K]
	log       *logger.L
}

// NewKeyValueTransactionContext - wrap a raw context
func NewKeyValueTransactionContext[K comparable](ctx handler.TransactionContext, addresser address.Addresser[K]) *KeyValueTransactionContext[K] {
	return &KeyValueTransactionContext[K]{
		context:   ctx,
		addresser: addresser,
		log:       channel(),
	}
}

// Get - values of the keys that are present in state
//
// keys that have no value are absent from the result
func (c *KeyValueTransactionContext[K]) Get(keys []K) (map[K][]byte, error) {
	addresses, keyOf, err := c.translate(keys)
	if nil != err {
		return nil, err
	}

	c.log.Debugf("get: %d keys", len(keys))

	entries, err := c.context.GetStateEntries(addresses)
	if nil != err {
		return nil, fmt.Errorf("%w: get: %w", fault.ErrStateContext, err)
	}

	values := make(map[K][]byte, len(keys))
	for _, entry := range entries {
		mapped, ok := keyOf[entry.Address]
		if !ok {
			c.log.Warnf("get: unrequested address: %s", entry.Address)
			continue
		}
		for _, key := range mapped {
			c.log.Debugf("get: key: %s  value size: %d", c.addresser.Normalize(key), len(entry.Value))
			values[key] = entry.Value
		}
	}
	return values, nil
}

// Set - write all values in a single request
//
// entries are passed on in address order; two distinct keys that
// compute the same address are rejected before anything is written
func (c *KeyValueTransactionContext[K]) Set(values map[K][]byte) error {
	entries := make([]handler.StateEntry, 0, len(values))
	keyOf := make(map[string]K, len(values))
	for key, value := range values {
		addr, err := c.addresser.Compute(key)
		if nil != err {
			return fmt.Errorf("%w: key: %s: %w", fault.ErrAddressTranslation, c.addresser.Normalize(key), err)
		}
		if other, ok := keyOf[addr]; ok {
			names := []string{c.addresser.Normalize(other), c.addresser.Normalize(key)}
			sort.Strings(names)
			return fmt.Errorf("%w: keys: %s and %s  address: %s", fault.ErrAddressCollision, names[0], names[1], addr)
		}
		keyOf[addr] = key
		c.log.Debugf("set: key: %s  value size: %d", c.addresser.Normalize(key), len(value))
		entries = append(entries, handler.StateEntry{
			Address: addr,
			Value:   value,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Address < entries[j].Address
	})

	if err := c.context.SetStateEntries(entries); nil != err {
		return fmt.Errorf("%w: set: %w", fault.ErrStateContext, err)
	}
	return nil
}

// Delete - remove the keys, returning those that were present in input order
func (c *KeyValueTransactionContext[K]) Delete(keys []K) ([]K, error) {
	addresses, keyOf, err := c.translate(keys)
	if nil != err {
		return nil, err
	}

	deletedAddresses, err := c.context.DeleteStateEntries(addresses)
	if nil != err {
		return nil, fmt.Errorf("%w: delete: %w", fault.ErrStateContext, err)
	}

	deleted := make(map[K]struct{}, len(deletedAddresses))
	for _, addr := range deletedAddresses {
		for _, key := range keyOf[addr] {
			deleted[key] = struct{}{}
		}
	}

	result := make([]K, 0, len(deleted))
	for _, key := range keys {
		if _, ok := deleted[key]; ok {
			c.log.Debugf("delete: key: %s", c.addresser.Normalize(key))
			result = append(result, key)
			delete(deleted, key)
		}
	}
	return result, nil
}

// AddReceiptData - pass through to the raw context
func (c *KeyValueTransactionContext[K]) AddReceiptData(data []byte) error {
	if err := c.context.AddReceiptData(data); nil != err {
		return fmt.Errorf("%w: receipt: %w", fault.ErrStateContext, err)
	}
	return nil
}

// AddEvent - pass through to the raw context
func (c *KeyValueTransactionContext[K]) AddEvent(eventType string, attributes []handler.Attribute, data []byte) error {
	c.log.Debugf("event: %s  attributes: %d", eventType, len(attributes))
	if err := c.context.AddEvent(eventType, attributes, data); nil != err {
		return fmt.Errorf("%w: event: %w", fault.ErrStateContext, err)
	}
	return nil
}

// compute every address before anything touches the raw context
//
// each address is requested once; every distinct key that maps to it
// is kept, in input order
func (c *KeyValueTransactionContext[K]) translate(keys []K) ([]string, map[string][]K, error) {
	addresses := make([]string, 0, len(keys))
	keyOf := make(map[string][]K, len(keys))
	seen := make(map[K]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		addr, err := c.addresser.Compute(key)
		if nil != err {
			return nil, nil, fmt.Errorf("%w: key: %s: %w", fault.ErrAddressTranslation, c.addresser.Normalize(key), err)
		}
		mapped, ok := keyOf[addr]
		if !ok {
			addresses = append(addresses, addr)
		}
		keyOf[addr] = append(mapped, key)
	}
	return addresses, keyOf, nil
}
