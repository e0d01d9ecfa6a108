// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/transact/fault"
)

// PoolHandle - one prefix separated table
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess Access
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a value for a given key
//
// second parameter is false if the key is not present
func (p *PoolHandle) Get(key []byte) ([]byte, bool) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == p || nil == p.dataAccess || nil == poolData.db {
		return nil, false
	}
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil, false
	}
	fault.PanicIfError("pool.Get", err)

	if nil == value {
		value = []byte{}
	}
	return value, true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == p || nil == p.dataAccess || nil == poolData.db {
		return false
	}
	found, err := p.dataAccess.Has(p.prefixKey(key))
	fault.PanicIfError("pool.Has", err)
	return found
}

// only through a Transaction
func (p *PoolHandle) put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == p || nil == p.dataAccess || nil == poolData.db {
		fault.Panic("pool.put nil database")
	}
	p.dataAccess.Put(p.prefixKey(key), value)
}

// only through a Transaction
func (p *PoolHandle) remove(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == p || nil == p.dataAccess || nil == poolData.db {
		fault.Panic("pool.remove nil database")
	}
	p.dataAccess.Delete(p.prefixKey(key))
}
