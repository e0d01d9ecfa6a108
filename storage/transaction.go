// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - all writes to the pools
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) ([]byte, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
}

// TransactionData - a Transaction over the shared Access
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

func (t *TransactionData) Put(p *PoolHandle, key []byte, value []byte) {
	p.put(key, value)
}

func (t *TransactionData) Delete(p *PoolHandle, key []byte) {
	p.remove(key)
}

func (t *TransactionData) Get(p *PoolHandle, key []byte) ([]byte, bool) {
	return p.Get(key)
}

func (t *TransactionData) Has(p *PoolHandle, key []byte) bool {
	return p.Has(key)
}

func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

func (t *TransactionData) Abort() {
	t.access.Abort()
}

func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}
