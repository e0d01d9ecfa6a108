// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"github.com/bitmark-inc/transact/fault"
	"github.com/bitmark-inc/transact/handler"
	"github.com/bitmark-inc/transact/util"
)

// Event - emitted by a family while applying a transaction
type Event struct {
	Type       string              `json:"type"`
	Attributes []handler.Attribute `json:"attributes"`
	Data       []byte              `json:"data"`
}

// Receipt - result of an applied transaction
type Receipt struct {
	TransactionID string   `json:"transactionId"`
	Data          [][]byte `json:"data"`
	Events        []Event  `json:"events"`
}

const (
	receiptTag     = 0x52
	maxFieldLength = 1 << 20
	maxFieldCount  = 8192
)

// Pack - Varint64(tag) followed by the fields in order, all length prefixed
func (r Receipt) Pack() []byte {
	buffer := util.ToVarint64(receiptTag)
	buffer = util.AppendString(buffer, r.TransactionID)

	buffer = util.AppendVarint64(buffer, uint64(len(r.Data)))
	for _, d := range r.Data {
		buffer = util.AppendBytes(buffer, d)
	}

	buffer = util.AppendVarint64(buffer, uint64(len(r.Events)))
	for _, e := range r.Events {
		buffer = util.AppendString(buffer, e.Type)
		buffer = util.AppendVarint64(buffer, uint64(len(e.Attributes)))
		for _, a := range e.Attributes {
			buffer = util.AppendString(buffer, a.Key)
			buffer = util.AppendString(buffer, a.Value)
		}
		buffer = util.AppendBytes(buffer, e.Data)
	}
	return buffer
}

// UnpackReceipt - inverse of Pack
func UnpackReceipt(buffer []byte) (r *Receipt, e error) {

	defer func() {
		if x := recover(); nil != x {
			r = nil
			e = fault.ErrNotReceiptPack
		}
	}()

	tag, n := util.ClippedVarint64(buffer, 1, 8192)
	if 0 == n || receiptTag != tag {
		return nil, fault.ErrNotReceiptPack
	}

	// panics on truncation, recovered above
	next := func() []byte {
		length, offset := util.ClippedVarint64(buffer[n:], 0, maxFieldLength)
		if 0 == offset {
			panic("length")
		}
		n += offset
		if n+length > len(buffer) {
			panic("truncated")
		}
		b := make([]byte, length)
		copy(b, buffer[n:n+length])
		n += length
		return b
	}
	count := func() int {
		c, offset := util.ClippedVarint64(buffer[n:], 0, maxFieldCount)
		if 0 == offset {
			panic("count")
		}
		n += offset
		return c
	}

	receipt := &Receipt{
		TransactionID: string(next()),
	}

	dataCount := count()
	receipt.Data = make([][]byte, 0, dataCount)
	for i := 0; i < dataCount; i += 1 {
		receipt.Data = append(receipt.Data, next())
	}

	eventCount := count()
	receipt.Events = make([]Event, 0, eventCount)
	for i := 0; i < eventCount; i += 1 {
		event := Event{
			Type: string(next()),
		}
		attributeCount := count()
		event.Attributes = make([]handler.Attribute, 0, attributeCount)
		for j := 0; j < attributeCount; j += 1 {
			key := string(next())
			value := string(next())
			event.Attributes = append(event.Attributes, handler.Attribute{
				Key:   key,
				Value: value,
			})
		}
		event.Data = next()
		receipt.Events = append(receipt.Events, event)
	}

	if n != len(buffer) {
		return nil, fault.ErrNotReceiptPack
	}
	return receipt, nil
}
