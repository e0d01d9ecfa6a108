// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/transact/fault"
)

// Header - fields covered by the signature
type Header struct {
	FamilyName      string   `json:"familyName"`
	FamilyVersion   string   `json:"familyVersion"`
	Inputs          []string `json:"inputs"`
	Outputs         []string `json:"outputs"`
	Nonce           string   `json:"nonce"`
	SignerPublicKey []byte   `json:"signerPublicKey"`
	PayloadHash     []byte   `json:"payloadHash"`
}

// Transaction - header and the opaque family payload
type Transaction struct {
	Header  Header `json:"header"`
	Payload []byte `json:"payload"`
}

// New - create a transaction with a fresh nonce and the payload hash filled in
func New(familyName string, familyVersion string, signer []byte, payload []byte) *Transaction {
	return &Transaction{
		Header: Header{
			FamilyName:      familyName,
			FamilyVersion:   familyVersion,
			Inputs:          []string{},
			Outputs:         []string{},
			Nonce:           uuid.New().String(),
			SignerPublicKey: signer,
			PayloadHash:     PayloadHash(payload),
		},
		Payload: payload,
	}
}

// PayloadHash - SHA3-512 of a payload
func PayloadHash(payload []byte) []byte {
	h := sha3.Sum512(payload)
	return h[:]
}

// ID - hex SHA3-256 of the packed transaction
func (t *Transaction) ID() string {
	h := sha3.Sum256(t.Pack())
	return hex.EncodeToString(h[:])
}

// Signer - base58 form of the signer public key
func (t *Transaction) Signer() string {
	return base58.Encode(t.Header.SignerPublicKey)
}

// SignerFromString - decode a base58 signer public key
func SignerFromString(s string) ([]byte, error) {
	if "" == s {
		return nil, fault.ErrInvalidSigner
	}
	signer, err := base58.Decode(s)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrInvalidSigner, err)
	}
	return signer, nil
}

// Verify - check the header is complete and the payload is intact
func (t *Transaction) Verify() error {
	if "" == t.Header.FamilyName {
		return fault.ErrEmptyFamilyName
	}
	if "" == t.Header.FamilyVersion {
		return fault.ErrEmptyFamilyVersion
	}
	if 0 == len(t.Header.SignerPublicKey) {
		return fault.ErrInvalidSigner
	}
	if !bytes.Equal(PayloadHash(t.Payload), t.Header.PayloadHash) {
		return fault.ErrPayloadHashMismatch
	}
	return nil
}
