// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ConfigurationError GenericError
type ContextError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressCollision         = ContextError("distinct keys share an address")
	ErrAddressTranslation       = ContextError("natural key address translation failed")
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrConfigurationNotTable    = ConfigurationError("configuration did not return a table")
	ErrEmptyEventType           = InvalidError("event type is empty")
	ErrEmptyFamilyName          = InvalidError("family name is empty")
	ErrEmptyFamilyVersion       = InvalidError("family version is empty")
	ErrHandlerAlreadyRegistered = ExistsError("handler already registered")
	ErrHashLengthExceedsDigest  = ConfigurationError("hash length exceeds digest length")
	ErrHashLengthMismatch       = ConfigurationError("hash lengths do not sum to address length")
	ErrInvalidAddress           = InvalidError("invalid address")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidCursor            = InvalidError("invalid cursor")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidSigner            = InvalidError("invalid signer public key")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrNegativeHashLength       = ConfigurationError("negative hash length")
	ErrNoHandlerForFamily       = NotFoundError("no handler for transaction family")
	ErrNotInitialised           = NotFoundError("not initialised")
	ErrNotReceiptPack           = InvalidError("not receipt pack")
	ErrNotTransactionPack       = InvalidError("not transaction pack")
	ErrPayloadHashMismatch      = InvalidError("payload hash mismatch")
	ErrPrefixTooLong            = ConfigurationError("prefix longer than address length")
	ErrReceiptNotFound          = NotFoundError("receipt not found")
	ErrStateContext             = ContextError("state context operation failed")
	ErrTransactionApplied       = ExistsError("transaction already applied")
	ErrTransactionInUse         = ProcessError("transaction already in use")
	ErrTransactionNotFound      = NotFoundError("transaction not found")
	ErrTransactionNotInUse      = ProcessError("transaction not in use")
	ErrUnknownConfigurationKey  = ConfigurationError("unknown configuration key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ConfigurationError) Error() string { return string(e) }
func (e ContextError) Error() string       { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
//
// wrapped errors are unwrapped so that fmt.Errorf("...: %w", fault.ErrX)
// still reports its class
func IsErrConfiguration(e error) bool { var t ConfigurationError; return errors.As(e, &t) }
func IsErrContext(e error) bool       { var t ContextError; return errors.As(e, &t) }
func IsErrExists(e error) bool        { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool       { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool      { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool       { var t ProcessError; return errors.As(e, &t) }
