// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"errors"
	"fmt"
)

// ErrorKind - classification of a failed apply
type ErrorKind int

// the possible kinds
const (
	InvalidTransaction ErrorKind = iota
	Internal
)

// String - name of the kind
func (k ErrorKind) String() string {
	switch k {
	case InvalidTransaction:
		return "invalid transaction"
	case Internal:
		return "internal error"
	default:
		return fmt.Sprintf("error kind(%d)", int(k))
	}
}

// ApplyError - returned by a handler when a transaction cannot be applied
//
// an invalid transaction is rejected permanently; an internal error
// means the same transaction may succeed later
type ApplyError struct {
	Kind    ErrorKind
	Message string
	err     error
}

// NewInvalidTransactionError - the transaction is malformed or breaks the family rules
func NewInvalidTransactionError(format string, arguments ...interface{}) *ApplyError {
	return &ApplyError{
		Kind:    InvalidTransaction,
		Message: fmt.Sprintf(format, arguments...),
	}
}

// NewInternalError - the handler or its context failed
func NewInternalError(err error) *ApplyError {
	message := "<nil>"
	if nil != err {
		message = err.Error()
	}
	return &ApplyError{
		Kind:    Internal,
		Message: message,
		err:     err,
	}
}

func (e *ApplyError) Error() string {
	return e.Kind.String() + ": " + e.Message
}

// Unwrap - the underlying cause of an internal error
func (e *ApplyError) Unwrap() error {
	return e.err
}

// IsInvalidTransaction - true if err is or wraps an invalid transaction ApplyError
func IsInvalidTransaction(err error) bool {
	var e *ApplyError
	return errors.As(err, &e) && InvalidTransaction == e.Kind
}

// IsInternal - true if err is or wraps an internal ApplyError
func IsInternal(err error) bool {
	var e *ApplyError
	return errors.As(err, &e) && Internal == e.Kind
}
