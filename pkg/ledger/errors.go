/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientFunds is returned when the signer cannot pay for the anchoring transaction.
	ErrInsufficientFunds = errors.New("insufficient funds for anchoring fee")
	// ErrTxReverted is returned when the anchoring transaction was mined with a failed status.
	ErrTxReverted = errors.New("anchoring transaction reverted")
)

// AnchorError is returned by Anchor for every failure to get a confirmed anchoring transaction.
type AnchorError struct {
	Op    string
	TxRef string
	Err   error
}

func (e *AnchorError) Error() string {
	if e.TxRef != "" {
		return fmt.Sprintf("anchor %s [tx %s]: %v", e.Op, e.TxRef, e.Err)
	}

	return fmt.Sprintf("anchor %s: %v", e.Op, e.Err)
}

func (e *AnchorError) Unwrap() error {
	return e.Err
}

// SentTxRef returns the reference of an anchoring transaction that was sent but not confirmed.
// A reverted transaction is not reported.
func SentTxRef(err error) (string, bool) {
	var anchorErr *AnchorError

	if !errors.As(err, &anchorErr) || anchorErr.TxRef == "" || errors.Is(err, ErrTxReverted) {
		return "", false
	}

	return anchorErr.TxRef, true
}

// SearchError is returned by the ledger search when the ledger could not be read at all.
type SearchError struct {
	Err error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("ledger search: %v", e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}
