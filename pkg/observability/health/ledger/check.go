/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledger

import (
	"context"
	"fmt"
)

type blockNumberReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// New returns a ledger health check that reads the latest block number.
func New(client blockNumberReader) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if _, err := client.BlockNumber(ctx); err != nil {
			return fmt.Errorf("failed to read ledger block number: %w", err)
		}

		return nil
	}
}
