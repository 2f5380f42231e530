/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ping

import (
	"context"
	"fmt"
)

// Pinger is implemented by the mongodb and redis storage clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New returns a health check that pings target through p.
func New(target string, p Pinger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("failed to ping %s: %w", target, err)
		}

		return nil
	}
}
