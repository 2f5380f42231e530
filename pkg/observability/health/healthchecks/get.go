/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthchecks

import (
	"context"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.uber.org/zap"

	ledgercheck "github.com/proofly/proofly/pkg/observability/health/ledger"
	"github.com/proofly/proofly/pkg/observability/health/ping"
)

var logger = log.New("healthchecks")

const checkTimeout = 5 * time.Second

type ledgerClient interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// Config holds the dependencies to check. Nil dependencies are not configured and are skipped.
type Config struct {
	MongoDB ping.Pinger
	Redis   ping.Pinger
	Ledger  ledgerClient
}

func Get(config *Config) []health.Check {
	var checks []health.Check

	if config.MongoDB != nil {
		checks = append(checks, health.Check{
			Name:               "mongodb",
			Check:              ping.New("mongodb", config.MongoDB),
			Timeout:            checkTimeout,
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		})
	}

	if config.Redis != nil {
		checks = append(checks, health.Check{
			Name:               "redis",
			Check:              ping.New("redis", config.Redis),
			Timeout:            checkTimeout,
			MaxTimeInError:     1,
			MaxContiguousFails: 1,
		})
	}

	if config.Ledger != nil {
		checks = append(checks, health.Check{
			Name:    "ledger",
			Check:   ledgercheck.New(config.Ledger),
			Timeout: checkTimeout,
			StatusListener: func(ctx context.Context, _ string, state health.CheckState) {
				logger.Warnc(ctx, "Ledger availability changed", zap.String("status", string(state.Status)))
			},
		})
	}

	return checks
}
