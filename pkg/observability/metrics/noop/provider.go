/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/proofly/proofly/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the NoMetrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) IssueCredentialTime(_ time.Duration)            {}
func (n *NoMetrics) CredentialIssued(_ bool)                        {}
func (n *NoMetrics) AnchorTime(_ time.Duration)                     {}
func (n *NoMetrics) AnchorFailed()                                  {}
func (n *NoMetrics) LedgerSearchTime(_ time.Duration)               {}
func (n *NoMetrics) VerifyCredentialTime(_ string, _ time.Duration) {}
func (n *NoMetrics) CredentialVerified(_ string, _ bool)            {}
func (n *NoMetrics) CredentialRevoked()                             {}
func (n *NoMetrics) CredentialReanchored(_ bool)                    {}
