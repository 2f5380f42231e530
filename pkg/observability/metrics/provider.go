/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "proofly"

	// Service operations.
	Service               = "service"
	IssueCredentialTime   = "issue_credential_seconds"
	CredentialsIssued     = "credentials_issued_total"
	VerifyCredentialTime  = "verify_credential_seconds"
	VerificationsTotal    = "verifications_total"
	CredentialsRevoked    = "credentials_revoked_total"
	CredentialsReanchored = "credentials_reanchored_total"

	// Ledger operations.
	Ledger           = "ledger"
	AnchorTime       = "anchor_seconds"
	AnchorFailures   = "anchor_failures_total"
	LedgerSearchTime = "search_seconds"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
//
//nolint:interfacebloat
type Metrics interface {
	IssueCredentialTime(value time.Duration)
	CredentialIssued(degraded bool)
	AnchorTime(value time.Duration)
	AnchorFailed()
	LedgerSearchTime(value time.Duration)
	VerifyCredentialTime(method string, value time.Duration)
	CredentialVerified(method string, valid bool)
	CredentialRevoked()
	CredentialReanchored(success bool)
}
