/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package reanchor

import (
	"context"

	"github.com/proofly/proofly/pkg/credential"
)

// ReanchorReport summarizes a pass over unanchored credentials.
type ReanchorReport struct {
	Pending  int `json:"pending"`
	Anchored int `json:"anchored"`
	// Skipped counts credentials anchored concurrently by another pass.
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
	// Unconfirmed counts anchored credentials whose transaction was sent but not confirmed in time.
	Unconfirmed int `json:"unconfirmed"`
}

// ReconcileReport summarizes a student index repair.
type ReconcileReport struct {
	Scanned  int `json:"scanned"`
	Repaired int `json:"repaired"`
	// Orphaned lists credentials whose student no longer exists.
	Orphaned []credential.ID `json:"orphaned,omitempty"`
}

// ArtifactProblem names a credential whose stored artifact is missing or does not match its hash.
type ArtifactProblem struct {
	CredentialID credential.ID `json:"credentialId"`
	ArtifactPath string        `json:"imagePath"`
	Reason       string        `json:"reason"`
}

// AuditReport summarizes an artifact integrity audit.
type AuditReport struct {
	Scanned  int               `json:"scanned"`
	Problems []ArtifactProblem `json:"problems,omitempty"`
}

type ServiceInterface interface {
	ReanchorPending(ctx context.Context, limit int) (*ReanchorReport, error)
	ReconcileStudentIndex(ctx context.Context) (*ReconcileReport, error)
	AuditArtifacts(ctx context.Context, limit int) (*AuditReport, error)
}
