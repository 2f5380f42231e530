/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import (
	"context"

	"github.com/proofly/proofly/pkg/credential"
)

// State is a step of the issuance pipeline.
type State string

const (
	StateValidating     State = "validating"
	StateSlugAllocating State = "slug-allocating"
	StateMarking        State = "marking"
	StateHashing        State = "hashing"
	StateAnchoring      State = "anchoring"
	StatePersisting     State = "persisting"
	StateDone           State = "done"
	StateFailed         State = "failed"
)

const (
	messageAnchored = "Credential issued successfully and stored on blockchain"
	messageDegraded = "Credential issued successfully (blockchain storage failed)"
	warningDegraded = "Blockchain storage failed - credential saved locally only"
)

// IssueRequest carries an uploaded credential image and the issuance metadata.
type IssueRequest struct {
	UniversityID credential.ID
	StudentID    credential.ID
	Title        string
	// FileName is the name of the uploaded file. Its base name becomes part of the artifact path.
	FileName string
	Image    []byte
}

// IssueResult describes an issued credential. LedgerTxRef is nil when anchoring failed.
type IssueResult struct {
	CredentialID credential.ID `json:"credentialId"`
	Hash         string        `json:"credentialHash"`
	Slug         string        `json:"slug"`
	LedgerTxRef  *string       `json:"blockchainTxHash"`
	ArtifactPath string        `json:"imagePath"`
	Degraded     bool          `json:"degraded"`
	Message      string        `json:"message"`
	Warning      string        `json:"warning,omitempty"`
	// AnchorError holds the anchoring failure detail when Degraded is set.
	AnchorError string `json:"anchorError,omitempty"`
}

type ServiceInterface interface {
	IssueCredential(ctx context.Context, req *IssueRequest) (*IssueResult, error)
}
