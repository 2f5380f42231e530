/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifycredential

import (
	"context"
	"time"

	"github.com/proofly/proofly/pkg/credential"
)

// Method names the lookup a verification used.
type Method string

const (
	MethodArtifact Method = "artifact"
	MethodSlug     Method = "slug"
	MethodLedger   Method = "ledger"
)

const messageNotFound = "No matching certificate found in our database"

// CredentialView is the verifier-facing projection of a credential and its owners.
type CredentialView struct {
	Title              string                      `json:"title"`
	StudentName        string                      `json:"studentName"`
	StudentEmail       string                      `json:"studentEmail"`
	UniversityName     string                      `json:"universityName"`
	IssueDate          time.Time                   `json:"issueDate"`
	Hash               string                      `json:"hash"`
	Slug               string                      `json:"slug"`
	ImagePath          string                      `json:"imagePath,omitempty"`
	BlockchainTxHash   *string                     `json:"blockchainTxHash"`
	BlockchainVerified bool                        `json:"blockchainVerified"`
	BlockchainStatus   credential.BlockchainStatus `json:"blockchainStatus"`
}

// VerificationResult is a datastore-backed verification outcome. A miss is a normal negative result.
type VerificationResult struct {
	Valid        bool            `json:"valid"`
	Message      string          `json:"message,omitempty"`
	SearchedSlug string          `json:"searchedSlug,omitempty"`
	Credential   *CredentialView `json:"credential,omitempty"`
}

// LedgerVerificationResult reports whether the hash is anchored within the searched block window.
type LedgerVerificationResult struct {
	Found          bool   `json:"found"`
	Hash           string `json:"hash"`
	TxRef          string `json:"blockchainTxHash,omitempty"`
	BlockNumber    uint64 `json:"blockNumber,omitempty"`
	FromBlock      uint64 `json:"fromBlock"`
	ToBlock        uint64 `json:"toBlock"`
	SearchedBlocks uint64 `json:"searchedBlocks"`
	SkippedBlocks  uint64 `json:"skippedBlocks"`
}

type ServiceInterface interface {
	VerifyByArtifact(ctx context.Context, candidate []byte) (*VerificationResult, error)
	VerifyBySlug(ctx context.Context, slug string) (*VerificationResult, error)
	VerifyOnLedger(ctx context.Context, hash string) (*LedgerVerificationResult, error)
}
