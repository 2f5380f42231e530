/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"errors"
	"time"
)

// ErrDataNotFound is returned by stores when the requested record does not exist.
var ErrDataNotFound = errors.New("data not found")

// ErrDuplicateSlug is returned when a credential with the same slug is already stored.
var ErrDuplicateSlug = errors.New("duplicate slug")

type ID = string

// BlockchainStatus describes how the anchoring of a credential is reported to verifiers.
type BlockchainStatus string

const (
	BlockchainStatusVerified           BlockchainStatus = "verified"
	BlockchainStatusNoBlockchainRecord BlockchainStatus = "no_blockchain_record"
)

// Credential is an issued, marked and (optionally) anchored credential artifact.
type Credential struct {
	ID           ID        `json:"_id"`
	StudentID    ID        `json:"student"`
	UniversityID ID        `json:"university"`
	Title        string    `json:"title"`
	ArtifactPath string    `json:"imagePath"`
	ContentHash  string    `json:"credentialHash"`
	Slug         string    `json:"slug"`
	LedgerTxRef  *string   `json:"blockchainTxHash"`
	IssuedAt     time.Time `json:"issueDate"`
}

// Anchored reports whether the credential has a ledger transaction reference.
func (c *Credential) Anchored() bool {
	return c.LedgerTxRef != nil && *c.LedgerTxRef != ""
}

// BlockchainStatus returns the status derived from the stored ledger reference.
func (c *Credential) BlockchainStatus() BlockchainStatus {
	if c.Anchored() {
		return BlockchainStatusVerified
	}

	return BlockchainStatusNoBlockchainRecord
}

// Student owns credentials. CredentialIDs is a denormalized index; Credential.StudentID is authoritative.
type Student struct {
	ID            ID     `json:"_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	UniversityID  ID     `json:"university,omitempty"`
	CredentialIDs []ID   `json:"credentials"`
}

// University issues credentials to affiliated students.
type University struct {
	ID    ID     `json:"_id"`
	Name  string `json:"universityName"`
	Email string `json:"email"`
}
