/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	IssueCredentialSvcComponent  Component = "issuer.issue-credential-service"
	RevokeCredentialSvcComponent Component = "issuer.revoke-credential-service"
	VerifyCredentialSvcComponent Component = "verifier.verify-credential-service"
	ReanchorSvcComponent         Component = "maintenance.reanchor-service"

	SlugAllocatorComponent   Component = "slug-allocator"
	ArtifactMarkerComponent  Component = "artifact-marker"
	ArtifactStoreComponent   Component = "artifact-store"
	CredentialStoreComponent Component = "credential-store"
	StudentStoreComponent    Component = "student-store"
	UniversityStoreComponent Component = "university-store"
	LedgerComponent          Component = "ledger"
)
