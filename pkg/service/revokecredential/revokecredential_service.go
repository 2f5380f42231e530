/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -self_package mocks -package revokecredential_test -source=revokecredential_service.go -mock_names credentialStore=MockCredentialStore,studentStore=MockStudentStore,artifactStore=MockArtifactStore

package revokecredential

import (
	"context"
	"errors"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/proofly/proofly/internal/logfields"
	"github.com/proofly/proofly/pkg/credential"
	"github.com/proofly/proofly/pkg/observability/metrics"
	"github.com/proofly/proofly/pkg/observability/metrics/noop"
	"github.com/proofly/proofly/pkg/restapi/resterr"
)

var logger = log.New("revoke-credential-service")

// ErrNotAuthorized is returned when the credential does not exist or was issued by another university.
var ErrNotAuthorized = errors.New("credential not found or not authorized")

type credentialStore interface {
	FindByID(ctx context.Context, id credential.ID) (*credential.Credential, error)
	Delete(ctx context.Context, id credential.ID) error
}

type studentStore interface {
	RemoveCredential(ctx context.Context, studentID, credentialID credential.ID) error
}

type artifactStore interface {
	Delete(ctx context.Context, key string) error
}

type ServiceInterface interface {
	Revoke(ctx context.Context, universityID, credentialID credential.ID) error
}

type Config struct {
	CredentialStore credentialStore
	StudentStore    studentStore
	ArtifactStore   artifactStore
	Metrics         metrics.Metrics
}

type Service struct {
	credentialStore credentialStore
	studentStore    studentStore
	artifactStore   artifactStore
	metrics         metrics.Metrics
}

func New(config *Config) *Service {
	s := &Service{
		credentialStore: config.CredentialStore,
		studentStore:    config.StudentStore,
		artifactStore:   config.ArtifactStore,
		metrics:         config.Metrics,
	}

	if s.metrics == nil {
		s.metrics = noop.GetMetrics()
	}

	return s
}

// Revoke removes a credential issued by universityID. The student index is updated first, then the
// artifact and finally the credential record are deleted, so a failed call can be repeated.
func (s *Service) Revoke(ctx context.Context, universityID, credentialID credential.ID) error {
	if credentialID == "" {
		return resterr.NewValidationError(resterr.InvalidValue, "credentialId",
			errors.New("credential ID is required"))
	}

	c, err := s.credentialStore.FindByID(ctx, credentialID)
	if err != nil {
		if errors.Is(err, credential.ErrDataNotFound) {
			return resterr.NewCustomError(resterr.DoesntExist, ErrNotAuthorized)
		}

		return resterr.NewSystemError(resterr.CredentialStoreComponent, "FindByID", err)
	}

	if c.UniversityID != universityID {
		logger.Warnc(ctx, "Revocation by foreign university rejected", logfields.WithCredentialID(credentialID),
			logfields.WithUniversityID(universityID))

		return resterr.NewCustomError(resterr.DoesntExist, ErrNotAuthorized)
	}

	err = s.studentStore.RemoveCredential(ctx, c.StudentID, c.ID)
	if err != nil && !errors.Is(err, credential.ErrDataNotFound) {
		return resterr.NewComponentError(resterr.StorageWriteError, resterr.StudentStoreComponent,
			"RemoveCredential", err)
	}

	if err = s.artifactStore.Delete(ctx, c.ArtifactPath); err != nil {
		return resterr.NewComponentError(resterr.StorageWriteError, resterr.ArtifactStoreComponent, "Delete", err)
	}

	if err = s.credentialStore.Delete(ctx, c.ID); err != nil && !errors.Is(err, credential.ErrDataNotFound) {
		// The artifact is already gone; the artifact audit reports the record until a retry removes it.
		return resterr.NewComponentError(resterr.StorageWriteError, resterr.CredentialStoreComponent, "Delete", err)
	}

	s.metrics.CredentialRevoked()

	logger.Infoc(ctx, "Credential revoked", logfields.WithCredentialID(c.ID), logfields.WithSlug(c.Slug),
		logfields.WithUniversityID(universityID))

	return nil
}
