/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -self_package mocks -package verifycredential_test -source=verifycredential_service.go -mock_names credentialStore=MockCredentialStore,studentStore=MockStudentStore,universityStore=MockUniversityStore,ledgerSearch=MockLedgerSearch

package verifycredential

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
	"go.uber.org/zap"

	"github.com/proofly/proofly/internal/logfields"
	"github.com/proofly/proofly/pkg/artifact"
	"github.com/proofly/proofly/pkg/credential"
	"github.com/proofly/proofly/pkg/ledger"
	"github.com/proofly/proofly/pkg/observability/metrics"
	"github.com/proofly/proofly/pkg/observability/metrics/noop"
	"github.com/proofly/proofly/pkg/restapi/resterr"
	"github.com/proofly/proofly/pkg/slug"
)

var logger = log.New("verify-credential-service")

var errSearchDisabled = errors.New("ledger search is not configured")

type credentialStore interface {
	FindByHash(ctx context.Context, hash string) (*credential.Credential, error)
	FindBySlug(ctx context.Context, slug string) (*credential.Credential, error)
}

type studentStore interface {
	FindByID(ctx context.Context, id credential.ID) (*credential.Student, error)
}

type universityStore interface {
	FindByID(ctx context.Context, id credential.ID) (*credential.University, error)
}

type ledgerSearch interface {
	Locate(ctx context.Context, hash string) (*ledger.SearchResult, error)
}

type Config struct {
	CredentialStore credentialStore
	StudentStore    studentStore
	UniversityStore universityStore
	// LedgerSearch is optional. Without it VerifyOnLedger is always inconclusive.
	LedgerSearch ledgerSearch
	Metrics      metrics.Metrics
}

type Service struct {
	credentialStore credentialStore
	studentStore    studentStore
	universityStore universityStore
	ledgerSearch    ledgerSearch
	metrics         metrics.Metrics
}

func New(config *Config) *Service {
	s := &Service{
		credentialStore: config.CredentialStore,
		studentStore:    config.StudentStore,
		universityStore: config.UniversityStore,
		ledgerSearch:    config.LedgerSearch,
		metrics:         config.Metrics,
	}

	if s.metrics == nil {
		s.metrics = noop.GetMetrics()
	}

	return s
}

// VerifyByArtifact hashes the candidate bytes and looks up the credential issued with that hash.
// A stored ledger reference is trusted as proof of anchoring; the ledger itself is not queried.
func (s *Service) VerifyByArtifact(ctx context.Context, candidate []byte) (*VerificationResult, error) {
	if len(candidate) == 0 {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "certificate",
			errors.New("certificate file is required"))
	}

	defer s.observe(MethodArtifact, time.Now())

	hash := artifact.Hash(candidate)

	c, err := s.credentialStore.FindByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, credential.ErrDataNotFound) {
			s.metrics.CredentialVerified(string(MethodArtifact), false)

			logger.Debugc(ctx, "No credential for artifact", logfields.WithContentHash(hash))

			return &VerificationResult{Valid: false, Message: messageNotFound}, nil
		}

		return nil, inconclusive(resterr.CredentialStoreComponent, "FindByHash", err)
	}

	view, err := s.view(ctx, c)
	if err != nil {
		return nil, err
	}

	s.metrics.CredentialVerified(string(MethodArtifact), true)

	return &VerificationResult{Valid: true, Credential: view}, nil
}

// VerifyBySlug looks up a credential by the slug encoded in its marker. The view includes the artifact path.
func (s *Service) VerifyBySlug(ctx context.Context, slugValue string) (*VerificationResult, error) {
	slugValue = strings.TrimSpace(slugValue)
	if slugValue == "" {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "slug",
			errors.New("credential slug is required"))
	}

	defer s.observe(MethodSlug, time.Now())

	notFound := &VerificationResult{
		Valid:        false,
		Message:      fmt.Sprintf("No credential found with ID: %s", slugValue),
		SearchedSlug: slugValue,
	}

	if !slug.Valid(slugValue) {
		s.metrics.CredentialVerified(string(MethodSlug), false)

		return notFound, nil
	}

	c, err := s.credentialStore.FindBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, credential.ErrDataNotFound) {
			s.metrics.CredentialVerified(string(MethodSlug), false)

			return notFound, nil
		}

		return nil, inconclusive(resterr.CredentialStoreComponent, "FindBySlug", err)
	}

	view, err := s.view(ctx, c)
	if err != nil {
		return nil, err
	}

	view.ImagePath = c.ArtifactPath

	s.metrics.CredentialVerified(string(MethodSlug), true)

	return &VerificationResult{Valid: true, Credential: view}, nil
}

// VerifyOnLedger scans the recent ledger history for an anchoring of hash without consulting the datastore.
func (s *Service) VerifyOnLedger(ctx context.Context, hash string) (*LedgerVerificationResult, error) {
	hash = strings.ToLower(strings.TrimSpace(hash))
	if !artifact.ValidHash(hash) {
		return nil, resterr.NewValidationError(resterr.InvalidValue, "hash",
			fmt.Errorf("expected %d hex characters", artifact.HashLength))
	}

	if s.ledgerSearch == nil {
		return nil, inconclusive(resterr.LedgerComponent, "Locate", errSearchDisabled)
	}

	start := time.Now()

	res, err := s.ledgerSearch.Locate(ctx, hash)

	s.metrics.LedgerSearchTime(time.Since(start))
	s.metrics.VerifyCredentialTime(string(MethodLedger), time.Since(start))

	if err != nil {
		return nil, inconclusive(resterr.LedgerComponent, "Locate", err)
	}

	result := &LedgerVerificationResult{
		Found:          res.Match != nil,
		Hash:           hash,
		FromBlock:      res.FromBlock,
		ToBlock:        res.ToBlock,
		SearchedBlocks: res.Scanned,
		SkippedBlocks:  res.Skipped,
	}

	if res.Match != nil {
		result.TxRef = res.Match.TxRef
		result.BlockNumber = res.Match.BlockNumber
	}

	s.metrics.CredentialVerified(string(MethodLedger), result.Found)

	logger.Infoc(ctx, "Ledger search completed", logfields.WithContentHash(hash),
		logfields.WithBlockWindow(res.Scanned), logfields.WithBlockNumber(res.FromBlock), zap.Bool("found", result.Found))

	return result, nil
}

func (s *Service) view(ctx context.Context, c *credential.Credential) (*CredentialView, error) {
	v := &CredentialView{
		Title:              c.Title,
		IssueDate:          c.IssuedAt,
		Hash:               c.ContentHash,
		Slug:               c.Slug,
		BlockchainTxHash:   c.LedgerTxRef,
		BlockchainVerified: c.Anchored(),
		BlockchainStatus:   c.BlockchainStatus(),
	}

	student, err := s.studentStore.FindByID(ctx, c.StudentID)
	switch {
	case err == nil:
		v.StudentName = student.Name
		v.StudentEmail = student.Email
	case errors.Is(err, credential.ErrDataNotFound):
		logger.Warnc(ctx, "Credential owner not found", logfields.WithCredentialID(c.ID),
			logfields.WithStudentID(c.StudentID))
	default:
		return nil, inconclusive(resterr.StudentStoreComponent, "FindByID", err)
	}

	university, err := s.universityStore.FindByID(ctx, c.UniversityID)
	switch {
	case err == nil:
		v.UniversityName = university.Name
	case errors.Is(err, credential.ErrDataNotFound):
		logger.Warnc(ctx, "Credential issuer not found", logfields.WithCredentialID(c.ID),
			logfields.WithUniversityID(c.UniversityID))
	default:
		return nil, inconclusive(resterr.UniversityStoreComponent, "FindByID", err)
	}

	return v, nil
}

func (s *Service) observe(method Method, start time.Time) {
	s.metrics.VerifyCredentialTime(string(method), time.Since(start))
}

func inconclusive(component resterr.Component, op string, err error) *resterr.CustomError {
	return resterr.NewComponentError(resterr.VerificationInconclusive, component, op, err)
}
