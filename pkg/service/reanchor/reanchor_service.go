/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -self_package mocks -package reanchor_test -source=reanchor_service.go -mock_names credentialStore=MockCredentialStore,studentStore=MockStudentStore,artifactStore=MockArtifactStore,ledgerAnchor=MockLedgerAnchor

package reanchor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.uber.org/zap"

	"github.com/proofly/proofly/internal/logfields"
	"github.com/proofly/proofly/pkg/artifact"
	"github.com/proofly/proofly/pkg/credential"
	"github.com/proofly/proofly/pkg/ledger"
	"github.com/proofly/proofly/pkg/locker"
	"github.com/proofly/proofly/pkg/observability/metrics"
	"github.com/proofly/proofly/pkg/observability/metrics/noop"
)

var logger = log.New("reanchor-service")

const (
	passLockKey       = "proofly-maintenance-reanchor"
	defaultPageSize   = 100
	defaultBatchSize  = 50
	defaultMaxRetries = 3
)

const (
	reasonMissing  = "artifact missing"
	reasonMismatch = "content hash mismatch"
)

// ErrLedgerDisabled is returned by ReanchorPending when no ledger anchor is configured.
var ErrLedgerDisabled = errors.New("ledger anchoring is not configured")

type credentialStore interface {
	FindUnanchored(ctx context.Context, limit int) ([]*credential.Credential, error)
	SetLedgerTxRef(ctx context.Context, id credential.ID, txRef string) (bool, error)
	List(ctx context.Context, after credential.ID, limit int) ([]*credential.Credential, error)
}

type studentStore interface {
	FindByID(ctx context.Context, id credential.ID) (*credential.Student, error)
	AddCredential(ctx context.Context, studentID, credentialID credential.ID) error
}

type artifactStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

type ledgerAnchor interface {
	Anchor(ctx context.Context, hash, slug string) (string, error)
}

type Config struct {
	CredentialStore credentialStore
	StudentStore    studentStore
	ArtifactStore   artifactStore
	LedgerAnchor    ledgerAnchor
	// Locker serializes passes across instances. Defaults to an in-process mutex.
	Locker   locker.Locker
	Metrics  metrics.Metrics
	PageSize int
	// BackOff builds the retry policy of a single anchoring attempt.
	BackOff func() backoff.BackOff
}

type Service struct {
	credentialStore credentialStore
	studentStore    studentStore
	artifactStore   artifactStore
	ledgerAnchor    ledgerAnchor
	locker          locker.Locker
	metrics         metrics.Metrics
	pageSize        int
	backOff         func() backoff.BackOff
}

func New(config *Config) *Service {
	s := &Service{
		credentialStore: config.CredentialStore,
		studentStore:    config.StudentStore,
		artifactStore:   config.ArtifactStore,
		ledgerAnchor:    config.LedgerAnchor,
		locker:          config.Locker,
		metrics:         config.Metrics,
		pageSize:        config.PageSize,
		backOff:         config.BackOff,
	}

	if s.locker == nil {
		s.locker = locker.NewKeyedMutex()
	}

	if s.metrics == nil {
		s.metrics = noop.GetMetrics()
	}

	if s.pageSize <= 0 {
		s.pageSize = defaultPageSize
	}

	if s.backOff == nil {
		s.backOff = func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), defaultMaxRetries)
		}
	}

	return s
}

// ReanchorPending anchors up to limit credentials that have no ledger reference. The reference is
// stored only if the credential is still unanchored.
func (s *Service) ReanchorPending(ctx context.Context, limit int) (*ReanchorReport, error) {
	if s.ledgerAnchor == nil {
		return nil, ErrLedgerDisabled
	}

	if limit <= 0 {
		limit = defaultBatchSize
	}

	mutex := s.locker.NewMutex(passLockKey)

	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("acquire reanchor lock: %w", err)
	}

	defer func() {
		if _, err := mutex.UnlockContext(context.WithoutCancel(ctx)); err != nil {
			logger.Warnc(ctx, "Failed to release reanchor lock", log.WithError(err))
		}
	}()

	pending, err := s.credentialStore.FindUnanchored(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("find unanchored credentials: %w", err)
	}

	report := &ReanchorReport{Pending: len(pending)}

	for _, c := range pending {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		txRef, anchorErr := s.anchorWithRetry(ctx, c)
		if anchorErr != nil && txRef != "" {
			report.Unconfirmed++

			logger.Warnc(ctx, "Anchoring transaction sent but not confirmed, storing its reference",
				log.WithError(anchorErr), logfields.WithCredentialID(c.ID), logfields.WithTxRef(txRef))
		} else if anchorErr != nil {
			report.Failed++
			s.metrics.CredentialReanchored(false)

			logger.Warnc(ctx, "Reanchoring failed", log.WithError(anchorErr),
				logfields.WithCredentialID(c.ID), logfields.WithSlug(c.Slug))

			continue
		}

		updated, err := s.credentialStore.SetLedgerTxRef(ctx, c.ID, txRef)
		if err != nil {
			report.Failed++
			s.metrics.CredentialReanchored(false)

			logger.Errorc(ctx, "Failed to store ledger reference", log.WithError(err),
				logfields.WithCredentialID(c.ID), logfields.WithTxRef(txRef))

			continue
		}

		if !updated {
			report.Skipped++

			continue
		}

		report.Anchored++
		s.metrics.CredentialReanchored(true)

		logger.Infoc(ctx, "Credential reanchored", logfields.WithCredentialID(c.ID), logfields.WithTxRef(txRef))
	}

	return report, nil
}

// anchorWithRetry stops retrying once a transaction was sent: the reference of a sent but
// unconfirmed transaction is returned together with the error.
func (s *Service) anchorWithRetry(ctx context.Context, c *credential.Credential) (string, error) {
	var txRef string

	err := backoff.RetryNotify(
		func() error {
			var err error

			txRef, err = s.ledgerAnchor.Anchor(ctx, c.ContentHash, c.Slug)
			if err == nil {
				return nil
			}

			if sent, ok := ledger.SentTxRef(err); ok {
				txRef = sent

				return backoff.Permanent(err)
			}

			if errors.Is(err, ledger.ErrInsufficientFunds) || errors.Is(err, ledger.ErrTxReverted) {
				return backoff.Permanent(err)
			}

			return err
		},
		backoff.WithContext(s.backOff(), ctx),
		func(err error, d time.Duration) {
			logger.Debugc(ctx, "Anchoring attempt failed, retrying", log.WithError(err), log.WithDuration(d),
				logfields.WithCredentialID(c.ID))
		},
	)

	return txRef, err
}

// ReconcileStudentIndex adds every credential to its student's credential index.
func (s *Service) ReconcileStudentIndex(ctx context.Context) (*ReconcileReport, error) {
	report := &ReconcileReport{}

	students := map[credential.ID]*credential.Student{}

	err := s.each(ctx, 0, func(c *credential.Credential) error {
		report.Scanned++

		st, ok := students[c.StudentID]
		if !ok {
			var err error

			st, err = s.studentStore.FindByID(ctx, c.StudentID)
			if errors.Is(err, credential.ErrDataNotFound) {
				report.Orphaned = append(report.Orphaned, c.ID)

				logger.Warnc(ctx, "Credential refers to a missing student", logfields.WithCredentialID(c.ID),
					logfields.WithStudentID(c.StudentID))

				return nil
			}

			if err != nil {
				return fmt.Errorf("find student %s: %w", c.StudentID, err)
			}

			students[c.StudentID] = st
		}

		if lo.Contains(st.CredentialIDs, c.ID) {
			return nil
		}

		if err := s.studentStore.AddCredential(ctx, c.StudentID, c.ID); err != nil {
			return fmt.Errorf("add credential %s to student index: %w", c.ID, err)
		}

		st.CredentialIDs = append(st.CredentialIDs, c.ID)
		report.Repaired++

		logger.Infoc(ctx, "Student index repaired", logfields.WithCredentialID(c.ID),
			logfields.WithStudentID(c.StudentID))

		return nil
	})

	return report, err
}

// AuditArtifacts recomputes the hash of up to limit stored artifacts (all when limit is 0) and
// reports every artifact that is missing or no longer matches its credential.
func (s *Service) AuditArtifacts(ctx context.Context, limit int) (*AuditReport, error) {
	report := &AuditReport{}

	err := s.each(ctx, limit, func(c *credential.Credential) error {
		report.Scanned++

		data, err := s.artifactStore.Get(ctx, c.ArtifactPath)
		if err != nil {
			if !errors.Is(err, credential.ErrDataNotFound) {
				return fmt.Errorf("read artifact %s: %w", c.ArtifactPath, err)
			}

			report.Problems = append(report.Problems, problem(c, reasonMissing))

			return nil
		}

		if artifact.Hash(data) != c.ContentHash {
			report.Problems = append(report.Problems, problem(c, reasonMismatch))
		}

		return nil
	})

	for _, p := range report.Problems {
		logger.Warnc(ctx, "Artifact audit problem: "+p.Reason, logfields.WithCredentialID(p.CredentialID),
			logfields.WithArtifactPath(p.ArtifactPath))
	}

	return report, err
}

// Run reanchors pending credentials every interval until ctx is done.
func (s *Service) Run(ctx context.Context, interval time.Duration, batch int) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := s.ReanchorPending(ctx, batch)
			if err != nil {
				logger.Errorc(ctx, "Reanchor pass failed", log.WithError(err))

				continue
			}

			if report.Pending > 0 {
				logger.Infoc(ctx, "Reanchor pass completed", zap.Int("pending", report.Pending),
					zap.Int("anchored", report.Anchored), zap.Int("failed", report.Failed))
			}
		}
	}
}

func (s *Service) each(ctx context.Context, limit int, fn func(c *credential.Credential) error) error {
	var (
		after credential.ID
		seen  int
	)

	for {
		page, err := s.credentialStore.List(ctx, after, s.pageSize)
		if err != nil {
			return fmt.Errorf("list credentials: %w", err)
		}

		for _, c := range page {
			if limit > 0 && seen >= limit {
				return nil
			}

			if err = fn(c); err != nil {
				return err
			}

			seen++
		}

		if len(page) < s.pageSize {
			return nil
		}

		after = page[len(page)-1].ID
	}
}

func problem(c *credential.Credential, reason string) ArtifactProblem {
	return ArtifactProblem{CredentialID: c.ID, ArtifactPath: c.ArtifactPath, Reason: reason}
}
