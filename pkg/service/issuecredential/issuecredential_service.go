/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -self_package mocks -package issuecredential_test -source=issuecredential_service.go -mock_names slugAllocator=MockSlugAllocator,artifactMarker=MockArtifactMarker,ledgerAnchor=MockLedgerAnchor,credentialStore=MockCredentialStore,studentStore=MockStudentStore,artifactStore=MockArtifactStore,transactor=MockTransactor

package issuecredential

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.uber.org/zap"

	"github.com/proofly/proofly/internal/logfields"
	"github.com/proofly/proofly/pkg/artifact"
	"github.com/proofly/proofly/pkg/credential"
	"github.com/proofly/proofly/pkg/observability/metrics"
	"github.com/proofly/proofly/pkg/observability/metrics/noop"
	"github.com/proofly/proofly/pkg/restapi/resterr"
)

var logger = log.New("issue-credential-service")

const (
	artifactDir     = "uploads"
	maxNameLength   = 64
	defaultBaseName = "credential"

	defaultMaxSlugCollisions = 3
)

var errLedgerDisabled = errors.New("ledger anchoring is not configured")

type slugAllocator interface {
	Allocate(ctx context.Context) (string, error)
	Release(ctx context.Context, slug string)
}

type artifactMarker interface {
	Mark(imageBytes []byte, markerURL string) ([]byte, error)
}

type ledgerAnchor interface {
	Anchor(ctx context.Context, hash, slug string) (string, error)
}

type credentialStore interface {
	Create(ctx context.Context, c *credential.Credential) (credential.ID, error)
}

type studentStore interface {
	FindByID(ctx context.Context, id credential.ID) (*credential.Student, error)
	AddCredential(ctx context.Context, studentID, credentialID credential.ID) error
}

type artifactStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

type transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Config struct {
	SlugAllocator slugAllocator
	Marker        artifactMarker
	// LedgerAnchor is optional. Without it every issuance is degraded.
	LedgerAnchor    ledgerAnchor
	CredentialStore credentialStore
	StudentStore    studentStore
	ArtifactStore   artifactStore
	// Transactor is optional. When set, the credential insert and the student index update commit together.
	Transactor  transactor
	Metrics     metrics.Metrics
	FrontendURL string
	Now         func() time.Time
	// MaxSlugCollisions caps the passes restarted by a slug taken at insert time. Defaults to 3.
	MaxSlugCollisions int
}

type Service struct {
	slugAllocator     slugAllocator
	marker            artifactMarker
	ledgerAnchor      ledgerAnchor
	credentialStore   credentialStore
	studentStore      studentStore
	artifactStore     artifactStore
	transactor        transactor
	metrics           metrics.Metrics
	frontendURL       string
	now               func() time.Time
	maxSlugCollisions int
}

func New(config *Config) *Service {
	s := &Service{
		slugAllocator:   config.SlugAllocator,
		marker:          config.Marker,
		ledgerAnchor:    config.LedgerAnchor,
		credentialStore: config.CredentialStore,
		studentStore:    config.StudentStore,
		artifactStore:   config.ArtifactStore,
		transactor:      config.Transactor,
		metrics:         config.Metrics,
		frontendURL:     config.FrontendURL,
		now:             config.Now,

		maxSlugCollisions: config.MaxSlugCollisions,
	}

	if s.metrics == nil {
		s.metrics = noop.GetMetrics()
	}

	if s.now == nil {
		s.now = time.Now
	}

	if s.maxSlugCollisions <= 0 {
		s.maxSlugCollisions = defaultMaxSlugCollisions
	}

	return s
}

// IssueCredential marks the uploaded image, stores it, anchors its hash and records the credential.
// A ledger failure does not fail the issuance: the result is returned with Degraded set and no LedgerTxRef.
// A slug taken by a concurrent insert restarts issuance from slug allocation, up to the collision cap.
func (s *Service) IssueCredential(ctx context.Context, req *IssueRequest) (*IssueResult, error) {
	start := time.Now()

	defer func() {
		s.metrics.IssueCredentialTime(time.Since(start))
	}()

	requestID := uuid.NewString()

	s.enter(ctx, requestID, StateValidating)

	if err := s.validate(ctx, req); err != nil {
		s.fail(ctx, requestID, StateValidating, err)

		return nil, err
	}

	for attempt := 1; ; attempt++ {
		result, err := s.issue(ctx, requestID, req)
		if err == nil {
			s.metrics.CredentialIssued(result.Degraded)

			logger.Infoc(ctx, "Credential issued",
				logfields.WithRequestID(requestID),
				logfields.WithState(string(StateDone)),
				logfields.WithCredentialID(result.CredentialID),
				logfields.WithSlug(result.Slug),
				logfields.WithContentHash(result.Hash),
				logfields.WithDegraded(result.Degraded),
			)

			return result, nil
		}

		if !errors.Is(err, credential.ErrDuplicateSlug) {
			return nil, err
		}

		if attempt >= s.maxSlugCollisions {
			s.fail(ctx, requestID, StatePersisting, err)

			return nil, resterr.NewComponentError(resterr.StorageWriteError, resterr.CredentialStoreComponent,
				string(StatePersisting), err)
		}

		logger.Warnc(ctx, "Slug taken by a concurrent issuance, allocating a new one",
			logfields.WithRequestID(requestID), zap.Int("attempt", attempt))
	}
}

// issue runs one pass from slug allocation to persistence. On a duplicate slug the stored artifact is
// removed and the returned error wraps credential.ErrDuplicateSlug.
func (s *Service) issue(ctx context.Context, requestID string, req *IssueRequest) (*IssueResult, error) {
	s.enter(ctx, requestID, StateSlugAllocating)

	slug, err := s.slugAllocator.Allocate(ctx)
	if err != nil {
		s.fail(ctx, requestID, StateSlugAllocating, err)

		return nil, resterr.NewSystemError(resterr.SlugAllocatorComponent, string(StateSlugAllocating), err)
	}

	defer s.slugAllocator.Release(context.WithoutCancel(ctx), slug)

	s.enter(ctx, requestID, StateMarking, logfields.WithSlug(slug))

	marked, err := s.marker.Mark(req.Image, artifact.URL(s.frontendURL, slug))
	if err != nil {
		s.fail(ctx, requestID, StateMarking, err)

		return nil, resterr.NewComponentError(resterr.ArtifactProcessingError, resterr.ArtifactMarkerComponent,
			string(StateMarking), err)
	}

	s.enter(ctx, requestID, StateHashing)

	hash := artifact.Hash(marked)
	artifactPath := ArtifactPath(s.now(), slug, req.FileName, req.Title)

	if err = s.artifactStore.Put(ctx, artifactPath, marked); err != nil {
		s.fail(ctx, requestID, StateHashing, err)

		return nil, resterr.NewComponentError(resterr.StorageWriteError, resterr.ArtifactStoreComponent,
			string(StateHashing), err)
	}

	s.enter(ctx, requestID, StateAnchoring, logfields.WithContentHash(hash))

	txRef, anchorErr := s.anchor(ctx, requestID, hash, slug)

	s.enter(ctx, requestID, StatePersisting)

	c := &credential.Credential{
		StudentID:    req.StudentID,
		UniversityID: req.UniversityID,
		Title:        strings.TrimSpace(req.Title),
		ArtifactPath: artifactPath,
		ContentHash:  hash,
		Slug:         slug,
		LedgerTxRef:  txRef,
		IssuedAt:     s.now().UTC(),
	}

	id, err := s.persist(ctx, requestID, c)
	if err != nil {
		if delErr := s.artifactStore.Delete(context.WithoutCancel(ctx), artifactPath); delErr != nil {
			logger.Errorc(ctx, "Failed to remove artifact of unpersisted credential",
				log.WithError(delErr), logfields.WithArtifactPath(artifactPath))
		}

		if errors.Is(err, credential.ErrDuplicateSlug) {
			return nil, err
		}

		s.fail(ctx, requestID, StatePersisting, err)

		return nil, resterr.NewComponentError(resterr.StorageWriteError, resterr.CredentialStoreComponent,
			string(StatePersisting), err)
	}

	result := &IssueResult{
		CredentialID: id,
		Hash:         hash,
		Slug:         slug,
		LedgerTxRef:  txRef,
		ArtifactPath: artifactPath,
		Message:      messageAnchored,
	}

	if anchorErr != nil {
		result.Degraded = true
		result.Message = messageDegraded
		result.Warning = warningDegraded
		result.AnchorError = anchorErr.Error()
	}

	return result, nil
}

func (s *Service) validate(ctx context.Context, req *IssueRequest) error {
	if len(req.Image) == 0 {
		return resterr.NewValidationError(resterr.InvalidValue, "credential",
			errors.New("credential file is required"))
	}

	if strings.TrimSpace(req.Title) == "" {
		return resterr.NewValidationError(resterr.InvalidValue, "title", errors.New("title is required"))
	}

	if req.StudentID == "" {
		return resterr.NewValidationError(resterr.InvalidValue, "studentId", errors.New("student ID is required"))
	}

	student, err := s.studentStore.FindByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, credential.ErrDataNotFound) {
			return resterr.NewValidationError(resterr.InvalidValue, "studentId", errors.New("invalid student ID"))
		}

		return resterr.NewSystemError(resterr.StudentStoreComponent, "FindByID", err)
	}

	if student.UniversityID != req.UniversityID {
		return resterr.NewValidationError(resterr.InvalidValue, "studentId", errors.New("invalid student ID"))
	}

	return nil
}

func (s *Service) anchor(ctx context.Context, requestID, hash, slug string) (*string, error) {
	if s.ledgerAnchor == nil {
		s.metrics.AnchorFailed()

		logger.Warnc(ctx, "Credential not anchored", log.WithError(errLedgerDisabled),
			logfields.WithRequestID(requestID), logfields.WithSlug(slug))

		return nil, errLedgerDisabled
	}

	start := time.Now()

	txRef, err := s.ledgerAnchor.Anchor(ctx, hash, slug)

	s.metrics.AnchorTime(time.Since(start))

	if err != nil {
		s.metrics.AnchorFailed()

		logger.Warnc(ctx, "Credential not anchored, continuing without ledger reference", log.WithError(err),
			logfields.WithRequestID(requestID), logfields.WithSlug(slug), logfields.WithContentHash(hash))

		return nil, err
	}

	logger.Infoc(ctx, "Credential anchored", logfields.WithRequestID(requestID), logfields.WithTxRef(txRef))

	return &txRef, nil
}

func (s *Service) persist(ctx context.Context, requestID string, c *credential.Credential) (credential.ID, error) {
	if s.transactor != nil {
		var id credential.ID

		err := s.transactor.WithTransaction(ctx, func(ctx context.Context) error {
			var err error

			id, err = s.credentialStore.Create(ctx, c)
			if err != nil {
				return fmt.Errorf("insert credential: %w", err)
			}

			if err = s.studentStore.AddCredential(ctx, c.StudentID, id); err != nil {
				return fmt.Errorf("update student index: %w", err)
			}

			return nil
		})
		if err != nil {
			return "", err
		}

		return id, nil
	}

	id, err := s.credentialStore.Create(ctx, c)
	if err != nil {
		return "", fmt.Errorf("insert credential: %w", err)
	}

	if err = s.studentStore.AddCredential(ctx, c.StudentID, id); err != nil {
		// The credential record is authoritative; the index is repaired by the reconcile pass.
		logger.Errorc(ctx, "Failed to add credential to student index", log.WithError(err),
			logfields.WithRequestID(requestID), logfields.WithCredentialID(id), logfields.WithStudentID(c.StudentID))
	}

	return id, nil
}

func (s *Service) enter(ctx context.Context, requestID string, state State, fields ...zap.Field) {
	logger.Debugc(ctx, "Issuance state",
		append([]zap.Field{logfields.WithRequestID(requestID), logfields.WithState(string(state))}, fields...)...)
}

func (s *Service) fail(ctx context.Context, requestID string, state State, err error) {
	logger.Warnc(ctx, "Issuance failed", log.WithError(err), logfields.WithRequestID(requestID),
		logfields.WithState(string(StateFailed)), zap.String("failedState", string(state)))
}

// ArtifactPath returns the storage key of a marked artifact: uploads/<unixMillis>-<slug>-<name>.png.
func ArtifactPath(issuedAt time.Time, slug, fileName, title string) string {
	name := sanitize(strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName)))
	if name == "" {
		name = sanitize(title)
	}

	if name == "" {
		name = defaultBaseName
	}

	return artifactDir + "/" + strconv.FormatInt(issuedAt.UnixMilli(), 10) + "-" + slug + "-" + name + ".png"
}

func sanitize(s string) string {
	var b strings.Builder

	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}

		if b.Len() >= maxNameLength {
			break
		}
	}

	return strings.Trim(b.String(), "_")
}
