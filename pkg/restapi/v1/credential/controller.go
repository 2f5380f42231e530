/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package credential_test -source=controller.go -mock_names issueService=MockIssueService,verifyService=MockVerifyService,revokeService=MockRevokeService,credentialStore=MockCredentialStore,studentStore=MockStudentStore,universityStore=MockUniversityStore,ledgerStatus=MockLedgerStatus

package credential

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/proofly/proofly/internal/logfields"
	"github.com/proofly/proofly/pkg/credential"
	"github.com/proofly/proofly/pkg/ledger"
	"github.com/proofly/proofly/pkg/restapi/resterr"
	"github.com/proofly/proofly/pkg/restapi/v1/mw"
	"github.com/proofly/proofly/pkg/restapi/v1/util"
	"github.com/proofly/proofly/pkg/service/issuecredential"
	"github.com/proofly/proofly/pkg/service/verifycredential"
)

var logger = log.New("rest-credential")

const (
	// DefaultMaxUploadSize bounds uploaded credential and certificate images.
	DefaultMaxUploadSize = 10 << 20

	issueFileField    = "credential"
	validateFileField = "certificate"

	messageRevoked = "Credential revoked successfully"
)

type issueService interface {
	IssueCredential(ctx context.Context, req *issuecredential.IssueRequest) (*issuecredential.IssueResult, error)
}

type verifyService interface {
	VerifyByArtifact(ctx context.Context, candidate []byte) (*verifycredential.VerificationResult, error)
	VerifyBySlug(ctx context.Context, slug string) (*verifycredential.VerificationResult, error)
	VerifyOnLedger(ctx context.Context, hash string) (*verifycredential.LedgerVerificationResult, error)
}

type revokeService interface {
	Revoke(ctx context.Context, universityID, credentialID credential.ID) error
}

type credentialStore interface {
	FindByStudent(ctx context.Context, studentID credential.ID) ([]*credential.Credential, error)
	FindByUniversity(ctx context.Context, universityID credential.ID) ([]*credential.Credential, error)
}

type studentStore interface {
	FindByID(ctx context.Context, id credential.ID) (*credential.Student, error)
}

type universityStore interface {
	FindByID(ctx context.Context, id credential.ID) (*credential.University, error)
}

type ledgerStatus interface {
	Address() string
	Balance(ctx context.Context) (*big.Int, error)
}

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	IssueService    issueService
	VerifyService   verifyService
	RevokeService   revokeService
	CredentialStore credentialStore
	StudentStore    studentStore
	UniversityStore universityStore
	// LedgerStatus is optional. Without it the blockchain status reports a disconnected ledger.
	LedgerStatus   ledgerStatus
	UniversityAuth echo.MiddlewareFunc
	StudentAuth    echo.MiddlewareFunc
	MaxUploadSize  int64
	NetworkName    string
	Currency       string
}

type Controller struct {
	issueService    issueService
	verifyService   verifyService
	revokeService   revokeService
	credentialStore credentialStore
	studentStore    studentStore
	universityStore universityStore
	ledgerStatus    ledgerStatus
	maxUploadSize   int64
	networkName     string
	currency        string
}

// NewController registers the credential routes on router, which is expected to be the /api/credentials group.
func NewController(router router, config *Config) *Controller {
	c := &Controller{
		issueService:    config.IssueService,
		verifyService:   config.VerifyService,
		revokeService:   config.RevokeService,
		credentialStore: config.CredentialStore,
		studentStore:    config.StudentStore,
		universityStore: config.UniversityStore,
		ledgerStatus:    config.LedgerStatus,
		maxUploadSize:   config.MaxUploadSize,
		networkName:     config.NetworkName,
		currency:        config.Currency,
	}

	if c.maxUploadSize <= 0 {
		c.maxUploadSize = DefaultMaxUploadSize
	}

	router.POST("/issue", c.PostIssue, config.UniversityAuth)
	router.POST("/validate", c.PostValidate)
	router.GET("/validate-by-slug/:slug", c.GetValidateBySlug)
	router.DELETE("/revoke/:credentialId", c.DeleteRevoke, config.UniversityAuth)
	router.GET("/student", c.GetStudentCredentials, config.StudentAuth)
	router.GET("/university", c.GetUniversityCredentials, config.UniversityAuth)
	router.GET("/blockchain-status", c.GetBlockchainStatus)
	router.GET("/ledger/:hash", c.GetLedgerVerification)

	return c
}

// PostIssue issues a credential from the uploaded image.
// POST /api/credentials/issue.
func (c *Controller) PostIssue(e echo.Context) error {
	university, err := mw.University(e)
	if err != nil {
		return err
	}

	file, err := util.ReadFormFile(e, issueFileField, c.maxUploadSize)
	if err != nil {
		return err
	}

	return util.WriteOutput(e)(c.issueService.IssueCredential(e.Request().Context(), &issuecredential.IssueRequest{
		UniversityID: university.ID,
		StudentID:    e.FormValue("studentId"),
		Title:        e.FormValue("title"),
		FileName:     file.Name,
		Image:        file.Data,
	}))
}

// PostValidate verifies an uploaded certificate image.
// POST /api/credentials/validate.
func (c *Controller) PostValidate(e echo.Context) error {
	file, err := util.ReadFormFile(e, validateFileField, c.maxUploadSize)
	if err != nil {
		return err
	}

	return util.WriteOutput(e)(c.verifyService.VerifyByArtifact(e.Request().Context(), file.Data))
}

// GetValidateBySlug verifies the credential a scanned marker points to.
// GET /api/credentials/validate-by-slug/:slug.
func (c *Controller) GetValidateBySlug(e echo.Context) error {
	slug, err := util.PathParam(e, "slug")
	if err != nil {
		return err
	}

	return util.WriteOutput(e)(c.verifyService.VerifyBySlug(e.Request().Context(), slug))
}

// GetLedgerVerification searches the ledger for an anchoring of the hash.
// GET /api/credentials/ledger/:hash.
func (c *Controller) GetLedgerVerification(e echo.Context) error {
	hash, err := util.PathParam(e, "hash")
	if err != nil {
		return err
	}

	return util.WriteOutput(e)(c.verifyService.VerifyOnLedger(e.Request().Context(), hash))
}

// DeleteRevoke revokes a credential issued by the calling university.
// DELETE /api/credentials/revoke/:credentialId.
func (c *Controller) DeleteRevoke(e echo.Context) error {
	university, err := mw.University(e)
	if err != nil {
		return err
	}

	credentialID, err := util.PathParam(e, "credentialId")
	if err != nil {
		return err
	}

	if err = c.revokeService.Revoke(e.Request().Context(), university.ID, credentialID); err != nil {
		return err
	}

	return e.JSON(http.StatusOK, messageResponse{Message: messageRevoked})
}

// GetStudentCredentials lists the credentials of the calling student.
// GET /api/credentials/student.
func (c *Controller) GetStudentCredentials(e echo.Context) error {
	student, err := mw.Student(e)
	if err != nil {
		return err
	}

	ctx := e.Request().Context()

	list, err := c.credentialStore.FindByStudent(ctx, student.ID)
	if err != nil {
		return resterr.NewSystemError(resterr.CredentialStoreComponent, "FindByStudent", err)
	}

	names := map[credential.ID]string{}

	out := make([]*studentCredential, 0, len(list))

	for _, cr := range list {
		name, ok := names[cr.UniversityID]
		if !ok {
			name, err = c.universityName(ctx, cr.UniversityID)
			if err != nil {
				return err
			}

			names[cr.UniversityID] = name
		}

		out = append(out, &studentCredential{
			credentialFields: fields(cr),
			Student:          cr.StudentID,
			University:       universityRef{ID: cr.UniversityID, UniversityName: name},
		})
	}

	return e.JSON(http.StatusOK, out)
}

// GetUniversityCredentials lists the credentials issued by the calling university, newest first.
// GET /api/credentials/university.
func (c *Controller) GetUniversityCredentials(e echo.Context) error {
	university, err := mw.University(e)
	if err != nil {
		return err
	}

	ctx := e.Request().Context()

	list, err := c.credentialStore.FindByUniversity(ctx, university.ID)
	if err != nil {
		return resterr.NewSystemError(resterr.CredentialStoreComponent, "FindByUniversity", err)
	}

	students := map[credential.ID]*studentRef{}

	for _, id := range lo.Uniq(lo.Map(list, func(cr *credential.Credential, _ int) credential.ID {
		return cr.StudentID
	})) {
		ref, err := c.studentRef(ctx, id)
		if err != nil {
			return err
		}

		students[id] = ref
	}

	out := lo.Map(list, func(cr *credential.Credential, _ int) *universityCredential {
		return &universityCredential{
			credentialFields: fields(cr),
			Student:          students[cr.StudentID],
			University:       cr.UniversityID,
		}
	})

	return e.JSON(http.StatusOK, out)
}

// GetBlockchainStatus reports the anchoring account and its balance. A ledger failure is reported in the body.
// GET /api/credentials/blockchain-status.
func (c *Controller) GetBlockchainStatus(e echo.Context) error {
	if c.ledgerStatus == nil {
		return e.JSON(http.StatusOK, &blockchainStatus{
			Connected: false,
			Error:     "Failed to connect to blockchain",
			Details:   "ledger anchoring is not configured",
		})
	}

	balance, err := c.ledgerStatus.Balance(e.Request().Context())
	if err != nil {
		logger.Warnc(e.Request().Context(), "Failed to read ledger balance", log.WithError(err),
			logfields.WithLedgerAddress(c.ledgerStatus.Address()))

		return e.JSON(http.StatusOK, &blockchainStatus{
			Connected: false,
			Error:     "Failed to connect to blockchain",
			Details:   err.Error(),
		})
	}

	return e.JSON(http.StatusOK, &blockchainStatus{
		Connected:     true,
		WalletAddress: c.ledgerStatus.Address(),
		Balance:       fmt.Sprintf("%s %s", ledger.FormatEther(balance), c.currency),
		Network:       c.networkName,
	})
}

func (c *Controller) universityName(ctx context.Context, id credential.ID) (string, error) {
	u, err := c.universityStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, credential.ErrDataNotFound) {
			return "", nil
		}

		return "", resterr.NewSystemError(resterr.UniversityStoreComponent, "FindByID", err)
	}

	return u.Name, nil
}

func (c *Controller) studentRef(ctx context.Context, id credential.ID) (*studentRef, error) {
	s, err := c.studentStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, credential.ErrDataNotFound) {
			return nil, nil
		}

		return nil, resterr.NewSystemError(resterr.StudentStoreComponent, "FindByID", err)
	}

	return &studentRef{ID: s.ID, Name: s.Name, Email: s.Email}, nil
}

func fields(c *credential.Credential) credentialFields {
	return credentialFields{
		ID:               c.ID,
		Title:            c.Title,
		ImagePath:        c.ArtifactPath,
		CredentialHash:   c.ContentHash,
		Slug:             c.Slug,
		BlockchainTxHash: c.LedgerTxRef,
		IssueDate:        c.IssuedAt,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

type credentialFields struct {
	ID               credential.ID `json:"_id"`
	Title            string        `json:"title"`
	ImagePath        string        `json:"imagePath"`
	CredentialHash   string        `json:"credentialHash"`
	Slug             string        `json:"slug"`
	BlockchainTxHash *string       `json:"blockchainTxHash"`
	IssueDate        time.Time     `json:"issueDate"`
}

type universityRef struct {
	ID             credential.ID `json:"_id"`
	UniversityName string        `json:"universityName"`
}

type studentRef struct {
	ID    credential.ID `json:"_id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
}

type studentCredential struct {
	credentialFields
	Student    credential.ID `json:"student"`
	University universityRef `json:"university"`
}

type universityCredential struct {
	credentialFields
	Student    *studentRef   `json:"student"`
	University credential.ID `json:"university"`
}

type blockchainStatus struct {
	Connected     bool   `json:"connected"`
	WalletAddress string `json:"walletAddress,omitempty"`
	Balance       string `json:"balance,omitempty"`
	Network       string `json:"network,omitempty"`
	Error         string `json:"error,omitempty"`
	Details       string `json:"details,omitempty"`
}
