/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/proofly/proofly/pkg/credential"
	"github.com/proofly/proofly/pkg/storage/mem"
	"github.com/proofly/proofly/pkg/storage/mongodb"
	"github.com/proofly/proofly/pkg/storage/mongodb/credentialstore"
	"github.com/proofly/proofly/pkg/storage/mongodb/studentstore"
	"github.com/proofly/proofly/pkg/storage/mongodb/universitystore"
)

const (
	// DatabaseTypeFlagName is the database type.
	DatabaseTypeFlagName = "database-type"
	// DatabaseTypeFlagUsage describes the usage.
	DatabaseTypeFlagUsage = "Database type. Supported types are [mongodb, mem]. Default: mongodb." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseTypeEnvKey
	// DatabaseTypeEnvKey is the database type.
	DatabaseTypeEnvKey = "PROOFLY_DATABASE_TYPE"

	// DatabaseURLFlagName is the database url.
	DatabaseURLFlagName = "database-url"
	// DatabaseURLFlagUsage describes the usage.
	DatabaseURLFlagUsage = "Database URL with credentials if required." +
		" Example: 'mongodb://mongodb.example.com:27017'. Required for the mongodb database type." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseURLEnvKey
	// DatabaseURLEnvKey is the database url.
	DatabaseURLEnvKey = "DATABASE_URL"

	// DatabaseTimeoutFlagName is the database timeout.
	DatabaseTimeoutFlagName = "database-timeout"
	// DatabaseTimeoutFlagUsage describes the usage.
	DatabaseTimeoutFlagUsage = "Total time in seconds to wait until the datasource is available before giving up." +
		" Default: 30 seconds." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseTimeoutEnvKey
	// DatabaseTimeoutEnvKey is the database timeout.
	DatabaseTimeoutEnvKey = "PROOFLY_DATABASE_TIMEOUT"

	// DatabasePrefixFlagName is the storage prefix.
	DatabasePrefixFlagName = "database-prefix"
	// DatabasePrefixEnvKey is the storage prefix.
	DatabasePrefixEnvKey = "PROOFLY_DATABASE_PREFIX"
	// DatabasePrefixFlagUsage describes the usage.
	DatabasePrefixFlagUsage = "An optional prefix for the database name. " +
		"Alternatively, this can be set with the following environment variable: " + DatabasePrefixEnvKey

	// DatabaseTransactionsFlagName enables multi-document transactions.
	DatabaseTransactionsFlagName = "database-transactions"
	// DatabaseTransactionsEnvKey enables multi-document transactions.
	DatabaseTransactionsEnvKey = "PROOFLY_DATABASE_TRANSACTIONS"
	// DatabaseTransactionsFlagUsage describes the usage.
	DatabaseTransactionsFlagUsage = "Commit a new credential and the student index update in one MongoDB " +
		"transaction. Requires a replica set. Possible values [true] [false]. Defaults to false. " +
		"Alternatively, this can be set with the following environment variable: " + DatabaseTransactionsEnvKey

	// DatabaseTimeoutDefault is the default storage timeout.
	DatabaseTimeoutDefault = 30

	// DatabaseTypeMongoDB stores records in MongoDB.
	DatabaseTypeMongoDB = "mongodb"
	// DatabaseTypeMem keeps records in process memory.
	DatabaseTypeMem = "mem"

	databaseName = "proofly"
)

// DBParameters holds database configuration.
type DBParameters struct {
	Type    string
	URL     string
	Prefix  string
	Timeout uint64
	// Transactions is honored by MongoDB only.
	Transactions bool
}

// CredentialStore is the full credential record store.
type CredentialStore interface {
	Create(ctx context.Context, c *credential.Credential) (credential.ID, error)
	FindByID(ctx context.Context, id credential.ID) (*credential.Credential, error)
	FindBySlug(ctx context.Context, slug string) (*credential.Credential, error)
	FindByHash(ctx context.Context, hash string) (*credential.Credential, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	FindByStudent(ctx context.Context, studentID credential.ID) ([]*credential.Credential, error)
	FindByUniversity(ctx context.Context, universityID credential.ID) ([]*credential.Credential, error)
	FindUnanchored(ctx context.Context, limit int) ([]*credential.Credential, error)
	List(ctx context.Context, after credential.ID, limit int) ([]*credential.Credential, error)
	SetLedgerTxRef(ctx context.Context, id credential.ID, txRef string) (bool, error)
	Delete(ctx context.Context, id credential.ID) error
}

// StudentStore is the student record store.
type StudentStore interface {
	Create(ctx context.Context, st *credential.Student, token string) (credential.ID, error)
	FindByID(ctx context.Context, id credential.ID) (*credential.Student, error)
	FindByToken(ctx context.Context, token string) (*credential.Student, error)
	AddCredential(ctx context.Context, studentID, credentialID credential.ID) error
	RemoveCredential(ctx context.Context, studentID, credentialID credential.ID) error
}

// UniversityStore is the university record store.
type UniversityStore interface {
	Create(ctx context.Context, u *credential.University, token string) (credential.ID, error)
	FindByID(ctx context.Context, id credential.ID) (*credential.University, error)
	FindByToken(ctx context.Context, token string) (*credential.University, error)
}

// Stores holds the record stores of the configured database.
type Stores struct {
	Credentials  CredentialStore
	Students     StudentStore
	Universities UniversityStore
	// Mongo is nil for the mem database type.
	Mongo *mongodb.Client
}

// Close releases the database connection, if any.
func (s *Stores) Close() error {
	if s.Mongo == nil {
		return nil
	}

	return s.Mongo.Close()
}

// Flags registers common command flags.
func Flags(cmd *cobra.Command) {
	cmd.Flags().StringP(DatabaseTypeFlagName, "", "", DatabaseTypeFlagUsage)
	cmd.Flags().StringP(DatabaseURLFlagName, "", "", DatabaseURLFlagUsage)
	cmd.Flags().StringP(DatabasePrefixFlagName, "", "", DatabasePrefixFlagUsage)
	cmd.Flags().StringP(DatabaseTimeoutFlagName, "", "", DatabaseTimeoutFlagUsage)
	cmd.Flags().StringP(DatabaseTransactionsFlagName, "", "", DatabaseTransactionsFlagUsage)
}

// DBParams fetches the DB parameters configured for this command.
func DBParams(cmd *cobra.Command) (*DBParameters, error) {
	var err error

	params := &DBParameters{}

	params.Type = cmdutils.GetUserSetOptionalVarFromString(cmd, DatabaseTypeFlagName, DatabaseTypeEnvKey)
	if params.Type == "" {
		params.Type = DatabaseTypeMongoDB
	}

	switch params.Type {
	case DatabaseTypeMongoDB:
		params.URL, err = cmdutils.GetUserSetVarFromString(cmd, DatabaseURLFlagName, DatabaseURLEnvKey, false)
		if err != nil {
			return nil, fmt.Errorf("failed to configure dbURL: %w", err)
		}
	case DatabaseTypeMem:
	default:
		return nil, fmt.Errorf("unsupported database type: %s", params.Type)
	}

	params.Prefix = cmdutils.GetUserSetOptionalVarFromString(cmd, DatabasePrefixFlagName, DatabasePrefixEnvKey)

	timeout, err := cmdutils.GetUserSetVarFromString(cmd, DatabaseTimeoutFlagName, DatabaseTimeoutEnvKey, true)
	if err != nil && !strings.Contains(err.Error(), "value is empty") {
		return nil, fmt.Errorf("failed to configure dbTimeout: %w", err)
	}

	if timeout == "" {
		timeout = strconv.Itoa(DatabaseTimeoutDefault)
	}

	params.Timeout, err = strconv.ParseUint(timeout, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dbTimeout %s: %w", timeout, err)
	}

	transactions := cmdutils.GetUserSetOptionalVarFromString(cmd, DatabaseTransactionsFlagName,
		DatabaseTransactionsEnvKey)
	if transactions != "" {
		params.Transactions, err = strconv.ParseBool(transactions)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", DatabaseTransactionsFlagName, err)
		}
	}

	return params, nil
}

// InitStores opens the record stores. MongoDB connections are retried once a second until params.Timeout.
func InitStores(ctx context.Context, params *DBParameters, tracerProvider trace.TracerProvider,
	logger *log.Log) (*Stores, error) {
	if params.Type == DatabaseTypeMem {
		return &Stores{
			Credentials:  mem.NewCredentialStore(),
			Students:     mem.NewStudentStore(),
			Universities: mem.NewUniversityStore(),
		}, nil
	}

	if params.Type != DatabaseTypeMongoDB {
		return nil, fmt.Errorf("unsupported database type: %s", params.Type)
	}

	var client *mongodb.Client

	err := retry(
		func() error {
			var openErr error

			client, openErr = mongodb.New(params.URL, params.Prefix+databaseName,
				mongodb.WithTraceProvider(tracerProvider))
			if openErr != nil {
				return openErr
			}

			if openErr = client.Ping(ctx); openErr != nil {
				_ = client.Close()

				return openErr
			}

			return nil
		},
		params.Timeout,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	credentials, err := credentialstore.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential store: %w", err)
	}

	students, err := studentstore.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create student store: %w", err)
	}

	universities, err := universitystore.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create university store: %w", err)
	}

	return &Stores{
		Credentials:  credentials,
		Students:     students,
		Universities: universities,
		Mongo:        client,
	}, nil
}

func retry(task func() error, numRetries uint64, logger *log.Log) error {
	const sleep = 1 * time.Second

	return backoff.RetryNotify(
		task,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(sleep), numRetries),
		func(retryErr error, t time.Duration) {
			logger.Warn("Failed to connect to storage, will sleep before trying again.",
				log.WithDuration(t), log.WithError(retryErr))
		},
	)
}
