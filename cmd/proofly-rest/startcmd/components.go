/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/proofly/proofly/cmd/common"
	"github.com/proofly/proofly/internal/logfields"
	"github.com/proofly/proofly/pkg/ledger"
	"github.com/proofly/proofly/pkg/locker"
	"github.com/proofly/proofly/pkg/observability/metrics"
	"github.com/proofly/proofly/pkg/service/reanchor"
	"github.com/proofly/proofly/pkg/slug"
	fsartifactstore "github.com/proofly/proofly/pkg/storage/fs/artifactstore"
	"github.com/proofly/proofly/pkg/storage/redis"
	"github.com/proofly/proofly/pkg/storage/redis/slugreservationstore"
	s3artifactstore "github.com/proofly/proofly/pkg/storage/s3/artifactstore"
)

const redisConnectRetries = 5

type artifactStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// components holds the storage and ledger dependencies shared by the start and maintenance commands.
type components struct {
	stores    *common.Stores
	artifacts artifactStore
	fsStore   *fsartifactstore.Store
	s3Store   *s3artifactstore.Store
	redis     *redis.Client
	locker    locker.Locker
	reserver  slug.Reserver
	ethClient *ethclient.Client
	anchor    *ledger.Anchor
	search    *ledger.Search
}

func buildComponents(ctx context.Context, params *startupParameters,
	tracerProvider trace.TracerProvider) (*components, error) {
	stores, err := common.InitStores(ctx, params.dbParameters, tracerProvider, logger)
	if err != nil {
		return nil, err
	}

	c := &components{stores: stores}

	if err = c.initArtifactStore(ctx, params.artifactParameters); err != nil {
		c.Close()

		return nil, err
	}

	if err = c.initRedis(params.redisParameters, tracerProvider); err != nil {
		c.Close()

		return nil, err
	}

	if err = c.initLedger(params.ledgerParameters); err != nil {
		c.Close()

		return nil, err
	}

	return c, nil
}

func (c *components) initArtifactStore(ctx context.Context, params *artifactParameters) error {
	switch params.storeType {
	case artifactStoreS3:
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(params.s3Region))
		if err != nil {
			return fmt.Errorf("load aws config: %w", err)
		}

		c.s3Store = s3artifactstore.NewStore(s3.NewFromConfig(cfg), params.s3Bucket, params.s3Region,
			params.s3HostName)
		c.artifacts = c.s3Store
	default:
		store, err := fsartifactstore.New(params.dir)
		if err != nil {
			return fmt.Errorf("create artifact store: %w", err)
		}

		c.fsStore = store
		c.artifacts = store
	}

	logger.Info("Artifact store initialized", zap.String("type", params.storeType))

	return nil
}

func (c *components) initRedis(params *redisParameters, tracerProvider trace.TracerProvider) error {
	if len(params.addrs) == 0 {
		c.locker = locker.NewKeyedMutex()
		c.reserver = slug.NewMemReserver()

		return nil
	}

	opts := []redis.ClientOpt{
		redis.WithTraceProvider(tracerProvider),
		redis.WithConnectRetries(redisConnectRetries),
	}

	if params.password != "" {
		opts = append(opts, redis.WithPassword(params.password))
	}

	client, err := redis.New(params.addrs, opts...)
	if err != nil {
		return fmt.Errorf("create redis client: %w", err)
	}

	c.redis = client
	c.locker = locker.NewRedis(client.API())
	c.reserver = slugreservationstore.New(client, params.slugReservationTTL)

	return nil
}

func (c *components) initLedger(params *ledgerParameters) error {
	if params.rpcURL == ledgerDisabled {
		logger.Warn("Ledger is disabled, credentials are issued without anchoring")

		return nil
	}

	client, err := ethclient.Dial(params.rpcURL)
	if err != nil {
		return fmt.Errorf("dial ledger: %w", err)
	}

	c.ethClient = client

	c.search = ledger.NewSearch(&ledger.SearchConfig{
		Client:       client,
		Window:       params.searchWindow,
		BlockTimeout: params.searchBlockTimeout,
	})

	if params.privateKey == "" {
		logger.Warn("Ledger private key is not set, credentials are issued without anchoring")

		return nil
	}

	key, err := ledger.ParsePrivateKey(params.privateKey)
	if err != nil {
		return err
	}

	c.anchor = ledger.NewAnchor(&ledger.AnchorConfig{
		Client:         client,
		PrivateKey:     key,
		Locker:         c.locker,
		GasLimit:       params.gasLimit,
		ConfirmTimeout: params.confirmTimeout,
	})

	logger.Info("Ledger anchoring enabled", logfields.WithLedgerAddress(c.anchor.Address()))

	return nil
}

func (c *components) reanchorService(m metrics.Metrics) *reanchor.Service {
	cfg := &reanchor.Config{
		CredentialStore: c.stores.Credentials,
		StudentStore:    c.stores.Students,
		ArtifactStore:   c.artifacts,
		Locker:          c.locker,
		Metrics:         m,
	}

	if c.anchor != nil {
		cfg.LedgerAnchor = c.anchor
	}

	return reanchor.New(cfg)
}

// Close releases the connections held by the components.
func (c *components) Close() {
	if c.ethClient != nil {
		c.ethClient.Close()
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Warn("Failed to close redis client", log.WithError(err))
		}
	}

	if err := c.stores.Close(); err != nil {
		logger.Warn("Failed to close stores", log.WithError(err))
	}
}
