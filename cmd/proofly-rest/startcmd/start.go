/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel/trace"

	"github.com/proofly/proofly/cmd/common"
	"github.com/proofly/proofly/internal/logfields"
	"github.com/proofly/proofly/pkg/artifact"
	"github.com/proofly/proofly/pkg/observability/health/healthchecks"
	"github.com/proofly/proofly/pkg/observability/metrics"
	"github.com/proofly/proofly/pkg/observability/metrics/noop"
	metricsProvider "github.com/proofly/proofly/pkg/observability/metrics/prometheus"
	"github.com/proofly/proofly/pkg/observability/tracing"
	issuecredentialtracing "github.com/proofly/proofly/pkg/observability/tracing/wrappers/issuecredential"
	revokecredentialtracing "github.com/proofly/proofly/pkg/observability/tracing/wrappers/revokecredential"
	verifycredentialtracing "github.com/proofly/proofly/pkg/observability/tracing/wrappers/verifycredential"
	"github.com/proofly/proofly/pkg/restapi/resterr"
	credentialapi "github.com/proofly/proofly/pkg/restapi/v1/credential"
	"github.com/proofly/proofly/pkg/restapi/v1/healthcheck"
	"github.com/proofly/proofly/pkg/restapi/v1/logapi"
	"github.com/proofly/proofly/pkg/restapi/v1/maintenance"
	"github.com/proofly/proofly/pkg/restapi/v1/mw"
	"github.com/proofly/proofly/pkg/restapi/v1/version"
	"github.com/proofly/proofly/pkg/service/issuecredential"
	"github.com/proofly/proofly/pkg/service/revokecredential"
	"github.com/proofly/proofly/pkg/service/verifycredential"
	"github.com/proofly/proofly/pkg/slug"
)

var logger = log.New("proofly-rest")

const (
	serviceName = "proofly-rest"

	credentialsBasePath = "/api/credentials"
	uploadsPath         = "/uploads"

	// multipart framing on top of the uploaded image
	bodyLimitOverhead = 1 << 20

	reanchorBatchSize = 50
	shutdownTimeout   = 10 * time.Second
)

type httpServer interface {
	ListenAndServe() error
	ListenAndServeTLS(certFile, keyFile string) error
}

type startOpts struct {
	server        httpServer
	version       string
	serverVersion string
}

// StartOpts configures the start command.
type StartOpts func(opts *startOpts)

// WithHTTPServer sets a custom HTTP server.
func WithHTTPServer(srv httpServer) StartOpts {
	return func(opts *startOpts) {
		opts.server = srv
	}
}

// WithVersion sets the version reported by the version endpoint.
func WithVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.version = version
	}
}

// WithServerVersion sets the server version reported by the version endpoint.
func WithServerVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.serverVersion = version
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start proofly-rest",
		Long:  "Start proofly-rest, the credential issuance and verification service",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return fmt.Errorf("failed to get startup parameters: %w", err)
			}

			common.SetDefaultLogLevel(logger, params.logLevel)

			return startServer(cmd.Context(), params, opts...)
		},
	}
}

func startServer(ctx context.Context, params *startupParameters, opts ...StartOpts) error { //nolint:funlen
	o := &startOpts{}

	for _, opt := range opts {
		opt(o)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdownTracing, tracer, tracerProvider, err := tracing.Initialize(params.tracingParams.exporter,
		params.tracingParams.serviceName, tracing.WithCollectorURL(params.tracingParams.collectorURL))
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}

	defer shutdownTracing()

	c, err := buildComponents(ctx, params, tracerProvider)
	if err != nil {
		return err
	}

	defer c.Close()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = resterr.HTTPErrorHandler(tracer)

	e.Use(otelecho.Middleware(serviceName))
	e.Use(echomw.Recover())
	e.Use(echomw.BodyLimit(strconv.FormatInt(params.maxUploadSize+bodyLimitOverhead, 10) + "B"))

	if len(params.corsOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     params.corsOrigins,
			AllowCredentials: true,
		}))
	}

	m, err := initMetrics(e, params)
	if err != nil {
		return err
	}

	registerRoutes(e, params, c, m, tracer, o)

	if params.reanchorInterval > 0 {
		if c.anchor == nil {
			logger.Warn("Reanchor interval is set but ledger anchoring is disabled")
		} else {
			go c.reanchorService(m).Run(ctx, params.reanchorInterval, reanchorBatchSize)
		}
	}

	srv := o.server
	if srv == nil {
		httpSrv := &http.Server{
			Addr:              params.hostURL,
			Handler:           e,
			ReadHeaderTimeout: time.Minute,
		}

		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer shutdownCancel()

			if shutdownErr := httpSrv.Shutdown(shutdownCtx); shutdownErr != nil {
				logger.Warn("Failed to shut down HTTP server", log.WithError(shutdownErr))
			}
		}()

		srv = httpSrv
	}

	logger.Info("Starting proofly-rest server", log.WithURL(params.hostURL))

	if params.tlsParameters.serveCertPath != "" && params.tlsParameters.serveKeyPath != "" {
		err = srv.ListenAndServeTLS(params.tlsParameters.serveCertPath, params.tlsParameters.serveKeyPath)
	} else {
		err = srv.ListenAndServe()
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server closed unexpectedly: %w", err)
	}

	return nil
}

func initMetrics(e *echo.Echo, params *startupParameters) (metrics.Metrics, error) {
	if params.metricsProviderName != "prometheus" {
		return noop.GetMetrics(), nil
	}

	var metricsSrv *http.Server

	handler := metricsProvider.NewHandler(nil)

	if params.prometheusMetricsProviderParams.url != "" {
		metricsSrv = handler.NewServer(params.prometheusMetricsProviderParams.url)
	} else {
		handler.Register(e)
	}

	provider := metricsProvider.NewPrometheusProvider(metricsSrv)

	if err := provider.Create(); err != nil {
		return nil, fmt.Errorf("create metrics provider: %w", err)
	}

	return provider.Metrics(), nil
}

func registerRoutes(e *echo.Echo, params *startupParameters, c *components, m metrics.Metrics, //nolint:funlen
	tracer trace.Tracer, o *startOpts) {
	allocator := slug.New(&slug.Config{
		CredentialStore: c.stores.Credentials,
		Reserver:        c.reserver,
	})

	issueCfg := &issuecredential.Config{
		SlugAllocator:   allocator,
		Marker:          artifact.NewMarker(&artifact.MarkerConfig{Generator: artifact.NewQRGenerator()}),
		CredentialStore: c.stores.Credentials,
		StudentStore:    c.stores.Students,
		ArtifactStore:   c.artifacts,
		Metrics:         m,
		FrontendURL:     params.frontendURL,
	}

	if c.anchor != nil {
		issueCfg.LedgerAnchor = c.anchor
	}

	if c.stores.Mongo != nil && params.dbParameters.Transactions {
		issueCfg.Transactor = c.stores.Mongo
	}

	verifyCfg := &verifycredential.Config{
		CredentialStore: c.stores.Credentials,
		StudentStore:    c.stores.Students,
		UniversityStore: c.stores.Universities,
		Metrics:         m,
	}

	if c.search != nil {
		verifyCfg.LedgerSearch = c.search
	}

	credentialCfg := &credentialapi.Config{
		IssueService:  issuecredentialtracing.Wrap(issuecredential.New(issueCfg), tracer),
		VerifyService: verifycredentialtracing.Wrap(verifycredential.New(verifyCfg), tracer),
		RevokeService: revokecredentialtracing.Wrap(revokecredential.New(&revokecredential.Config{
			CredentialStore: c.stores.Credentials,
			StudentStore:    c.stores.Students,
			ArtifactStore:   c.artifacts,
			Metrics:         m,
		}), tracer),
		CredentialStore: c.stores.Credentials,
		StudentStore:    c.stores.Students,
		UniversityStore: c.stores.Universities,
		UniversityAuth:  mw.UniversityAuth(c.stores.Universities),
		StudentAuth:     mw.StudentAuth(c.stores.Students),
		MaxUploadSize:   params.maxUploadSize,
		NetworkName:     params.ledgerParameters.networkName,
		Currency:        params.ledgerParameters.currency,
	}

	if c.anchor != nil {
		credentialCfg.LedgerStatus = c.anchor
	}

	credentialapi.NewController(e.Group(credentialsBasePath), credentialCfg)

	registerUploads(e, c)

	e.GET("/", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"message": "Proofly Backend API"})
	})

	healthCfg := &healthchecks.Config{}

	if c.stores.Mongo != nil {
		healthCfg.MongoDB = c.stores.Mongo
	}

	if c.redis != nil {
		healthCfg.Redis = c.redis
	}

	if c.ethClient != nil {
		healthCfg.Ledger = c.ethClient
	}

	healthcheck.NewController(e, &healthcheck.Config{
		Service: serviceName,
		Checks:  healthchecks.Get(healthCfg),
	})

	version.NewController(e, version.Config{
		Service:         serviceName,
		Version:         o.version,
		ServerVersion:   o.serverVersion,
		Network:         params.ledgerParameters.networkName,
		LedgerAnchoring: c.anchor != nil,
	})

	adminAuth := mw.APIKeyAuth(params.adminAPIKey)

	logapi.NewController(e, adminAuth)
	maintenance.NewController(e, c.reanchorService(m), adminAuth)
}

// registerUploads serves marked artifacts. S3 artifacts are redirected to their public URL.
func registerUploads(e *echo.Echo, c *components) {
	switch {
	case c.fsStore != nil:
		e.Static(uploadsPath, filepath.Join(c.fsStore.Root(), filepath.FromSlash(uploadsPath[1:])))
	case c.s3Store != nil:
		e.GET(uploadsPath+"/*", func(ctx echo.Context) error {
			return ctx.Redirect(http.StatusFound, c.s3Store.URL(uploadsPath[1:]+"/"+ctx.Param("*")))
		})
	}

	logger.Debug("Artifact routes registered", logfields.WithArtifactPath(uploadsPath))
}
