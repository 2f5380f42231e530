/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/proofly/proofly/cmd/common"
	"github.com/proofly/proofly/pkg/ledger"
	"github.com/proofly/proofly/pkg/observability/tracing"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the proofly-rest instance on. Format: HostName:Port. " +
		commonEnvVarUsageText + hostURLEnvKey
	hostURLEnvKey = "PROOFLY_HOST_URL"

	hostURLExternalFlagName  = "host-url-external"
	hostURLExternalEnvKey    = "PROOFLY_HOST_URL_EXTERNAL"
	hostURLExternalFlagUsage = "Host External Name:Port. This is the URL for the host server as seen externally." +
		" If not provided, then the host url will be used here. " + commonEnvVarUsageText + hostURLExternalEnvKey

	frontendURLFlagName  = "frontend-url"
	frontendURLEnvKey    = "PROOFLY_FRONTEND_URL"
	frontendURLFlagUsage = "Base URL of the verification frontend. Markers embedded in issued credentials point to " +
		"<frontend-url>/validate?q=<slug>. " + commonEnvVarUsageText + frontendURLEnvKey

	corsOriginsFlagName  = "cors-origins"
	corsOriginsEnvKey    = "PROOFLY_CORS_ORIGINS"
	corsOriginsFlagUsage = "Comma-separated list of allowed CORS origins. Defaults to the frontend URL. " +
		commonEnvVarUsageText + corsOriginsEnvKey

	tlsCertificateFlagName  = "tls-cert"
	tlsCertificateEnvKey    = "PROOFLY_TLS_CERT"
	tlsCertificateFlagUsage = "TLS certificate file to serve HTTPS with. " + commonEnvVarUsageText + tlsCertificateEnvKey

	tlsKeyFlagName  = "tls-key"
	tlsKeyEnvKey    = "PROOFLY_TLS_KEY"
	tlsKeyFlagUsage = "TLS private key file to serve HTTPS with. " + commonEnvVarUsageText + tlsKeyEnvKey

	adminAPIKeyFlagName  = "admin-api-key"
	adminAPIKeyEnvKey    = "PROOFLY_ADMIN_API_KEY" //nolint:gosec
	adminAPIKeyFlagUsage = "API key required in the X-API-Key header of maintenance and log level requests. " +
		"Those routes reject every request when not set. " + commonEnvVarUsageText + adminAPIKeyEnvKey

	maxUploadSizeFlagName  = "max-upload-size"
	maxUploadSizeEnvKey    = "PROOFLY_MAX_UPLOAD_SIZE"
	maxUploadSizeFlagUsage = "Maximum size in bytes of an uploaded image. Default: 10485760. " +
		commonEnvVarUsageText + maxUploadSizeEnvKey

	artifactStoreTypeFlagName  = "artifact-store-type"
	artifactStoreTypeEnvKey    = "PROOFLY_ARTIFACT_STORE_TYPE"
	artifactStoreTypeFlagUsage = "Artifact store type. Supported types are [fs, s3]. Default: fs. " +
		commonEnvVarUsageText + artifactStoreTypeEnvKey

	artifactDirFlagName  = "artifact-dir"
	artifactDirEnvKey    = "PROOFLY_ARTIFACT_DIR"
	artifactDirFlagUsage = "Directory of the fs artifact store. Default: ./data. " +
		commonEnvVarUsageText + artifactDirEnvKey

	artifactS3BucketFlagName  = "artifact-s3-bucket"
	artifactS3BucketEnvKey    = "PROOFLY_ARTIFACT_S3_BUCKET"
	artifactS3BucketFlagUsage = "S3 bucket of the s3 artifact store. " + commonEnvVarUsageText + artifactS3BucketEnvKey

	artifactS3RegionFlagName  = "artifact-s3-region"
	artifactS3RegionEnvKey    = "PROOFLY_ARTIFACT_S3_REGION"
	artifactS3RegionFlagUsage = "S3 region of the s3 artifact store. " + commonEnvVarUsageText + artifactS3RegionEnvKey

	artifactS3HostNameFlagName  = "artifact-s3-hostname"
	artifactS3HostNameEnvKey    = "PROOFLY_ARTIFACT_S3_HOSTNAME"
	artifactS3HostNameFlagUsage = "Public host name serving the S3 bucket. " +
		commonEnvVarUsageText + artifactS3HostNameEnvKey

	ledgerRPCURLFlagName  = "ledger-rpc-url"
	ledgerRPCURLEnvKey    = "PROOFLY_LEDGER_RPC_URL"
	ledgerRPCURLFlagUsage = "JSON-RPC endpoint of the ledger. Default: " + defaultLedgerRPCURL +
		". Set to 'none' to disable the ledger. " + commonEnvVarUsageText + ledgerRPCURLEnvKey

	ledgerPrivateKeyFlagName  = "ledger-private-key"
	ledgerPrivateKeyEnvKey    = "PRIVATE_KEY" //nolint:gosec
	ledgerPrivateKeyFlagUsage = "Hex-encoded private key of the anchoring account. Without it issuance never " +
		"anchors and every credential is degraded. " + commonEnvVarUsageText + ledgerPrivateKeyEnvKey

	ledgerNetworkNameFlagName  = "ledger-network-name"
	ledgerNetworkNameEnvKey    = "PROOFLY_LEDGER_NETWORK_NAME"
	ledgerNetworkNameFlagUsage = "Network name reported by the blockchain status. Default: " + defaultNetworkName +
		". " + commonEnvVarUsageText + ledgerNetworkNameEnvKey

	ledgerCurrencyFlagName  = "ledger-currency"
	ledgerCurrencyEnvKey    = "PROOFLY_LEDGER_CURRENCY"
	ledgerCurrencyFlagUsage = "Currency symbol of the ledger. Default: " + defaultCurrency + ". " +
		commonEnvVarUsageText + ledgerCurrencyEnvKey

	ledgerGasLimitFlagName  = "ledger-gas-limit"
	ledgerGasLimitEnvKey    = "PROOFLY_LEDGER_GAS_LIMIT"
	ledgerGasLimitFlagUsage = "Gas limit of an anchoring transaction. Default: 100000. " +
		commonEnvVarUsageText + ledgerGasLimitEnvKey

	ledgerConfirmTimeoutFlagName  = "ledger-confirm-timeout"
	ledgerConfirmTimeoutEnvKey    = "PROOFLY_LEDGER_CONFIRM_TIMEOUT"
	ledgerConfirmTimeoutFlagUsage = "How long to wait for an anchoring receipt, for example 2m. " +
		commonEnvVarUsageText + ledgerConfirmTimeoutEnvKey

	ledgerSearchWindowFlagName  = "ledger-search-window"
	ledgerSearchWindowEnvKey    = "PROOFLY_LEDGER_SEARCH_WINDOW"
	ledgerSearchWindowFlagUsage = "Number of recent blocks a ledger search scans. Default: 10000. " +
		commonEnvVarUsageText + ledgerSearchWindowEnvKey

	ledgerSearchBlockTimeoutFlagName  = "ledger-search-block-timeout"
	ledgerSearchBlockTimeoutEnvKey    = "PROOFLY_LEDGER_SEARCH_BLOCK_TIMEOUT"
	ledgerSearchBlockTimeoutFlagUsage = "Timeout of a single block read during a ledger search, for example 5s. " +
		commonEnvVarUsageText + ledgerSearchBlockTimeoutEnvKey

	redisURLFlagName  = "redis-url"
	redisURLEnvKey    = "PROOFLY_REDIS_URL"
	redisURLFlagUsage = "Comma-separated Redis addresses or a single redis:// (rediss:// for TLS) URL. When set, " +
		"slug reservations and the anchoring mutex are shared through Redis. " + commonEnvVarUsageText + redisURLEnvKey

	redisPasswordFlagName  = "redis-password"
	redisPasswordEnvKey    = "PROOFLY_REDIS_PASSWORD" //nolint:gosec
	redisPasswordFlagUsage = "Redis password. " + commonEnvVarUsageText + redisPasswordEnvKey

	slugReservationTTLFlagName  = "slug-reservation-ttl"
	slugReservationTTLEnvKey    = "PROOFLY_SLUG_RESERVATION_TTL"
	slugReservationTTLFlagUsage = "Lifetime of a Redis slug reservation, for example 10m. Default: 10m. " +
		commonEnvVarUsageText + slugReservationTTLEnvKey

	reanchorIntervalFlagName  = "reanchor-interval"
	reanchorIntervalEnvKey    = "PROOFLY_REANCHOR_INTERVAL"
	reanchorIntervalFlagUsage = "Interval of the background pass anchoring degraded credentials, for example 15m. " +
		"Disabled when not set. " + commonEnvVarUsageText + reanchorIntervalEnvKey

	metricsProviderFlagName         = "metrics-provider-name"
	metricsProviderEnvKey           = "PROOFLY_METRICS_PROVIDER_NAME"
	allowedMetricsProviderFlagUsage = "The metrics provider name (for example: 'prometheus' etc.). " +
		commonEnvVarUsageText + metricsProviderEnvKey

	promHTTPURLFlagName             = "prom-http-url"
	promHTTPURLEnvKey               = "PROOFLY_PROM_HTTP_URL"
	allowedPromHTTPURLFlagNameUsage = "URL that exposes the prometheus metrics endpoint. When not set the " +
		"metrics are served at /metrics of the main server. " + commonEnvVarUsageText + promHTTPURLEnvKey

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderEnvKey    = "PROOFLY_TRACING_PROVIDER"
	tracingProviderFlagUsage = "The tracing span exporter [DEFAULT, STDOUT]. Tracing is disabled when not set. " +
		commonEnvVarUsageText + tracingProviderEnvKey

	tracingCollectorURLFlagName  = "tracing-collector-url"
	tracingCollectorURLEnvKey    = "PROOFLY_TRACING_COLLECTOR_URL"
	tracingCollectorURLFlagUsage = "The OTLP HTTP URL of the tracing collector. " +
		commonEnvVarUsageText + tracingCollectorURLEnvKey

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameEnvKey    = "PROOFLY_TRACING_SERVICE_NAME"
	tracingServiceNameFlagUsage = "The name of the tracing service. Default: proofly. " +
		commonEnvVarUsageText + tracingServiceNameEnvKey

	artifactStoreFS = "fs"
	artifactStoreS3 = "s3"

	ledgerDisabled = "none"

	defaultArtifactDir        = "./data"
	defaultLedgerRPCURL       = "https://rpc-amoy.polygon.technology"
	defaultNetworkName        = "Polygon Amoy Testnet"
	defaultCurrency           = "MATIC"
	defaultSlugReservationTTL = 10 * time.Minute
	defaultTracingServiceName = "proofly"
	defaultMaxUploadSize      = 10 << 20
)

type startupParameters struct {
	hostURL                         string
	hostURLExternal                 string
	frontendURL                     string
	corsOrigins                     []string
	tlsParameters                   *tlsParameters
	adminAPIKey                     string
	maxUploadSize                   int64
	logLevel                        string
	dbParameters                    *common.DBParameters
	artifactParameters              *artifactParameters
	ledgerParameters                *ledgerParameters
	redisParameters                 *redisParameters
	reanchorInterval                time.Duration
	metricsProviderName             string
	prometheusMetricsProviderParams *prometheusMetricsProviderParams
	tracingParams                   *tracingParams
}

type tlsParameters struct {
	serveCertPath string
	serveKeyPath  string
}

type artifactParameters struct {
	storeType  string
	dir        string
	s3Bucket   string
	s3Region   string
	s3HostName string
}

type ledgerParameters struct {
	rpcURL             string
	privateKey         string
	networkName        string
	currency           string
	gasLimit           uint64
	confirmTimeout     time.Duration
	searchWindow       uint64
	searchBlockTimeout time.Duration
}

type redisParameters struct {
	addrs              []string
	password           string
	slugReservationTTL time.Duration
}

type prometheusMetricsProviderParams struct {
	url string
}

type tracingParams struct {
	exporter     tracing.SpanExporterType
	collectorURL string
	serviceName  string
}

// getStartupParameters reads the parameters of the start command.
func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	params, err := getServiceParameters(cmd)
	if err != nil {
		return nil, err
	}

	params.hostURL = hostURL

	params.hostURLExternal = cmdutils.GetUserSetOptionalVarFromString(cmd, hostURLExternalFlagName,
		hostURLExternalEnvKey)
	if params.hostURLExternal == "" {
		params.hostURLExternal = hostURL
	}

	params.corsOrigins = cmdutils.GetUserSetOptionalCSVVar(cmd, corsOriginsFlagName, corsOriginsEnvKey)
	if len(params.corsOrigins) == 0 && params.frontendURL != "" {
		params.corsOrigins = []string{params.frontendURL}
	}

	params.tlsParameters = &tlsParameters{
		serveCertPath: cmdutils.GetUserSetOptionalVarFromString(cmd, tlsCertificateFlagName, tlsCertificateEnvKey),
		serveKeyPath:  cmdutils.GetUserSetOptionalVarFromString(cmd, tlsKeyFlagName, tlsKeyEnvKey),
	}

	params.adminAPIKey = cmdutils.GetUserSetOptionalVarFromString(cmd, adminAPIKeyFlagName, adminAPIKeyEnvKey)

	params.maxUploadSize, err = getInt64(cmd, maxUploadSizeFlagName, maxUploadSizeEnvKey, defaultMaxUploadSize)
	if err != nil {
		return nil, err
	}

	params.reanchorInterval, err = getDuration(cmd, reanchorIntervalFlagName, reanchorIntervalEnvKey, 0)
	if err != nil {
		return nil, err
	}

	params.metricsProviderName, err = getMetricsProviderName(cmd)
	if err != nil {
		return nil, err
	}

	if params.metricsProviderName == "prometheus" {
		params.prometheusMetricsProviderParams = &prometheusMetricsProviderParams{
			url: cmdutils.GetUserSetOptionalVarFromString(cmd, promHTTPURLFlagName, promHTTPURLEnvKey),
		}
	}

	params.tracingParams, err = getTracingParams(cmd)
	if err != nil {
		return nil, err
	}

	return params, nil
}

// getServiceParameters reads the parameters shared by the start and maintenance commands.
func getServiceParameters(cmd *cobra.Command) (*startupParameters, error) {
	dbParams, err := common.DBParams(cmd)
	if err != nil {
		return nil, err
	}

	artifactParams, err := getArtifactParameters(cmd)
	if err != nil {
		return nil, err
	}

	ledgerParams, err := getLedgerParameters(cmd)
	if err != nil {
		return nil, err
	}

	redisParams, err := getRedisParameters(cmd)
	if err != nil {
		return nil, err
	}

	return &startupParameters{
		frontendURL:        cmdutils.GetUserSetOptionalVarFromString(cmd, frontendURLFlagName, frontendURLEnvKey),
		logLevel:           cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey),
		dbParameters:       dbParams,
		artifactParameters: artifactParams,
		ledgerParameters:   ledgerParams,
		redisParameters:    redisParams,
	}, nil
}

func getArtifactParameters(cmd *cobra.Command) (*artifactParameters, error) {
	params := &artifactParameters{
		storeType: cmdutils.GetUserSetOptionalVarFromString(cmd, artifactStoreTypeFlagName, artifactStoreTypeEnvKey),
		dir:       cmdutils.GetUserSetOptionalVarFromString(cmd, artifactDirFlagName, artifactDirEnvKey),
	}

	if params.storeType == "" {
		params.storeType = artifactStoreFS
	}

	switch params.storeType {
	case artifactStoreFS:
		if params.dir == "" {
			params.dir = defaultArtifactDir
		}
	case artifactStoreS3:
		var err error

		params.s3Bucket, err = cmdutils.GetUserSetVarFromString(cmd, artifactS3BucketFlagName,
			artifactS3BucketEnvKey, false)
		if err != nil {
			return nil, err
		}

		params.s3Region, err = cmdutils.GetUserSetVarFromString(cmd, artifactS3RegionFlagName,
			artifactS3RegionEnvKey, false)
		if err != nil {
			return nil, err
		}

		params.s3HostName = cmdutils.GetUserSetOptionalVarFromString(cmd, artifactS3HostNameFlagName,
			artifactS3HostNameEnvKey)
	default:
		return nil, fmt.Errorf("unsupported artifact store type: %s", params.storeType)
	}

	return params, nil
}

func getLedgerParameters(cmd *cobra.Command) (*ledgerParameters, error) {
	params := &ledgerParameters{
		rpcURL:      cmdutils.GetUserSetOptionalVarFromString(cmd, ledgerRPCURLFlagName, ledgerRPCURLEnvKey),
		privateKey:  cmdutils.GetUserSetOptionalVarFromString(cmd, ledgerPrivateKeyFlagName, ledgerPrivateKeyEnvKey),
		networkName: cmdutils.GetUserSetOptionalVarFromString(cmd, ledgerNetworkNameFlagName, ledgerNetworkNameEnvKey),
		currency:    cmdutils.GetUserSetOptionalVarFromString(cmd, ledgerCurrencyFlagName, ledgerCurrencyEnvKey),
	}

	if params.rpcURL == "" {
		params.rpcURL = defaultLedgerRPCURL
	}

	if params.networkName == "" {
		params.networkName = defaultNetworkName
	}

	if params.currency == "" {
		params.currency = defaultCurrency
	}

	var err error

	params.gasLimit, err = getUint64(cmd, ledgerGasLimitFlagName, ledgerGasLimitEnvKey, ledger.DefaultGasLimit)
	if err != nil {
		return nil, err
	}

	params.searchWindow, err = getUint64(cmd, ledgerSearchWindowFlagName, ledgerSearchWindowEnvKey,
		ledger.DefaultSearchWindow)
	if err != nil {
		return nil, err
	}

	params.confirmTimeout, err = getDuration(cmd, ledgerConfirmTimeoutFlagName, ledgerConfirmTimeoutEnvKey,
		ledger.DefaultConfirmTimeout)
	if err != nil {
		return nil, err
	}

	params.searchBlockTimeout, err = getDuration(cmd, ledgerSearchBlockTimeoutFlagName,
		ledgerSearchBlockTimeoutEnvKey, 0)
	if err != nil {
		return nil, err
	}

	return params, nil
}

func getRedisParameters(cmd *cobra.Command) (*redisParameters, error) {
	ttl, err := getDuration(cmd, slugReservationTTLFlagName, slugReservationTTLEnvKey, defaultSlugReservationTTL)
	if err != nil {
		return nil, err
	}

	return &redisParameters{
		addrs:              cmdutils.GetUserSetOptionalCSVVar(cmd, redisURLFlagName, redisURLEnvKey),
		password:           cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey),
		slugReservationTTL: ttl,
	}, nil
}

func getMetricsProviderName(cmd *cobra.Command) (string, error) {
	metricsProvider, err := cmdutils.GetUserSetVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey, true)
	if err != nil {
		return "", err
	}

	if metricsProvider != "" && metricsProvider != "prometheus" {
		return "", fmt.Errorf("unsupported metrics provider: %s", metricsProvider)
	}

	return metricsProvider, nil
}

func getTracingParams(cmd *cobra.Command) (*tracingParams, error) {
	serviceName := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingServiceNameFlagName, tracingServiceNameEnvKey)
	if serviceName == "" {
		serviceName = defaultTracingServiceName
	}

	params := &tracingParams{
		exporter:     cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName, tracingProviderEnvKey),
		collectorURL: cmdutils.GetUserSetOptionalVarFromString(cmd, tracingCollectorURLFlagName, tracingCollectorURLEnvKey),
		serviceName:  serviceName,
	}

	if !tracing.IsExportedSupported(params.exporter) {
		return nil, fmt.Errorf("unsupported tracing provider: %s", params.exporter)
	}

	return params, nil
}

func getDuration(cmd *cobra.Command, flagName, envKey string,
	defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return -1, err
	}

	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s]: %w", timeoutStr, err)
	}

	return timeout, nil
}

func getUint64(cmd *cobra.Command, flagName, envKey string, defaultValue uint64) (uint64, error) {
	str := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if str == "" {
		return defaultValue, nil
	}

	v, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value of %s [%s]: %w", flagName, str, err)
	}

	return v, nil
}

func getInt64(cmd *cobra.Command, flagName, envKey string, defaultValue int64) (int64, error) {
	str := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if str == "" {
		return defaultValue, nil
	}

	v, err := strconv.ParseInt(str, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid value of %s [%s]", flagName, str)
	}

	return v, nil
}

// createServiceFlags registers the flags shared by the start and maintenance commands.
func createServiceFlags(cmd *cobra.Command) {
	common.Flags(cmd)

	cmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)
	cmd.Flags().StringP(frontendURLFlagName, "", "", frontendURLFlagUsage)

	cmd.Flags().String(artifactStoreTypeFlagName, "", artifactStoreTypeFlagUsage)
	cmd.Flags().String(artifactDirFlagName, "", artifactDirFlagUsage)
	cmd.Flags().String(artifactS3BucketFlagName, "", artifactS3BucketFlagUsage)
	cmd.Flags().String(artifactS3RegionFlagName, "", artifactS3RegionFlagUsage)
	cmd.Flags().String(artifactS3HostNameFlagName, "", artifactS3HostNameFlagUsage)

	cmd.Flags().String(ledgerRPCURLFlagName, "", ledgerRPCURLFlagUsage)
	cmd.Flags().String(ledgerPrivateKeyFlagName, "", ledgerPrivateKeyFlagUsage)
	cmd.Flags().String(ledgerNetworkNameFlagName, "", ledgerNetworkNameFlagUsage)
	cmd.Flags().String(ledgerCurrencyFlagName, "", ledgerCurrencyFlagUsage)
	cmd.Flags().String(ledgerGasLimitFlagName, "", ledgerGasLimitFlagUsage)
	cmd.Flags().String(ledgerConfirmTimeoutFlagName, "", ledgerConfirmTimeoutFlagUsage)
	cmd.Flags().String(ledgerSearchWindowFlagName, "", ledgerSearchWindowFlagUsage)
	cmd.Flags().String(ledgerSearchBlockTimeoutFlagName, "", ledgerSearchBlockTimeoutFlagUsage)

	cmd.Flags().StringSlice(redisURLFlagName, []string{}, redisURLFlagUsage)
	cmd.Flags().String(redisPasswordFlagName, "", redisPasswordFlagUsage)
	cmd.Flags().String(slugReservationTTLFlagName, "", slugReservationTTLFlagUsage)
}

func createFlags(startCmd *cobra.Command) {
	createServiceFlags(startCmd)

	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(hostURLExternalFlagName, "", "", hostURLExternalFlagUsage)
	startCmd.Flags().StringSliceP(corsOriginsFlagName, "", []string{}, corsOriginsFlagUsage)
	startCmd.Flags().StringP(tlsCertificateFlagName, "", "", tlsCertificateFlagUsage)
	startCmd.Flags().StringP(tlsKeyFlagName, "", "", tlsKeyFlagUsage)
	startCmd.Flags().StringP(adminAPIKeyFlagName, "", "", adminAPIKeyFlagUsage)
	startCmd.Flags().StringP(maxUploadSizeFlagName, "", "", maxUploadSizeFlagUsage)
	startCmd.Flags().StringP(reanchorIntervalFlagName, "", "", reanchorIntervalFlagUsage)
	startCmd.Flags().StringP(metricsProviderFlagName, "", "", allowedMetricsProviderFlagUsage)
	startCmd.Flags().StringP(promHTTPURLFlagName, "", "", allowedPromHTTPURLFlagNameUsage)
	startCmd.Flags().StringP(tracingProviderFlagName, "", "", tracingProviderFlagUsage)
	startCmd.Flags().StringP(tracingCollectorURLFlagName, "", "", tracingCollectorURLFlagUsage)
	startCmd.Flags().StringP(tracingServiceNameFlagName, "", "", tracingServiceNameFlagUsage)
}
