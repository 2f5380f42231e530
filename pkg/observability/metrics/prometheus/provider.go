/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/proofly/proofly/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
// When httpServer is nil the metrics are only exposed through the Handler mounted on the main router.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	go func() {
		if err := pp.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics HTTP server stopped", log.WithError(err))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for proofly.
type PromMetrics struct {
	issueTime      prometheus.Histogram
	issued         *prometheus.CounterVec
	anchorTime     prometheus.Histogram
	anchorFailures prometheus.Counter
	searchTime     prometheus.Histogram
	verifyTime     *prometheus.HistogramVec
	verifications  *prometheus.CounterVec
	revoked        prometheus.Counter
	reanchored     *prometheus.CounterVec
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		issueTime: newHistogram(metrics.Service, metrics.IssueCredentialTime,
			"The time (in seconds) it takes to issue a credential, anchoring included.", nil),
		issued: newCounterVec(metrics.Service, metrics.CredentialsIssued,
			"The number of issued credentials.", []string{"degraded"}),
		anchorTime: newHistogram(metrics.Ledger, metrics.AnchorTime,
			"The time (in seconds) it takes to submit an anchor transaction and wait for its receipt.", nil),
		anchorFailures: newCounter(metrics.Ledger, metrics.AnchorFailures,
			"The number of failed anchor attempts.", nil),
		searchTime: newHistogram(metrics.Ledger, metrics.LedgerSearchTime,
			"The time (in seconds) it takes to scan the ledger window for a content hash.", nil),
		verifyTime: newHistogramVec(metrics.Service, metrics.VerifyCredentialTime,
			"The time (in seconds) it takes to verify a credential.", []string{"method"}),
		verifications: newCounterVec(metrics.Service, metrics.VerificationsTotal,
			"The number of verification requests by outcome.", []string{"method", "valid"}),
		revoked: newCounter(metrics.Service, metrics.CredentialsRevoked,
			"The number of revoked credentials.", nil),
		reanchored: newCounterVec(metrics.Service, metrics.CredentialsReanchored,
			"The number of reanchor attempts by outcome.", []string{"success"}),
	}

	registerMetrics(pm)

	return pm
}

func (pm *PromMetrics) IssueCredentialTime(value time.Duration) {
	pm.issueTime.Observe(value.Seconds())

	logger.Debug("issue credential time", log.WithDuration(value))
}

func (pm *PromMetrics) CredentialIssued(degraded bool) {
	pm.issued.WithLabelValues(strconv.FormatBool(degraded)).Inc()
}

func (pm *PromMetrics) AnchorTime(value time.Duration) {
	pm.anchorTime.Observe(value.Seconds())

	logger.Debug("anchor time", log.WithDuration(value))
}

func (pm *PromMetrics) AnchorFailed() {
	pm.anchorFailures.Inc()
}

func (pm *PromMetrics) LedgerSearchTime(value time.Duration) {
	pm.searchTime.Observe(value.Seconds())

	logger.Debug("ledger search time", log.WithDuration(value))
}

func (pm *PromMetrics) VerifyCredentialTime(method string, value time.Duration) {
	pm.verifyTime.WithLabelValues(method).Observe(value.Seconds())
}

func (pm *PromMetrics) CredentialVerified(method string, valid bool) {
	pm.verifications.WithLabelValues(method, strconv.FormatBool(valid)).Inc()
}

func (pm *PromMetrics) CredentialRevoked() {
	pm.revoked.Inc()
}

func (pm *PromMetrics) CredentialReanchored(success bool) {
	pm.reanchored.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.issueTime, pm.issued, pm.anchorTime, pm.anchorFailures, pm.searchTime,
		pm.verifyTime, pm.verifications, pm.revoked, pm.reanchored,
	)
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newCounterVec(subsystem, name, help string, labelNames []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newHistogramVec(subsystem, name, help string, labelNames []string) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
}
