/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricsPath       = "/metrics"
	readHeaderTimeout = time.Minute
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// Handler serves the proofly metrics in the Prometheus exposition format.
type Handler struct {
	gatherer prometheus.Gatherer
}

// NewHandler returns a metrics endpoint backed by gatherer, or by the default registry when gatherer is nil.
func NewHandler(gatherer prometheus.Gatherer) *Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &Handler{gatherer: gatherer}
}

func (h *Handler) Path() string {
	return metricsPath
}

// Handler returns the scrape handler. OpenMetrics is negotiated so histograms can carry exemplars.
func (h *Handler) Handler() http.Handler {
	return promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// Register mounts the scrape endpoint on the main router.
func (h *Handler) Register(r router) {
	r.GET(metricsPath, echo.WrapHandler(h.Handler()))
}

// NewServer returns a dedicated metrics server listening on addr.
func (h *Handler) NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(metricsPath, h.Handler())

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}
