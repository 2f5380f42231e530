/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	// Service is the name the binary reports.
	Service       string
	Version       string
	ServerVersion string
	// Network names the ledger credentials are anchored on.
	Network         string
	LedgerAnchoring bool
}

type Controller struct {
	cfg Config
}

type versionResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

type systemResponse struct {
	Version         string `json:"version"`
	Network         string `json:"network,omitempty"`
	LedgerAnchoring bool   `json:"ledgerAnchoring"`
}

func NewController(r router, cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	r.GET("/version", c.Version)
	r.GET("/version/system", c.System)

	return c
}

// Version returns the build version of the service.
// GET /version.
func (c *Controller) Version(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, versionResponse{Service: c.cfg.Service, Version: c.cfg.Version})
}

// System describes the deployment: its version, the ledger network and whether issuance anchors.
// GET /version/system.
func (c *Controller) System(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, systemResponse{
		Version:         c.cfg.ServerVersion,
		Network:         c.cfg.Network,
		LedgerAnchoring: c.cfg.LedgerAnchoring,
	})
}
