/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/proofly/proofly/internal/logfields"
	"github.com/proofly/proofly/pkg/restapi/resterr"
)

var logger = log.New("logapi")

const (
	logLevelsPath = "/loglevels"
	maxSpecSize   = 4096
)

var errEmptySpec = errors.New("log spec is empty")

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// LogSpec is the JSON form of a log level spec, for example {"spec":"ledger-anchor=DEBUG:INFO"}.
type LogSpec struct {
	Spec string `json:"spec"`
}

type Controller struct{}

// NewController registers the log level routes. The middlewares guard both, typically with the admin API key.
func NewController(r router, middlewares ...echo.MiddlewareFunc) *Controller {
	c := &Controller{}

	r.GET(logLevelsPath, c.GetLogLevels, middlewares...)
	r.POST(logLevelsPath, c.PostLogLevels, middlewares...)

	return c
}

// GetLogLevels returns the current spec.
// GET /loglevels.
func (c *Controller) GetLogLevels(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, LogSpec{Spec: log.GetSpec()})
}

// PostLogLevels applies a spec sent as plain text or as LogSpec JSON.
// POST /loglevels.
func (c *Controller) PostLogLevels(ctx echo.Context) error {
	req := ctx.Request()

	body, err := io.ReadAll(io.LimitReader(req.Body, maxSpecSize))
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	spec := strings.TrimSpace(string(body))

	if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		var ls LogSpec

		if err = json.Unmarshal(body, &ls); err != nil {
			return resterr.NewValidationError(resterr.InvalidValue, "spec", err)
		}

		spec = strings.TrimSpace(ls.Spec)
	}

	if spec == "" {
		return resterr.NewValidationError(resterr.InvalidValue, "spec", errEmptySpec)
	}

	if err = log.SetSpec(spec); err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, "spec",
			fmt.Errorf("failed to set log spec: %w", err))
	}

	logger.Infoc(req.Context(), "Log levels modified", logfields.WithUserLogLevel(spec))

	return ctx.JSON(http.StatusOK, LogSpec{Spec: log.GetSpec()})
}
