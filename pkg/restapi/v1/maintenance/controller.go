/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package maintenance_test -source=controller.go -mock_names maintenanceService=MockMaintenanceService

package maintenance

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/proofly/proofly/pkg/restapi/resterr"
	"github.com/proofly/proofly/pkg/restapi/v1/util"
	"github.com/proofly/proofly/pkg/service/reanchor"
)

const maxLimit = 1000

type maintenanceService interface {
	ReanchorPending(ctx context.Context, limit int) (*reanchor.ReanchorReport, error)
	ReconcileStudentIndex(ctx context.Context) (*reanchor.ReconcileReport, error)
	AuditArtifacts(ctx context.Context, limit int) (*reanchor.AuditReport, error)
}

type router interface {
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Controller struct {
	svc maintenanceService
}

// NewController registers the maintenance routes. The middlewares guard them, typically with the admin API key.
func NewController(router router, svc maintenanceService, middlewares ...echo.MiddlewareFunc) *Controller {
	c := &Controller{svc: svc}

	router.POST("/maintenance/reanchor", c.PostReanchor, middlewares...)
	router.POST("/maintenance/reconcile", c.PostReconcile, middlewares...)
	router.POST("/maintenance/audit", c.PostAudit, middlewares...)

	return c
}

// PostReanchor anchors credentials that were issued while the ledger was unavailable.
// POST /maintenance/reanchor?limit=N.
func (c *Controller) PostReanchor(e echo.Context) error {
	limit, err := queryLimit(e)
	if err != nil {
		return err
	}

	report, err := c.svc.ReanchorPending(e.Request().Context(), limit)
	if errors.Is(err, reanchor.ErrLedgerDisabled) {
		return resterr.NewCustomError(resterr.ConditionNotMet, err)
	}

	return util.WriteOutput(e)(report, err)
}

// PostReconcile repairs student credential indexes.
// POST /maintenance/reconcile.
func (c *Controller) PostReconcile(e echo.Context) error {
	return util.WriteOutput(e)(c.svc.ReconcileStudentIndex(e.Request().Context()))
}

// PostAudit checks stored artifacts against their content hashes.
// POST /maintenance/audit?limit=N.
func (c *Controller) PostAudit(e echo.Context) error {
	limit, err := queryLimit(e)
	if err != nil {
		return err
	}

	return util.WriteOutput(e)(c.svc.AuditArtifacts(e.Request().Context(), limit))
}

// queryLimit returns the limit query parameter, or zero to let the service pick its default.
func queryLimit(e echo.Context) (int, error) {
	raw := e.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, resterr.NewValidationError(resterr.InvalidValue, "limit",
			fmt.Errorf("limit must be between 1 and %d", maxLimit))
	}

	return limit, nil
}
