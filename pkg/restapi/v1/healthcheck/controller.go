/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthcheck

import (
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"

	"github.com/proofly/proofly/pkg/observability/health/healthutil"
)

const defaultCheckerTimeout = 10 * time.Second

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// HealthCheckResponse is the liveness response.
type HealthCheckResponse struct {
	Status      string     `json:"status"`
	CurrentTime *time.Time `json:"currentTime,omitempty"`
}

type Config struct {
	// Service is reported in the readiness response.
	Service string
	// Checks are run on every readiness request.
	Checks []health.Check
}

// Controller for health check API.
type Controller struct {
	readiness http.Handler
}

func NewController(router router, config *Config) *Controller {
	times := healthutil.NewResponseTimes()

	opts := []health.CheckerOption{
		health.WithTimeout(defaultCheckerTimeout),
		health.WithInterceptors(healthutil.ResponseTimeInterceptor(times)),
	}

	for _, check := range config.Checks {
		opts = append(opts, health.WithCheck(check))
	}

	c := &Controller{
		readiness: health.NewHandler(health.NewChecker(opts...),
			health.WithResultWriter(healthutil.NewJSONResultWriter(config.Service, times))),
	}

	router.GET("/healthcheck", c.GetHealthcheck)
	router.GET("/health", c.GetHealth)

	return c
}

// GetHealthcheck returns the liveness status.
// GET /healthcheck.
func (c *Controller) GetHealthcheck(ctx echo.Context) error {
	currentTime := time.Now()

	return ctx.JSON(http.StatusOK, HealthCheckResponse{Status: "success", CurrentTime: &currentTime})
}

// GetHealth runs the dependency checks and reports the aggregated status.
// GET /health.
func (c *Controller) GetHealth(ctx echo.Context) error {
	c.readiness.ServeHTTP(ctx.Response(), ctx.Request())

	return nil
}
