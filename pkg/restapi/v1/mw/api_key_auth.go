/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mw

import (
	"crypto/subtle"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/proofly/proofly/pkg/restapi/resterr"
)

const apiKeyHeader = "X-API-Key"

var errInvalidAPIKey = errors.New("invalid API key")

// APIKeyAuth returns a middleware that authenticates operator requests using the X-API-Key header.
// An empty apiKey rejects every request.
func APIKeyAuth(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got := c.Request().Header.Get(apiKeyHeader)

			if apiKey == "" || subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
				return resterr.NewUnauthorizedError(errInvalidAPIKey)
			}

			return next(c)
		}
	}
}
