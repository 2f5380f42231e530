/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/proofly/proofly/pkg/restapi/resterr"
)

const bearerPrefix = "Bearer "

// BearerToken returns the token of the Authorization: Bearer header.
func BearerToken(ctx echo.Context) (string, error) {
	authHeader := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", resterr.NewUnauthorizedError(errors.New("missing authorization"))
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", resterr.NewUnauthorizedError(errors.New("missing authorization"))
	}

	return token, nil
}
