/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mw

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/proofly/proofly/pkg/credential"
	"github.com/proofly/proofly/pkg/restapi/resterr"
	"github.com/proofly/proofly/pkg/restapi/v1/util"
)

var logger = log.New("rest-mw")

const (
	universityKey = "university"
	studentKey    = "student"
)

var errUnknownToken = errors.New("unauthorized")

type universityResolver interface {
	FindByToken(ctx context.Context, token string) (*credential.University, error)
}

type studentResolver interface {
	FindByToken(ctx context.Context, token string) (*credential.Student, error)
}

// UniversityAuth resolves the bearer token to a university and stores it in the request context.
func UniversityAuth(resolver universityResolver) echo.MiddlewareFunc {
	return bearerAuth(universityKey, resterr.UniversityStoreComponent, func(ctx context.Context, token string) (interface{}, error) {
		return resolver.FindByToken(ctx, token)
	})
}

// StudentAuth resolves the bearer token to a student and stores it in the request context.
func StudentAuth(resolver studentResolver) echo.MiddlewareFunc {
	return bearerAuth(studentKey, resterr.StudentStoreComponent, func(ctx context.Context, token string) (interface{}, error) {
		return resolver.FindByToken(ctx, token)
	})
}

// University returns the university authenticated by UniversityAuth.
func University(c echo.Context) (*credential.University, error) {
	u, ok := c.Get(universityKey).(*credential.University)
	if !ok || u == nil {
		return nil, resterr.NewUnauthorizedError(errUnknownToken)
	}

	return u, nil
}

// Student returns the student authenticated by StudentAuth.
func Student(c echo.Context) (*credential.Student, error) {
	s, ok := c.Get(studentKey).(*credential.Student)
	if !ok || s == nil {
		return nil, resterr.NewUnauthorizedError(errUnknownToken)
	}

	return s, nil
}

// bearerAuth answers 401 for unknown tokens only; a failing store is a system error.
func bearerAuth(
	key string,
	component resterr.Component,
	resolve func(ctx context.Context, token string) (interface{}, error),
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := util.BearerToken(c)
			if err != nil {
				return err
			}

			caller, err := resolve(c.Request().Context(), token)
			if errors.Is(err, credential.ErrDataNotFound) {
				return resterr.NewUnauthorizedError(errUnknownToken)
			}

			if err != nil {
				logger.Errorc(c.Request().Context(), "Token lookup failed", log.WithError(err))

				return resterr.NewSystemError(component, "FindByToken", err)
			}

			c.Set(key, caller)

			return next(c)
		}
	}
}
