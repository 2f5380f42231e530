/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	SystemError              ErrorCode = "system-error"
	Unauthorized             ErrorCode = "unauthorized"
	Forbidden                ErrorCode = "forbidden"
	InvalidValue             ErrorCode = "invalid-value"
	AlreadyExist             ErrorCode = "already-exist"
	DoesntExist              ErrorCode = "doesnt-exist"
	BadRequest               ErrorCode = "bad-request"
	ConditionNotMet          ErrorCode = "condition-not-met"
	ArtifactProcessingError  ErrorCode = "artifact-processing-error"
	StorageWriteError        ErrorCode = "storage-write-error"
	VerificationInconclusive ErrorCode = "verification-inconclusive"
)

func (c ErrorCode) Name() string {
	return string(c)
}

// HTTPStatus returns the response status for the code.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case InvalidValue, BadRequest:
		return http.StatusBadRequest
	case AlreadyExist:
		return http.StatusConflict
	case DoesntExist:
		return http.StatusNotFound
	case ConditionNotMet:
		return http.StatusPreconditionFailed
	case ArtifactProcessingError:
		return http.StatusUnprocessableEntity
	case VerificationInconclusive:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type CustomError struct {
	Code            ErrorCode
	IncorrectValue  string
	Component       Component
	FailedOperation string
	Err             error
}

func NewSystemError(component Component, failedOperation string, err error) *CustomError {
	return &CustomError{
		Code:            SystemError,
		Component:       component,
		FailedOperation: failedOperation,
		Err:             err,
	}
}

func NewValidationError(code ErrorCode, incorrectValue string, err error) *CustomError {
	return &CustomError{
		Code:           code,
		IncorrectValue: incorrectValue,
		Err:            err,
	}
}

func NewCustomError(code ErrorCode, err error) *CustomError {
	return &CustomError{
		Code: code,
		Err:  err,
	}
}

func NewUnauthorizedError(err error) *CustomError {
	return &CustomError{
		Code: Unauthorized,
		Err:  err,
	}
}

func NewForbiddenError(err error) *CustomError {
	return &CustomError{
		Code: Forbidden,
		Err:  err,
	}
}

// NewComponentError returns an error with code raised by operation of component.
func NewComponentError(code ErrorCode, component Component, failedOperation string, err error) *CustomError {
	return &CustomError{
		Code:            code,
		Component:       component,
		FailedOperation: failedOperation,
		Err:             err,
	}
}

func (e *CustomError) Error() string {
	switch {
	case e.Component != "":
		return fmt.Sprintf("%s[%s, %s]: %v", e.Code, e.Component, e.FailedOperation, e.Err)
	case e.IncorrectValue != "":
		return fmt.Sprintf("%s[%s]: %v", e.Code, e.IncorrectValue, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func (e *CustomError) HTTPCodeMsg() (int, interface{}) {
	resp := map[string]interface{}{
		"code":    e.Code.Name(),
		"message": e.Err.Error(),
	}

	if e.IncorrectValue != "" {
		resp["incorrectValue"] = e.IncorrectValue
	}

	if e.Component != "" {
		resp["component"] = string(e.Component)
	}

	return e.Code.HTTPStatus(), resp
}

// GetErrorDetails returns the message, code and component of the first CustomError in the chain of err.
func GetErrorDetails(err error) (string, string, Component) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Err.Error(), string(ce.Code), ce.Component
	}

	return err.Error(), "", ""
}

// Is reports whether err carries a CustomError with code.
func Is(err error, code ErrorCode) bool {
	var ce *CustomError

	return errors.As(err, &ce) && ce.Code == code
}
