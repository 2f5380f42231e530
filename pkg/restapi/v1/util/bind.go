/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/proofly/proofly/pkg/restapi/resterr"
)

// UploadedFile is a multipart file read into memory.
type UploadedFile struct {
	Name string
	Data []byte
}

// ReadFormFile reads the multipart file field of the request. Files larger than maxSize bytes are rejected.
func ReadFormFile(ctx echo.Context, field string, maxSize int64) (*UploadedFile, error) {
	header, err := ctx.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, resterr.NewValidationError(resterr.InvalidValue, field,
				fmt.Errorf("%s file is required", field))
		}

		return nil, resterr.NewValidationError(resterr.InvalidValue, field, err)
	}

	if maxSize > 0 && header.Size > maxSize {
		return nil, resterr.NewValidationError(resterr.InvalidValue, field,
			fmt.Errorf("file exceeds %d bytes", maxSize))
	}

	f, err := header.Open()
	if err != nil {
		return nil, resterr.NewValidationError(resterr.InvalidValue, field, err)
	}

	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, resterr.NewValidationError(resterr.InvalidValue, field, err)
	}

	if len(data) == 0 {
		return nil, resterr.NewValidationError(resterr.InvalidValue, field,
			fmt.Errorf("%s file is required", field))
	}

	return &UploadedFile{Name: header.Filename, Data: data}, nil
}

// PathParam returns the trimmed path parameter name or an invalid-value error when it is empty.
func PathParam(ctx echo.Context, name string) (string, error) {
	v := strings.TrimSpace(ctx.Param(name))
	if v == "" {
		return "", resterr.NewValidationError(resterr.InvalidValue, name, fmt.Errorf("%s is required", name))
	}

	return v, nil
}

func WriteOutput(ctx echo.Context) func(output interface{}, err error) error {
	return WriteOutputWithCode(http.StatusOK, ctx)
}

func WriteOutputWithCode(code int, ctx echo.Context) func(output interface{}, err error) error {
	return func(output interface{}, err error) error {
		if err != nil {
			return err
		}

		b, err := json.Marshal(output)
		if err != nil {
			return err
		}

		return ctx.JSONBlob(code, b)
	}
}
