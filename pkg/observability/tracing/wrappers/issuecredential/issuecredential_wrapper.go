/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package issuecredential . Service

package issuecredential

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/proofly/proofly/pkg/observability/tracing/attributeutil"
	"github.com/proofly/proofly/pkg/service/issuecredential"
)

var _ Service = (*Wrapper)(nil) // make sure Wrapper implements issuecredential.ServiceInterface

type Service issuecredential.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) IssueCredential(
	ctx context.Context,
	req *issuecredential.IssueRequest,
) (*issuecredential.IssueResult, error) {
	ctx, span := w.tracer.Start(ctx, "issuecredential.IssueCredential")
	defer span.End()

	span.SetAttributes(attribute.String("university_id", req.UniversityID))
	span.SetAttributes(attribute.Int("image_size", len(req.Image)))
	span.SetAttributes(attributeutil.JSON("issue_request", req, attributeutil.WithTruncated("Image", 32)))

	res, err := w.svc.IssueCredential(ctx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)

		return nil, err
	}

	span.SetAttributes(attribute.String("slug", res.Slug))
	span.SetAttributes(attribute.Bool("degraded", res.Degraded))

	return res, nil
}
