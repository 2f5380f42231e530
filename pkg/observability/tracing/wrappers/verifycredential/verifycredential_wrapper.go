/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package verifycredential . Service

package verifycredential

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/proofly/proofly/pkg/artifact"
	"github.com/proofly/proofly/pkg/observability/tracing/attributeutil"
	"github.com/proofly/proofly/pkg/service/verifycredential"
)

var _ Service = (*Wrapper)(nil) // make sure Wrapper implements verifycredential.ServiceInterface

type Service verifycredential.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) VerifyByArtifact(
	ctx context.Context,
	candidate []byte,
) (*verifycredential.VerificationResult, error) {
	ctx, span := w.tracer.Start(ctx, "verifycredential.VerifyByArtifact")
	defer span.End()

	span.SetAttributes(attribute.Int("candidate_size", len(candidate)))
	span.SetAttributes(attribute.String("hash", artifact.Hash(candidate)))

	res, err := w.svc.VerifyByArtifact(ctx, candidate)

	return res, end(span, res, err)
}

func (w *Wrapper) VerifyBySlug(ctx context.Context, slug string) (*verifycredential.VerificationResult, error) {
	ctx, span := w.tracer.Start(ctx, "verifycredential.VerifyBySlug")
	defer span.End()

	span.SetAttributes(attribute.String("slug", slug))

	res, err := w.svc.VerifyBySlug(ctx, slug)

	return res, end(span, res, err)
}

func (w *Wrapper) VerifyOnLedger(
	ctx context.Context,
	hash string,
) (*verifycredential.LedgerVerificationResult, error) {
	ctx, span := w.tracer.Start(ctx, "verifycredential.VerifyOnLedger")
	defer span.End()

	span.SetAttributes(attribute.String("hash", hash))

	res, err := w.svc.VerifyOnLedger(ctx, hash)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)

		return nil, err
	}

	span.SetAttributes(attributeutil.JSON("ledger_result", res))

	return res, nil
}

func end(span trace.Span, res *verifycredential.VerificationResult, err error) error {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)

		return err
	}

	span.SetAttributes(attribute.Bool("valid", res.Valid))
	span.SetAttributes(attributeutil.JSON("verification_result", res,
		attributeutil.WithRedacted("credential.studentEmail"),
		attributeutil.WithTruncated("credential.imagePath", 128)))

	return nil
}
