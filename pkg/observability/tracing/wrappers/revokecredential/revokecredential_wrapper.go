/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package revokecredential . Service

package revokecredential

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/proofly/proofly/pkg/credential"
	"github.com/proofly/proofly/pkg/service/revokecredential"
)

var _ Service = (*Wrapper)(nil) // make sure Wrapper implements revokecredential.ServiceInterface

type Service revokecredential.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) Revoke(ctx context.Context, universityID, credentialID credential.ID) error {
	ctx, span := w.tracer.Start(ctx, "revokecredential.Revoke")
	defer span.End()

	span.SetAttributes(attribute.String("university_id", universityID))
	span.SetAttributes(attribute.String("credential_id", credentialID))

	if err := w.svc.Revoke(ctx, universityID, credentialID); err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)

		return err
	}

	return nil
}
