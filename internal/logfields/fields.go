/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldArtifactPath  = "artifactPath"
	FieldBlockNumber   = "blockNumber"
	FieldBlockWindow   = "blockWindow"
	FieldCommand       = "command"
	FieldContentHash   = "contentHash"
	FieldCredentialID  = "credentialID"
	FieldDegraded      = "degraded"
	FieldLedgerAddress = "ledgerAddress"
	FieldRequestID     = "requestID"
	FieldSlug          = "slug"
	FieldState         = "state"
	FieldStudentID     = "studentID"
	FieldTxRef         = "txRef"
	FieldUniversityID  = "universityID"
	FieldUserLogLevel  = "userLogLevel"
	FieldCredential    = "credential"
)

// WithArtifactPath sets the ArtifactPath field.
func WithArtifactPath(value string) zap.Field {
	return zap.String(FieldArtifactPath, value)
}

// WithBlockNumber sets the BlockNumber field.
func WithBlockNumber(value uint64) zap.Field {
	return zap.Uint64(FieldBlockNumber, value)
}

// WithBlockWindow sets the BlockWindow field.
func WithBlockWindow(value uint64) zap.Field {
	return zap.Uint64(FieldBlockWindow, value)
}

// WithCommand sets the Command field.
func WithCommand(command string) zap.Field {
	return zap.String(FieldCommand, command)
}

// WithContentHash sets the ContentHash field.
func WithContentHash(value string) zap.Field {
	return zap.String(FieldContentHash, value)
}

// WithCredentialID sets the CredentialID field.
func WithCredentialID(value string) zap.Field {
	return zap.String(FieldCredentialID, value)
}

// WithDegraded sets the Degraded field.
func WithDegraded(value bool) zap.Field {
	return zap.Bool(FieldDegraded, value)
}

// WithLedgerAddress sets the LedgerAddress field.
func WithLedgerAddress(value string) zap.Field {
	return zap.String(FieldLedgerAddress, value)
}

// WithRequestID sets the RequestID field.
func WithRequestID(value string) zap.Field {
	return zap.String(FieldRequestID, value)
}

// WithSlug sets the Slug field.
func WithSlug(value string) zap.Field {
	return zap.String(FieldSlug, value)
}

// WithState sets the issuance State field.
func WithState(value string) zap.Field {
	return zap.String(FieldState, value)
}

// WithStudentID sets the StudentID field.
func WithStudentID(value string) zap.Field {
	return zap.String(FieldStudentID, value)
}

// WithTxRef sets the ledger transaction reference field.
func WithTxRef(value string) zap.Field {
	return zap.String(FieldTxRef, value)
}

// WithUniversityID sets the UniversityID field.
func WithUniversityID(value string) zap.Field {
	return zap.String(FieldUniversityID, value)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// WithCredential sets the Credential field.
func WithCredential(credential interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldCredential, credential))
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}
