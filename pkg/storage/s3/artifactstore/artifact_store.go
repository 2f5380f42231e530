/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package artifactstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/proofly/proofly/pkg/credential"
)

//go:generate mockgen -destination artifact_store_mocks_test.go -package artifactstore_test -source=artifact_store.go -mock_names s3Client=MockS3Client

const (
	contentType           = "image/png"
	amazonPublicDomainFmt = "https://%s.s3.%s.amazonaws.com"
)

type s3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, input *s3.DeleteObjectInput,
		opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Store keeps marked artifacts in an S3 bucket.
type Store struct {
	s3Client s3Client
	bucket   string
	region   string
	hostName string
}

// NewStore creates S3 Store.
func NewStore(s3Client s3Client, bucket, region, hostName string) *Store {
	return &Store{
		s3Client: s3Client,
		bucket:   bucket,
		region:   region,
		hostName: hostName,
	}
}

func (p *Store) Put(ctx context.Context, key string, data []byte) error {
	_, err := p.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Body:        bytes.NewReader(data),
		Key:         aws.String(key),
		Bucket:      aws.String(p.bucket),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload artifact: %w", err)
	}

	return nil
}

func (p *Store) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := p.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, credential.ErrDataNotFound
		}

		if strings.Contains(err.Error(), "AccessDenied") {
			return nil, credential.ErrDataNotFound
		}

		return nil, fmt.Errorf("failed to get artifact from S3: %w", err)
	}

	defer func() {
		_ = res.Body.Close()
	}()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read artifact body: %w", err)
	}

	return b, nil
}

// Delete removes the object at key. S3 treats a missing key as deleted.
func (p *Store) Delete(ctx context.Context, key string) error {
	_, err := p.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete artifact: %w", err)
	}

	return nil
}

// URL returns the public URL of the object at key.
func (p *Store) URL(key string) string {
	hostName := fmt.Sprintf(amazonPublicDomainFmt, p.bucket, p.region)

	if p.hostName != "" {
		hostName = fmt.Sprintf("https://%s", p.hostName)
	}

	return fmt.Sprintf("%s/%s", hostName, key)
}
