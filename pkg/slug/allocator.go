/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination allocator_mocks_test.go -self_package mocks -package slug_test -source=allocator.go -mock_names credentialStore=MockCredentialStore,Reserver=MockReserver

package slug

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/proofly/proofly/internal/logfields"
)

var logger = log.New("slug-allocator")

const (
	// Alphabet is the set of symbols a slug is drawn from.
	Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	// DefaultLength is the slug length used until collisions force a wider draw.
	DefaultLength = 8

	defaultMaxAttempts = 16
	defaultWidenAfter  = 8
)

// ErrExhausted is returned when no free slug was found within the attempt cap.
var ErrExhausted = errors.New("slug allocation attempts exhausted")

var alphabetSize = big.NewInt(int64(len(Alphabet)))

type credentialStore interface {
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}

// Reserver holds a slug between allocation and persistence so concurrent issuances never get the same value.
type Reserver interface {
	Reserve(ctx context.Context, slug string) (bool, error)
	Release(ctx context.Context, slug string) error
}

type Config struct {
	CredentialStore credentialStore
	Reserver        Reserver
	// Random defaults to crypto/rand.Reader.
	Random      io.Reader
	MaxAttempts int
	WidenAfter  int
}

type Allocator struct {
	store       credentialStore
	reserver    Reserver
	random      io.Reader
	maxAttempts int
	widenAfter  int
}

func New(config *Config) *Allocator {
	a := &Allocator{
		store:       config.CredentialStore,
		reserver:    config.Reserver,
		random:      config.Random,
		maxAttempts: config.MaxAttempts,
		widenAfter:  config.WidenAfter,
	}

	if a.random == nil {
		a.random = rand.Reader
	}

	if a.maxAttempts <= 0 {
		a.maxAttempts = defaultMaxAttempts
	}

	if a.widenAfter <= 0 {
		a.widenAfter = defaultWidenAfter
	}

	if a.reserver == nil {
		a.reserver = NewMemReserver()
	}

	return a
}

// Allocate draws slugs until one is neither stored nor reserved by a concurrent issuance.
// The caller must Release the slug once the credential is persisted or issuance is abandoned.
func (a *Allocator) Allocate(ctx context.Context) (string, error) {
	length := DefaultLength

	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		if attempt > a.widenAfter {
			length++
		}

		s, err := a.draw(length)
		if err != nil {
			return "", fmt.Errorf("draw slug: %w", err)
		}

		exists, err := a.store.ExistsBySlug(ctx, s)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}

		if exists {
			logger.Debugc(ctx, "Slug collision with stored credential", logfields.WithSlug(s))

			continue
		}

		reserved, err := a.reserver.Reserve(ctx, s)
		if err != nil {
			return "", fmt.Errorf("reserve slug: %w", err)
		}

		if !reserved {
			logger.Debugc(ctx, "Slug collision with pending issuance", logfields.WithSlug(s))

			continue
		}

		return s, nil
	}

	return "", ErrExhausted
}

// Release drops the reservation taken by Allocate.
func (a *Allocator) Release(ctx context.Context, slug string) {
	if err := a.reserver.Release(ctx, slug); err != nil {
		logger.Warnc(ctx, "Failed to release slug reservation", logfields.WithSlug(slug), log.WithError(err))
	}
}

func (a *Allocator) draw(length int) (string, error) {
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(a.random, alphabetSize)
		if err != nil {
			return "", err
		}

		b[i] = Alphabet[n.Int64()]
	}

	return string(b), nil
}

// Valid reports whether s is a well-formed slug of at least DefaultLength symbols.
func Valid(s string) bool {
	if len(s) < DefaultLength {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}

	return true
}
