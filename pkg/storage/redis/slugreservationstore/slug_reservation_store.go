/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package slugreservationstore

import (
	"context"
	"fmt"
	"time"

	"github.com/proofly/proofly/pkg/storage/redis"
)

const (
	keyPrefix  = "slug"
	defaultTTL = 5 * time.Minute
)

// Store reserves slugs across service instances until the owning credential is persisted.
type Store struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// New creates Store. Reservations expire after ttl so an abandoned issuance cannot pin a slug.
func New(redisClient *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Store{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Reserve claims slug. It returns false when another caller holds it.
func (s *Store) Reserve(ctx context.Context, slug string) (bool, error) {
	ok, err := s.redisClient.API().SetNX(ctx, s.redisClient.Key(keyPrefix, slug), time.Now().UTC().Unix(), s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("reserve slug: %w", err)
	}

	return ok, nil
}

func (s *Store) Release(ctx context.Context, slug string) error {
	if err := s.redisClient.API().Del(ctx, s.redisClient.Key(keyPrefix, slug)).Err(); err != nil {
		return fmt.Errorf("release slug: %w", err)
	}

	return nil
}
