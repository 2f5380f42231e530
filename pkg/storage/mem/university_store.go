/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/proofly/proofly/pkg/credential"
)

type UniversityStore struct {
	mu      sync.RWMutex
	byID    map[credential.ID]credential.University
	byToken map[string]credential.ID
}

func NewUniversityStore() *UniversityStore {
	return &UniversityStore{
		byID:    map[credential.ID]credential.University{},
		byToken: map[string]credential.ID{},
	}
}

func (s *UniversityStore) Create(_ context.Context, u *credential.University, token string) (credential.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *u
	cp.ID = uuid.NewString()

	s.byID[cp.ID] = cp

	if token != "" {
		s.byToken[token] = cp.ID
	}

	return cp.ID, nil
}

func (s *UniversityStore) FindByID(_ context.Context, id credential.ID) (*credential.University, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, credential.ErrDataNotFound
	}

	return &u, nil
}

func (s *UniversityStore) FindByToken(ctx context.Context, token string) (*credential.University, error) {
	s.mu.RLock()
	id, ok := s.byToken[token]
	s.mu.RUnlock()

	if !ok || token == "" {
		return nil, credential.ErrDataNotFound
	}

	return s.FindByID(ctx, id)
}
