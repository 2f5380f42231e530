/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/proofly/proofly/pkg/credential"
)

type StudentStore struct {
	mu      sync.RWMutex
	byID    map[credential.ID]*credential.Student
	byToken map[string]credential.ID
}

func NewStudentStore() *StudentStore {
	return &StudentStore{
		byID:    map[credential.ID]*credential.Student{},
		byToken: map[string]credential.ID{},
	}
}

func (s *StudentStore) Create(_ context.Context, st *credential.Student, token string) (credential.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *st
	cp.ID = uuid.NewString()
	cp.CredentialIDs = append([]credential.ID{}, st.CredentialIDs...)

	s.byID[cp.ID] = &cp

	if token != "" {
		s.byToken[token] = cp.ID
	}

	return cp.ID, nil
}

func (s *StudentStore) FindByID(_ context.Context, id credential.ID) (*credential.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.byID[id]
	if !ok {
		return nil, credential.ErrDataNotFound
	}

	cp := *st
	cp.CredentialIDs = append([]credential.ID{}, st.CredentialIDs...)

	return &cp, nil
}

func (s *StudentStore) FindByToken(ctx context.Context, token string) (*credential.Student, error) {
	s.mu.RLock()
	id, ok := s.byToken[token]
	s.mu.RUnlock()

	if !ok || token == "" {
		return nil, credential.ErrDataNotFound
	}

	return s.FindByID(ctx, id)
}

func (s *StudentStore) AddCredential(_ context.Context, studentID, credentialID credential.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.byID[studentID]
	if !ok {
		return credential.ErrDataNotFound
	}

	if !lo.Contains(st.CredentialIDs, credentialID) {
		st.CredentialIDs = append(st.CredentialIDs, credentialID)
	}

	return nil
}

func (s *StudentStore) RemoveCredential(_ context.Context, studentID, credentialID credential.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.byID[studentID]
	if !ok {
		return credential.ErrDataNotFound
	}

	st.CredentialIDs = lo.Without(st.CredentialIDs, credentialID)

	return nil
}
