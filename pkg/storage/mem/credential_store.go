/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/proofly/proofly/pkg/credential"
)

// CredentialStore is an in-process credential store with the same semantics as the MongoDB one.
type CredentialStore struct {
	mu     sync.RWMutex
	byID   map[credential.ID]*credential.Credential
	bySlug map[string]credential.ID
	seq    map[credential.ID]uint64
	next   uint64
}

func NewCredentialStore() *CredentialStore {
	return &CredentialStore{
		byID:   map[credential.ID]*credential.Credential{},
		bySlug: map[string]credential.ID{},
		seq:    map[credential.ID]uint64{},
	}
}

func (s *CredentialStore) Create(_ context.Context, c *credential.Credential) (credential.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bySlug[c.Slug]; ok {
		return "", credential.ErrDuplicateSlug
	}

	cp := clone(c)
	cp.ID = uuid.NewString()

	s.next++
	s.byID[cp.ID] = cp
	s.bySlug[cp.Slug] = cp.ID
	s.seq[cp.ID] = s.next

	return cp.ID, nil
}

func (s *CredentialStore) FindByID(_ context.Context, id credential.ID) (*credential.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	if !ok {
		return nil, credential.ErrDataNotFound
	}

	return clone(c), nil
}

func (s *CredentialStore) FindBySlug(ctx context.Context, slug string) (*credential.Credential, error) {
	s.mu.RLock()
	id, ok := s.bySlug[slug]
	s.mu.RUnlock()

	if !ok {
		return nil, credential.ErrDataNotFound
	}

	return s.FindByID(ctx, id)
}

// FindByHash returns the earliest credential with the content hash.
func (s *CredentialStore) FindByHash(_ context.Context, hash string) (*credential.Credential, error) {
	matches := s.filter(func(c *credential.Credential) bool { return c.ContentHash == hash })
	if len(matches) == 0 {
		return nil, credential.ErrDataNotFound
	}

	sortByIssuedAt(matches, false)

	return matches[0], nil
}

func (s *CredentialStore) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.bySlug[slug]

	return ok, nil
}

func (s *CredentialStore) FindByStudent(_ context.Context, studentID credential.ID) ([]*credential.Credential, error) {
	res := s.filter(func(c *credential.Credential) bool { return c.StudentID == studentID })
	sortByIssuedAt(res, false)

	return res, nil
}

func (s *CredentialStore) FindByUniversity(_ context.Context,
	universityID credential.ID) ([]*credential.Credential, error) {
	res := s.filter(func(c *credential.Credential) bool { return c.UniversityID == universityID })
	sortByIssuedAt(res, true)

	return res, nil
}

func (s *CredentialStore) FindUnanchored(_ context.Context, limit int) ([]*credential.Credential, error) {
	res := s.filter(func(c *credential.Credential) bool { return !c.Anchored() })
	sortByIssuedAt(res, false)

	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}

	return res, nil
}

// List returns up to limit credentials created after the one with id after, in creation order.
func (s *CredentialStore) List(_ context.Context, after credential.ID, limit int) ([]*credential.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var from uint64

	if after != "" {
		seq, ok := s.seq[after]
		if !ok {
			return nil, credential.ErrDataNotFound
		}

		from = seq
	}

	res := make([]*credential.Credential, 0)

	for id, c := range s.byID {
		if s.seq[id] > from {
			res = append(res, clone(c))
		}
	}

	sort.Slice(res, func(i, j int) bool { return s.seq[res[i].ID] < s.seq[res[j].ID] })

	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}

	return res, nil
}

func (s *CredentialStore) SetLedgerTxRef(_ context.Context, id credential.ID, txRef string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok || c.Anchored() {
		return false, nil
	}

	c.LedgerTxRef = &txRef

	return true, nil
}

func (s *CredentialStore) Delete(_ context.Context, id credential.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return credential.ErrDataNotFound
	}

	delete(s.byID, id)
	delete(s.bySlug, c.Slug)
	delete(s.seq, id)

	return nil
}

func (s *CredentialStore) filter(keep func(c *credential.Credential) bool) []*credential.Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*credential.Credential, 0)

	for _, c := range s.byID {
		if keep(c) {
			res = append(res, clone(c))
		}
	}

	return res
}

func sortByIssuedAt(list []*credential.Credential, desc bool) {
	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return list[i].IssuedAt.After(list[j].IssuedAt)
		}

		return list[i].IssuedAt.Before(list[j].IssuedAt)
	})
}

func clone(c *credential.Credential) *credential.Credential {
	cp := *c

	if c.LedgerTxRef != nil {
		ref := *c.LedgerTxRef
		cp.LedgerTxRef = &ref
	}

	return &cp
}
