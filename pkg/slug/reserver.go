/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package slug

import (
	"context"
	"sync"
)

// MemReserver keeps reservations in process memory.
type MemReserver struct {
	reserved sync.Map
}

func NewMemReserver() *MemReserver {
	return &MemReserver{}
}

func (r *MemReserver) Reserve(_ context.Context, slug string) (bool, error) {
	_, loaded := r.reserved.LoadOrStore(slug, struct{}{})

	return !loaded, nil
}

func (r *MemReserver) Release(_ context.Context, slug string) error {
	r.reserved.Delete(slug)

	return nil
}
