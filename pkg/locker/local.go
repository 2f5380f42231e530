/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package locker

import (
	"context"
	"sync"

	"github.com/go-redsync/redsync/v4"
)

// Lock is a mutex that locks based on a key.
type Lock interface {
	LockContext(ctx context.Context) error
	UnlockContext(ctx context.Context) (bool, error)
	Unlock() (bool, error)
}

// Locker hands out named locks.
type Locker interface {
	NewMutex(key string, options ...redsync.Option) Lock
}

// KeyedMutexLocker is an in-process locker that locks based on a key.
type KeyedMutexLocker struct {
	mu      sync.Mutex
	mutexes map[string]chan struct{}
}

// NewKeyedMutex creates a new in-process locker.
func NewKeyedMutex() *KeyedMutexLocker {
	return &KeyedMutexLocker{
		mutexes: make(map[string]chan struct{}),
	}
}

// NewMutex returns the lock for key. Locks for the same key are shared.
func (k *KeyedMutexLocker) NewMutex(key string, _ ...redsync.Option) Lock {
	k.mu.Lock()
	defer k.mu.Unlock()

	ch, ok := k.mutexes[key]
	if !ok {
		ch = make(chan struct{}, 1)
		k.mutexes[key] = ch
	}

	return &KeyedMutex{sem: ch}
}

// KeyedMutex is a context-aware mutex shared by key.
type KeyedMutex struct {
	sem chan struct{}
}

// LockContext locks the mutex or returns when ctx is done.
func (k *KeyedMutex) LockContext(ctx context.Context) error {
	select {
	case k.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// UnlockContext unlocks the mutex.
func (k *KeyedMutex) UnlockContext(_ context.Context) (bool, error) {
	return k.Unlock()
}

// Unlock unlocks the mutex.
func (k *KeyedMutex) Unlock() (bool, error) {
	select {
	case <-k.sem:
		return true, nil
	default:
		return false, nil
	}
}
