/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package locker

import (
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	redisapi "github.com/redis/go-redis/v9"
)

// RedisLocker hands out redsync mutexes shared by every instance connected to the same Redis.
type RedisLocker struct {
	rs      *redsync.Redsync
	options []redsync.Option
}

// NewRedis creates a locker on top of client. Options apply to every mutex unless overridden.
func NewRedis(client redisapi.UniversalClient, options ...redsync.Option) *RedisLocker {
	return &RedisLocker{
		rs:      redsync.New(goredis.NewPool(client)),
		options: options,
	}
}

func (l *RedisLocker) NewMutex(key string, options ...redsync.Option) Lock {
	return l.rs.NewMutex(key, append(append([]redsync.Option{}, l.options...), options...)...)
}
