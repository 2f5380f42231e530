/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/trace"
)

var logger = log.New("redis-client")

const (
	defaultTimeout   = 15 * time.Second
	defaultKeyPrefix = "proofly"
)

type clientOpts struct {
	keyPrefix      string
	password       string
	timeout        time.Duration
	connectRetries uint64
	traceProvider  trace.TracerProvider
}

type ClientOpt func(opts *clientOpts)

func WithTraceProvider(traceProvider trace.TracerProvider) ClientOpt {
	return func(opts *clientOpts) {
		opts.traceProvider = traceProvider
	}
}

// WithKeyPrefix namespaces every key built with Client.Key. Defaults to "proofly".
func WithKeyPrefix(prefix string) ClientOpt {
	return func(opts *clientOpts) {
		opts.keyPrefix = prefix
	}
}

// WithPassword sets the password of plain addresses. A password in a redis:// URL takes precedence.
func WithPassword(password string) ClientOpt {
	return func(opts *clientOpts) {
		opts.password = password
	}
}

// WithTimeout bounds every connection attempt.
func WithTimeout(timeout time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.timeout = timeout
	}
}

// WithConnectRetries retries the initial ping once a second up to n times.
func WithConnectRetries(n uint64) ClientOpt {
	return func(opts *clientOpts) {
		opts.connectRetries = n
	}
}

// Client is a Redis connection shared by the slug reservations and the distributed lock.
type Client struct {
	client    redis.UniversalClient
	keyPrefix string
}

// New connects to Redis. addrs is either a list of host:port addresses, where two or more select cluster
// mode, or a single redis:// or rediss:// URL.
func New(addrs []string, opts ...ClientOpt) (*Client, error) {
	opt := &clientOpts{
		keyPrefix: defaultKeyPrefix,
		timeout:   defaultTimeout,
	}

	for _, f := range opts {
		f(opt)
	}

	universalOpts, err := universalOptions(addrs, opt)
	if err != nil {
		return nil, err
	}

	client := redis.NewUniversalClient(universalOpts)

	if opt.traceProvider != nil {
		if err = redisotel.InstrumentTracing(client, redisotel.WithTracerProvider(opt.traceProvider)); err != nil {
			return nil, fmt.Errorf("instrument with tracing: %w", err)
		}
	}

	err = backoff.RetryNotify(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), opt.timeout)
			defer cancel()

			return client.Ping(ctx).Err()
		},
		backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), opt.connectRetries),
		func(err error, d time.Duration) {
			logger.Warn("Redis is not reachable, will retry", log.WithError(err), log.WithDuration(d))
		},
	)
	if err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{
		client:    client,
		keyPrefix: opt.keyPrefix,
	}, nil
}

func universalOptions(addrs []string, opt *clientOpts) (*redis.UniversalOptions, error) {
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no redis address")
	}

	if len(addrs) == 1 && (strings.HasPrefix(addrs[0], "redis://") || strings.HasPrefix(addrs[0], "rediss://")) {
		parsed, err := redis.ParseURL(addrs[0])
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}

		password := parsed.Password
		if password == "" {
			password = opt.password
		}

		return &redis.UniversalOptions{
			Addrs:                 []string{parsed.Addr},
			Username:              parsed.Username,
			Password:              password,
			DB:                    parsed.DB,
			TLSConfig:             parsed.TLSConfig,
			ContextTimeoutEnabled: true,
		}, nil
	}

	return &redis.UniversalOptions{
		Addrs:                 addrs,
		Password:              opt.password,
		ContextTimeoutEnabled: true,
	}, nil
}

func (c *Client) API() redis.UniversalClient {
	return c.client
}

// Key joins parts with "-" under the configured prefix.
func (c *Client) Key(parts ...string) string {
	key := strings.Join(parts, "-")
	if c.keyPrefix == "" {
		return key
	}

	return c.keyPrefix + ":" + key
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.client.Close()
}
