/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination search_mocks_test.go -self_package mocks -package ledger_test -source=search.go -mock_names blockReader=MockBlockReader

package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trustbloc/logutil-go/pkg/log"
	"golang.org/x/sync/errgroup"

	"github.com/proofly/proofly/internal/logfields"
)

const (
	DefaultSearchWindow = 10000

	defaultBlockTimeout = 10 * time.Second
	defaultPrefetch     = 8
)

// ErrLedgerUnreadable is returned when no block of the search window could be read.
var ErrLedgerUnreadable = errors.New("no block in the search window could be read")

type blockReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
}

type SearchConfig struct {
	Client       blockReader
	Window       uint64
	BlockTimeout time.Duration
	// Prefetch is the number of blocks read concurrently ahead of the match cursor.
	Prefetch int
}

// Search scans the most recent ledger blocks for anchoring payloads.
type Search struct {
	client       blockReader
	window       uint64
	blockTimeout time.Duration
	prefetch     int
}

// Match locates an anchoring transaction.
type Match struct {
	TxRef       string
	BlockNumber uint64
	Payload     string
}

// SearchResult describes a completed scan.
type SearchResult struct {
	Match     *Match
	FromBlock uint64
	ToBlock   uint64
	Scanned   uint64
	Skipped   uint64
}

func NewSearch(config *SearchConfig) *Search {
	s := &Search{
		client:       config.Client,
		window:       config.Window,
		blockTimeout: config.BlockTimeout,
		prefetch:     config.Prefetch,
	}

	if s.window == 0 {
		s.window = DefaultSearchWindow
	}

	if s.blockTimeout <= 0 {
		s.blockTimeout = defaultBlockTimeout
	}

	if s.prefetch <= 0 {
		s.prefetch = defaultPrefetch
	}

	return s
}

// FindByHash reports whether an anchoring transaction for hash exists within the search window.
func (s *Search) FindByHash(ctx context.Context, hash string) (bool, error) {
	res, err := s.Locate(ctx, hash)
	if err != nil {
		return false, err
	}

	return res.Match != nil, nil
}

// Locate scans the window from the newest block to the oldest and stops at the first anchoring
// transaction for hash. Unreadable blocks are skipped.
func (s *Search) Locate(ctx context.Context, hash string) (*SearchResult, error) {
	latest, err := s.client.BlockNumber(ctx)
	if err != nil {
		return nil, &SearchError{Err: fmt.Errorf("get block number: %w", err)}
	}

	res := &SearchResult{ToBlock: latest}

	if latest > s.window {
		res.FromBlock = latest - s.window
	}

	logger.Debugc(ctx, "Ledger search started", logfields.WithContentHash(hash),
		logfields.WithBlockNumber(latest), logfields.WithBlockWindow(s.window))

	hi := latest

	for {
		if err = ctx.Err(); err != nil {
			return nil, &SearchError{Err: err}
		}

		lo := res.FromBlock
		if hi-res.FromBlock >= uint64(s.prefetch) {
			lo = hi - uint64(s.prefetch) + 1
		}

		blocks := s.fetch(ctx, lo, hi)

		for i, block := range blocks {
			if block == nil {
				res.Skipped++

				continue
			}

			res.Scanned++

			if m := matchBlock(block, hash); m != nil {
				m.BlockNumber = hi - uint64(i)
				res.Match = m

				logger.Infoc(ctx, "Anchoring transaction found", logfields.WithContentHash(hash),
					logfields.WithTxRef(m.TxRef), logfields.WithBlockNumber(m.BlockNumber))

				return res, nil
			}
		}

		if lo == res.FromBlock {
			break
		}

		hi = lo - 1
	}

	if res.Scanned == 0 {
		return nil, &SearchError{Err: ErrLedgerUnreadable}
	}

	return res, nil
}

// fetch reads blocks hi down to lo concurrently. Element i holds block hi-i, or nil if it could not be read.
func (s *Search) fetch(ctx context.Context, lo, hi uint64) []*types.Block {
	blocks := make([]*types.Block, hi-lo+1)

	var g errgroup.Group

	g.SetLimit(s.prefetch)

	for i := range blocks {
		number := hi - uint64(i)

		g.Go(func() error {
			bctx, cancel := context.WithTimeout(ctx, s.blockTimeout)
			defer cancel()

			block, err := s.client.BlockByNumber(bctx, new(big.Int).SetUint64(number))
			if err != nil {
				logger.Debugc(ctx, "Skipping unreadable block", logfields.WithBlockNumber(number), log.WithError(err))

				return nil
			}

			blocks[i] = block

			return nil
		})
	}

	_ = g.Wait() //nolint:errcheck

	return blocks
}

func matchBlock(block *types.Block, hash string) *Match {
	for _, tx := range block.Transactions() {
		text, ok := DecodePayload(tx.Data())
		if !ok {
			continue
		}

		if MatchesHash(text, hash) {
			return &Match{TxRef: tx.Hash().Hex(), Payload: text}
		}
	}

	return nil
}
