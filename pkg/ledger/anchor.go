/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination anchor_mocks_test.go -self_package mocks -package ledger_test -source=anchor.go -mock_names txClient=MockTxClient

package ledger

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/proofly/proofly/internal/logfields"
	"github.com/proofly/proofly/pkg/locker"
)

var logger = log.New("ledger")

const (
	DefaultGasLimit       = 100000
	DefaultConfirmTimeout = 2 * time.Minute

	defaultPollInterval    = time.Second
	defaultMaxPollInterval = 10 * time.Second
	submissionLockPrefix   = "ledger-submit-"
)

var errNotMined = errors.New("transaction not mined yet")

type txClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type AnchorConfig struct {
	Client         txClient
	PrivateKey     *ecdsa.PrivateKey
	Locker         locker.Locker
	ChainID        *big.Int
	GasLimit       uint64
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
}

// Anchor records (hash, slug) pairs as zero-value self transactions signed by a single key.
type Anchor struct {
	client         txClient
	key            *ecdsa.PrivateKey
	address        common.Address
	locker         locker.Locker
	gasLimit       uint64
	confirmTimeout time.Duration
	pollInterval   time.Duration

	mu      sync.Mutex
	chainID *big.Int
}

func NewAnchor(config *AnchorConfig) *Anchor {
	a := &Anchor{
		client:         config.Client,
		key:            config.PrivateKey,
		address:        crypto.PubkeyToAddress(config.PrivateKey.PublicKey),
		locker:         config.Locker,
		gasLimit:       config.GasLimit,
		confirmTimeout: config.ConfirmTimeout,
		pollInterval:   config.PollInterval,
		chainID:        config.ChainID,
	}

	if a.locker == nil {
		a.locker = locker.NewKeyedMutex()
	}

	if a.gasLimit == 0 {
		a.gasLimit = DefaultGasLimit
	}

	if a.confirmTimeout <= 0 {
		a.confirmTimeout = DefaultConfirmTimeout
	}

	if a.pollInterval <= 0 {
		a.pollInterval = defaultPollInterval
	}

	return a
}

// ParsePrivateKey parses a hex-encoded secp256k1 key with or without the 0x prefix.
func ParsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse ledger private key: %w", err)
	}

	return key, nil
}

// Address returns the checksummed address of the signer.
func (a *Anchor) Address() string {
	return a.address.Hex()
}

// Balance returns the signer balance in wei.
func (a *Anchor) Balance(ctx context.Context) (*big.Int, error) {
	balance, err := a.client.BalanceAt(ctx, a.address, nil)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}

// Anchor submits the anchoring transaction for hash and slug and waits until it is mined.
// Every failure is returned as *AnchorError.
func (a *Anchor) Anchor(ctx context.Context, hash, slug string) (string, error) {
	tx, err := a.submit(ctx, EncodePayload(hash, slug))
	if err != nil {
		return "", &AnchorError{Op: "submit", Err: err}
	}

	txRef := tx.Hash().Hex()

	logger.Infoc(ctx, "Anchoring transaction sent",
		logfields.WithTxRef(txRef), logfields.WithContentHash(hash), logfields.WithSlug(slug))

	receipt, err := a.waitMined(ctx, tx.Hash())
	if err != nil {
		return "", &AnchorError{Op: "confirm", TxRef: txRef, Err: err}
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return "", &AnchorError{Op: "confirm", TxRef: txRef, Err: ErrTxReverted}
	}

	logger.Infoc(ctx, "Anchoring transaction confirmed",
		logfields.WithTxRef(txRef), logfields.WithBlockNumber(receipt.BlockNumber.Uint64()))

	return receipt.TxHash.Hex(), nil
}

func (a *Anchor) submit(ctx context.Context, data []byte) (*types.Transaction, error) {
	mutex := a.locker.NewMutex(submissionLockPrefix + a.address.Hex())

	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("acquire submission lock: %w", err)
	}

	defer func() {
		if _, err := mutex.UnlockContext(context.WithoutCancel(ctx)); err != nil {
			logger.Warnc(ctx, "Failed to release submission lock", log.WithError(err))
		}
	}()

	chainID, err := a.getChainID(ctx)
	if err != nil {
		return nil, err
	}

	nonce, err := a.client.PendingNonceAt(ctx, a.address)
	if err != nil {
		return nil, fmt.Errorf("get nonce: %w", err)
	}

	gasPrice, err := a.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}

	balance, err := a.client.BalanceAt(ctx, a.address, nil)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	fee := new(big.Int).Mul(gasPrice, new(big.Int).SetUint64(a.gasLimit))
	if balance.Cmp(fee) < 0 {
		return nil, fmt.Errorf("%w: balance %s, fee %s", ErrInsufficientFunds, balance, fee)
	}

	tx, err := types.SignTx(types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &a.address,
		Value:    big.NewInt(0),
		Gas:      a.gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	}), types.LatestSignerForChainID(chainID), a.key)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	if err = a.client.SendTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}

	return tx, nil
}

func (a *Anchor) getChainID(ctx context.Context) (*big.Int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.chainID != nil {
		return a.chainID, nil
	}

	chainID, err := a.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}

	a.chainID = chainID

	return chainID, nil
}

func (a *Anchor) waitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, a.confirmTimeout)
	defer cancel()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = a.pollInterval
	b.MaxInterval = defaultMaxPollInterval
	b.MaxElapsedTime = 0

	receipt, err := backoff.RetryNotifyWithData(
		func() (*types.Receipt, error) {
			r, err := a.client.TransactionReceipt(ctx, txHash)
			if err != nil {
				if errors.Is(err, ethereum.NotFound) {
					return nil, errNotMined
				}

				return nil, err
			}

			return r, nil
		},
		backoff.WithContext(b, ctx),
		func(err error, d time.Duration) {
			if !errors.Is(err, errNotMined) {
				logger.Debugc(ctx, "Receipt poll failed", log.WithError(err), log.WithDuration(d))
			}
		},
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("confirmation timeout after %s: %w", a.confirmTimeout, ctx.Err())
		}

		return nil, err
	}

	return receipt, nil
}
