// Package store holds the wallet catalog: the durable mapping from user
// identifier to custodial wallet, plus balance queries for those wallets.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"

	"yieldvault/internal/client"
	"yieldvault/internal/common"
	"yieldvault/internal/keys"
	"yieldvault/internal/model"
)

// BalanceClient is the slice of the network boundary the store needs for
// balance queries.
type BalanceClient interface {
	NativeBalanceLamports(ctx context.Context, owner solana.PublicKey) (uint64, error)
	TokenBalanceBaseUnits(ctx context.Context, owner, mint solana.PublicKey) (uint64, error)
}

// FileStore is a wallet catalog persisted as a whole-file JSON snapshot.
// Every mutation rewrites the file; the dataset is small enough that this
// is acceptable. The mutex serializes read-modify-write cycles so
// concurrent mutations cannot interleave a snapshot.
type FileStore struct {
	mu    sync.Mutex
	path  string
	data  map[string]model.WalletRecord
	chain BalanceClient
	log   zerolog.Logger
}

// NewFileStore loads the catalog from path. A missing file starts an
// empty catalog; an unreadable one is an error rather than a silent wipe.
func NewFileStore(path string, chain BalanceClient, log zerolog.Logger) (*FileStore, error) {
	s := &FileStore{
		path:  path,
		data:  make(map[string]model.WalletRecord),
		chain: chain,
		log:   log,
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read wallet catalog: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("failed to parse wallet catalog: %w", err)
	}
	return s, nil
}

// GetWallet is a pure catalog lookup, no I/O.
func (s *FileStore) GetWallet(userID string) (model.WalletRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.data[userID]
	return rec, ok
}

// CreateWallet generates a fresh mnemonic, derives the wallet keypair
// from it, inserts the record and persists the snapshot. The mnemonic is
// held in the record only until the user exports it. Calling this for an
// existing user overwrites; callers must check GetWallet first.
func (s *FileStore) CreateWallet(userID string) (model.WalletRecord, error) {
	mnemonic, err := keys.GenerateMnemonic()
	if err != nil {
		return model.WalletRecord{}, fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	pub, priv, err := keys.DeriveKeypair(mnemonic)
	if err != nil {
		return model.WalletRecord{}, fmt.Errorf("failed to derive keypair: %w", err)
	}

	rec := model.WalletRecord{
		PublicKey:          pub.String(),
		SecretKey:          keys.EncodeSecret(priv),
		CreatedAt:          time.Now().UnixMilli(),
		SeedPhraseBackedUp: false,
		SeedPhrase:         mnemonic,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = rec
	if err := s.persistLocked(); err != nil {
		return model.WalletRecord{}, err
	}
	return rec, nil
}

// UpdateWallet replaces the user's record wholesale; used by recovery.
func (s *FileStore) UpdateWallet(userID string, rec model.WalletRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = rec
	return s.persistLocked()
}

// MarkSeedPhraseBackedUp sets the backed-up flag and erases the transient
// mnemonic. Once set, the phrase is never recoverable from storage again.
// No-op if the wallet is absent.
func (s *FileStore) MarkSeedPhraseBackedUp(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.data[userID]
	if !ok {
		return nil
	}
	rec.SeedPhraseBackedUp = true
	rec.SeedPhrase = ""
	s.data[userID] = rec
	return s.persistLocked()
}

// ResetWallet deletes the catalog entry. Irreversible, no soft delete.
func (s *FileStore) ResetWallet(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
	return s.persistLocked()
}

// Keypair reconstructs the user's signing key from the stored secret.
func (s *FileStore) Keypair(userID string) (solana.PrivateKey, error) {
	rec, ok := s.GetWallet(userID)
	if !ok {
		return nil, model.ErrWalletNotFound
	}
	return keys.KeypairFromStoredSecret(rec.SecretKey)
}

// CheckBalance resolves the wallet's account for the asset and queries the
// network. A missing token account is a zero balance, never an error; a
// network failure is ErrNetworkUnavailable so callers can tell "zero"
// from "unknown". Amounts are truncated, not rounded, to 5 decimals.
func (s *FileStore) CheckBalance(ctx context.Context, userID string, asset model.Asset) (float64, error) {
	rec, ok := s.GetWallet(userID)
	if !ok {
		return 0, nil
	}
	owner, err := solana.PublicKeyFromBase58(rec.PublicKey)
	if err != nil {
		return 0, model.ErrInvalidWalletData
	}

	var raw uint64
	var decimals int
	switch asset {
	case model.AssetSOL:
		raw, err = s.chain.NativeBalanceLamports(ctx, owner)
		decimals = common.SOLDecimals
	case model.AssetUSDC:
		raw, err = s.chain.TokenBalanceBaseUnits(ctx, owner, client.USDCMint)
		decimals = common.StableDecimals
	case model.AssetUSDI:
		raw, err = s.chain.TokenBalanceBaseUnits(ctx, owner, client.USDIMint)
		decimals = common.StableDecimals
	default:
		return 0, fmt.Errorf("unknown asset %d", asset)
	}
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Stringer("asset", asset).Msg("balance query failed")
		return 0, model.ErrNetworkUnavailable
	}

	return common.TruncateBalance(raw, decimals), nil
}

// persistLocked writes the whole catalog snapshot. The temp-file rename
// keeps a crash from truncating the previous snapshot.
func (s *FileStore) persistLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal wallet catalog: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write wallet catalog: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace wallet catalog: %w", err)
	}
	return nil
}

// Path returns the snapshot file location.
func (s *FileStore) Path() string {
	return filepath.Clean(s.path)
}
