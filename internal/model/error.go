package model

import "errors"

// Error taxonomy for the engine. Handlers map these to HTTP statuses;
// nothing in the core retries on any of them.
var (
	// ErrWalletNotFound indicates no wallet exists for the user.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrInvalidWalletData indicates the stored secret key is corrupt.
	ErrInvalidWalletData = errors.New("invalid wallet data")

	// ErrInsufficientBalance indicates the requested amount exceeds the
	// available balance; no transaction was built.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInsufficientGasReserve indicates the wallet holds too little SOL
	// to cover transaction fees.
	ErrInsufficientGasReserve = errors.New("insufficient SOL for transaction fees")

	// ErrInvalidAddress indicates the destination address failed to parse.
	ErrInvalidAddress = errors.New("invalid Solana address")

	// ErrInvalidMnemonic indicates the phrase failed word-count or
	// checksum validation.
	ErrInvalidMnemonic = errors.New("invalid mnemonic phrase")

	// ErrSeedAlreadyBackedUp indicates the one-time seed phrase export
	// was already consumed for this wallet.
	ErrSeedAlreadyBackedUp = errors.New("seed phrase already backed up")

	// ErrConfirmationTimeout indicates the transaction was submitted but
	// confirmation did not arrive in time. The outcome is ambiguous:
	// funds may have moved.
	ErrConfirmationTimeout = errors.New("transaction confirmation timed out")

	// ErrTransactionFailed indicates the network reported an on-chain
	// error; funds did not move.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrNetworkUnavailable indicates a balance query could not reach the
	// network, so the balance is unknown rather than zero.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrNoPendingFlow indicates an amount/address/phrase was submitted
	// while no matching flow was awaiting it.
	ErrNoPendingFlow = errors.New("no pending flow for this input")
)
