package client

import "github.com/gagliardetto/solana-go"

// Well-known mainnet addresses the engine talks to. The pool accounts
// belong to the single USDC/USDi concentrated-liquidity pool; they are
// protocol constants, not per-call values.
var (
	// USDCMint is the USDC mint on Solana mainnet.
	USDCMint = solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")

	// USDIMint is the USDi mint on Solana mainnet.
	USDIMint = solana.MustPublicKeyFromBase58("CXbKtuMVWc2LkedJjATZDNwaPSN6vHsuBGqYHUC4BN3B")

	// CLMMProgramID is the concentrated-liquidity pool program.
	CLMMProgramID = solana.MustPublicKeyFromBase58("CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK")

	// AMMConfig is the pool fee/config account.
	AMMConfig = solana.MustPublicKeyFromBase58("E64NGkDLLCdQ2yFNPcavaKptrEgmiQaNykUuLC1Qgwyp")

	// PoolState is the USDC/USDi pool state account.
	PoolState = solana.MustPublicKeyFromBase58("6bGe466weTDXkv8emyRMxFxLDQyXkE7W89zod8e5AGVe")

	// ObservationState is the pool's price observation account.
	ObservationState = solana.MustPublicKeyFromBase58("8JxwSBohQa42ahYntvoxR91LEvNL9g1232wa5cMRwW4z")

	// USDCVault holds the pool's USDC side.
	USDCVault = solana.MustPublicKeyFromBase58("Abd1ehgfMAAhmmVrWENYYLUzNHQrQHtaazr2f1SD6HUE")

	// USDIVault holds the pool's USDi side.
	USDIVault = solana.MustPublicKeyFromBase58("GrXCVwWjQavypEw41RDiCqQNzj9aEoEdmHG6QaRunjyX")

	// Token2022ProgramID is the token extensions program referenced by the
	// swap account list.
	Token2022ProgramID = solana.MustPublicKeyFromBase58("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")

	// MemoProgramID is the SPL memo program referenced by the swap
	// account list.
	MemoProgramID = solana.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")

	// TickArrayA and TickArrayB are the pool tick arrays touched by every
	// swap regardless of direction.
	TickArrayA = solana.MustPublicKeyFromBase58("3JP1QNbACeXBFpwBBHjAg8YUxaZvHRZ6aUSkekKt521M")
	TickArrayB = solana.MustPublicKeyFromBase58("E14EG74exe5oZeAL6cJksNDT59jFfYVu72o4QDqJBrEB")

	// TickArrayDeposit and TickArrayWithdraw are the direction-dependent
	// tick arrays crossed when trading toward each side of the pool.
	TickArrayDeposit  = solana.MustPublicKeyFromBase58("FXMRNUwWrNAMiCZghjo3jvgmHak3Lrgcmd6QuuJZfkAx")
	TickArrayWithdraw = solana.MustPublicKeyFromBase58("ChvSyZQDGr9jcioJXBwq6Ube8Emi9sCjW3bzSGW5pYbG")
)
