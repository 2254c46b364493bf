package swap

import (
	"github.com/gagliardetto/solana-go"

	"yieldvault/internal/client"
)

// Direction selects which way the pool is traded. Every value that flips
// with direction (price limit, vault order, mint order, edge tick array)
// lives in the per-direction parameter table rather than being branched on
// at each use site.
type Direction int

const (
	// DirectionDeposit trades USDC into USDi (entering the yield vault).
	DirectionDeposit Direction = iota
	// DirectionWithdraw trades USDi back into USDC.
	DirectionWithdraw
)

func (d Direction) String() string {
	if d == DirectionWithdraw {
		return "withdraw"
	}
	return "deposit"
}

// directionParams carries the protocol constants for one trade direction.
// The price limit is a fixed 128-bit sqrt-price bound split into little-
// endian halves; it is not computed per call.
type directionParams struct {
	priceLimitLo uint64
	priceLimitHi uint64
	inputMint    solana.PublicKey
	outputMint   solana.PublicKey
	inputVault   solana.PublicKey
	outputVault  solana.PublicKey
	edgeTick     solana.PublicKey
}

var directionTable = map[Direction]directionParams{
	DirectionDeposit: {
		// 79226673515401279992447579055
		priceLimitLo: 0x35BB7F32A81B33AF,
		priceLimitHi: 0x00000000FFFEC4B1,
		inputMint:    client.USDCMint,
		outputMint:   client.USDIMint,
		inputVault:   client.USDCVault,
		outputVault:  client.USDIVault,
		edgeTick:     client.TickArrayDeposit,
	},
	DirectionWithdraw: {
		// 4295048017
		priceLimitLo: 0x0000000100013B51,
		priceLimitHi: 0,
		inputMint:    client.USDIMint,
		outputMint:   client.USDCMint,
		inputVault:   client.USDIVault,
		outputVault:  client.USDCVault,
		edgeTick:     client.TickArrayWithdraw,
	},
}

func (d Direction) params() directionParams {
	return directionTable[d]
}

// InputMint returns the mint spent when trading in this direction.
func (d Direction) InputMint() solana.PublicKey {
	return d.params().inputMint
}

// OutputMint returns the mint received when trading in this direction.
func (d Direction) OutputMint() solana.PublicKey {
	return d.params().outputMint
}
